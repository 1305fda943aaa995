// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textfile

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures the Reader.
type Option func(*Reader)

// Reader reads loosely formatted configuration text files line by line.
type Reader struct {
	maxSize      int
	skipComments bool
	skipBlank    bool
}

// WithMaxSize sets the maximum size (in bytes) of the file to be read.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(r *Reader) {
		r.maxSize = size
	}
}

// WithSkipComments sets whether to skip lines whose first non-whitespace
// character is '#'. Default is true.
func WithSkipComments(skip bool) Option {
	return func(r *Reader) {
		r.skipComments = skip
	}
}

// WithSkipBlank sets whether blank lines are dropped. Default is true.
func WithSkipBlank(skip bool) Option {
	return func(r *Reader) {
		r.skipBlank = skip
	}
}

// NewReader creates a new file reader with the provided options.
// Default settings: 1MB max file size, comments and blank lines skipped.
func NewReader(opts ...Option) *Reader {
	r := &Reader{
		maxSize:      1 << 20, // 1MB default
		skipComments: true,
		skipBlank:    true,
	}

	// Apply options
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lines reads the file at the given path and splits its content into
// newline-delimited lines, trimmed of surrounding whitespace. Blank lines
// and comment lines are dropped per the Reader configuration. An error is
// returned if the file cannot be read, exceeds the maximum size, or
// contains invalid UTF-8 content.
func (r *Reader) Lines(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	if len(b) > r.maxSize {
		return nil, fmt.Errorf("file %q exceeds maximum size of %d bytes", path, r.maxSize)
	}

	parts := strings.Split(string(b), "\n")

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		line := strings.TrimSpace(strings.TrimSuffix(part, "\r"))

		if line == "" && r.skipBlank {
			continue
		}

		if r.skipComments && strings.HasPrefix(line, "#") {
			continue
		}

		result = append(result, line)
	}

	return result, nil
}
