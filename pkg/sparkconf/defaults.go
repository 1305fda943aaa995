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

package sparkconf

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"
	"unicode"

	"github.com/mchmarny/sparktune/pkg/textfile"
)

// DefaultsFileName is the canonical settings file name recognized by the
// dispatcher and directory walker.
const DefaultsFileName = "spark-defaults.conf"

// ParseDefaults parses a spark-defaults.conf style settings file.
// A missing file is not an error: the returned Config carries only the
// source identifier. Malformed lines are skipped; an unparsable value for
// a recognized integer setting rejects the whole source.
func ParseDefaults(path string) (*Config, error) {
	b := NewBuilder(path)

	lines, err := textfile.NewReader().Lines(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("settings file not found, returning empty record", "path", path)
			return b.Build()
		}
		return nil, err
	}

	for _, line := range lines {
		key, value, ok := splitSetting(line)
		if !ok {
			slog.Debug("skipping malformed settings line", "path", path, "line", line)
			continue
		}
		b.Put(key, value)
	}

	return b.Build()
}

// splitSetting splits a settings line into exactly two tokens at the first
// run of whitespace or the first literal '='. Lines that do not produce a
// non-empty key with a separator are rejected so the caller can skip them.
func splitSetting(line string) (key, value string, ok bool) {
	for i, r := range line {
		if r != '=' && !unicode.IsSpace(r) {
			continue
		}
		if i == 0 {
			return "", "", false
		}
		key = line[:i]
		if r == '=' {
			// Consume only the single '='; a whitespace run is absorbed
			// by the trim below.
			value = strings.TrimSpace(line[i+1:])
		} else {
			value = strings.TrimSpace(line[i:])
		}
		return key, value, true
	}
	return "", "", false
}
