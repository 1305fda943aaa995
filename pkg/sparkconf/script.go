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
	"regexp"
	"strconv"
	"strings"

	sterr "github.com/mchmarny/sparktune/pkg/errors"
	"github.com/mchmarny/sparktune/pkg/textfile"
)

const (
	// ScriptExt is the file extension recognized as a deploy script.
	ScriptExt = ".sh"

	// SubmitMarker is the token that identifies a shell script as a Spark
	// launch script during content sniffing and directory scans.
	SubmitMarker = "spark-submit"
)

var (
	appNamePattern  = regexp.MustCompile(`APP_NAME=["'](.*?)["']`)
	nameFlagPattern = regexp.MustCompile(`--name\s+(\S+)`)
	confPattern     = regexp.MustCompile(`--conf\s+([^\s=]+)=(\S+)`)

	// scriptFlags maps spark-submit positional flags to their canonical
	// setting names. Order matters: it is the extraction order and integer
	// flags are validated during extraction.
	scriptFlags = []struct {
		pattern *regexp.Regexp
		key     string
		integer bool
	}{
		{regexp.MustCompile(`--master\s+(\S+)`), KeyMaster, false},
		{regexp.MustCompile(`--deploy-mode\s+(\S+)`), KeyDeployMode, false},
		{regexp.MustCompile(`--driver-memory\s+(\S+)`), KeyDriverMemory, false},
		{regexp.MustCompile(`--executor-memory\s+(\S+)`), KeyExecutorMemory, false},
		{regexp.MustCompile(`--executor-cores\s+(\S+)`), KeyExecutorCores, true},
		{regexp.MustCompile(`--num-executors\s+(\S+)`), KeyExecutorInstances, true},
	}
)

// ParseSubmitScript parses a shell-style spark-submit launch script.
// Physical lines joined by trailing backslash continuations are first
// reconstructed into logical lines, then all logical lines are flattened
// into a single search buffer so flags split across continuations are
// still found. A missing file yields an empty record, not an error.
func ParseSubmitScript(path string) (*Config, error) {
	b := NewBuilder(path)

	reader := textfile.NewReader(textfile.WithSkipComments(false))
	lines, err := reader.Lines(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("deploy script not found, returning empty record", "path", path)
			return b.Build()
		}
		return nil, err
	}

	buffer := strings.Join(joinContinuations(lines), " ")

	// Pass 1: literal APP_NAME="..." assignment.
	if m := appNamePattern.FindStringSubmatch(buffer); m != nil {
		b.Put(KeyAppName, m[1])
	}

	// Pass 2: positional spark-submit flags.
	for _, f := range scriptFlags {
		m := f.pattern.FindStringSubmatch(buffer)
		if m == nil {
			continue
		}
		if f.integer {
			if _, err := strconv.Atoi(m[1]); err != nil {
				return nil, sterr.WrapWithContext(sterr.ErrCodeParseFailure,
					"flag value is not a valid integer", err, map[string]any{
						"setting": f.key,
						"value":   m[1],
						"source":  path,
					})
			}
		}
		if !b.Has(f.key) {
			b.Put(f.key, m[1])
		}
	}

	// Pass 3: every --conf key=value occurrence. Keys claimed by earlier
	// passes are left untouched; duplicate --conf keys keep the last value.
	claimed := make(map[string]bool)
	for _, key := range b.settings.Keys() {
		claimed[key] = true
	}
	for _, m := range confPattern.FindAllStringSubmatch(buffer, -1) {
		key, value := m[1], m[2]
		if claimed[key] {
			slog.Debug("ignoring --conf for flag-claimed setting", "setting", key)
			continue
		}
		b.Put(key, value)
	}

	// Pass 4: --name flag as app name fallback.
	if !b.Has(KeyAppName) {
		if m := nameFlagPattern.FindStringSubmatch(buffer); m != nil {
			b.Put(KeyAppName, m[1])
		}
	}

	return b.Build()
}

// joinContinuations reconstructs logical lines from physical lines by
// joining any line ending in a backslash with its successor, repeatedly,
// so a continuation chain of any length collapses to one logical line.
func joinContinuations(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		for strings.HasSuffix(line, `\`) && i+1 < len(lines) {
			line = strings.TrimSpace(strings.TrimSuffix(line, `\`)) + " " + lines[i+1]
			i++
		}
		out = append(out, line)
	}
	return out
}
