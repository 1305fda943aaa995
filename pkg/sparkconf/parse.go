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
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile parses a single configuration source, dispatching on the path:
// the canonical settings file name selects the key/value dialect, the
// script extension selects the deploy-script dialect, and anything else is
// sniffed for the spark-submit marker. A nonexistent path falls through to
// the key/value dialect, which returns an empty record.
func ParseFile(path string) (*Config, error) {
	switch {
	case strings.HasSuffix(path, DefaultsFileName):
		return ParseDefaults(path)
	case strings.HasSuffix(path, ScriptExt):
		return ParseSubmitScript(path)
	}

	if b, err := os.ReadFile(path); err == nil && strings.Contains(string(b), SubmitMarker) {
		return ParseSubmitScript(path)
	}

	return ParseDefaults(path)
}

// ParseDir recursively parses every recognized configuration source under
// the given directory: spark-defaults.conf files with the key/value
// dialect and *.sh files containing the spark-submit marker with the
// deploy-script dialect. Records are returned in filesystem traversal
// order; a missing directory yields an empty list, not an error.
func ParseDir(dir string) ([]*Config, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("configuration directory not found", "dir", dir)
		return []*Config{}, nil
	}

	configs := make([]*Config, 0)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to walk directory %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		switch {
		case d.Name() == DefaultsFileName:
			cfg, err := ParseDefaults(path)
			if err != nil {
				return err
			}
			configs = append(configs, cfg)

		case strings.HasSuffix(d.Name(), ScriptExt):
			b, err := os.ReadFile(path)
			if err != nil {
				// Unreadable scripts are noise, not a scan failure.
				slog.Debug("skipping unreadable script", "path", path, "error", err)
				return nil
			}
			if !strings.Contains(string(b), SubmitMarker) {
				return nil
			}
			cfg, err := ParseSubmitScript(path)
			if err != nil {
				return err
			}
			configs = append(configs, cfg)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return configs, nil
}
