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

// Package logging provides structured logging utilities shared by the
// sparktune CLI and API server.
//
// It wraps the standard library slog package with project defaults:
// structured JSON output to stderr, environment-based level configuration
// via LOG_LEVEL, module/version context on every record, and source
// location tracking for debug logs.
//
// Supported log levels (case-insensitive): DEBUG, INFO (default),
// WARN/WARNING, ERROR.
//
// Typical usage, early in main:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sparktune", version)
//
//	    slog.Info("analyzing configuration", "path", path)
//	}
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug sparktune analyze --file spark-defaults.conf
package logging
