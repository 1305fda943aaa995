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

// Package sparkconf extracts structured configuration records from
// loosely formatted Spark sources.
//
// Two dialects are supported: spark-defaults.conf style key/value
// settings files and shell deploy scripts invoking spark-submit (with
// backslash line continuations, positional flags, and --conf pairs).
// Both feed a single append-only Builder whose one promotion pass maps
// recognized canonical setting names to typed Config fields.
//
// The parsers are tolerant by design: missing files yield empty records,
// malformed lines are skipped, and unknown settings are preserved
// verbatim in the record's raw settings. The only hard failure is a
// recognized integer setting holding an unparsable value, which rejects
// the whole source.
package sparkconf
