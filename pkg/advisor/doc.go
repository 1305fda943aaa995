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

// Package advisor turns a parsed Spark configuration and optional
// execution metrics into an ordered set of tuning recommendations.
//
// Every analysis runs a fixed battery of deterministic heuristics. When a
// Completer is configured, its free-text output is parsed best-effort and
// appended after the rule findings; a model failure degrades to the
// rule-only result, never to an error.
package advisor
