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
	"regexp"
	"strconv"
	"strings"
)

// memoryPattern matches Spark memory size strings such as "20g", "512m",
// "1.5gb" or a bare number. The trailing "b" is optional and ignored.
var memoryPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([kmgt]?)b?`)

// ParseMemoryMB converts a memory size string to whole megabytes.
// Recognized units are k, m, g and t (case-insensitive, optional trailing
// "b"); a missing unit is treated as megabytes. The result truncates, so
// sub-megabyte quantities report as 0. The second return value is false
// for unrecognized formats; callers treat that as "unknown", not an error.
func ParseMemoryMB(s string) (int64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	m := memoryPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	switch m[2] {
	case "k":
		v /= 1024
	case "g":
		v *= 1024
	case "t":
		v *= 1024 * 1024
	}

	return int64(v), true
}
