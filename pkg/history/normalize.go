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

package history

import (
	"encoding/json"
	"strings"
)

const stageStatusFailed = "FAILED"

// Normalize maps one application payload from the history server API into
// an AppMetrics record. The mapping is pure and total: fields absent from
// the payload contribute zero, never an error, and the payload is kept
// verbatim in Raw.
func Normalize(payload map[string]any) *AppMetrics {
	m := &AppMetrics{
		AppID:   asString(payload["id"]),
		AppName: asString(payload["name"]),
		Raw:     payload,
	}

	// The most recent attempt carries the authoritative duration.
	if attempts := asSlice(payload["attempts"]); len(attempts) > 0 {
		last := asMap(attempts[len(attempts)-1])
		m.DurationMS = asInt64(last["duration"])
	}

	if summary := asMap(payload["executorSummary"]); summary != nil {
		m.MemoryUsed = asInt64(summary["memoryUsed"])
		m.MemorySpilled = asInt64(summary["diskUsed"])
	}

	stages := asSlice(payload["stages"])
	m.TotalStages = int64(len(stages))
	for _, raw := range stages {
		stage := asMap(raw)
		if asString(stage["status"]) == stageStatusFailed {
			m.FailedStages++
		}
		m.TotalTasks += asInt64(stage["numTasks"])
		m.FailedTasks += asInt64(stage["numFailedTasks"])
		m.ShuffleRead += asInt64(stage["shuffleReadBytes"])
		m.ShuffleWrite += asInt64(stage["shuffleWriteBytes"])
		m.InputBytes += asInt64(stage["inputBytes"])
		m.OutputBytes += asInt64(stage["outputBytes"])
	}

	m.PeakMemory = asInt64(payload["peakMemoryUsage"])
	m.GCTimeMS = asInt64(payload["gcTimeMs"])

	return m
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asInt64 coerces the numeric shapes a decoded JSON payload can hold.
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
