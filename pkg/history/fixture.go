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
	"context"
	"encoding/json"
	"os"
	"time"
)

const gib = int64(1024 * 1024 * 1024)

// FixtureSource serves metrics from a canned payload instead of a live
// history server. When a fixture file is configured its applications list
// is matched by ID or name; otherwise a representative built-in workload
// is returned for any ID. Useful for demos and offline analysis.
type FixtureSource struct {
	path string
}

// FixtureOption configures the fixture source.
type FixtureOption func(*FixtureSource)

// WithFixtureFile points the source at a JSON file holding an
// {"applications": [...]} document of history server payloads.
func WithFixtureFile(path string) FixtureOption {
	return func(f *FixtureSource) {
		f.path = path
	}
}

// NewFixtureSource creates a fixture-backed metrics source.
func NewFixtureSource(opts ...FixtureOption) *FixtureSource {
	f := &FixtureSource{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ApplicationMetrics returns metrics for the given application, matched
// against the fixture file when present, else the built-in workload.
func (f *FixtureSource) ApplicationMetrics(_ context.Context, appID string) (*AppMetrics, error) {
	for _, app := range f.applications() {
		if asString(app["id"]) == appID || asString(app["name"]) == appID {
			return Normalize(app), nil
		}
	}
	return defaultMetrics(appID), nil
}

// ListApplications returns up to limit fixture application summaries.
func (f *FixtureSource) ListApplications(_ context.Context, limit int) ([]AppSummary, error) {
	apps := f.applications()
	if len(apps) == 0 {
		apps = []map[string]any{{
			"id":        "app-20260126-001",
			"name":      "Production_Data_Pipeline_v1",
			"startTime": "2026-01-26T14:00:00Z",
			"endTime":   "2026-01-26T14:30:00Z",
		}}
	}

	out := make([]AppSummary, 0, len(apps))
	for _, app := range apps {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, AppSummary{
			ID:        asString(app["id"]),
			Name:      asString(app["name"]),
			StartTime: asString(app["startTime"]),
			EndTime:   asString(app["endTime"]),
		})
	}
	return out, nil
}

func (f *FixtureSource) applications() []map[string]any {
	if f.path == "" {
		return nil
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil
	}
	var doc struct {
		Applications []map[string]any `json:"applications"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil
	}
	return doc.Applications
}

// defaultMetrics is the built-in workload: a 30 minute production pipeline
// with heavy shuffle and a 5 GiB spill against 60 GiB of executor memory.
func defaultMetrics(appID string) *AppMetrics {
	return &AppMetrics{
		AppID:         appID,
		AppName:       "Production_Data_Pipeline_v1",
		DurationMS:    (30 * time.Minute).Milliseconds(),
		TotalTasks:    500,
		FailedTasks:   5,
		TotalStages:   10,
		FailedStages:  0,
		MemoryUsed:    60 * gib,
		MemorySpilled: 5 * gib,
		ShuffleRead:   20 * gib,
		ShuffleWrite:  15 * gib,
		InputBytes:    50 * gib,
		OutputBytes:   30 * gib,
		PeakMemory:    75 * gib,
		GCTimeMS:      120000,
		Raw: map[string]any{
			"executorCount":    10,
			"driverMemory":     "20g",
			"executorMemory":   "8g",
			"memorySpillage":   "high",
			"gcTimePercentage": 6.67,
		},
	}
}
