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

import "context"

// AppMetrics holds one application's aggregate execution statistics as
// normalized from a history server payload. Counts default to zero; byte
// quantities are zero when the source never reported them. Raw preserves
// the full source payload for traceability.
type AppMetrics struct {
	AppID          string         `json:"app_id" yaml:"app_id"`
	AppName        string         `json:"app_name" yaml:"app_name"`
	DurationMS     int64          `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
	TotalTasks     int64          `json:"total_tasks" yaml:"total_tasks"`
	FailedTasks    int64          `json:"failed_tasks" yaml:"failed_tasks"`
	TotalStages    int64          `json:"total_stages" yaml:"total_stages"`
	FailedStages   int64          `json:"failed_stages" yaml:"failed_stages"`
	MemoryUsed     int64          `json:"executor_memory_used,omitempty" yaml:"executor_memory_used,omitempty"`
	MemorySpilled  int64          `json:"executor_memory_spilled,omitempty" yaml:"executor_memory_spilled,omitempty"`
	ShuffleRead    int64          `json:"shuffle_read_bytes,omitempty" yaml:"shuffle_read_bytes,omitempty"`
	ShuffleWrite   int64          `json:"shuffle_write_bytes,omitempty" yaml:"shuffle_write_bytes,omitempty"`
	InputBytes     int64          `json:"input_bytes,omitempty" yaml:"input_bytes,omitempty"`
	OutputBytes    int64          `json:"output_bytes,omitempty" yaml:"output_bytes,omitempty"`
	PeakMemory     int64          `json:"peak_memory_usage,omitempty" yaml:"peak_memory_usage,omitempty"`
	GCTimeMS       int64          `json:"gc_time_ms,omitempty" yaml:"gc_time_ms,omitempty"`
	Raw            map[string]any `json:"raw_payload,omitempty" yaml:"raw_payload,omitempty"`
}

// AppSummary is one entry from an application listing.
type AppSummary struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	StartTime string `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty" yaml:"endTime,omitempty"`
}

// Source provides application execution metrics. Implementations include
// the live history server client and the fixture source.
type Source interface {
	// ApplicationMetrics returns normalized metrics for the application
	// with the given ID.
	ApplicationMetrics(ctx context.Context, appID string) (*AppMetrics, error)

	// ListApplications returns up to limit recent application summaries.
	ListApplications(ctx context.Context, limit int) ([]AppSummary, error)
}

// FindByName scans the source's application listing for the first name
// containing the given pattern (case-insensitive) and returns its metrics.
// When nothing matches, the pattern is tried as an application ID.
func FindByName(ctx context.Context, src Source, pattern string) (*AppMetrics, error) {
	apps, err := src.ListApplications(ctx, findLimit)
	if err != nil {
		return nil, err
	}
	for _, app := range apps {
		if containsFold(app.Name, pattern) {
			return src.ApplicationMetrics(ctx, app.ID)
		}
	}
	return src.ApplicationMetrics(ctx, pattern)
}

const findLimit = 100
