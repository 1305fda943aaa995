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

package advisor

import (
	"strconv"

	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/sparkconf"
)

const (
	// Driver allocations above this are oversized for typical workloads.
	maxDriverMemoryMB = 10240

	// Shuffle partition counts above this need a large input to justify.
	maxShufflePartitions = 200

	// Inputs below this are considered small for partition sizing.
	smallInputBytes = 10 * int64(1024*1024*1024)

	// Spill above this fraction of used memory indicates undersized executors.
	spillRatioThreshold = 0.10
)

// rule inspects one configuration record and optional metrics and either
// fires a finding or returns nil. Missing optional inputs make a rule not
// applicable, never an error.
type rule func(cfg *sparkconf.Config, m *history.AppMetrics) *Recommendation

// ruleBattery is evaluated in this fixed order on every analysis. Each
// rule is independent; any subset may fire.
var ruleBattery = []rule{
	checkDriverMemory,
	checkShufflePartitions,
	checkDynamicAllocation,
	checkMemorySpilling,
}

func evaluateRules(cfg *sparkconf.Config, m *history.AppMetrics) []Recommendation {
	recs := make([]Recommendation, 0, len(ruleBattery))
	for _, r := range ruleBattery {
		if rec := r(cfg, m); rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs
}

func checkDriverMemory(cfg *sparkconf.Config, _ *history.AppMetrics) *Recommendation {
	if cfg.DriverMemory == "" {
		return nil
	}
	mb, ok := sparkconf.ParseMemoryMB(cfg.DriverMemory)
	if !ok || mb <= maxDriverMemoryMB {
		return nil
	}
	return &Recommendation{
		Severity:    SeverityCritical,
		Category:    CategoryResourceAllocation,
		Title:       "Excessive Driver Memory",
		Description: "Driver memory is oversized for typical workloads. This wastes resources and increases costs.",
		Current:     cfg.DriverMemory,
		Recommended: "2g-4g",
		Impact:      "Reduce resource waste and costs by 50-75%",
	}
}

func checkShufflePartitions(cfg *sparkconf.Config, m *history.AppMetrics) *Recommendation {
	if cfg.ShufflePartitions == nil || *cfg.ShufflePartitions <= maxShufflePartitions {
		return nil
	}
	if m == nil || m.InputBytes == 0 || m.InputBytes >= smallInputBytes {
		return nil
	}
	return &Recommendation{
		Severity:    SeverityWarning,
		Category:    CategoryPerformanceTuning,
		Title:       "Inefficient Shuffle Partitions",
		Description: "Too many shuffle partitions for dataset size causes overhead.",
		Current:     strconv.Itoa(*cfg.ShufflePartitions),
		Recommended: "50-100",
		Impact:      "Reduce shuffle overhead by 30-40%",
	}
}

func checkDynamicAllocation(cfg *sparkconf.Config, _ *history.AppMetrics) *Recommendation {
	if cfg.DynamicAllocation {
		return nil
	}
	return &Recommendation{
		Severity:    SeverityInfo,
		Category:    CategoryBestPractices,
		Title:       "Enable Dynamic Allocation",
		Description: "Dynamic allocation can optimize resource usage automatically.",
		Current:     "false",
		Recommended: "true",
		Impact:      "Better resource utilization and cost savings",
	}
}

func checkMemorySpilling(cfg *sparkconf.Config, m *history.AppMetrics) *Recommendation {
	if m == nil || m.MemorySpilled == 0 {
		return nil
	}
	used := m.MemoryUsed
	if used < 1 {
		used = 1
	}
	if float64(m.MemorySpilled)/float64(used) <= spillRatioThreshold {
		return nil
	}
	current := cfg.ExecutorMemory
	if current == "" {
		current = "unknown"
	}
	return &Recommendation{
		Severity:    SeverityWarning,
		Category:    CategoryPerformanceTuning,
		Title:       "High Memory Spilling",
		Description: "Significant memory spilling detected. Increase executor memory.",
		Current:     current,
		Recommended: "Increase by 50%",
		Impact:      "Reduce disk I/O and improve performance by 20-30%",
	}
}
