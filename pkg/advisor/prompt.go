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
	"fmt"
	"strings"

	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/sparkconf"
)

const notAvailable = "N/A"

// buildPrompt renders every known configuration field, the raw setting
// superset, and the metrics (when present) into the structured analysis
// request. The response format it mandates is the wire contract consumed
// by parseCompletion.
func buildPrompt(cfg *sparkconf.Config, m *history.AppMetrics) string {
	var b strings.Builder

	b.WriteString("You are a Spark performance expert. Analyze the following Spark configuration ")
	b.WriteString("and execution metrics, then provide specific recommendations.\n\n")

	b.WriteString("**Configuration Details:**\n")
	fmt.Fprintf(&b, "- Source: %s\n", orNA(cfg.Source))
	fmt.Fprintf(&b, "- App Name: %s\n", orNA(cfg.AppName))
	fmt.Fprintf(&b, "- Master: %s\n", orNA(cfg.Master))
	fmt.Fprintf(&b, "- Deploy Mode: %s\n", orNA(cfg.DeployMode))
	fmt.Fprintf(&b, "- Driver Memory: %s\n", orNA(cfg.DriverMemory))
	fmt.Fprintf(&b, "- Executor Memory: %s\n", orNA(cfg.ExecutorMemory))
	fmt.Fprintf(&b, "- Executor Cores: %s\n", orNAInt(cfg.ExecutorCores))
	fmt.Fprintf(&b, "- Number of Executors: %s\n", orNAInt(cfg.NumExecutors))
	fmt.Fprintf(&b, "- Default Parallelism: %s\n", orNAInt(cfg.DefaultParallelism))
	fmt.Fprintf(&b, "- Shuffle Partitions: %s\n", orNAInt(cfg.ShufflePartitions))
	fmt.Fprintf(&b, "- Dynamic Allocation: %t\n", cfg.DynamicAllocation)

	if cfg.Settings.Len() > 0 {
		b.WriteString("\n**Additional Configurations:**\n")
		for _, k := range cfg.Settings.Keys() {
			v, _ := cfg.Settings.Get(k)
			fmt.Fprintf(&b, "- %s: %s\n", k, v)
		}
	}

	if m != nil {
		b.WriteString("\n**Execution Metrics:**\n")
		fmt.Fprintf(&b, "- Application ID: %s\n", m.AppID)
		fmt.Fprintf(&b, "- Duration: %s\n", orNASeconds(m.DurationMS))
		fmt.Fprintf(&b, "- Total Tasks: %d\n", m.TotalTasks)
		fmt.Fprintf(&b, "- Failed Tasks: %d\n", m.FailedTasks)
		fmt.Fprintf(&b, "- Total Stages: %d\n", m.TotalStages)
		fmt.Fprintf(&b, "- Failed Stages: %d\n", m.FailedStages)
		fmt.Fprintf(&b, "- Executor Memory Used: %s\n", formatBytes(m.MemoryUsed))
		fmt.Fprintf(&b, "- Memory Spilled: %s\n", formatBytes(m.MemorySpilled))
		fmt.Fprintf(&b, "- Shuffle Read: %s\n", formatBytes(m.ShuffleRead))
		fmt.Fprintf(&b, "- Shuffle Write: %s\n", formatBytes(m.ShuffleWrite))
		fmt.Fprintf(&b, "- Input Data: %s\n", formatBytes(m.InputBytes))
		fmt.Fprintf(&b, "- Output Data: %s\n", formatBytes(m.OutputBytes))
		fmt.Fprintf(&b, "- GC Time: %s\n", orNASeconds(m.GCTimeMS))
	}

	b.WriteString(`
**Your Task:**
Provide a structured analysis with:

1. **SUMMARY**: Brief overview of the configuration quality (2-3 sentences)

2. **CRITICAL ISSUES**: List any critical problems that severely impact performance
   Format: [CRITICAL] Category | Title | Current: X | Recommended: Y | Impact: Z

3. **WARNINGS**: List important issues that should be addressed
   Format: [WARNING] Category | Title | Current: X | Recommended: Y | Impact: Z

4. **SUGGESTIONS**: List optimization opportunities
   Format: [INFO] Category | Title | Current: X | Recommended: Y | Impact: Z

Categories should be one of: resource_allocation, performance_tuning, best_practices, reliability

Focus on:
- Resource allocation efficiency (driver/executor memory, cores)
- Parallelism and partition tuning
- Memory management and spilling
- GC overhead
- Dynamic allocation benefits
- Common anti-patterns
- Cost optimization

Be specific with numbers and provide actionable recommendations.
`)

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func orNAInt(v *int) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%d", *v)
}

func orNASeconds(ms int64) string {
	if ms == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%g seconds", float64(ms)/1000)
}

// formatBytes renders a byte count as a human readable quantity.
func formatBytes(n int64) string {
	if n == 0 {
		return notAvailable
	}
	v := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB", "TB"} {
		if v < 1024.0 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024.0
	}
	return fmt.Sprintf("%.2f PB", v)
}
