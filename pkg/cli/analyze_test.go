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

package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sparktune/pkg/advisor"
)

func runAnalyze(t *testing.T, args ...string) advisor.Result {
	t.Helper()
	out := filepath.Join(t.TempDir(), "result.json")
	args = append([]string{"analyze", "--format", "json", "--output", out}, args...)

	require.NoError(t, analyzeCmd().Run(context.Background(), args))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var result advisor.Result
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func TestAnalyzeCmd_RulesOnly(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	conf := writeTestConf(t, "spark-defaults.conf",
		"spark.driver.memory 20g\nspark.dynamicAllocation.enabled false\n")

	result := runAnalyze(t, "--file", conf)

	titles := make([]string, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Excessive Driver Memory")
	assert.Contains(t, titles, "Enable Dynamic Allocation")
	assert.Contains(t, result.Summary, "rule-based")
}

func TestAnalyzeCmd_MockMetrics(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	conf := writeTestConf(t, "spark-defaults.conf",
		"spark.driver.memory 20g\nspark.sql.shuffle.partitions 500\n")

	result := runAnalyze(t, "--file", conf, "--app", "app-42", "--mock")

	require.NotNil(t, result.Metrics)
	assert.Equal(t, "app-42", result.Metrics.AppID)

	titles := make([]string, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		titles = append(titles, r.Title)
	}
	// The fixture's 5 GiB spill against 60 GiB used fires the spill warning.
	assert.Contains(t, titles, "High Memory Spilling")
	// The fixture reports 50 GiB of input, so the shuffle rule stays quiet.
	assert.NotContains(t, titles, "Inefficient Shuffle Partitions")
}

func TestAnalyzeCmd_SeverityFilter(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	conf := writeTestConf(t, "spark-defaults.conf",
		"spark.driver.memory 20g\nspark.dynamicAllocation.enabled false\n")

	result := runAnalyze(t, "--file", conf, "--severity", "critical")
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, advisor.SeverityCritical, result.Recommendations[0].Severity)
}

func TestAnalyzeCmd_UnknownSeverity(t *testing.T) {
	conf := writeTestConf(t, "spark-defaults.conf", "spark.driver.memory 2g\n")

	err := analyzeCmd().Run(context.Background(),
		[]string{"analyze", "--file", conf, "--severity", "fatal"})
	assert.ErrorContains(t, err, "unknown severity")
}

func TestAnalyzeCmd_RequiresFile(t *testing.T) {
	err := analyzeCmd().Run(context.Background(), []string{"analyze"})
	assert.ErrorContains(t, err, "--file is required")
}
