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

	"github.com/mchmarny/sparktune/pkg/history"
)

func TestMetricsCmd_Mock(t *testing.T) {
	out := filepath.Join(t.TempDir(), "metrics.json")

	err := metricsCmd().Run(context.Background(),
		[]string{"metrics", "--app", "app-42", "--mock", "--format", "json", "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var m history.AppMetrics
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "app-42", m.AppID)
	assert.Equal(t, int64(500), m.TotalTasks)
	assert.Equal(t, int64(10), m.TotalStages)
}

func TestMetricsCmd_ByName(t *testing.T) {
	out := filepath.Join(t.TempDir(), "metrics.json")

	err := metricsCmd().Run(context.Background(),
		[]string{"metrics", "--app", "production_data", "--by-name", "--mock",
			"--format", "json", "--output", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var m history.AppMetrics
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "Production_Data_Pipeline_v1", m.AppName)
}

func TestMetricsCmd_RequiresApp(t *testing.T) {
	err := metricsCmd().Run(context.Background(), []string{"metrics", "--mock"})
	assert.ErrorContains(t, err, "--app is required")
}
