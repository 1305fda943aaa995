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
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sterr "github.com/mchmarny/sparktune/pkg/errors"
)

const submitScript = `#!/bin/bash
APP_NAME="Production_Data_Pipeline_v1"

spark-submit \
  --master yarn \
  --deploy-mode cluster \
  --driver-memory 20g \
  --executor-memory 8g \
  --executor-cores 4 \
  --num-executors 10 \
  --conf spark.default.parallelism=200 \
  --conf spark.sql.shuffle.partitions=500 \
  --conf spark.dynamicAllocation.enabled=false \
  app.py
`

func TestParseSubmitScript(t *testing.T) {
	path := writeFile(t, "deploy.sh", submitScript)

	cfg, err := ParseSubmitScript(path)
	require.NoError(t, err)

	assert.Equal(t, "Production_Data_Pipeline_v1", cfg.AppName)
	assert.Equal(t, "yarn", cfg.Master)
	assert.Equal(t, "cluster", cfg.DeployMode)
	assert.Equal(t, "20g", cfg.DriverMemory)
	assert.Equal(t, "8g", cfg.ExecutorMemory)
	require.NotNil(t, cfg.ExecutorCores)
	assert.Equal(t, 4, *cfg.ExecutorCores)
	require.NotNil(t, cfg.NumExecutors)
	assert.Equal(t, 10, *cfg.NumExecutors)
	require.NotNil(t, cfg.DefaultParallelism)
	assert.Equal(t, 200, *cfg.DefaultParallelism)
	require.NotNil(t, cfg.ShufflePartitions)
	assert.Equal(t, 500, *cfg.ShufflePartitions)
	assert.False(t, cfg.DynamicAllocation)

	// Flag-derived values land in the raw settings under canonical names.
	v, ok := cfg.Settings.Get(KeyDriverMemory)
	require.True(t, ok)
	assert.Equal(t, "20g", v)
}

func TestParseSubmitScript_FlagSplitAcrossContinuation(t *testing.T) {
	// Three physical lines, with --executor-cores and its value separated
	// by the join point.
	path := writeFile(t, "deploy.sh", strings.Join([]string{
		`spark-submit --master local[4] \`,
		`  --executor-cores \`,
		`  6 app.py`,
	}, "\n")+"\n")

	cfg, err := ParseSubmitScript(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.ExecutorCores)
	assert.Equal(t, 6, *cfg.ExecutorCores)
}

func TestParseSubmitScript_NameFlagFallback(t *testing.T) {
	path := writeFile(t, "deploy.sh", "spark-submit --name nightly_etl app.py\n")

	cfg, err := ParseSubmitScript(path)
	require.NoError(t, err)
	assert.Equal(t, "nightly_etl", cfg.AppName)

	// The assignment wins over the flag when both are present.
	path = writeFile(t, "deploy.sh",
		"APP_NAME='assigned'\nspark-submit --name flagged app.py\n")
	cfg, err = ParseSubmitScript(path)
	require.NoError(t, err)
	assert.Equal(t, "assigned", cfg.AppName)
}

func TestParseSubmitScript_FlagWinsOverConf(t *testing.T) {
	path := writeFile(t, "deploy.sh",
		"spark-submit --driver-memory 4g --conf spark.driver.memory=8g app.py\n")

	cfg, err := ParseSubmitScript(path)
	require.NoError(t, err)
	assert.Equal(t, "4g", cfg.DriverMemory)

	v, _ := cfg.Settings.Get(KeyDriverMemory)
	assert.Equal(t, "4g", v)
}

func TestParseSubmitScript_InvalidCores(t *testing.T) {
	path := writeFile(t, "deploy.sh", "spark-submit --executor-cores many app.py\n")

	cfg, err := ParseSubmitScript(path)
	assert.Nil(t, cfg)
	require.Error(t, err)

	var se *sterr.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, sterr.ErrCodeParseFailure, se.Code)
}

func TestParseSubmitScript_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deploy.sh")

	cfg, err := ParseSubmitScript(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, 0, cfg.Settings.Len())
}

func TestJoinContinuations(t *testing.T) {
	// A chain of N continued lines must collapse to a single logical line
	// regardless of N.
	for _, n := range []int{1, 2, 5, 40} {
		lines := make([]string, 0, n+1)
		for i := 0; i < n; i++ {
			lines = append(lines, fmt.Sprintf(`token%d \`, i))
		}
		lines = append(lines, "last")

		logical := joinContinuations(lines)
		if len(logical) != 1 {
			t.Fatalf("n=%d: expected 1 logical line, got %d", n, len(logical))
		}
		if !strings.Contains(logical[0], "token0") || !strings.HasSuffix(logical[0], "last") {
			t.Errorf("n=%d: unexpected logical line %q", n, logical[0])
		}
	}

	// Lines without continuations pass through untouched.
	out := joinContinuations([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, out)
}
