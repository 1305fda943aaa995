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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureSource_Default(t *testing.T) {
	f := NewFixtureSource()

	m, err := f.ApplicationMetrics(context.Background(), "whatever")
	require.NoError(t, err)
	assert.Equal(t, "whatever", m.AppID)
	assert.Equal(t, int64(1800000), m.DurationMS)
	assert.Equal(t, 5*gib, m.MemorySpilled)
	assert.Equal(t, 50*gib, m.InputBytes)
	assert.NotNil(t, m.Raw)

	apps, err := f.ListApplications(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "Production_Data_Pipeline_v1", apps[0].Name)
}

func TestFixtureSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"applications": [
			{"id": "app-a", "name": "alpha", "attempts": [{"duration": 100}]},
			{"id": "app-b", "name": "beta", "attempts": [{"duration": 200}]}
		]
	}`), 0o600))

	f := NewFixtureSource(WithFixtureFile(path))

	// Matched by ID.
	m, err := f.ApplicationMetrics(context.Background(), "app-b")
	require.NoError(t, err)
	assert.Equal(t, int64(200), m.DurationMS)

	// Matched by name.
	m, err = f.ApplicationMetrics(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, "app-a", m.AppID)

	// No match falls through to the built-in workload.
	m, err = f.ApplicationMetrics(context.Background(), "gamma")
	require.NoError(t, err)
	assert.Equal(t, "Production_Data_Pipeline_v1", m.AppName)

	apps, err := f.ListApplications(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-a", apps[0].ID)
}
