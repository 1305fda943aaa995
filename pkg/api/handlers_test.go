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

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sparktune/pkg/advisor"
	"github.com/mchmarny/sparktune/pkg/history"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	fixture := history.NewFixtureSource()
	h := &handler{
		advisor: advisor.New(),
		live:    fixture, // tests never reach a real history server
		fixture: fixture,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/config", h.handleConfig)
	mux.HandleFunc("GET /v1/applications/{app}/metrics", h.handleAppMetrics)
	mux.HandleFunc("GET /v1/recommendations", h.handleRecommendations)
	return mux
}

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spark-defaults.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestHandleConfig(t *testing.T) {
	mux := newTestMux(t)
	path := writeConf(t, "spark.driver.memory=20g\n")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/config?path="+path, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		DriverMemory string            `json:"driver_memory"`
		RawSettings  map[string]string `json:"raw_settings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "20g", resp.DriverMemory)
	assert.Equal(t, "20g", resp.RawSettings["spark.driver.memory"])
}

func TestHandleConfig_MissingPath(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/config", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}

func TestHandleConfig_ParseFailure(t *testing.T) {
	mux := newTestMux(t)
	path := writeConf(t, "spark.executor.cores=four\n")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/config?path="+path, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PARSE_FAILURE")
}

func TestHandleAppMetrics(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/applications/app-42/metrics?mock=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var m history.AppMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, "app-42", m.AppID)
	assert.Equal(t, int64(500), m.TotalTasks)
}

func TestHandleRecommendations(t *testing.T) {
	mux := newTestMux(t)
	path := writeConf(t, "spark.driver.memory=20g\nspark.sql.shuffle.partitions=500\n")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/recommendations?path="+path+"&app=app-42&mock=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var result advisor.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Summary)

	titles := make([]string, 0, len(result.Recommendations))
	for _, r := range result.Recommendations {
		titles = append(titles, r.Title)
	}
	assert.Contains(t, titles, "Excessive Driver Memory")
	// The fixture reports 50 GiB of input, so the shuffle rule stays quiet.
	assert.NotContains(t, titles, "Inefficient Shuffle Partitions")
	// The fixture's 5 GiB spill against 60 GiB used fires the warning.
	assert.Contains(t, titles, "High Memory Spilling")
}

func TestHandleRecommendations_SeverityFilter(t *testing.T) {
	mux := newTestMux(t)
	path := writeConf(t, "spark.driver.memory=20g\n")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/recommendations?path="+path+"&severity=critical", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var result advisor.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, advisor.SeverityCritical, result.Recommendations[0].Severity)

	// Unknown severity is rejected.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/recommendations?path="+path+"&severity=fatal", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
