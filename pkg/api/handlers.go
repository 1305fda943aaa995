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
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/sparktune/pkg/advisor"
	sterr "github.com/mchmarny/sparktune/pkg/errors"
	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/serializer"
	"github.com/mchmarny/sparktune/pkg/server"
	"github.com/mchmarny/sparktune/pkg/sparkconf"
)

// handler serves the analysis API. The metrics source is chosen per
// request: the fixture source when mock=true, the live source otherwise.
type handler struct {
	advisor *advisor.Advisor
	live    history.Source
	fixture history.Source
}

func (h *handler) source(r *http.Request) history.Source {
	if r.URL.Query().Get("mock") == "true" {
		return h.fixture
	}
	return h.live
}

// handleConfig serves GET /v1/config?path=<file-or-dir>.
func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		server.WriteError(w, r, http.StatusBadRequest, sterr.ErrCodeInvalidRequest,
			"path query parameter is required", false, nil)
		return
	}

	cfg, err := sparkconf.ParseFile(path)
	if err != nil {
		writeParseError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, cfg)
}

// handleAppMetrics serves GET /v1/applications/{app}/metrics.
func (h *handler) handleAppMetrics(w http.ResponseWriter, r *http.Request) {
	app := r.PathValue("app")
	if app == "" {
		server.WriteError(w, r, http.StatusBadRequest, sterr.ErrCodeInvalidRequest,
			"application identifier is required", false, nil)
		return
	}

	m, err := h.source(r).ApplicationMetrics(r.Context(), app)
	if err != nil {
		var se *sterr.StructuredError
		if errors.As(err, &se) && se.Code == sterr.ErrCodeNotFound {
			server.WriteError(w, r, http.StatusNotFound, sterr.ErrCodeNotFound,
				"application not found", false, map[string]any{"app": app})
			return
		}
		server.WriteError(w, r, http.StatusBadGateway, sterr.ErrCodeUnavailable,
			"failed to fetch application metrics", true, map[string]any{"app": app})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, m)
}

// handleRecommendations serves GET /v1/recommendations?path=...
// with optional app, mock, severity, and category parameters.
func (h *handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	path := q.Get("path")
	if path == "" {
		server.WriteError(w, r, http.StatusBadRequest, sterr.ErrCodeInvalidRequest,
			"path query parameter is required", false, nil)
		return
	}

	var severity advisor.Severity
	if v := q.Get("severity"); v != "" {
		var ok bool
		if severity, ok = advisor.ParseSeverity(v); !ok {
			server.WriteError(w, r, http.StatusBadRequest, sterr.ErrCodeInvalidRequest,
				"unknown severity", false, map[string]any{"severity": v})
			return
		}
	}

	// Config parse and metrics fetch are independent, run them in parallel.
	var (
		cfg *sparkconf.Config
		m   *history.AppMetrics
	)
	g, gctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		cfg, err = sparkconf.ParseFile(path)
		return err
	})
	if app := q.Get("app"); app != "" {
		src := h.source(r)
		g.Go(func() error {
			var err error
			// Metrics absence degrades the analysis, it does not fail it.
			m, err = src.ApplicationMetrics(gctx, app)
			if err != nil {
				m = nil
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeParseError(w, r, err)
		return
	}

	result, err := h.advisor.Analyze(r.Context(), cfg, m)
	if err != nil {
		server.WriteError(w, r, http.StatusInternalServerError, sterr.ErrCodeInternal,
			"analysis failed", true, nil)
		return
	}

	if severity != "" {
		result.Recommendations = result.FilterSeverity(severity)
	}
	if v := q.Get("category"); v != "" {
		result.Recommendations = result.FilterCategory(advisor.NormalizeCategory(v))
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

func writeParseError(w http.ResponseWriter, r *http.Request, err error) {
	var se *sterr.StructuredError
	if errors.As(err, &se) && se.Code == sterr.ErrCodeParseFailure {
		server.WriteError(w, r, http.StatusBadRequest, sterr.ErrCodeParseFailure,
			se.Message, false, se.Context)
		return
	}
	server.WriteError(w, r, http.StatusInternalServerError, sterr.ErrCodeInternal,
		"failed to parse configuration source", false, nil)
}
