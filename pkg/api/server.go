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
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mchmarny/sparktune/pkg/advisor"
	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/llm"
	"github.com/mchmarny/sparktune/pkg/logging"
	"github.com/mchmarny/sparktune/pkg/server"
)

const (
	name           = "sparktuned"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/mchmarny/sparktune/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	fixture := history.NewFixtureSource()

	var opts []advisor.Option
	if completer := llm.NewFromEnv(); completer != nil {
		opts = append(opts, advisor.WithCompleter(completer))
	}

	h := &handler{
		advisor: advisor.New(opts...),
		live:    history.NewClient(history.WithFallback(fixture)),
		fixture: fixture,
	}

	r := map[string]http.HandlerFunc{
		"GET /v1/config":                     h.handleConfig,
		"GET /v1/applications/{app}/metrics": h.handleAppMetrics,
		"GET /v1/recommendations":            h.handleRecommendations,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(r),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
