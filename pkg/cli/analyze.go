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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/sparktune/pkg/advisor"
	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/llm"
	"github.com/mchmarny/sparktune/pkg/serializer"
	"github.com/mchmarny/sparktune/pkg/sparkconf"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "analyze",
		EnableShellCompletion: true,
		Usage:                 "Generate tuning recommendations",
		Description: fmt.Sprintf(`Run the tuning rule battery against a parsed configuration and, when an
application is given, its execution metrics from the history server.
Findings cover resource allocation, shuffle tuning, dynamic allocation,
and memory spilling.

When %s is set, rule findings are augmented with
model-generated recommendations; without it the analysis is rule-based
only. Metrics fetch failures degrade the analysis rather than fail it.

# Examples

Rule-based analysis of a defaults file:
  sparktune analyze --file spark-defaults.conf

Analysis with application metrics:
  sparktune analyze --file submit_job.sh --app application_1718000000000_0042

Fixture metrics, critical findings only, written to a file:
  sparktune analyze --file spark-defaults.conf --app app-42 --mock \
    --severity critical --output findings.yaml`, llm.EnvAPIKey),
		Flags: []cli.Flag{
			fileFlag,
			appFlag,
			mockFlag,
			&cli.StringFlag{
				Name: "severity",
				Usage: fmt.Sprintf("Keep only recommendations of this severity (supported values: %s)",
					advisor.SupportedSeverities()),
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "Keep only recommendations in this category (e.g. performance_tuning)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			file := cmd.String("file")
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			var severity advisor.Severity
			if v := cmd.String("severity"); v != "" {
				var ok bool
				if severity, ok = advisor.ParseSeverity(v); !ok {
					return fmt.Errorf("unknown severity: %q (supported values: %s)",
						v, advisor.SupportedSeverities())
				}
			}

			// Config parse and metrics fetch are independent, run them in parallel.
			var (
				cfg *sparkconf.Config
				m   *history.AppMetrics
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var err error
				cfg, err = sparkconf.ParseFile(file)
				return err
			})
			if app := cmd.String("app"); app != "" {
				src := metricsSource(cmd)
				g.Go(func() error {
					var err error
					// Metrics absence degrades the analysis, it does not fail it.
					m, err = src.ApplicationMetrics(gctx, app)
					if err != nil {
						slog.Warn("metrics unavailable, analyzing configuration only",
							"app", app, "error", err)
						m = nil
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to parse %q: %w", file, err)
			}

			var opts []advisor.Option
			if completer := llm.NewFromEnv(); completer != nil {
				opts = append(opts, advisor.WithCompleter(completer))
			}

			result, err := advisor.New(opts...).Analyze(ctx, cfg, m)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			if severity != "" {
				result.Recommendations = result.FilterSeverity(severity)
			}
			if v := cmd.String("category"); v != "" {
				result.Recommendations = result.FilterCategory(advisor.NormalizeCategory(v))
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, result)
		},
	}
}
