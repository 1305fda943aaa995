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

	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/serializer"
)

func metricsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "metrics",
		EnableShellCompletion: true,
		Usage:                 "Fetch application execution metrics",
		Description: fmt.Sprintf(`Retrieve metrics for a completed Spark application from the history server
and normalize them into a flat summary: duration, task and stage counts,
memory usage and spill, shuffle and I/O volumes.

The server address comes from %s (default: %s).
When the server is unreachable, a built-in fixture is served so downstream
analysis can proceed; use --mock to request the fixture directly.

# Examples

Fetch metrics for an application:
  sparktune metrics --app application_1718000000000_0042

Fetch fixture metrics as JSON:
  sparktune metrics --app app-42 --mock --format json

Look an application up by name:
  sparktune metrics --app "Production_Data_Pipeline" --by-name`,
			history.EnvServerURL, history.DefaultServerURL),
		Flags: []cli.Flag{
			appFlag,
			&cli.BoolFlag{
				Name:  "by-name",
				Usage: "Treat --app as an application name pattern instead of an ID",
			},
			mockFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			app := cmd.String("app")
			if app == "" {
				return fmt.Errorf("--app is required")
			}

			src := metricsSource(cmd)
			var m *history.AppMetrics
			if cmd.Bool("by-name") {
				m, err = history.FindByName(ctx, src, app)
			} else {
				m, err = src.ApplicationMetrics(ctx, app)
			}
			if err != nil {
				return fmt.Errorf("failed to fetch metrics for %q: %w", app, err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, m)
		},
	}
}
