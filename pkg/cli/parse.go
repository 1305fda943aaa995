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

	"github.com/mchmarny/sparktune/pkg/serializer"
	"github.com/mchmarny/sparktune/pkg/sparkconf"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse Spark configuration sources",
		Description: `Parse a spark-defaults.conf file or a spark-submit shell script into a
canonical configuration model. Submit scripts may use backslash line
continuations; values set through dedicated flags (--driver-memory,
--executor-cores, ...) take precedence over equivalent --conf pairs.

With --dir, every recognized configuration source under the directory is
parsed and the results are emitted as a list.

# Examples

Parse a defaults file to YAML (default):
  sparktune parse --file spark-defaults.conf

Parse a submit script to JSON:
  sparktune parse --file submit_job.sh --format json

Parse every source under a directory:
  sparktune parse --dir ./conf --output configs.yaml`,
		Flags: []cli.Flag{
			fileFlag,
			dirFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			file := cmd.String("file")
			dir := cmd.String("dir")
			if (file == "") == (dir == "") {
				return fmt.Errorf("exactly one of --file or --dir is required")
			}

			var record any
			if file != "" {
				cfg, err := sparkconf.ParseFile(file)
				if err != nil {
					return fmt.Errorf("failed to parse %q: %w", file, err)
				}
				record = cfg
			} else {
				cfgs, err := sparkconf.ParseDir(dir)
				if err != nil {
					return fmt.Errorf("failed to parse directory %q: %w", dir, err)
				}
				record = cfgs
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, record)
		},
	}
}
