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

// Package cli implements the command-line interface for the sparktune tool.
//
// # Overview
//
// The sparktune CLI parses Apache Spark configuration sources, fetches
// execution metrics from a Spark History Server, and produces tuning
// recommendations. It is designed for data platform engineers reviewing
// Spark job configurations before and after deployment.
//
// # Commands
//
// parse - Parse configuration sources:
//
//	sparktune parse --file spark-defaults.conf [--format yaml|json|table]
//	sparktune parse --dir ./conf
//
// Parses a spark-defaults.conf file or a spark-submit shell script into a
// canonical configuration model. With --dir, every recognized configuration
// source under the directory is parsed.
//
// metrics - Fetch application execution metrics:
//
//	sparktune metrics --app application_1718000000000_0042 [--mock]
//
// Retrieves metrics for a completed application from the history server and
// normalizes them into a flat summary. With --mock, a built-in fixture is
// served instead of contacting the server.
//
// analyze - Generate tuning recommendations:
//
//	sparktune analyze --file spark-defaults.conf --app app-42 [--severity critical]
//
// Runs the rule battery against the parsed configuration and, when metrics
// are available, the application's execution profile. When OPENAI_API_KEY is
// set, the rule findings are augmented with model-generated recommendations.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Usage Examples
//
// Parse a submit script to JSON:
//
//	sparktune parse --file submit_job.sh --format json
//
// Analyze with mock metrics, keeping only critical findings:
//
//	sparktune analyze --file spark-defaults.conf --app app-42 --mock --severity critical
//
// # Environment Variables
//
//	LOG_LEVEL                 Set logging verbosity (debug, info, warn, error)
//	SPARK_HISTORY_SERVER_URL  History server base URL (default: http://localhost:18080)
//	OPENAI_API_KEY            Enables model-augmented analysis when set
//	OPENAI_MODEL              Override the completion model
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/sparkconf - Configuration parsing
//   - pkg/history - History server client and metrics normalization
//   - pkg/advisor - Rule battery and model augmentation
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/sparktune/pkg/cli.version=1.0.0'"
package cli
