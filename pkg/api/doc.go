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

// Package api assembles the sparktuned HTTP service: configuration
// parsing, history server metrics, and the recommendation engine exposed
// as a small REST API.
//
// Endpoints:
//
//	GET /v1/config?path=...                  parse one configuration source
//	GET /v1/applications/{app}/metrics       normalized execution metrics
//	GET /v1/recommendations?path=...         full analysis, optional app,
//	                                         mock, severity, and category
//	                                         parameters
//
// Passing mock=true serves metrics from the built-in fixture instead of
// the history server; the choice is made per request, never globally.
package api
