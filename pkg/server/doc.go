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

// Package server provides the HTTP server hosting the sparktune analysis
// API.
//
// The server itself is domain-agnostic: API handlers are registered by
// route pattern via WithHandler and wrapped with the standard middleware
// chain (prometheus metrics, API version negotiation, request IDs, panic
// recovery, token-bucket rate limiting, request logging). System
// endpoints /health, /ready, and /metrics bypass the chain.
//
// Usage:
//
//	s := server.New(
//	    server.WithName("sparktuned"),
//	    server.WithVersion(version),
//	    server.WithHandler(handlers),
//	)
//	if err := s.Run(ctx); err != nil {
//	    slog.Error("server exited", "error", err)
//	}
//
// Configuration defaults come from NewConfig and can be overridden with
// the PORT and SHUTDOWN_TIMEOUT_SECONDS environment variables.
package server
