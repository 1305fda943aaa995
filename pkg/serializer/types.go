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

// Package serializer provides utilities for writing analysis records to
// various formats.
//
// Three output formats are supported:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable configuration format
//   - Table: flattened key/value tabular output
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// For HTTP responses, RespondJSON buffers the encoding before writing
// headers so errors never produce a partial response.
package serializer

import "context"

// Serializer is an interface for writing one record to an output
// destination in a configured format.
type Serializer interface {
	Serialize(ctx context.Context, record any) error
}

// Closer is an optional interface Serializers implement when they hold
// resources such as file handles.
type Closer interface {
	Close() error
}
