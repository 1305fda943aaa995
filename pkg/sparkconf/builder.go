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

package sparkconf

import (
	"strconv"
	"strings"

	"github.com/mchmarny/sparktune/pkg/errors"
)

// Builder accumulates raw settings for one configuration source and
// promotes recognized keys to typed Config fields in a single pass.
// Raw pairs are append-only; promotion happens once in Build. This keeps
// the raw superset authoritative and avoids order-dependent mutation of
// typed fields during scanning.
type Builder struct {
	source   string
	settings Settings
}

// NewBuilder creates a Builder for the given configuration source.
func NewBuilder(source string) *Builder {
	return &Builder{source: source}
}

// Put records a raw setting, overwriting any previous value for the key
// while keeping its original position.
func (b *Builder) Put(key, value string) {
	b.settings.Put(key, value)
}

// Has reports whether the given setting has already been recorded.
func (b *Builder) Has(key string) bool {
	return b.settings.Has(key)
}

// Build runs the promotion pass and returns the finished Config.
// An unparsable value for a recognized integer setting is a hard failure:
// the source is rejected rather than returned partially populated.
func (b *Builder) Build() (*Config, error) {
	cfg := &Config{
		Source:   b.source,
		Settings: b.settings,
	}

	for _, key := range b.settings.Keys() {
		value, _ := b.settings.Get(key)

		switch key {
		case KeyDriverMemory:
			cfg.DriverMemory = value
		case KeyExecutorMemory:
			cfg.ExecutorMemory = value
		case KeyExecutorCores:
			n, err := promoteInt(key, value)
			if err != nil {
				return nil, err
			}
			cfg.ExecutorCores = n
		case KeyExecutorInstances:
			n, err := promoteInt(key, value)
			if err != nil {
				return nil, err
			}
			cfg.NumExecutors = n
		case KeyDefaultParallelism:
			n, err := promoteInt(key, value)
			if err != nil {
				return nil, err
			}
			cfg.DefaultParallelism = n
		case KeyShufflePartitions:
			n, err := promoteInt(key, value)
			if err != nil {
				return nil, err
			}
			cfg.ShufflePartitions = n
		case KeyDynamicAllocation:
			cfg.DynamicAllocation = strings.EqualFold(value, "true")
		case KeyAppName:
			cfg.AppName = value
		case KeyMaster:
			cfg.Master = value
		case KeyDeployMode:
			cfg.DeployMode = value
		}
	}

	return cfg, nil
}

// promoteInt converts a recognized integer setting using base-10 parsing.
func promoteInt(key, value string) (*int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeParseFailure,
			"setting is not a valid integer", err, map[string]any{
				"setting": key,
				"value":   value,
			})
	}
	if n < 0 {
		return nil, errors.NewWithContext(errors.ErrCodeParseFailure,
			"setting must be non-negative", map[string]any{
				"setting": key,
				"value":   value,
			})
	}
	return &n, nil
}
