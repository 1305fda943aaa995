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
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Canonical Spark setting names recognized by the promotion pass.
// Flag-derived values from submit scripts are recorded under these same
// names so every typed field is backed by a raw setting entry.
const (
	KeyDriverMemory       = "spark.driver.memory"
	KeyExecutorMemory     = "spark.executor.memory"
	KeyExecutorCores      = "spark.executor.cores"
	KeyExecutorInstances  = "spark.executor.instances"
	KeyDefaultParallelism = "spark.default.parallelism"
	KeyShufflePartitions  = "spark.sql.shuffle.partitions"
	KeyDynamicAllocation  = "spark.dynamicAllocation.enabled"
	KeyAppName            = "spark.app.name"
	KeyMaster             = "spark.master"
	KeyDeployMode         = "spark.submit.deployMode"
)

// Config represents one parsed Spark configuration source. Recognized
// settings are promoted to typed fields; Settings holds the superset of
// every setting observed, promoted or not. Instances are built by the
// Builder and treated as immutable once returned.
type Config struct {
	Source             string   `json:"source" yaml:"source"`
	DriverMemory       string   `json:"driver_memory,omitempty" yaml:"driver_memory,omitempty"`
	ExecutorMemory     string   `json:"executor_memory,omitempty" yaml:"executor_memory,omitempty"`
	ExecutorCores      *int     `json:"executor_cores,omitempty" yaml:"executor_cores,omitempty"`
	NumExecutors       *int     `json:"num_executors,omitempty" yaml:"num_executors,omitempty"`
	DefaultParallelism *int     `json:"default_parallelism,omitempty" yaml:"default_parallelism,omitempty"`
	ShufflePartitions  *int     `json:"shuffle_partitions,omitempty" yaml:"shuffle_partitions,omitempty"`
	DynamicAllocation  bool     `json:"dynamic_allocation_enabled" yaml:"dynamic_allocation_enabled"`
	AppName            string   `json:"app_name,omitempty" yaml:"app_name,omitempty"`
	DeployMode         string   `json:"deploy_mode,omitempty" yaml:"deploy_mode,omitempty"`
	Master             string   `json:"master,omitempty" yaml:"master,omitempty"`
	Settings           Settings `json:"raw_settings" yaml:"raw_settings"`
}

// Settings is a collection of raw setting name to raw string value pairs.
// Keys are unique and insertion order is preserved, including through JSON
// and YAML serialization.
type Settings struct {
	keys   []string
	values map[string]string
}

// Put inserts or overwrites the value for the given key. Overwriting keeps
// the key's original position.
func (s *Settings) Put(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for the given key and whether it is present.
func (s *Settings) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether the given key is present.
func (s *Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Len returns the number of settings.
func (s *Settings) Len() int {
	return len(s.keys)
}

// Keys returns the setting names in insertion order.
func (s *Settings) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// MarshalJSON serializes the settings as a JSON object with keys in
// insertion order.
func (s Settings) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, k := range s.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(s.values[k])
		if err != nil {
			return nil, err
		}
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, vb...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON restores the settings from a JSON object, preserving the
// document's key order.
func (s *Settings) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &json.UnmarshalTypeError{Value: "non-object", Type: nil}
	}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := kt.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		s.Put(key, value)
	}
	_, err = dec.Token() // closing brace
	return err
}

// MarshalYAML serializes the settings as a YAML mapping with keys in
// insertion order.
func (s Settings) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range s.keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.values[k]},
		)
	}
	return node, nil
}

// UnmarshalYAML restores the settings from a YAML mapping in document order.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &yaml.TypeError{Errors: []string{"raw settings must be a mapping"}}
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		s.Put(node.Content[i].Value, node.Content[i+1].Value)
	}
	return nil
}
