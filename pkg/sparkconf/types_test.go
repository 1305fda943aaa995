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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSettings_Order(t *testing.T) {
	var s Settings
	s.Put("zeta", "1")
	s.Put("alpha", "2")
	s.Put("mid", "3")
	s.Put("alpha", "override") // duplicate keeps position, takes new value

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Keys())
	v, ok := s.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "override", v)
	assert.Equal(t, 3, s.Len())
}

func TestSettings_JSONPreservesOrder(t *testing.T) {
	var s Settings
	s.Put("spark.driver.memory", "20g")
	s.Put("spark.app.name", "etl")
	s.Put("spark.master", "yarn")

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t,
		`{"spark.driver.memory":"20g","spark.app.name":"etl","spark.master":"yarn"}`,
		string(b))

	var back Settings
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s.Keys(), back.Keys())
}

func TestSettings_YAMLPreservesOrder(t *testing.T) {
	var s Settings
	s.Put("b", "2")
	s.Put("a", "1")

	b, err := yaml.Marshal(s)
	require.NoError(t, err)

	var back Settings
	require.NoError(t, yaml.Unmarshal(b, &back))
	assert.Equal(t, []string{"b", "a"}, back.Keys())
}
