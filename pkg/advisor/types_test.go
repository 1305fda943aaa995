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

package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"critical", SeverityCritical, true},
		{"WARNING", SeverityWarning, true},
		{" Info ", SeverityInfo, true},
		{"fatal", Severity("fatal"), false},
		{"", Severity(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSeverity(tt.in)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, Category("resource_allocation"), NormalizeCategory("Resource Allocation"))
	assert.Equal(t, Category("performance_tuning"), NormalizeCategory("performance_tuning"))
	assert.Equal(t, CategoryGeneral, NormalizeCategory(""))
	assert.Equal(t, CategoryGeneral, NormalizeCategory("   "))
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Resource Allocation", CategoryResourceAllocation.Title())
	assert.Equal(t, "Best Practices", CategoryBestPractices.Title())
	assert.Equal(t, "General", CategoryGeneral.Title())
}
