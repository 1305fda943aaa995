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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMemoryMB(t *testing.T) {
	tests := []struct {
		in     string
		wantMB int64
		wantOK bool
	}{
		{"20g", 20 * 1024, true},
		{"512m", 512, true},
		{"512M", 512, true},
		{"1t", 1024 * 1024, true},
		{"2048k", 2, true},
		{"512k", 0, true}, // sub-megabyte truncates to zero
		{"1024", 1024, true},
		{"20gb", 20 * 1024, true},
		{"20GB", 20 * 1024, true},
		{"1.5g", 1536, true},
		{" 8g ", 8 * 1024, true},
		{"", 0, false},
		{"lots", 0, false},
		{"g20", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMemoryMB(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMB, got)
		})
	}
}

func TestParseMemoryMB_Monotonic(t *testing.T) {
	for _, unit := range []string{"", "k", "m", "g", "t"} {
		prev := int64(-1)
		for n := 1; n <= 4096; n *= 2 {
			got, ok := ParseMemoryMB(fmt.Sprintf("%d%s", n, unit))
			if !ok {
				t.Fatalf("expected %d%s to parse", n, unit)
			}
			if got < prev {
				t.Errorf("unit %q not monotonic: %d < %d", unit, got, prev)
			}
			prev = got
		}
	}
}
