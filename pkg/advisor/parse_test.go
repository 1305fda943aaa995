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
	"github.com/stretchr/testify/require"
)

func TestParseCompletion(t *testing.T) {
	text := `SUMMARY: The configuration is mostly sound with a few tuning gaps.

**CRITICAL ISSUES**:
[CRITICAL] Resource Allocation | Oversized driver | Current: 20g | Recommended: 4g | Impact: lower cost

**WARNINGS**:
[WARNING] performance_tuning | Too many partitions | Current: 500 | Recommended: 100 | Impact: faster shuffles

random chatter the model added
[INFO] best_practices | Enable AQE | Recommended: true
`

	summary, recs := parseCompletion(text)
	assert.Equal(t, "The configuration is mostly sound with a few tuning gaps.", summary)
	require.Len(t, recs, 3)

	assert.Equal(t, SeverityCritical, recs[0].Severity)
	assert.Equal(t, Category("resource_allocation"), recs[0].Category)
	assert.Equal(t, "Oversized driver", recs[0].Title)

	assert.Equal(t, SeverityWarning, recs[1].Severity)
	assert.Equal(t, Category("performance_tuning"), recs[1].Category)
	assert.Equal(t, "Too many partitions", recs[1].Title)
	assert.Equal(t, "500", recs[1].Current)
	assert.Equal(t, "100", recs[1].Recommended)
	assert.Equal(t, "faster shuffles", recs[1].Impact)
	assert.Equal(t, "Too many partitions. faster shuffles", recs[1].Description)

	assert.Equal(t, SeverityInfo, recs[2].Severity)
	assert.Equal(t, "true", recs[2].Recommended)
	assert.Empty(t, recs[2].Current)
}

func TestParseCompletion_MalformedLines(t *testing.T) {
	text := `Some quality overview.
[CRITICAL] only_a_category
[WARNING] cat | title | Unknown: segment | Impact: still captured
[BOGUS] cat | title
plain trailing text
`

	summary, recs := parseCompletion(text)
	assert.Equal(t, "Some quality overview.", summary)
	// The single-segment line and the unknown tag are skipped.
	require.Len(t, recs, 1)
	assert.Equal(t, "title", recs[0].Title)
	assert.Equal(t, "still captured", recs[0].Impact)
	assert.Empty(t, recs[0].Current)
}

func TestParseCompletion_EmptyCategory(t *testing.T) {
	_, recs := parseCompletion("[INFO]  | Some tip | Impact: minor\n")
	require.Len(t, recs, 1)
	assert.Equal(t, CategoryGeneral, recs[0].Category)
}

func TestParseCompletion_NoSummary(t *testing.T) {
	summary, recs := parseCompletion("[INFO] cat | tip\n")
	assert.Equal(t, "Configuration analyzed. See recommendations below.", summary)
	require.Len(t, recs, 1)
}

func TestParseCompletion_MarkdownSummaryPrefix(t *testing.T) {
	summary, _ := parseCompletion("**SUMMARY**: Looks good overall.\n")
	assert.Equal(t, "Looks good overall.", summary)
}
