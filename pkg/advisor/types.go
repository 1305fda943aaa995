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
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/sparkconf"
)

// Severity is the closed three-level urgency classification attached to
// every recommendation. External consumers depend on the literal values.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// SupportedSeverities lists the valid severity values in descending
// urgency order.
func SupportedSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityWarning, SeverityInfo}
}

// IsValid reports whether the severity is one of the closed values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// ParseSeverity converts a string to a Severity, case-insensitively.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(strings.ToLower(strings.TrimSpace(s)))
	return sev, sev.IsValid()
}

// Category classifies what a recommendation is about. The rule battery
// only emits the named constants; model-sourced findings may carry any
// slug, so the type is deliberately open.
type Category string

const (
	CategoryResourceAllocation Category = "resource_allocation"
	CategoryPerformanceTuning  Category = "performance_tuning"
	CategoryBestPractices      Category = "best_practices"
	CategoryReliability        Category = "reliability"
	CategoryGeneral            Category = "general"
)

// NormalizeCategory converts a free-form category label into a slug:
// lower-cased with spaces replaced by underscores, defaulting to general
// when empty.
func NormalizeCategory(s string) Category {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	if slug == "" {
		return CategoryGeneral
	}
	return Category(slug)
}

var titleCaser = cases.Title(language.English)

// Title renders the category slug for human display, e.g.
// "resource_allocation" becomes "Resource Allocation".
func (c Category) Title() string {
	return titleCaser.String(strings.ReplaceAll(string(c), "_", " "))
}

// Recommendation is one actionable finding. Immutable once constructed.
type Recommendation struct {
	Severity    Severity `json:"severity" yaml:"severity"`
	Category    Category `json:"category" yaml:"category"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Current     string   `json:"current_value,omitempty" yaml:"current_value,omitempty"`
	Recommended string   `json:"recommended_value,omitempty" yaml:"recommended_value,omitempty"`
	Impact      string   `json:"expected_impact,omitempty" yaml:"expected_impact,omitempty"`
}

// Result aggregates one analysis run: the inputs, the ordered findings
// (rule-authored first, model-sourced appended, production order
// preserved), a narrative summary, and the analysis timestamp.
type Result struct {
	Config          *sparkconf.Config   `json:"config" yaml:"config"`
	Metrics         *history.AppMetrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Recommendations []Recommendation    `json:"recommendations" yaml:"recommendations"`
	Summary         string              `json:"summary" yaml:"summary"`
	AnalyzedAt      time.Time           `json:"analyzed_at" yaml:"analyzed_at"`
}

// FilterSeverity returns the findings carrying the given severity, in
// their original order.
func (r *Result) FilterSeverity(sev Severity) []Recommendation {
	out := make([]Recommendation, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		if rec.Severity == sev {
			out = append(out, rec)
		}
	}
	return out
}

// FilterCategory returns the findings carrying the given category, in
// their original order.
func (r *Result) FilterCategory(cat Category) []Recommendation {
	out := make([]Recommendation, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		if rec.Category == cat {
			out = append(out, rec)
		}
	}
	return out
}
