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

import "strings"

// Severity tags recognized in completion output. Lines carrying none of
// these are ignored, never an error.
var severityTags = map[string]Severity{
	"[CRITICAL]": SeverityCritical,
	"[WARNING]":  SeverityWarning,
	"[INFO]":     SeverityInfo,
}

type scanState int

const (
	seekingSummary scanState = iota
	scanningLines
)

// parseCompletion extracts a summary and recommendation lines from
// free-form model output. It is a best-effort line scanner: the first
// plain line before any severity tag becomes the summary, tagged lines
// are split on the pipe delimiter, and everything malformed is skipped.
func parseCompletion(text string) (string, []Recommendation) {
	var (
		summary string
		recs    []Recommendation
		state   = seekingSummary
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if sev, rest, ok := matchSeverityTag(line); ok {
			state = scanningLines
			if rec := parseTaggedLine(sev, rest); rec != nil {
				recs = append(recs, *rec)
			}
			continue
		}

		if state == seekingSummary && !strings.HasPrefix(line, "[") && !strings.HasPrefix(line, "#") &&
			!isSectionHeading(line) {
			summary = strings.TrimSpace(strings.TrimPrefix(
				strings.TrimSpace(strings.TrimPrefix(line, "**SUMMARY**:")), "SUMMARY:"))
			if summary != "" {
				state = scanningLines
			}
		}
	}

	if summary == "" {
		summary = "Configuration analyzed. See recommendations below."
	}
	return summary, recs
}

// isSectionHeading filters lines like "**CRITICAL ISSUES**:" so a section
// header is never mistaken for the summary.
func isSectionHeading(line string) bool {
	upper := strings.ToUpper(line)
	for _, word := range []string{"CRITICAL", "WARNING", "INFO", "SUGGESTION"} {
		if strings.Contains(upper, word) {
			return true
		}
	}
	return false
}

func matchSeverityTag(line string) (Severity, string, bool) {
	for tag, sev := range severityTags {
		if strings.HasPrefix(line, tag) {
			return sev, strings.TrimSpace(line[len(tag):]), true
		}
	}
	return "", "", false
}

// parseTaggedLine splits "category | title | Current: X | Recommended: Y
// | Impact: Z" into a finding. Fewer than two segments means the line is
// too malformed to keep; extra or missing trailing segments are fine.
func parseTaggedLine(sev Severity, rest string) *Recommendation {
	parts := strings.Split(rest, "|")
	if len(parts) < 2 {
		return nil
	}

	rec := &Recommendation{
		Severity: sev,
		Category: NormalizeCategory(parts[0]),
		Title:    strings.TrimSpace(parts[1]),
	}

	for _, part := range parts[2:] {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		switch {
		case strings.HasPrefix(lower, "current:"):
			rec.Current = valueAfterColon(part)
		case strings.HasPrefix(lower, "recommended:"):
			rec.Recommended = valueAfterColon(part)
		case strings.HasPrefix(lower, "impact:"):
			rec.Impact = valueAfterColon(part)
		}
	}

	rec.Description = rec.Title + ". " + rec.Impact
	return rec
}

func valueAfterColon(s string) string {
	_, after, _ := strings.Cut(s, ":")
	return strings.TrimSpace(after)
}
