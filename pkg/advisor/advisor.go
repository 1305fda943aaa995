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
	"context"
	"log/slog"
	"time"

	sterr "github.com/mchmarny/sparktune/pkg/errors"
	"github.com/mchmarny/sparktune/pkg/history"
	"github.com/mchmarny/sparktune/pkg/sparkconf"
)

const (
	summaryRuleOnly = "Configuration analyzed using rule-based system."

	summaryRuleOnlyHint = "Configuration analyzed using rule-based system. " +
		"Set OPENAI_API_KEY for AI-powered insights."
)

// Completer produces a free-text completion for the given prompt. A nil
// Completer disables the augmentation stage entirely.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Advisor analyzes Spark configurations against optional execution
// metrics: a deterministic rule battery always runs, and a configured
// Completer contributes best-effort model findings on top.
type Advisor struct {
	completer Completer
}

// Option configures the advisor.
type Option func(*Advisor)

// WithCompleter enables model-backed augmentation.
func WithCompleter(c Completer) Option {
	return func(a *Advisor) {
		a.completer = c
	}
}

// New creates an advisor.
func New(opts ...Option) *Advisor {
	a := &Advisor{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the rule battery over the configuration and metrics, then
// appends model findings when a completer is configured. A completion
// failure is never fatal: the rule findings survive and the summary falls
// back to the rule-only message.
func (a *Advisor) Analyze(ctx context.Context, cfg *sparkconf.Config, m *history.AppMetrics) (*Result, error) {
	if cfg == nil {
		return nil, sterr.New(sterr.ErrCodeInvalidRequest, "configuration is required")
	}

	start := time.Now()
	result := &Result{
		Config:          cfg,
		Metrics:         m,
		Recommendations: evaluateRules(cfg, m),
		Summary:         summaryRuleOnlyHint,
		AnalyzedAt:      time.Now().UTC(),
	}

	if a.completer != nil {
		a.augment(ctx, result)
	}

	for _, rec := range result.Recommendations {
		slog.Debug("recommendation",
			"severity", rec.Severity,
			"category", rec.Category.Title(),
			"title", rec.Title,
		)
	}

	observeAnalysis(result, time.Since(start))
	return result, nil
}

func (a *Advisor) augment(ctx context.Context, result *Result) {
	text, err := a.completer.Complete(ctx, buildPrompt(result.Config, result.Metrics))
	if err != nil {
		slog.Warn("model analysis failed, keeping rule findings",
			"source", result.Config.Source,
			"error", err,
		)
		result.Summary = summaryRuleOnly
		return
	}

	summary, recs := parseCompletion(text)
	result.Summary = summary
	result.Recommendations = append(result.Recommendations, recs...)
}
