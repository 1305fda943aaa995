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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sparktune_analysis_duration_seconds",
			Help:    "Time taken to analyze one configuration",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 5, 15},
		},
	)

	analysisTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sparktune_analysis_total",
			Help: "Total number of configuration analyses",
		},
	)

	recommendationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sparktune_analysis_recommendations_total",
			Help: "Total recommendations produced, by severity",
		},
		[]string{"severity"},
	)
)

func observeAnalysis(result *Result, d time.Duration) {
	analysisTotal.Inc()
	analysisDuration.Observe(d.Seconds())
	for _, rec := range result.Recommendations {
		recommendationCount.WithLabelValues(string(rec.Severity)).Inc()
	}
}
