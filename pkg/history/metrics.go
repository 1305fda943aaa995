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

package history

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const sourceLive = "live"

var (
	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sparktune_history_fetch_total",
			Help: "Total number of history server fetch attempts",
		},
		[]string{"source", "status"}, // source: live; status: success or error
	)

	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sparktune_history_fetch_duration_seconds",
			Help:    "Time taken to fetch application metrics",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2.5, 5},
		},
	)
)

func observeFetch(source string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	fetchTotal.WithLabelValues(source, status).Inc()
	fetchDuration.Observe(d.Seconds())
}
