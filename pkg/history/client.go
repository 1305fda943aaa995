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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	sterr "github.com/mchmarny/sparktune/pkg/errors"
)

const (
	// EnvServerURL overrides the default history server address.
	EnvServerURL = "SPARK_HISTORY_SERVER_URL"

	// DefaultServerURL is used when EnvServerURL is not set.
	DefaultServerURL = "http://localhost:18080"

	apiVersion     = "v1"
	defaultTimeout = 5 * time.Second
)

// Client fetches application metrics from a Spark history server over its
// REST API. When a fallback source is configured, any fetch failure
// degrades to the fallback instead of surfacing an error.
type Client struct {
	baseURL  string
	client   *http.Client
	fallback Source
}

// ClientOption configures the client.
type ClientOption func(*Client)

// WithBaseURL sets the history server address, overriding the environment.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithFallback sets a source consulted when the live fetch fails.
func WithFallback(src Source) ClientOption {
	return func(c *Client) {
		c.fallback = src
	}
}

// NewClient creates a history server client. The server address resolves
// from options, then the SPARK_HISTORY_SERVER_URL environment variable,
// then the conventional localhost default.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultServerURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	if v := os.Getenv(EnvServerURL); v != "" {
		c.baseURL = v
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ApplicationMetrics fetches and normalizes metrics for one application.
func (c *Client) ApplicationMetrics(ctx context.Context, appID string) (*AppMetrics, error) {
	start := time.Now()
	var payload map[string]any
	err := c.getJSON(ctx, fmt.Sprintf("%s/api/%s/applications/%s", c.baseURL, apiVersion, url.PathEscape(appID)), &payload)
	observeFetch(sourceLive, err, time.Since(start))
	if err != nil {
		if c.fallback != nil {
			slog.Warn("history server fetch failed, using fallback",
				"app_id", appID,
				"error", err,
			)
			return c.fallback.ApplicationMetrics(ctx, appID)
		}
		return nil, err
	}
	return Normalize(payload), nil
}

// ListApplications returns up to limit recent application summaries.
func (c *Client) ListApplications(ctx context.Context, limit int) ([]AppSummary, error) {
	var apps []AppSummary
	u := fmt.Sprintf("%s/api/%s/applications?limit=%s", c.baseURL, apiVersion, strconv.Itoa(limit))
	if err := c.getJSON(ctx, u, &apps); err != nil {
		if c.fallback != nil {
			slog.Warn("history server listing failed, using fallback", "error", err)
			return c.fallback.ListApplications(ctx, limit)
		}
		return nil, err
	}
	return apps, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return sterr.Wrap(sterr.ErrCodeInvalidRequest, "failed to build history server request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return sterr.Wrap(sterr.ErrCodeUnavailable, "history server unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return sterr.NewWithContext(sterr.ErrCodeNotFound, "application not found",
			map[string]any{"url": u})
	case resp.StatusCode != http.StatusOK:
		return sterr.NewWithContext(sterr.ErrCodeInternal, "unexpected history server response",
			map[string]any{"url": u, "status": resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return sterr.Wrap(sterr.ErrCodeInternal, "failed to decode history server response", err)
	}
	return nil
}
