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

// Package llm provides the OpenAI-backed completion client used for
// model-augmented analysis. The client satisfies advisor.Completer; when
// no API key is configured, callers simply run without augmentation.
package llm

import (
	"context"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"

	sterr "github.com/mchmarny/sparktune/pkg/errors"
)

const (
	// EnvAPIKey holds the OpenAI API key.
	EnvAPIKey = "OPENAI_API_KEY"

	// EnvModel overrides the completion model.
	EnvModel = "OPENAI_MODEL"

	defaultModel = openai.GPT4o

	systemPrompt = "You are a Spark performance expert."
)

// Client wraps the OpenAI chat completion API.
type Client struct {
	api     *openai.Client
	model   string
	baseURL string
}

// Option configures the client.
type Option func(*Client)

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at an alternate API endpoint, such as a
// local OpenAI-compatible server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// New creates a completion client with the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{model: defaultModel}
	if v := os.Getenv(EnvModel); v != "" {
		c.model = v
	}
	for _, opt := range opts {
		opt(c)
	}

	config := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		config.BaseURL = c.baseURL
	}
	c.api = openai.NewClientWithConfig(config)
	return c
}

// NewFromEnv creates a completion client from the OPENAI_API_KEY
// environment variable. Returns nil when the key is not set, which
// callers treat as augmentation disabled.
func NewFromEnv(opts ...Option) *Client {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		slog.Debug("no OpenAI API key configured, model augmentation disabled")
		return nil
	}
	return New(apiKey, opts...)
}

// Complete sends the prompt to the chat completion API and returns the
// first choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", sterr.Wrap(sterr.ErrCodeUnavailable, "chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", sterr.New(sterr.ErrCodeInternal, "chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
