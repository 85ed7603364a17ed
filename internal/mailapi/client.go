// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package mailapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-json-experiment/json"

	"github.com/go-a2a/mailbridge/pkg/logging"
	"github.com/go-a2a/mailbridge/types"
)

// Config configures the mail vendor [Client].
type Config struct {
	// BaseURL is the root of the vendor REST API, without a trailing slash.
	BaseURL string
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets the underlying [*http.Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// Client talks to the mail vendor REST API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a new mail vendor [Client].
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}

	c := &Client{
		baseURL: cfg.BaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hc == nil {
		c.hc = http.DefaultClient
	}

	return c, nil
}

// basicAuthHeader wraps the pre-encoded vendor credential into a "Basic"
// Authorization header value. The credential arrives already encoded; it is
// never inspected or re-encoded here.
func basicAuthHeader(cred string) (string, error) {
	if cred == "" {
		return "", &types.ConfigurationError{Missing: "mail vendor credential"}
	}
	return "Basic " + cred, nil
}

// do issues one authenticated request and returns the response body.
//
// The credential check runs first, so a missing credential never produces
// network activity. Any network error or non-success status becomes a
// [*types.TransportError] naming step.
func (c *Client) do(ctx context.Context, step, method, path, auth, contentType string, body io.Reader) ([]byte, error) {
	header, err := basicAuthHeader(auth)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &types.TransportError{Step: step, Err: err}
	}
	req.Header.Set("Authorization", header)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &types.TransportError{Step: step, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.TransportError{Step: step, Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &types.TransportError{Step: step, StatusCode: resp.StatusCode, Body: string(data)}
	}

	logging.FromContext(ctx).DebugContext(ctx, "mail vendor call succeeded",
		slog.String("step", step),
		slog.Int("status", resp.StatusCode),
	)

	return data, nil
}

// extractField pulls one field out of a JSON response body and renders it as
// text. The vendor reports identifiers sometimes as strings and sometimes as
// numbers; both render the same way. A zero value is a value, not absence.
func extractField(data []byte, field string) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	v, ok := m[field]
	if !ok || v == nil {
		return "", &types.MissingFieldError{Field: field}
	}

	switch v := v.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return fmt.Sprint(v), nil
	}
}
