// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package kgclient is a typed HTTP client for the knowledge-graph API.
//
// The client is the only component that talks to the backend. It attaches
// the current bearer token on every outbound request via a TokenSource, so
// token refresh never requires rebuilding the client. Idempotent GETs are
// retried on transient failures; mutating requests are sent exactly once.
package kgclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/tidwall/gjson"

	"github.com/kgfoundry/kgmcp/pkg/versions"
)

const (
	// DefaultBaseURL is used when KG_API_URL is not set.
	DefaultBaseURL = "http://localhost:8080"

	// APIURLEnvVar overrides the backend base URL.
	APIURLEnvVar = "KG_API_URL"

	// defaultTimeout bounds each backend call.
	defaultTimeout = 30 * time.Second

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 32 << 20

	// maxTries includes the initial attempt for retried GETs.
	maxTries = 3
)

// BaseURLFromEnv returns the backend base URL from the environment,
// falling back to DefaultBaseURL.
func BaseURLFromEnv() string {
	if v := os.Getenv(APIURLEnvVar); v != "" {
		return v
	}
	return DefaultBaseURL
}

// TokenSource supplies the bearer token attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is a typed client for the knowledge-graph API.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	tokenSource TokenSource
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource sets the source of the bearer token added to requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = ts
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-call timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: defaultTimeout},
		userAgent:  "kgmcp/" + versions.GetVersionInfo().Version,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.tokenSource != nil {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.httpClient.Transport = &bearerTransport{base: base, source: c.tokenSource}
	}
	return c, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// bearerTransport adds Bearer token authentication to backend requests.
type bearerTransport struct {
	base   http.RoundTripper
	source TokenSource
}

// RoundTrip adds the Authorization header and forwards the request.
func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.source.Token()
	if token == "" {
		return t.base.RoundTrip(req)
	}

	// Clone the request to avoid modifying the original.
	newReq := req.Clone(req.Context())
	newReq.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(newReq)
}

// APIError describes a non-2xx backend response.
type APIError struct {
	StatusCode int
	Detail     string
	Body       []byte
}

// Error renders the status and the backend's own message.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// newAPIError extracts the backend's error message from the body. FastAPI
// puts it under "detail"; older endpoints use "error".
func newAPIError(status int, body []byte) *APIError {
	detail := gjson.GetBytes(body, "detail").String()
	if detail == "" {
		detail = gjson.GetBytes(body, "error").String()
	}
	if detail == "" {
		detail = strings.TrimSpace(string(body))
	}
	return &APIError{StatusCode: status, Detail: detail, Body: body}
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// post issues a POST with an optional JSON body and decodes into out.
func (c *Client) post(ctx context.Context, path string, query url.Values, in, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, query, in, out)
}

// patch issues a PATCH with a JSON body and decodes into out.
func (c *Client) patch(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, nil, in, out)
}

// put issues a PUT with a JSON body and decodes into out.
func (c *Client) put(ctx context.Context, path string, in, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, in, out)
}

// del issues a DELETE and decodes the JSON response into out.
func (c *Client) del(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, query, nil, out)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// send issues the request. GETs are retried on network errors and
// transient gateway statuses; everything else is sent exactly once.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return c.httpClient.Do(req)
	}

	operation := func() (*http.Response, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if isTransientStatus(resp.StatusCode) {
			data, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			resp.Body.Close()
			return nil, newAPIError(resp.StatusCode, data)
		}
		return resp, nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 250 * time.Millisecond

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(maxTries),
	)
}

func isTransientStatus(code int) bool {
	switch code {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
