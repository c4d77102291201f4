// Package nimbus implements the HTTP client for the Nimbus Cloud
// management API: bearer-token JSON requests against a single base URL,
// one round trip per call, no retries.
package nimbus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nimbus-cloud/nimbus-mcp/internal/buildinfo"
	"github.com/nimbus-cloud/nimbus-mcp/internal/config"
	"github.com/nimbus-cloud/nimbus-mcp/internal/logger"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client, used by tests
// to point at an httptest server transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a client from cfg. The configuration is never mutated after
// this point; concurrent calls share it read-only.
func New(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: logger.New(io.Discard, logger.Error),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do performs one API request and decodes the JSON response body. A
// non-2xx status yields an *APIError carrying the status and any "error"
// message the provider supplied. Responses without a body (204) yield an
// empty payload.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body map[string]any) (map[string]any, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+c.token)
	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", buildinfo.UserAgent())
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debugf("%s %s failed after %s: %v", method, path, time.Since(start).Round(time.Millisecond), err)
		return nil, err
	}
	defer res.Body.Close()

	c.log.Debugf("%s %s -> %d in %s", method, path, res.StatusCode, time.Since(start).Round(time.Millisecond))

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(res.StatusCode, raw)
	}

	if len(raw) == 0 || res.StatusCode == http.StatusNoContent {
		return map[string]any{}, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return payload, nil
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Body:       string(raw),
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		apiErr.Message = envelope.Error
	}

	return apiErr
}
