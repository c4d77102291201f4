package nimbus

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-cloud/nimbus-mcp/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(&config.Config{
		APIToken: "tok_test",
		BaseURL:  srv.URL,
		Timeout:  5 * time.Second,
	})
}

func TestDoSetsHeaders(t *testing.T) {
	var got http.Header
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	})

	payload, err := c.Do(context.Background(), http.MethodGet, "/servers", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok_test", got.Get("Authorization"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Contains(t, got.Get("User-Agent"), "nimbus-mcp/")
	assert.Empty(t, got.Get("Content-Type"), "GET without body must not claim a content type")
	assert.Equal(t, map[string]any{"ok": true}, payload)
}

func TestDoEncodesQueryAndBody(t *testing.T) {
	var (
		gotQuery url.Values
		gotBody  map[string]any
	)
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"server": {"id": "srv_1"}}`))
	})

	query := url.Values{}
	query.Set("limit", "50")

	payload, err := c.Do(context.Background(), http.MethodPost, "/servers", query, map[string]any{
		"name":   "web-1",
		"region": "fra1",
	})
	require.NoError(t, err)

	assert.Equal(t, "50", gotQuery.Get("limit"))
	assert.Equal(t, map[string]any{"name": "web-1", "region": "fra1"}, gotBody)
	assert.Contains(t, payload, "server")
}

func TestDoNoContent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	payload, err := c.Do(context.Background(), http.MethodDelete, "/servers/srv_1", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestDoAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "server not found"}`))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/servers/nope", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "server not found", apiErr.Message)
}

func TestDoAPIErrorNonJSONBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/servers", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "upstream exploded", apiErr.Body)
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(context.DeadlineExceeded))
	assert.False(t, IsTimeout(&APIError{StatusCode: 500}))
}

func TestIsUnreachable(t *testing.T) {
	dnsFailure := &url.Error{Op: "Get", URL: "https://api.nimbus.cloud/v1/servers",
		Err: &net.DNSError{Err: "no such host", Name: "api.nimbus.cloud"}}
	assert.True(t, IsUnreachable(dnsFailure))

	refused := &url.Error{Op: "Get", URL: "https://api.nimbus.cloud/v1/servers",
		Err: &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}}
	assert.True(t, IsUnreachable(refused))

	// A failure on an established connection means the API was reached;
	// it must not report as unreachable.
	reset := &url.Error{Op: "Get", URL: "https://api.nimbus.cloud/v1/servers",
		Err: &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset by peer")}}
	assert.False(t, IsUnreachable(reset))

	assert.False(t, IsUnreachable(&APIError{StatusCode: 500}))
}
