package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-cloud/nimbus-mcp/internal/logger"
	"github.com/nimbus-cloud/nimbus-mcp/internal/nimbus"
)

// fakeTransport records every call and replays canned responses.
type fakeTransport struct {
	calls   []recordedCall
	payload map[string]any
	err     error
}

type recordedCall struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

func (f *fakeTransport) Do(ctx context.Context, method, path string, query url.Values, body map[string]any) (map[string]any, error) {
	f.calls = append(f.calls, recordedCall{method: method, path: path, query: query, body: body})
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func newTestServer(t *testing.T, transport Transport) *Server {
	t.Helper()
	srv, err := New(transport, logger.New(io.Discard, logger.Error))
	require.NoError(t, err)
	return srv
}

func findTool(t *testing.T, name string) Tool {
	t.Helper()
	for _, tool := range Commands() {
		if tool.Name == name {
			return tool
		}
	}
	t.Fatalf("tool %q not registered", name)
	return Tool{}
}

func TestInvokeValidationFailurePreventsNetworkCall(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{"limit below minimum", "nimbus_list_servers", map[string]any{"limit": float64(0)}},
		{"limit above maximum", "nimbus_list_servers", map[string]any{"limit": float64(101)}},
		{"negative offset", "nimbus_list_servers", map[string]any{"offset": float64(-1)}},
		{"unknown argument", "nimbus_list_servers", map[string]any{"colour": "blue"}},
		{"missing required", "nimbus_get_server", map[string]any{}},
		{"enum violation", "nimbus_create_database", map[string]any{
			"name": "db", "engine": "oracle", "region": "fra1", "plan": "db-2-8",
		}},
		{"wrong type", "nimbus_get_server", map[string]any{"server_id": float64(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &fakeTransport{}
			srv := newTestServer(t, transport)

			text, failed := srv.invoke(context.Background(), findTool(t, tt.tool), tt.args)

			assert.True(t, failed)
			assert.Contains(t, text, "Error: Invalid argument:")
			assert.Empty(t, transport.calls, "no request may be sent for invalid arguments")
		})
	}
}

func TestInvokeAppliesPaginationDefaults(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"servers": []any{},
		"meta":    map[string]any{"total": float64(0)},
	}}
	srv := newTestServer(t, transport)

	_, failed := srv.invoke(context.Background(), findTool(t, "nimbus_list_servers"), map[string]any{})
	require.False(t, failed)

	require.Len(t, transport.calls, 1)
	call := transport.calls[0]
	assert.Equal(t, "GET", call.method)
	assert.Equal(t, "/servers", call.path)
	assert.Equal(t, "50", call.query.Get("limit"))
	assert.Equal(t, "0", call.query.Get("offset"))
}

func TestInvokeRepeatedReadsAreIdentical(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"servers": []any{
			map[string]any{"id": "srv-1", "name": "web-1", "status": "running"},
		},
		"meta": map[string]any{"total": float64(1)},
	}}
	srv := newTestServer(t, transport)

	tool := findTool(t, "nimbus_list_servers")
	first, failedFirst := srv.invoke(context.Background(), tool, map[string]any{})
	second, failedSecond := srv.invoke(context.Background(), tool, map[string]any{})

	assert.False(t, failedFirst)
	assert.False(t, failedSecond)
	assert.Equal(t, first, second)

	require.Len(t, transport.calls, 2)
	assert.Equal(t, transport.calls[0], transport.calls[1])
}

func TestInvokeOmitsUnsuppliedOptionalFields(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"server": map[string]any{"id": "srv-1"},
	}}
	srv := newTestServer(t, transport)

	_, failed := srv.invoke(context.Background(), findTool(t, "nimbus_create_server"), map[string]any{
		"name":   "web-1",
		"region": "fra1",
		"plan":   "cx-2-4",
		"image":  "ubuntu-24.04",
		"tags":   []any{"prod", "web"},
	})
	require.False(t, failed)

	require.Len(t, transport.calls, 1)
	want := map[string]any{
		"name":   "web-1",
		"region": "fra1",
		"plan":   "cx-2-4",
		"image":  "ubuntu-24.04",
		"tags":   []string{"prod", "web"},
	}
	if diff := cmp.Diff(want, transport.calls[0].body); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestInvokeTranslatesAPIErrors(t *testing.T) {
	transport := &fakeTransport{err: &nimbus.APIError{StatusCode: 404}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_get_database"), map[string]any{
		"database_id": "db-missing",
	})

	assert.True(t, failed)
	assert.Equal(t, "Error: Resource not found. Please check the ID is correct.", text)
}

func TestInvokeStructuredModePassesPayloadThrough(t *testing.T) {
	created := map[string]any{
		"ssh_key": map[string]any{
			"id":          "key-1",
			"name":        "laptop",
			"fingerprint": "SHA256:abc",
			"created_at":  "2024-01-15T10:30:00Z",
		},
	}
	transport := &fakeTransport{payload: created}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_create_ssh_key"), map[string]any{
		"name":   "laptop",
		"body":   "ssh-ed25519 AAAA... user@host",
		"format": "json",
	})
	require.False(t, failed)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))
	if diff := cmp.Diff(created, decoded); diff != "" {
		t.Errorf("structured output altered the payload (-want +got):\n%s", diff)
	}
}

func TestInvokeStructuredModeAddsPagination(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"projects": []any{
			map[string]any{"id": "prj-1"},
			map[string]any{"id": "prj-2"},
		},
		"meta": map[string]any{"total": float64(12)},
	}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_list_projects"), map[string]any{
		"limit":  float64(5),
		"offset": float64(5),
		"format": "json",
	})
	require.False(t, failed)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &decoded))

	want := map[string]any{
		"page":        float64(2),
		"total_pages": float64(3),
		"more":        true,
	}
	if diff := cmp.Diff(want, decoded["pagination"]); diff != "" {
		t.Errorf("pagination mismatch (-want +got):\n%s", diff)
	}
}

func TestInvokeUnexpectedErrorIsGeneric(t *testing.T) {
	transport := &fakeTransport{err: errors.New("boom")}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_list_networks"), map[string]any{})

	assert.True(t, failed)
	assert.Equal(t, "Error: An unexpected error occurred: boom", text)
}
