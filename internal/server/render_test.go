package server

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRenderBeginsWithPageSummary(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"servers": []any{
			map[string]any{
				"id": "srv-1", "name": "web-1", "status": "running",
				"region": "fra1", "plan": "cx-2-4",
				"memory_bytes": float64(4 << 30),
			},
			map[string]any{
				"id": "srv-2", "name": "web-2", "status": "stopped",
				"region": "fra1", "plan": "cx-2-4",
			},
		},
		"meta": map[string]any{"total": float64(2)},
	}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_list_servers"), map[string]any{})
	require.False(t, failed)

	assert.True(t, strings.HasPrefix(text, "Showing 1-2 of 2 items (Page 1/1)"),
		"list output must begin with the pagination summary, got:\n%s", text)
	assert.NotContains(t, text, "More results available.")
	assert.Contains(t, text, "## web-1 (srv-1)")
	assert.Contains(t, text, "Memory: 4 GB")
	assert.Contains(t, text, "## web-2 (srv-2)")
}

func TestListRenderPointsAtNextPage(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"projects": []any{
			map[string]any{"id": "prj-1", "name": "alpha"},
		},
		"meta": map[string]any{"total": float64(3)},
	}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_list_projects"), map[string]any{
		"limit": float64(1),
	})
	require.False(t, failed)

	assert.Contains(t, text, "Showing 1-1 of 3 items (Page 1/3)")
	assert.Contains(t, text, "More results available. Use offset=1 for the next page.")
}

func TestListRenderEmptyPage(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"networks": []any{},
		"meta":     map[string]any{"total": float64(0)},
	}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_list_networks"), map[string]any{})
	require.False(t, failed)

	assert.Equal(t, "No networks found.", text)
}

func TestGetRenderToleratesMissingFields(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"server": map[string]any{"id": "srv-1", "name": "web-1"},
	}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_get_server"), map[string]any{
		"server_id": "srv-1",
	})
	require.False(t, failed)

	assert.True(t, strings.HasPrefix(text, "## web-1 (srv-1)"))
	assert.Contains(t, text, "Status: N/A")
	assert.Contains(t, text, "Memory: N/A")
	assert.Contains(t, text, "Tags: None")
}

func TestGetRenderFormatsTimestamps(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"server": map[string]any{
			"id": "srv-1", "name": "web-1",
			"created_at": "2024-01-15T10:30:00Z",
		},
	}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_get_server"), map[string]any{
		"server_id": "srv-1",
	})
	require.False(t, failed)

	assert.Contains(t, text, "Created: Jan 15, 2024 10:30 UTC")
}

func TestMoneyStr(t *testing.T) {
	account := map[string]any{
		"balance":  float64(42.5),
		"currency": "USD",
	}
	got := moneyStr(account, "balance", "currency")
	assert.Contains(t, got, "42.50")
	assert.Contains(t, got, "$")

	assert.Equal(t, "N/A", moneyStr(map[string]any{}, "balance", "currency"))
	assert.Equal(t, "9.90", moneyStr(map[string]any{"balance": float64(9.9)}, "balance", "currency"))
}

func TestActionRendersAreSentences(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{}}
	srv := newTestServer(t, transport)

	text, failed := srv.invoke(context.Background(), findTool(t, "nimbus_reboot_server"), map[string]any{
		"server_id": "srv-1",
	})
	require.False(t, failed)
	assert.Equal(t, "Server srv-1: reboot requested.", text)

	text, failed = srv.invoke(context.Background(), findTool(t, "nimbus_delete_ssh_key"), map[string]any{
		"key_id": "key-1",
	})
	require.False(t, failed)
	assert.Equal(t, "SSH key key-1 deleted.", text)
}
