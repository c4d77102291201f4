package server

import (
	"context"
	"io"
	"strings"
	"testing"

	mcpGo "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbus-cloud/nimbus-mcp/internal/logger"
)

func TestCommandsHaveUniqueWellFormedNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range Commands() {
		assert.True(t, strings.HasPrefix(tool.Name, "nimbus_"), "tool %q lacks the nimbus_ prefix", tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has no description", tool.Name)
		assert.False(t, seen[tool.Name], "tool %q registered twice", tool.Name)
		seen[tool.Name] = true
	}
}

func TestCommandsAreComplete(t *testing.T) {
	for _, tool := range Commands() {
		require.NotNil(t, tool.Build, "tool %q has no request builder", tool.Name)
		for name, arg := range tool.Args {
			assert.NotEmpty(t, arg.Type, "argument %q of %q has no type", name, tool.Name)
			assert.NotEmpty(t, arg.Description, "argument %q of %q has no description", name, tool.Name)
			if arg.Type == "enum" {
				assert.NotEmpty(t, arg.Enum, "enum argument %q of %q has no values", name, tool.Name)
			}
		}
	}
}

func TestNewRegistersEveryTool(t *testing.T) {
	srv, err := New(&fakeTransport{}, logger.New(io.Discard, logger.Error))
	require.NoError(t, err)
	require.NotNil(t, srv)
}

func TestHandleToolExtractsRequestArguments(t *testing.T) {
	transport := &fakeTransport{payload: map[string]any{
		"server": map[string]any{"id": "srv-1", "name": "web-1"},
	}}
	srv := newTestServer(t, transport)

	var req mcpGo.CallToolRequest
	req.Params.Name = "nimbus_get_server"
	req.Params.Arguments = map[string]any{"server_id": "srv-1"}

	res, err := srv.handleTool(findTool(t, "nimbus_get_server"))(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcpGo.TextContent)
	require.True(t, ok)
	assert.False(t, res.IsError)
	assert.True(t, strings.HasPrefix(text.Text, "## web-1 (srv-1)"))

	require.Len(t, transport.calls, 1)
	assert.Equal(t, "/servers/srv-1", transport.calls[0].path)
}

func TestHandleToolReportsFailuresAsToolErrors(t *testing.T) {
	transport := &fakeTransport{}
	srv := newTestServer(t, transport)

	var req mcpGo.CallToolRequest
	req.Params.Name = "nimbus_get_server"
	req.Params.Arguments = map[string]any{"bogus": "x"}

	res, err := srv.handleTool(findTool(t, "nimbus_get_server"))(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcpGo.TextContent)
	require.True(t, ok)
	assert.True(t, res.IsError)
	assert.Contains(t, text.Text, "Error: Invalid argument:")
	assert.Empty(t, transport.calls)
}

func TestToolOptionsRejectsUnknownType(t *testing.T) {
	_, err := toolOptions(Tool{
		Name: "broken",
		Args: map[string]Arg{"x": {Description: "x", Type: "object"}},
	})
	require.Error(t, err)
}
