package server

import (
	"context"
	"errors"
	"net"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nimbus-cloud/nimbus-mcp/internal/nimbus"
)

func TestErrorMessageByStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, "Error: Bad request. Please check the supplied parameters."},
		{401, "Error: Unauthorized. Please check your API token."},
		{403, "Error: Permission denied. Your API token does not allow this operation."},
		{404, "Error: Resource not found. Please check the ID is correct."},
		{409, "Error: Conflict. The resource is in a state that does not allow this operation."},
		{423, "Error: Resource is locked. Please wait for pending operations to finish."},
		{429, "Error: Rate limit exceeded. Please wait a moment before trying again."},
		{500, "Error: The Nimbus API reported a server error. Please try again later."},
		{503, "Error: The Nimbus API reported a server error. Please try again later."},
	}

	for _, tt := range tests {
		got := errorMessage(&nimbus.APIError{StatusCode: tt.status})
		assert.Equal(t, tt.want, got, "status %d", tt.status)
	}
}

func TestErrorMessageUnhandledStatusCarriesDetail(t *testing.T) {
	got := errorMessage(&nimbus.APIError{StatusCode: 418, Message: "short and stout"})
	assert.Equal(t, "Error: Request failed with status 418: short and stout", got)

	got = errorMessage(&nimbus.APIError{StatusCode: 418})
	assert.Equal(t, "Error: Request failed with status 418.", got)
}

func TestErrorMessageTimeout(t *testing.T) {
	got := errorMessage(context.DeadlineExceeded)
	assert.Equal(t, "Error: Request timed out. The Nimbus API did not respond in time.", got)
}

func TestErrorMessageUnreachable(t *testing.T) {
	err := &net.DNSError{Err: "no such host", Name: "api.nimbus.cloud"}
	got := errorMessage(err)
	assert.Equal(t, "Error: Could not reach the Nimbus API. Please check your network connection.", got)
}

func TestErrorMessageMidResponseResetIsNotUnreachable(t *testing.T) {
	reset := &url.Error{Op: "Get", URL: "https://api.nimbus.cloud/v1/servers",
		Err: &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset by peer")}}

	got := errorMessage(reset)
	assert.Contains(t, got, "Error: An unexpected error occurred:")
}

func TestErrorMessageUnexpected(t *testing.T) {
	got := errorMessage(errors.New("decode failed"))
	assert.Equal(t, "Error: An unexpected error occurred: decode failed", got)
}
