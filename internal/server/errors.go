package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nimbus-cloud/nimbus-mcp/internal/nimbus"
)

// errorMessage converts a failed transport call into the one user-facing
// message returned as the invocation's result. Transport-level failures
// (timeout, unreachable) precede any HTTP status and get their own fixed
// messages; anything unrecognized falls through to the generic template.
func errorMessage(err error) string {
	var apiErr *nimbus.APIError
	switch {
	case errors.As(err, &apiErr):
		return statusMessage(apiErr)
	case nimbus.IsTimeout(err):
		return "Error: Request timed out. The Nimbus API did not respond in time."
	case nimbus.IsUnreachable(err):
		return "Error: Could not reach the Nimbus API. Please check your network connection."
	default:
		return fmt.Sprintf("Error: An unexpected error occurred: %v", err)
	}
}

func statusMessage(e *nimbus.APIError) string {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return "Error: Bad request. Please check the supplied parameters."
	case http.StatusUnauthorized:
		return "Error: Unauthorized. Please check your API token."
	case http.StatusForbidden:
		return "Error: Permission denied. Your API token does not allow this operation."
	case http.StatusNotFound:
		return "Error: Resource not found. Please check the ID is correct."
	case http.StatusConflict:
		return "Error: Conflict. The resource is in a state that does not allow this operation."
	case http.StatusLocked:
		return "Error: Resource is locked. Please wait for pending operations to finish."
	case http.StatusTooManyRequests:
		return "Error: Rate limit exceeded. Please wait a moment before trying again."
	}

	if e.StatusCode >= http.StatusInternalServerError {
		return "Error: The Nimbus API reported a server error. Please try again later."
	}

	if e.Message != "" {
		return fmt.Sprintf("Error: Request failed with status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("Error: Request failed with status %d.", e.StatusCode)
}
