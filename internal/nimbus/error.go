package nimbus

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// APIError is a non-2xx response from the Nimbus API. Body holds the raw
// response body; Message holds the provider's "error" field when the body
// carried one.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("nimbus API responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("nimbus API responded %d", e.StatusCode)
}

// IsTimeout reports whether err is a transport-level timeout: the request
// never produced an HTTP status.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

// IsUnreachable reports whether err is a connectivity failure (DNS
// resolution, refused connection) preceding any HTTP status. Failures
// on an established connection, such as a mid-response reset, are not
// unreachable: the API was reached.
func IsUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
