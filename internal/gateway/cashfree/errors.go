package cashfree

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials is a startup-class failure: the payment subsystem
	// is unavailable until configuration is fixed.
	ErrMissingCredentials = errors.New("cashfree: missing app id or secret key")

	// ErrTimeout marks a request that did not complete in time. Callers must
	// treat a verification timeout as "pending", not failure: the payment may
	// have succeeded at the gateway independent of the network response.
	ErrTimeout = errors.New("cashfree: request timed out")
)

// APIError is a non-2xx response from the gateway.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cashfree: %d %s: %s", e.HTTPStatus, e.Code, e.Message)
}
