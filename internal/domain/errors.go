package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrEmptyQuery indicates a search was requested without any text
	ErrEmptyQuery = errors.New("please enter the name of the movie")

	// ErrTransport indicates the content API could not be reached or
	// answered with a non-success status
	ErrTransport = errors.New("content service request failed")

	// ErrDetailUnavailable indicates the detail record could not be loaded
	ErrDetailUnavailable = errors.New("failed to load details")

	// ErrNotConfigured indicates the API key is missing
	ErrNotConfigured = errors.New("api key is not configured")
)

// TransportError carries the operation and HTTP status of a failed call.
// StatusCode is 0 when the request never got a response.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status code: %d", e.Op, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": " + ErrTransport.Error()
}

// Unwrap lets errors.Is match both ErrTransport and the underlying cause
func (e *TransportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrTransport, e.Err}
	}
	return []error{ErrTransport}
}
