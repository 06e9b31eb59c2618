package stackexchange

import (
	"errors"
	"fmt"
)

var (
	// ErrRequest is returned when a request could not be sent or its
	// response could not be read or decoded.
	ErrRequest = errors.New("stackexchange request failed")

	// ErrStatus is wrapped by APIError for every non-2xx response.
	ErrStatus = errors.New("stackexchange returned an error status")
)

// APIError describes a non-2xx response from the API.
// ID, Name and Message come from the API's error wrapper when present.
type APIError struct {
	StatusCode int
	ID         int
	Name       string
	Message    string
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: HTTP %d", ErrStatus, e.StatusCode)
	}
	return fmt.Sprintf("%s: HTTP %d: %s (%d): %s", ErrStatus, e.StatusCode, e.Name, e.ID, e.Message)
}

// Unwrap allows errors.Is(err, ErrStatus).
func (e *APIError) Unwrap() error {
	return ErrStatus
}
