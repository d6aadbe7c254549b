package backend

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus is wrapped by APIError for any non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected status")

// ErrBackendReported is returned when the backend answers 200 with an error payload.
var ErrBackendReported = errors.New("backend reported an error")

// ErrEmptyQuery is returned when Ask is called with a blank query.
var ErrEmptyQuery = errors.New("query must not be empty")

// APIError describes a non-2xx backend response.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %s %d", e.Method, e.Path, ErrUnexpectedStatus, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: %s %d: %s", e.Method, e.Path, ErrUnexpectedStatus, e.StatusCode, e.Body)
}

// Unwrap returns ErrUnexpectedStatus.
func (e *APIError) Unwrap() error {
	return ErrUnexpectedStatus
}

// Temporary reports whether the status suggests the request may succeed later.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

func reported(message string) error {
	if message == "" {
		return ErrBackendReported
	}

	return fmt.Errorf("%w: %s", ErrBackendReported, message)
}
