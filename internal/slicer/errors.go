package slicer

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable indicates the slicing service is unreachable.
	ErrServiceUnavailable = errors.New("slicing service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("slice request timed out")
)

// StatusError is returned when the service answers with a non-200 status.
// Body carries the raw response body so callers can surface the service's
// own error report.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("slicing service returned status %d: %s", e.Code, e.Body)
}
