package webhook

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when no webhook URL has been set.
	ErrNotConfigured = errors.New("webhook URL is not configured")
	// ErrMalformedResponse is returned when a 2xx body is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response body")
)

// RequestFailedError reports a webhook response that could not be used:
// a non-2xx status, or a 2xx status with an unparseable body.
type RequestFailedError struct {
	StatusCode int
	Err        error
}

func (e *RequestFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("webhook request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("webhook request failed with status %d", e.StatusCode)
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// ConnectionError reports a network failure or an expired timeout.
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	return "webhook connection error: " + e.Message
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
