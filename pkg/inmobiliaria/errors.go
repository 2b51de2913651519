package inmobiliaria

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an error answered by the backend
type Error struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error [%d]: %s", e.StatusCode, e.Message)
}

// Is matches any *Error with the same status code, so errors.Is(err, ErrNotFound) works for every 404.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode
}

// Common error types
var (
	ErrUnauthorized = &Error{StatusCode: http.StatusUnauthorized, Message: "unauthorized"}
	ErrNotFound     = &Error{StatusCode: http.StatusNotFound, Message: "resource not found"}
)

// ConnectionError represents a failure to reach the backend
type ConnectionError struct {
	URL     string
	Message string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error to %s: %s", e.URL, e.Message)
}

// IsUnauthorized reports whether the backend rejected the bearer token.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConnection reports whether err is a transport failure.
func IsConnection(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// Message returns the backend's message for err, or "" when err did not come from the backend.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
