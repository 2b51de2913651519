package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
	// Fields carries per-field validation messages.
	Fields map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.TechnicalMessage)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// NewValidationError reports invalid form input, keyed by field name.
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		TechnicalMessage: fmt.Sprintf("validation failed for %d field(s)", len(fields)),
		UserMessage:      MsgInvalidForm,
		Code:             ErrCodeInvalidParameters,
		HTTPStatus:       http.StatusUnprocessableEntity,
		Fields:           fields,
	}
}

// NewNotFoundError reports a missing resource with a specific message.
func NewNotFoundError(userMessage string, originalErr error) *AppError {
	return NewAppError("resource not found", userMessage, ErrCodeNotFound, http.StatusNotFound, originalErr)
}

// Common error codes
const (
	ErrCodeSessionExpired     = "SESSION_EXPIRED"
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeBackendRejected    = "BACKEND_REJECTED"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInvalidParameters  = "INVALID_PARAMETERS"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewUnauthenticatedError reports a request without a valid panel session.
func NewUnauthenticatedError(technicalMessage string) *AppError {
	return NewAppError(technicalMessage, MsgUnauthenticated, ErrCodeUnauthenticated, http.StatusUnauthorized, nil)
}

// NewSessionExpiredError reports a session whose backend token is no longer accepted.
func NewSessionExpiredError(originalErr error) *AppError {
	return NewAppError("backend session expired", MsgSessionExpired, ErrCodeSessionExpired, http.StatusUnauthorized, originalErr)
}
