package errors

import (
	"context"
	stderrors "errors"
	"net/http"

	"karttem-admin/pkg/inmobiliaria"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	technicalMessage := err.Error()

	var apiErr *inmobiliaria.Error
	switch {
	case inmobiliaria.IsUnauthorized(err):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgSessionExpired,
			Code:             ErrCodeSessionExpired,
			HTTPStatus:       http.StatusUnauthorized,
			OriginalError:    err,
		}
	case inmobiliaria.IsNotFound(err):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      backendMessage(err, MsgNotFound),
			Code:             ErrCodeNotFound,
			HTTPStatus:       http.StatusNotFound,
			OriginalError:    err,
		}
	case inmobiliaria.IsConnection(err), stderrors.Is(err, context.DeadlineExceeded):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusServiceUnavailable,
			OriginalError:    err,
		}
	case stderrors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      backendMessage(err, MsgRequestRejected),
			Code:             ErrCodeBackendRejected,
			HTTPStatus:       http.StatusBadRequest,
			OriginalError:    err,
		}
	case stderrors.As(err, &apiErr):
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgServiceUnavailable,
			Code:             ErrCodeServiceUnavailable,
			HTTPStatus:       http.StatusBadGateway,
			OriginalError:    err,
		}
	default:
		return &AppError{
			TechnicalMessage: technicalMessage,
			UserMessage:      MsgInternalError,
			Code:             ErrCodeInternal,
			HTTPStatus:       http.StatusInternalServerError,
			OriginalError:    err,
		}
	}
}

// WithFallback maps err and uses fallback as the user message when the backend
// did not explain a rejection or the failure is internal.
func WithFallback(err error, fallback string) *AppError {
	appErr := MapError(err)
	if appErr == nil {
		return nil
	}
	switch appErr.Code {
	case ErrCodeBackendRejected, ErrCodeNotFound:
		appErr.UserMessage = backendMessage(err, fallback)
	case ErrCodeInternal:
		appErr.UserMessage = fallback
	}
	return appErr
}

// backendMessage returns the backend's own explanation, ignoring bare HTTP status texts.
func backendMessage(err error, fallback string) string {
	var apiErr *inmobiliaria.Error
	if stderrors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Message != http.StatusText(apiErr.StatusCode) {
		return apiErr.Message
	}
	return fallback
}
