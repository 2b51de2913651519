package utils

import (
	"fmt"

	"karttem-admin/internal/errors"
	"karttem-admin/pkg/logger"
)

// LogAndMapError logs technical details and returns a user-friendly AppError.
func LogAndMapError(err error, operation string, params ...interface{}) *errors.AppError {
	appErr := errors.MapError(err)
	if appErr == nil {
		return nil
	}

	details := ""
	for i := 0; i+1 < len(params); i += 2 {
		details += fmt.Sprintf(" %v=%v", params[i], params[i+1])
	}

	if appErr.HTTPStatus >= 500 {
		logger.GlobalLogger.Errorf("%s failed [%s]%s: %s", operation, appErr.Code, details, appErr.Error())
	} else {
		logger.GlobalLogger.Warnf("%s failed [%s]%s: %s", operation, appErr.Code, details, appErr.Error())
	}
	return appErr
}

// WrapError adds context to an error while preserving the original.
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}
