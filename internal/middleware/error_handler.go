package middleware

import (
	"context"

	"karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/services"
	"karttem-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

const loginPath = "/login"

type SessionRevoker interface {
	Revoke(ctx context.Context, sessionID, reason string)
}

// ErrorHandler renders the last handler error as a page notice.
// A session the backend rejected is signed out globally.
func ErrorHandler(revoker SessionRevoker, cookie CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := utils.LogAndMapError(c.Errors.Last().Err, "request",
			"method", c.Request.Method, "path", c.Request.URL.Path, "client_ip", c.ClientIP())

		var body models.PageResponse
		switch appErr.Code {
		case errors.ErrCodeSessionExpired:
			if session, ok := SessionFromContext(c); ok {
				revoker.Revoke(c.Request.Context(), session.ID, services.RevokeUnauthorized)
			}
			ClearSessionCookie(c, cookie)
			body = models.Failure(appErr.UserMessage)
			body.Redirect = loginPath
		case errors.ErrCodeUnauthenticated:
			if c.FullPath() != loginPath {
				ClearSessionCookie(c, cookie)
				body = models.Failure(appErr.UserMessage)
				body.Redirect = loginPath
			} else {
				body = models.Failure(appErr.UserMessage)
			}
		case errors.ErrCodeInvalidParameters:
			body = models.Invalid(appErr.UserMessage, appErr.Fields)
		default:
			body = models.Failure(appErr.UserMessage)
		}

		c.JSON(appErr.HTTPStatus, body)
	}
}
