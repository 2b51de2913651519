package middleware

import (
	"context"
	"strings"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/services"
	"karttem-admin/pkg/inmobiliaria"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// AuthMiddleware requires a live panel session, read from the session cookie
// or an "Authorization: Bearer" header. The backend token and the user are
// attached to the request context for the handlers below.
func AuthMiddleware(authn SessionAuthenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c, cookieName)
		if token == "" {
			_ = c.Error(apperrors.NewUnauthenticatedError("session token required"))
			c.Abort()
			return
		}

		session, err := authn.Authenticate(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Set("user_id", session.User.ID)
		c.Set("email", session.User.Email)

		ctx := inmobiliaria.WithToken(c.Request.Context(), session.Token)
		ctx = services.WithActor(ctx, session.User)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// SessionToken returns the signed session token sent with the request.
func SessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// SessionFromContext returns the session set by AuthMiddleware.
func SessionFromContext(c *gin.Context) (*models.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*models.Session)
	return session, ok
}
