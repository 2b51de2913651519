package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/services"
	"karttem-admin/pkg/inmobiliaria"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testCookie = "karttem_session"

type fakeAuthenticator struct {
	sessions map[string]*models.Session
	err      error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	if s, ok := f.sessions[token]; ok {
		return s, nil
	}
	return nil, apperrors.NewUnauthenticatedError("unknown session")
}

type fakeRevoker struct {
	revoked map[string]string
}

func (f *fakeRevoker) Revoke(_ context.Context, sessionID, reason string) {
	if f.revoked == nil {
		f.revoked = map[string]string{}
	}
	f.revoked[sessionID] = reason
}

func init() {
	gin.SetMode(gin.TestMode)
}

func testSession() *models.Session {
	return &models.Session{
		ID:        "sess-1",
		User:      models.SessionUser{ID: "7", Email: "ana@example.com", Firstname: "Ana"},
		Token:     "Bearer backend-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func newRouter(authn SessionAuthenticator, revoker SessionRevoker, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(revoker, CookieConfig{Name: testCookie}))
	r.GET("/properties", AuthMiddleware(authn, testCookie), handler)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) models.PageResponse {
	t.Helper()
	var body models.PageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthMiddlewareAttachesSession(t *testing.T) {
	authn := &fakeAuthenticator{sessions: map[string]*models.Session{"signed": testSession()}}
	r := newRouter(authn, &fakeRevoker{}, func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		require.True(t, ok)
		actor, ok := services.ActorFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"session": session.ID,
			"token":   inmobiliaria.TokenFromContext(c.Request.Context()),
			"actor":   actor.Email,
		})
	})

	for _, setup := range []func(*http.Request){
		func(req *http.Request) { req.AddCookie(&http.Cookie{Name: testCookie, Value: "signed"}) },
		func(req *http.Request) { req.Header.Set("Authorization", "Bearer signed") },
	} {
		req := httptest.NewRequest(http.MethodGet, "/properties", nil)
		setup(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "sess-1", got["session"])
		assert.Equal(t, "Bearer backend-token", got["token"])
		assert.Equal(t, "ana@example.com", got["actor"])
	}
}

func TestAuthMiddlewareRejectsMissingSession(t *testing.T) {
	called := false
	r := newRouter(&fakeAuthenticator{}, &fakeRevoker{}, func(c *gin.Context) { called = true })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.False(t, body.OK)
	assert.Equal(t, "/login", body.Redirect)
	assert.Equal(t, apperrors.MsgUnauthenticated, body.Notice.Message)
}

func TestAuthMiddlewareExpiredBackendToken(t *testing.T) {
	authn := &fakeAuthenticator{err: apperrors.NewSessionExpiredError(inmobiliaria.ErrUnauthorized)}
	r := newRouter(authn, &fakeRevoker{}, func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "stale"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), testCookie+"=;")
	body := decode(t, w)
	assert.Equal(t, apperrors.MsgSessionExpired, body.Notice.Message)
	assert.Equal(t, "/login", body.Redirect)
}

func TestErrorHandlerSignsOutOnBackendUnauthorized(t *testing.T) {
	authn := &fakeAuthenticator{sessions: map[string]*models.Session{"signed": testSession()}}
	revoker := &fakeRevoker{}
	r := newRouter(authn, revoker, func(c *gin.Context) {
		_ = c.Error(inmobiliaria.ErrUnauthorized)
	})

	req := httptest.NewRequest(http.MethodGet, "/properties", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "signed"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, services.RevokeUnauthorized, revoker.revoked["sess-1"])
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
	body := decode(t, w)
	assert.Equal(t, apperrors.MsgSessionExpired, body.Notice.Message)
	assert.Equal(t, "/login", body.Redirect)
}

func TestErrorHandlerRendersValidationErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(&fakeRevoker{}, CookieConfig{Name: testCookie}))
	r.POST("/owners", func(c *gin.Context) {
		_ = c.Error(apperrors.NewValidationError(map[string]string{"name": "El nombre es requerido"}))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/owners", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode(t, w)
	assert.Equal(t, "El nombre es requerido", body.Errors["name"])
	assert.Equal(t, models.NoticeError, body.Notice.Level)
	assert.Empty(t, body.Redirect)
}

func TestErrorHandlerBackendUnavailable(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(&fakeRevoker{}, CookieConfig{Name: testCookie}))
	r.GET("/owners", func(c *gin.Context) {
		_ = c.Error(&inmobiliaria.ConnectionError{URL: "http://backend", Message: "connection refused"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/owners", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, apperrors.MsgServiceUnavailable, decode(t, w).Notice.Message)
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(rate.Every(time.Hour), 1)
	r := gin.New()
	r.Use(ErrorHandler(&fakeRevoker{}, CookieConfig{Name: testCookie}), RateLimitMiddleware(limiter))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, apperrors.MsgRateLimited, decode(t, w).Notice.Message)
}

func TestRateLimiterSweepDropsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(rate.Every(time.Hour), 2)
	limiter.getLimiter("10.0.0.1")
	limiter.getLimiter("10.0.0.2").Allow()

	limiter.sweep()
	assert.Equal(t, 1, limiter.size())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.Cleanup(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop")
	}
}

func TestSecureHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecureHeaders(true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
