package handlers

import (
	"net/http"

	"karttem-admin/internal/middleware"
	"karttem-admin/internal/models"
	"karttem-admin/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	msgLoggedIn  = "Sesión iniciada correctamente"
	msgLoggedOut = "Sesión cerrada correctamente"
)

type AuthHandler struct {
	authService *services.AuthService
	cookie      middleware.CookieConfig
}

func NewAuthHandler(authService *services.AuthService, cookie middleware.CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// ShowLogin godoc
// @Summary Login page
// @Description Returns the empty login form, or a redirect to the dashboard when already signed in
// @Tags Auth
// @Produce json
// @Success 200 {object} models.PageResponse
// @Router /login [get]
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if token := middleware.SessionToken(c, h.cookie.Name); token != "" {
		if _, err := h.authService.Authenticate(c.Request.Context(), token); err == nil {
			c.JSON(http.StatusOK, models.PageResponse{OK: true, Redirect: "/"})
			return
		}
		middleware.ClearSessionCookie(c, h.cookie)
	}
	c.JSON(http.StatusOK, models.Success(models.LoginRequest{}))
}

// Login godoc
// @Summary Sign in
// @Description Checks the credentials against the backend and opens a panel session
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.PageResponse
// @Failure 401 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Failure 429 {object} models.PageResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	middleware.SetSessionCookie(c, h.cookie, resp.Token, resp.ExpiresAt)
	c.JSON(http.StatusOK, models.SuccessNotice(resp, msgLoggedIn, "/"))
}

// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if session, ok := middleware.SessionFromContext(c); ok {
		if err := h.authService.Logout(c.Request.Context(), session); err != nil {
			_ = c.Error(err)
			return
		}
	}
	middleware.ClearSessionCookie(c, h.cookie)
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msgLoggedOut, "/login"))
}
