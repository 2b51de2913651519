package handlers

import (
	"net/http"

	"karttem-admin/internal/models"
	"karttem-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUsers godoc
// @Summary List panel users
// @Tags Users
// @Produce json
// @Param q query string false "Filter by name or email"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(users))
}

// GetUserByID godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Failure 404 {object} models.PageResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(user))
}

// CreateUser godoc
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.UserRequest true "User data"
// @Security SessionCookie
// @Success 201 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, models.SuccessNotice(nil, msg, "/users"))
}

// UpdateUser godoc
// @Summary Update user
// @Description An empty password keeps the current one
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.UserRequest true "User data"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UserRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := h.userService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msg, "/users"))
}

// DeleteUser godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	msg, err := h.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msg, "/users"))
}
