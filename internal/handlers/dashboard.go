package handlers

import (
	"net/http"

	"karttem-admin/internal/models"
	"karttem-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary godoc
// @Summary Dashboard
// @Description Listing counts per status, the most recent listings and the latest admin activity
// @Tags Dashboard
// @Produce json
// @Security SessionCookie
// @Success 200 {object} models.PageResponse{data=models.DashboardData}
// @Failure 401 {object} models.PageResponse
// @Router / [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	data, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(data))
}
