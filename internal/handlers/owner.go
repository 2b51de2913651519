package handlers

import (
	"net/http"

	"karttem-admin/internal/models"
	"karttem-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct {
	ownerService *services.OwnerService
}

func NewOwnerHandler(ownerService *services.OwnerService) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// GetOwners godoc
// @Summary List owners
// @Description Filters by name, email or document number
// @Tags Owners
// @Produce json
// @Param q query string false "Filter"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /owners [get]
func (h *OwnerHandler) GetOwners(c *gin.Context) {
	owners, err := h.ownerService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(owners))
}

// SearchOwners godoc
// @Summary Owner quick search
// @Description Used by the property form; queries shorter than three characters return no results
// @Tags Owners
// @Produce json
// @Param q query string true "Search text"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /owners/search [get]
func (h *OwnerHandler) SearchOwners(c *gin.Context) {
	owners, err := h.ownerService.QuickSearch(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(owners))
}

// GetOwnerByDocument godoc
// @Summary Find owner by document
// @Tags Owners
// @Produce json
// @Param type path string true "dni, cuil or cuit"
// @Param number path string true "Document number"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Failure 404 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /owners/document/{type}/{number} [get]
func (h *OwnerHandler) GetOwnerByDocument(c *gin.Context) {
	owner, err := h.ownerService.FindByDocument(c.Request.Context(), c.Param("type"), c.Param("number"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(owner))
}

// GetOwnerByID godoc
// @Summary Get owner
// @Tags Owners
// @Produce json
// @Param id path string true "Owner ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Failure 404 {object} models.PageResponse
// @Router /owners/{id} [get]
func (h *OwnerHandler) GetOwnerByID(c *gin.Context) {
	owner, err := h.ownerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(owner))
}

// CreateOwner godoc
// @Summary Create owner
// @Tags Owners
// @Accept json
// @Produce json
// @Param owner body models.OwnerRequest true "Owner data"
// @Security SessionCookie
// @Success 201 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /owners [post]
func (h *OwnerHandler) CreateOwner(c *gin.Context) {
	var req models.OwnerRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	owner, msg, err := h.ownerService.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, models.SuccessNotice(owner, msg, "/owners"))
}

// UpdateOwner godoc
// @Summary Update owner
// @Tags Owners
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param owner body models.OwnerRequest true "Owner data"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /owners/{id} [put]
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	var req models.OwnerRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	owner, msg, err := h.ownerService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(owner, msg, "/owners"))
}

// DeleteOwner godoc
// @Summary Delete owner
// @Tags Owners
// @Produce json
// @Param id path string true "Owner ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /owners/{id} [delete]
func (h *OwnerHandler) DeleteOwner(c *gin.Context) {
	msg, err := h.ownerService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msg, "/owners"))
}
