package handlers

import (
	"net/http"

	"karttem-admin/internal/models"
	"karttem-admin/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyTypeHandler struct {
	propertyTypeService *services.PropertyTypeService
}

func NewPropertyTypeHandler(propertyTypeService *services.PropertyTypeService) *PropertyTypeHandler {
	return &PropertyTypeHandler{propertyTypeService: propertyTypeService}
}

// GetPropertyTypes godoc
// @Summary List property types
// @Tags PropertyTypes
// @Produce json
// @Param q query string false "Filter by name or description"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /property-types [get]
func (h *PropertyTypeHandler) GetPropertyTypes(c *gin.Context) {
	types, err := h.propertyTypeService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(types))
}

// CreatePropertyType godoc
// @Summary Create property type
// @Tags PropertyTypes
// @Accept json
// @Produce json
// @Param type body models.PropertyTypeRequest true "Property type"
// @Security SessionCookie
// @Success 201 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /property-types [post]
func (h *PropertyTypeHandler) CreatePropertyType(c *gin.Context) {
	var req models.PropertyTypeRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := h.propertyTypeService.Create(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, models.SuccessNotice(nil, msg, "/property-types"))
}

// UpdatePropertyType godoc
// @Summary Update property type
// @Tags PropertyTypes
// @Accept json
// @Produce json
// @Param id path string true "Property type ID"
// @Param type body models.PropertyTypeRequest true "Property type"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /property-types/{id} [put]
func (h *PropertyTypeHandler) UpdatePropertyType(c *gin.Context) {
	var req models.PropertyTypeRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := h.propertyTypeService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msg, "/property-types"))
}

// DeletePropertyType godoc
// @Summary Delete property type
// @Tags PropertyTypes
// @Produce json
// @Param id path string true "Property type ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /property-types/{id} [delete]
func (h *PropertyTypeHandler) DeletePropertyType(c *gin.Context) {
	msg, err := h.propertyTypeService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msg, "/property-types"))
}

// ActivatePropertyType godoc
// @Summary Activate property type
// @Tags PropertyTypes
// @Produce json
// @Param id path string true "Property type ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /property-types/{id}/activate [patch]
func (h *PropertyTypeHandler) ActivatePropertyType(c *gin.Context) {
	h.setActive(c, true)
}

// DeactivatePropertyType godoc
// @Summary Deactivate property type
// @Tags PropertyTypes
// @Produce json
// @Param id path string true "Property type ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Router /property-types/{id}/deactivate [patch]
func (h *PropertyTypeHandler) DeactivatePropertyType(c *gin.Context) {
	h.setActive(c, false)
}

func (h *PropertyTypeHandler) setActive(c *gin.Context, active bool) {
	msg, err := h.propertyTypeService.SetActive(c.Request.Context(), c.Param("id"), active)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msg, ""))
}
