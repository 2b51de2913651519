package handlers

import (
	"fmt"
	"net/http"

	"karttem-admin/internal/models"
	"karttem-admin/internal/services"
	"karttem-admin/pkg/inmobiliaria"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// GetProperties godoc
// @Summary List properties
// @Description Paginated listings, optionally narrowed to a status ("inactive" lists deactivated ones) and filtered by title or address
// @Tags Properties
// @Produce json
// @Param q query string false "Title or address filter"
// @Param status query string false "sale, rent, rented, sold, reserved or inactive"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(10)
// @Security SessionCookie
// @Success 200 {object} models.PageResponse{data=[]models.PropertyRow}
// @Failure 401 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /properties [get]
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	h.list(c, "")
}

// GetRentedProperties godoc
// @Summary List rented properties
// @Tags Properties
// @Produce json
// @Param q query string false "Title or address filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(10)
// @Security SessionCookie
// @Success 200 {object} models.PageResponse{data=[]models.PropertyRow}
// @Router /properties/rented [get]
func (h *PropertyHandler) GetRentedProperties(c *gin.Context) {
	h.list(c, inmobiliaria.StatusRented)
}

// GetSoldProperties godoc
// @Summary List sold properties
// @Tags Properties
// @Produce json
// @Param q query string false "Title or address filter"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination" default(10)
// @Security SessionCookie
// @Success 200 {object} models.PageResponse{data=[]models.PropertyRow}
// @Router /properties/sold [get]
func (h *PropertyHandler) GetSoldProperties(c *gin.Context) {
	h.list(c, inmobiliaria.StatusSold)
}

func (h *PropertyHandler) list(c *gin.Context, status inmobiliaria.Status) {
	var query models.PropertyListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	if status != "" {
		query.Status = string(status)
	}

	rows, meta, err := h.propertyService.List(c.Request.Context(), query, listBaseURL(c), c.Request.URL.Query())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.PageResponse{OK: true, Data: rows, Meta: meta})
}

// GetPropertyByID godoc
// @Summary Get property
// @Description Edit form data for one listing
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse{data=models.PropertyRow}
// @Failure 404 {object} models.PageResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	row, err := h.propertyService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.Success(row))
}

// CreateProperty godoc
// @Summary Create property
// @Description Multipart listing form; images are compressed and the main one chosen from images_main[]
// @Tags Properties
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param type formData string true "Property type slug"
// @Param status formData string false "Status" default(sale)
// @Param price_usd formData number false "Price in USD"
// @Param price_ars formData number false "Price in ARS"
// @Param amenities formData string false "Amenities as a JSON object"
// @Param images[] formData file false "Images"
// @Param images_main[] formData string false "1 marks the matching image as main"
// @Security SessionCookie
// @Success 201 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	input, err := parsePropertyForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	property, msg, err := h.propertyService.Create(c.Request.Context(), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, models.SuccessNotice(property, msg, "/properties"))
}

// UpdateProperty godoc
// @Summary Update property
// @Description Same form as create; main_image_id promotes an image already stored
// @Tags Properties
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param main_image_id formData string false "Existing image to make main"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Failure 404 {object} models.PageResponse
// @Failure 422 {object} models.PageResponse
// @Router /properties/{id} [post]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	input, err := parsePropertyForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	property, msg, err := h.propertyService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(property, msg, "/properties"))
}

// UpdatePropertyStatus godoc
// @Summary Change property status
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param status body models.StatusRequest true "New status"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse{data=models.PropertyRow}
// @Failure 422 {object} models.PageResponse
// @Router /properties/{id}/status [patch]
func (h *PropertyHandler) UpdatePropertyStatus(c *gin.Context) {
	var req models.StatusRequest
	if err := c.ShouldBind(&req); err != nil {
		bindError(c, err)
		return
	}

	row, msg, err := h.propertyService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(row, msg, ""))
}

// DeleteProperty godoc
// @Summary Delete property
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Security SessionCookie
// @Success 200 {object} models.PageResponse
// @Failure 404 {object} models.PageResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	msg, err := h.propertyService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessNotice(nil, msg, "/properties"))
}

// ExportPropertySheet godoc
// @Summary Download listing sheet
// @Description A4 PDF with the listing details
// @Tags Properties
// @Produce application/pdf
// @Param id path string true "Property ID"
// @Security SessionCookie
// @Success 200 {file} file
// @Failure 404 {object} models.PageResponse
// @Router /properties/{id}/pdf [get]
func (h *PropertyHandler) ExportPropertySheet(c *gin.Context) {
	filename, data, err := h.propertyService.ExportSheet(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
