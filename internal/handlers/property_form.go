package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxFormMemory = 32 << 20

// services the form sends as their own checkboxes, not as amenities
var serviceFields = map[string]bool{
	"has_electricity":  true,
	"has_natural_gas":  true,
	"has_sewage":       true,
	"has_paved_street": true,
}

// parsePropertyForm reads the listing form, multipart or urlencoded.
func parsePropertyForm(c *gin.Context) (*models.PropertyInput, error) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, invalidBody(err)
	}
	form := c.Request.PostForm
	get := func(key string) string { return strings.TrimSpace(form.Get(key)) }

	input := &models.PropertyInput{
		Title:          get("title"),
		Description:    get("description"),
		Type:           get("type"),
		Status:         get("status"),
		PriceARS:       get("price_ars"),
		PriceUSD:       get("price_usd"),
		CoveredArea:    get("covered_area"),
		TotalArea:      get("total_area"),
		Bedrooms:       get("bedrooms"),
		Bathrooms:      get("bathrooms"),
		Garage:         formBool(get("garage")),
		Featured:       formBool(get("featured")),
		HasElectricity: formBool(get("has_electricity")),
		HasNaturalGas:  formBool(get("has_natural_gas")),
		HasSewage:      formBool(get("has_sewage")),
		HasPavedStreet: formBool(get("has_paved_street")),
		Address:        get("address"),
		City:           get("city"),
		Province:       get("province"),
		Latitude:       get("latitude"),
		Longitude:      get("longitude"),
		OwnerID:        get("owner_id"),
		MainImageID:    get("main_image_id"),
	}

	amenities, err := parseAmenities(get("amenities"), form)
	if err != nil {
		return nil, apperrors.NewValidationError(map[string]string{"amenities": "Amenidades inválidas"})
	}
	input.Amenities = amenities

	if c.Request.MultipartForm != nil {
		images, err := readImages(c.Request.MultipartForm)
		if err != nil {
			return nil, err
		}
		input.Images = images
	}
	return input, nil
}

// parseAmenities takes the JSON "amenities" field when present,
// otherwise the individual has_* checkboxes.
func parseAmenities(raw string, form map[string][]string) (map[string]bool, error) {
	amenities := map[string]bool{}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &amenities); err != nil {
			return nil, err
		}
		return amenities, nil
	}
	for key, values := range form {
		if !strings.HasPrefix(key, "has_") || serviceFields[key] || len(values) == 0 {
			continue
		}
		amenities[key] = formBool(values[len(values)-1])
	}
	return amenities, nil
}

func readImages(form *multipart.Form) ([]models.ImageUpload, error) {
	files := form.File["images[]"]
	if len(files) == 0 {
		files = form.File["images"]
	}
	flags := form.Value["images_main[]"]
	if len(flags) == 0 {
		flags = form.Value["images_main"]
	}

	images := make([]models.ImageUpload, 0, len(files))
	for i, fh := range files {
		data, err := readFile(fh)
		if err != nil {
			return nil, utils.WrapError(err, "failed to read image %s", fh.Filename)
		}
		images = append(images, models.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
			IsMain:      i < len(flags) && formBool(flags[i]),
		})
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
