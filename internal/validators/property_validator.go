package validators

import (
	"encoding/json"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"karttem-admin/internal/models"
	"karttem-admin/internal/transformers"
	"karttem-admin/pkg/inmobiliaria"

	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidNumber   = "Debe ser un número válido"
	msgNegativeNumber  = "No puede ser un valor negativo"
	msgPriceRequired   = "Debe especificar al menos un precio"
	msgInvalidType     = "Tipo de propiedad inválido"
	msgInvalidStatus   = "Estado de propiedad inválido"
	msgIncompleteCoord = "Debe indicar latitud y longitud"
	msgInvalidImage    = "Solo se permiten imágenes JPG o PNG"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var allowedImageExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

type propertyValidator struct {
	validate *validator.Validate
}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{validate: validator.New()}
}

func (v *propertyValidator) ValidateStatus(status string) (inmobiliaria.Status, error) {
	s := inmobiliaria.Status(strings.ToLower(trimmed(status)))
	if !s.Valid() {
		return "", fieldErrors{"status": msgInvalidStatus}.err()
	}
	return s, nil
}

// Validate checks the raw form and converts it into the backend payload.
// Images are only checked for type here; the caller compresses them and picks the main one.
func (v *propertyValidator) Validate(input *models.PropertyInput) (*inmobiliaria.PropertyForm, error) {
	errs := fieldErrors{}
	form := &inmobiliaria.PropertyForm{
		Title:          trimmed(input.Title),
		Description:    trimmed(input.Description),
		Garage:         input.Garage,
		Featured:       input.Featured,
		HasElectricity: input.HasElectricity,
		HasNaturalGas:  input.HasNaturalGas,
		HasSewage:      input.HasSewage,
		HasPavedStreet: input.HasPavedStreet,
		Address:        trimmed(input.Address),
		City:           trimmed(input.City),
		Province:       trimmed(input.Province),
		OwnerID:        trimmed(input.OwnerID),
		MainImageID:    trimmed(input.MainImageID),
	}

	if form.Title == "" {
		errs.add("title", msgRequired)
	}
	if form.Description == "" {
		errs.add("description", msgRequired)
	}

	switch propertyType := trimmed(input.Type); {
	case propertyType == "":
		errs.add("type", msgRequired)
	case !transformers.IsKnownType(propertyType):
		errs.add("type", msgInvalidType)
	default:
		form.Type = transformers.NormalizeTypeSlug(propertyType)
	}

	status := trimmed(input.Status)
	if status == "" {
		status = string(inmobiliaria.StatusSale)
	}
	if s, err := v.ValidateStatus(status); err != nil {
		errs.add("status", msgInvalidStatus)
	} else {
		form.Status = s
	}

	form.PriceARS = parseAmount(errs, "price_ars", input.PriceARS)
	form.PriceUSD = parseAmount(errs, "price_usd", input.PriceUSD)
	if !positive(form.PriceARS) && !positive(form.PriceUSD) {
		errs.add("price", msgPriceRequired)
	}
	// A zero price is the same as no price.
	if !positive(form.PriceARS) {
		form.PriceARS = nil
	}
	if !positive(form.PriceUSD) {
		form.PriceUSD = nil
	}

	form.CoveredArea = parseAmount(errs, "covered_area", input.CoveredArea)
	form.TotalArea = parseAmount(errs, "total_area", input.TotalArea)
	form.Bedrooms = parseCount(errs, "bedrooms", input.Bedrooms)
	form.Bathrooms = parseCount(errs, "bathrooms", input.Bathrooms)

	v.validateLocation(errs, form, input.Latitude, input.Longitude)

	amenities, err := amenitiesFromMap(input.Amenities)
	if err != nil {
		errs.add("amenities", "Amenidades inválidas")
	}
	form.Amenities = amenities

	for _, img := range input.Images {
		if !isAllowedImage(img) {
			errs.add("images", msgInvalidImage)
			break
		}
	}

	if err := errs.err(); err != nil {
		return nil, err
	}
	return form, nil
}

func (v *propertyValidator) validateLocation(errs fieldErrors, form *inmobiliaria.PropertyForm, rawLat, rawLng string) {
	lat, lng := trimmed(rawLat), trimmed(rawLng)
	if lat == "" && lng == "" {
		return
	}
	if lat == "" || lng == "" {
		errs.add("location", msgIncompleteCoord)
		return
	}

	latValue, latErr := parseFinite(lat)
	lngValue, lngErr := parseFinite(lng)
	if latErr != nil || v.validate.Var(latValue, "latitude") != nil {
		errs.add("latitude", "Latitud inválida")
	}
	if lngErr != nil || v.validate.Var(lngValue, "longitude") != nil {
		errs.add("longitude", "Longitud inválida")
	}
	if latErr != nil || lngErr != nil {
		return
	}

	form.Latitude = transformers.FormatCoordinate(latValue)
	form.Longitude = transformers.FormatCoordinate(lngValue)
}

func parseAmount(errs fieldErrors, field, raw string) *float64 {
	raw = strings.ReplaceAll(trimmed(raw), ",", ".")
	if raw == "" {
		return nil
	}
	v, err := parseFinite(raw)
	if err != nil {
		errs.add(field, msgInvalidNumber)
		return nil
	}
	if v < 0 {
		errs.add(field, msgNegativeNumber)
		return nil
	}
	return &v
}

func parseCount(errs fieldErrors, field, raw string) *int {
	raw = trimmed(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.add(field, msgInvalidNumber)
		return nil
	}
	if v < 0 {
		errs.add(field, msgNegativeNumber)
		return nil
	}
	return &v
}

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func positive(v *float64) bool {
	return v != nil && *v > 0
}

func amenitiesFromMap(values map[string]bool) (inmobiliaria.Amenities, error) {
	var amenities inmobiliaria.Amenities
	if len(values) == 0 {
		return amenities, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return amenities, err
	}
	err = json.Unmarshal(data, &amenities)
	return amenities, err
}

func isAllowedImage(img models.ImageUpload) bool {
	ext := strings.ToLower(filepath.Ext(img.Filename))
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(img.ContentType, ";")[0]))
	if contentType != "" && contentType != "application/octet-stream" && !allowedImageTypes[contentType] {
		return false
	}
	return allowedImageExtensions[ext]
}
