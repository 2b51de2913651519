package inmobiliaria

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"
	"strings"
)

// Upload is an image file sent with a property form.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
	IsMain      bool
}

// PropertyForm is the multipart payload for creating or updating a listing.
// Nil numeric fields are left out of the request.
type PropertyForm struct {
	Title       string
	Description string
	Type        string
	Status      Status

	PriceARS    *float64
	PriceUSD    *float64
	CoveredArea *float64
	TotalArea   *float64
	Bedrooms    *int
	Bathrooms   *int

	Garage         bool
	Featured       bool
	HasElectricity bool
	HasNaturalGas  bool
	HasSewage      bool
	HasPavedStreet bool
	Amenities      Amenities

	Address  string
	City     string
	Province string
	// Latitude and Longitude are already formatted with six decimals, or empty.
	Latitude  string
	Longitude string

	OwnerID string

	Images      []Upload
	MainImageID string
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Encode writes the form as multipart/form-data and returns the body and its content type.
func (f *PropertyForm) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := []struct {
		key   string
		value string
		keep  bool
	}{
		{"title", f.Title, true},
		{"description", f.Description, true},
		{"type", f.Type, true},
		{"status", string(f.Status), true},
		{"price_ars", formatFloat(f.PriceARS), f.PriceARS != nil},
		{"price_usd", formatFloat(f.PriceUSD), f.PriceUSD != nil},
		{"covered_area", formatFloat(f.CoveredArea), f.CoveredArea != nil},
		{"total_area", formatFloat(f.TotalArea), f.TotalArea != nil},
		{"bedrooms", formatInt(f.Bedrooms), f.Bedrooms != nil},
		{"bathrooms", formatInt(f.Bathrooms), f.Bathrooms != nil},
		{"garage", strconv.FormatBool(f.Garage), true},
		{"featured", strconv.FormatBool(f.Featured), true},
		{"has_electricity", strconv.FormatBool(f.HasElectricity), true},
		{"has_natural_gas", strconv.FormatBool(f.HasNaturalGas), true},
		{"has_sewage", strconv.FormatBool(f.HasSewage), true},
		{"has_paved_street", strconv.FormatBool(f.HasPavedStreet), true},
		{"address", f.Address, true},
		{"city", f.City, true},
		{"province", f.Province, true},
		{"latitude", f.Latitude, f.Latitude != ""},
		{"longitude", f.Longitude, f.Longitude != ""},
		{"owner_id", f.OwnerID, f.OwnerID != ""},
		{"main_image_id", f.MainImageID, f.MainImageID != ""},
	}

	for _, field := range fields {
		if !field.keep {
			continue
		}
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", field.key, err)
		}
	}

	amenities, err := json.Marshal(f.Amenities)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal amenities: %w", err)
	}
	if err := w.WriteField("amenities", string(amenities)); err != nil {
		return nil, "", fmt.Errorf("failed to write field amenities: %w", err)
	}

	for i, img := range f.Images {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images[]"; filename="%s"`, quoteEscaper.Replace(img.Filename)))
		contentType := img.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part %d: %w", i, err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return nil, "", fmt.Errorf("failed to write image %d: %w", i, err)
		}

		mainFlag := "0"
		if img.IsMain {
			mainFlag = "1"
		}
		if err := w.WriteField("images_main[]", mainFlag); err != nil {
			return nil, "", fmt.Errorf("failed to write main flag %d: %w", i, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
