package validators

import (
	"errors"
	"testing"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, apperrors.ErrCodeInvalidParameters, appErr.Code)
	return appErr.Fields
}

func TestValidateDocument(t *testing.T) {
	v := NewOwnerValidator()

	tests := []struct {
		name    string
		docType string
		number  string
		want    string
		wantErr string
	}{
		{"dni ok", "dni", "30123456", "30123456", ""},
		{"dni seven digits", "dni", " 1234567 ", "1234567", ""},
		{"dni letters", "dni", "30A23456", "", "El DNI solo debe contener números"},
		{"dni too short", "dni", "123456", "", "El DNI debe tener entre 7 y 8 números"},
		{"dni too long", "dni", "123456789", "", "El DNI debe tener entre 7 y 8 números"},
		{"cuil raw digits", "cuil", "20123456789", "20-12345678-9", ""},
		{"cuit already formatted", "CUIT", "30-71234567-1", "30-71234567-1", ""},
		{"cuit with dots", "cuit", "30.71234567.1", "30-71234567-1", ""},
		{"cuit wrong length", "cuit", "3071234567", "", "El CUIT debe tener el formato XX-XXXXXXXX-X"},
		{"cuil wrong length", "cuil", "201234567891", "", "El CUIL debe tener el formato XX-XXXXXXXX-X"},
		{"empty number", "dni", "  ", "", "El número de documento es requerido"},
		{"unknown type", "pasaporte", "AB123", "", "Tipo de documento inválido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateDocument(tt.docType, tt.number)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			appErr := apperrors.MapError(err)
			assert.Equal(t, tt.wantErr, appErr.UserMessage)
		})
	}
}

func TestOwnerValidate(t *testing.T) {
	v := NewOwnerValidator()

	owner, err := v.Validate(&models.OwnerRequest{
		Name:           "  Juan Gómez ",
		DocumentType:   "cuil",
		DocumentNumber: "20123456789",
		Email:          "juan@example.com",
		Phone:          "(381) 555-1234",
		IsCompany:      false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan Gómez", owner.Name)
	assert.Equal(t, "20-12345678-9", owner.DocumentNumber)

	_, err = v.Validate(&models.OwnerRequest{
		Name:           "Jo",
		DocumentType:   "dni",
		DocumentNumber: "123",
		Email:          "juan@",
		Phone:          "+54 381",
	})
	fields := fieldsOf(t, err)
	assert.Equal(t, "El nombre debe tener al menos 3 caracteres", fields["name"])
	assert.Equal(t, "El DNI debe tener entre 7 y 8 números", fields["document_number"])
	assert.Equal(t, "El formato del email no es válido", fields["email"])
	assert.Equal(t, "El formato del teléfono no es válido", fields["phone"])

	_, err = v.Validate(&models.OwnerRequest{DocumentType: "dni", DocumentNumber: "30123456"})
	assert.Equal(t, "El nombre es requerido", fieldsOf(t, err)["name"])
}

func TestUserValidator(t *testing.T) {
	v := NewUserValidator()

	_, err := v.ValidateCreate(&models.UserRequest{Email: "ana@example.com", Firstname: "Ana", Lastname: "Pérez"})
	assert.Equal(t, "Este campo es requerido", fieldsOf(t, err)["password"])

	_, err = v.ValidateCreate(&models.UserRequest{Email: "ana@example.com", Firstname: "Ana", Lastname: "Pérez", Password: "12345"})
	assert.Contains(t, fieldsOf(t, err), "password")

	user, err := v.ValidateUpdate(&models.UserRequest{Email: " ana@example.com ", Firstname: "Ana", Lastname: "Pérez"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Empty(t, user.Password)

	_, err = v.ValidateUpdate(&models.UserRequest{Email: "no-at-sign", Firstname: "", Lastname: "Pérez"})
	fields := fieldsOf(t, err)
	assert.Equal(t, "El formato del email no es válido", fields["email"])
	assert.Equal(t, "Este campo es requerido", fields["firstname"])
}

func TestValidateLogin(t *testing.T) {
	v := NewUserValidator()
	assert.NoError(t, v.ValidateLogin("ana@example.com", "x"))

	fields := fieldsOf(t, v.ValidateLogin("", ""))
	assert.Len(t, fields, 2)
	assert.Contains(t, fieldsOf(t, v.ValidateLogin("ana", "secret")), "email")
}

func TestPropertyTypeValidator(t *testing.T) {
	v := NewPropertyTypeValidator()

	pt, err := v.Validate(&models.PropertyTypeRequest{Name: " Quinta ", Description: "Casa de fin de semana"})
	require.NoError(t, err)
	assert.Equal(t, "Quinta", pt.Name)

	_, err = v.Validate(&models.PropertyTypeRequest{Name: "   "})
	assert.Equal(t, "El nombre del tipo de propiedad es requerido", fieldsOf(t, err)["name"])
}

func validPropertyInput() *models.PropertyInput {
	return &models.PropertyInput{
		Title:       "Casa en Yerba Buena",
		Description: "Tres dormitorios con jardín",
		Type:        "casa",
		Status:      "sale",
		PriceUSD:    "120000",
		Bedrooms:    "3",
		CoveredArea: "180,5",
		Amenities:   map[string]bool{"has_pool": true, "has_garden": true, "unknown": true},
	}
}

func TestPropertyValidatorAcceptsValidForm(t *testing.T) {
	v := NewPropertyValidator()

	input := validPropertyInput()
	input.Type = "local_comercial"
	input.Latitude = "-26.8"
	input.Longitude = "-65.3"
	input.Images = []models.ImageUpload{{Filename: "frente.JPG", ContentType: "image/jpeg"}}

	form, err := v.Validate(input)
	require.NoError(t, err)
	assert.Equal(t, "local-comercial", form.Type)
	assert.Equal(t, inmobiliaria.StatusSale, form.Status)
	require.NotNil(t, form.PriceUSD)
	assert.Equal(t, 120000.0, *form.PriceUSD)
	assert.Nil(t, form.PriceARS)
	assert.Equal(t, 180.5, *form.CoveredArea)
	assert.Equal(t, 3, *form.Bedrooms)
	assert.Equal(t, "-26.800000", form.Latitude)
	assert.Equal(t, "-65.300000", form.Longitude)
	assert.True(t, bool(form.Amenities.HasPool))
	assert.False(t, bool(form.Amenities.HasAC))
}

func TestPropertyValidatorRejections(t *testing.T) {
	v := NewPropertyValidator()

	tests := []struct {
		name   string
		mutate func(in *models.PropertyInput)
		field  string
		msg    string
	}{
		{"missing title", func(in *models.PropertyInput) { in.Title = " " }, "title", "Este campo es requerido"},
		{"missing description", func(in *models.PropertyInput) { in.Description = "" }, "description", "Este campo es requerido"},
		{"unknown type", func(in *models.PropertyInput) { in.Type = "castillo" }, "type", "Tipo de propiedad inválido"},
		{"invalid status", func(in *models.PropertyInput) { in.Status = "temporary_rent" }, "status", "Estado de propiedad inválido"},
		{"no price", func(in *models.PropertyInput) { in.PriceUSD = "" }, "price", "Debe especificar al menos un precio"},
		{"zero prices", func(in *models.PropertyInput) { in.PriceUSD = "0"; in.PriceARS = "0" }, "price", "Debe especificar al menos un precio"},
		{"infinite price", func(in *models.PropertyInput) { in.PriceUSD = "Inf" }, "price_usd", "Debe ser un número válido"},
		{"signed infinite price", func(in *models.PropertyInput) { in.PriceARS = "+Inf" }, "price_ars", "Debe ser un número válido"},
		{"NaN area", func(in *models.PropertyInput) { in.CoveredArea = "NaN" }, "covered_area", "Debe ser un número válido"},
		{"NaN total area", func(in *models.PropertyInput) { in.TotalArea = "nan" }, "total_area", "Debe ser un número válido"},
		{"NaN latitude", func(in *models.PropertyInput) { in.Latitude = "NaN"; in.Longitude = "10" }, "latitude", "Latitud inválida"},
		{"negative area", func(in *models.PropertyInput) { in.TotalArea = "-5" }, "total_area", "No puede ser un valor negativo"},
		{"non numeric rooms", func(in *models.PropertyInput) { in.Bathrooms = "dos" }, "bathrooms", "Debe ser un número válido"},
		{"only latitude", func(in *models.PropertyInput) { in.Latitude = "-26.8" }, "location", "Debe indicar latitud y longitud"},
		{"latitude out of range", func(in *models.PropertyInput) { in.Latitude = "95"; in.Longitude = "10" }, "latitude", "Latitud inválida"},
		{"longitude out of range", func(in *models.PropertyInput) { in.Latitude = "10"; in.Longitude = "-181" }, "longitude", "Longitud inválida"},
		{"gif image", func(in *models.PropertyInput) {
			in.Images = []models.ImageUpload{{Filename: "anim.gif", ContentType: "image/gif"}}
		}, "images", "Solo se permiten imágenes JPG o PNG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPropertyInput()
			tt.mutate(input)
			_, err := v.Validate(input)
			require.Error(t, err)
			assert.Equal(t, tt.msg, fieldsOf(t, err)[tt.field])
		})
	}
}

func TestPropertyValidatorDefaultsStatusToSale(t *testing.T) {
	input := validPropertyInput()
	input.Status = ""
	form, err := NewPropertyValidator().Validate(input)
	require.NoError(t, err)
	assert.Equal(t, inmobiliaria.StatusSale, form.Status)
}

func TestValidateStatus(t *testing.T) {
	v := NewPropertyValidator()
	for _, s := range []string{"sale", "rent", "rented", "sold", "RESERVED"} {
		_, err := v.ValidateStatus(s)
		assert.NoError(t, err, s)
	}
	_, err := v.ValidateStatus("archived")
	assert.Error(t, err)
}
