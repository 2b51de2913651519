package validators

import (
	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"
)

type propertyTypeValidator struct{}

func NewPropertyTypeValidator() PropertyTypeValidator {
	return &propertyTypeValidator{}
}

func (v *propertyTypeValidator) Validate(req *models.PropertyTypeRequest) (*inmobiliaria.PropertyType, error) {
	name := trimmed(req.Name)
	if name == "" {
		return nil, fieldErrors{"name": "El nombre del tipo de propiedad es requerido"}.err()
	}
	return &inmobiliaria.PropertyType{
		Name:        name,
		Description: trimmed(req.Description),
	}, nil
}
