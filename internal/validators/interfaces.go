package validators

import (
	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"
)

type PropertyValidator interface {
	Validate(input *models.PropertyInput) (*inmobiliaria.PropertyForm, error)
	ValidateStatus(status string) (inmobiliaria.Status, error)
}

type OwnerValidator interface {
	Validate(req *models.OwnerRequest) (*inmobiliaria.Owner, error)
	ValidateDocument(docType, number string) (string, error)
}

type UserValidator interface {
	ValidateCreate(req *models.UserRequest) (*inmobiliaria.User, error)
	ValidateUpdate(req *models.UserRequest) (*inmobiliaria.User, error)
	ValidateLogin(email, password string) error
}

type PropertyTypeValidator interface {
	Validate(req *models.PropertyTypeRequest) (*inmobiliaria.PropertyType, error)
}
