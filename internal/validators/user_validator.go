package validators

import (
	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 100
)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateCreate(req *models.UserRequest) (*inmobiliaria.User, error) {
	return v.validate(req, true)
}

// ValidateUpdate accepts an empty password, which keeps the current one.
func (v *userValidator) ValidateUpdate(req *models.UserRequest) (*inmobiliaria.User, error) {
	return v.validate(req, false)
}

func (v *userValidator) validate(req *models.UserRequest, passwordRequired bool) (*inmobiliaria.User, error) {
	errs := fieldErrors{}

	email := trimmed(req.Email)
	switch {
	case email == "":
		errs.add("email", msgRequired)
	case !isValidEmail(email):
		errs.add("email", msgInvalidEmail)
	}

	firstname := trimmed(req.Firstname)
	if firstname == "" {
		errs.add("firstname", msgRequired)
	}
	lastname := trimmed(req.Lastname)
	if lastname == "" {
		errs.add("lastname", msgRequired)
	}

	switch {
	case req.Password == "" && passwordRequired:
		errs.add("password", msgRequired)
	case req.Password != "" && (len(req.Password) < minPasswordLength || len(req.Password) > maxPasswordLength):
		errs.add("password", "La contraseña debe tener entre 6 y 100 caracteres")
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	return &inmobiliaria.User{
		Email:     email,
		Firstname: firstname,
		Lastname:  lastname,
		Password:  req.Password,
	}, nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	errs := fieldErrors{}

	email = trimmed(email)
	switch {
	case email == "":
		errs.add("email", msgRequired)
	case !isValidEmail(email):
		errs.add("email", msgInvalidEmail)
	}
	if password == "" {
		errs.add("password", msgRequired)
	}

	return errs.err()
}
