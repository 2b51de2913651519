package validators

import (
	"regexp"
	"strings"

	apperrors "karttem-admin/internal/errors"
)

const (
	msgRequired     = "Este campo es requerido"
	msgInvalidEmail = "El formato del email no es válido"
	msgInvalidPhone = "El formato del teléfono no es válido"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s()-]+$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// fieldErrors collects one message per field, keeping the first.
type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, exists := f[field]; !exists {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError(f)
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
