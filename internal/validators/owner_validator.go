package validators

import (
	"regexp"
	"strings"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/transformers"
	"karttem-admin/pkg/inmobiliaria"
)

var (
	dniRegex       = regexp.MustCompile(`^\d+$`)
	taxNumberRegex = regexp.MustCompile(`^\d{2}-\d{8}-\d{1}$`)
)

type documentRule struct {
	minLength int
	maxLength int
	message   string
}

var documentRules = map[string]documentRule{
	"dni":  {minLength: 7, maxLength: 8, message: "El DNI debe tener entre 7 y 8 números"},
	"cuil": {message: "El CUIL debe tener el formato XX-XXXXXXXX-X"},
	"cuit": {message: "El CUIT debe tener el formato XX-XXXXXXXX-X"},
}

type ownerValidator struct{}

func NewOwnerValidator() OwnerValidator {
	return &ownerValidator{}
}

// ValidateDocument checks a document number for its type and returns it normalized
// (CUIL/CUIT formatted as XX-XXXXXXXX-X). The error's user message is the rule that failed.
func (v *ownerValidator) ValidateDocument(docType, number string) (string, error) {
	formatted, msg := checkDocument(docType, number)
	if msg == "" {
		return formatted, nil
	}

	field := "document_number"
	if msg == msgInvalidDocumentType {
		field = "document_type"
	}
	appErr := apperrors.NewValidationError(map[string]string{field: msg})
	appErr.UserMessage = msg
	return "", appErr
}

const msgInvalidDocumentType = "Tipo de documento inválido"

func checkDocument(docType, number string) (string, string) {
	docType = strings.ToLower(trimmed(docType))
	rule, ok := documentRules[docType]
	if !ok {
		return "", msgInvalidDocumentType
	}

	value := trimmed(number)
	if value == "" {
		return "", "El número de documento es requerido"
	}

	if docType == "dni" {
		if !dniRegex.MatchString(value) {
			return "", "El DNI solo debe contener números"
		}
		if len(value) < rule.minLength || len(value) > rule.maxLength {
			return "", rule.message
		}
		return value, ""
	}

	formatted := transformers.FormatDocument(docType, value)
	if !taxNumberRegex.MatchString(formatted) {
		return "", rule.message
	}
	return formatted, ""
}

func (v *ownerValidator) Validate(req *models.OwnerRequest) (*inmobiliaria.Owner, error) {
	errs := fieldErrors{}

	docType := strings.ToLower(trimmed(req.DocumentType))
	formatted, msg := checkDocument(docType, req.DocumentNumber)
	if msg == msgInvalidDocumentType {
		errs.add("document_type", msg)
	} else if msg != "" {
		errs.add("document_number", msg)
	}

	name := trimmed(req.Name)
	switch {
	case name == "":
		errs.add("name", "El nombre es requerido")
	case len([]rune(name)) < 3:
		errs.add("name", "El nombre debe tener al menos 3 caracteres")
	}

	email := trimmed(req.Email)
	if email != "" && !isValidEmail(email) {
		errs.add("email", msgInvalidEmail)
	}

	phone := trimmed(req.Phone)
	if phone != "" && !isValidPhone(phone) {
		errs.add("phone", msgInvalidPhone)
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	return &inmobiliaria.Owner{
		Name:           name,
		DocumentType:   docType,
		DocumentNumber: formatted,
		Email:          email,
		Phone:          phone,
		Address:        trimmed(req.Address),
		City:           trimmed(req.City),
		Province:       trimmed(req.Province),
		IsCompany:      inmobiliaria.Flag(req.IsCompany),
		Notes:          trimmed(req.Notes),
	}, nil
}
