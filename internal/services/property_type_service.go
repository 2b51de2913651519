package services

import (
	"context"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/transformers"
	"karttem-admin/internal/validators"
	"karttem-admin/pkg/inmobiliaria"
	"karttem-admin/pkg/logger"
)

const (
	msgTypeCreated     = "Tipo de propiedad creado exitosamente"
	msgTypeUpdated     = "Tipo de propiedad actualizado exitosamente"
	msgTypeDeleted     = "Tipo de propiedad eliminado exitosamente"
	msgTypeActivated   = "Tipo de propiedad activado"
	msgTypeDeactivated = "Tipo de propiedad desactivado"
	msgTypeNotSaved    = "Error al guardar el tipo de propiedad"
	msgTypeNotDelete   = "Error al eliminar el tipo de propiedad"
	msgTypeNotToggled  = "Error al cambiar el estado del tipo de propiedad"
)

type PropertyTypeService struct {
	backend   PropertyTypeBackend
	validator validators.PropertyTypeValidator
	activity  *ActivityRecorder
}

func NewPropertyTypeService(backend PropertyTypeBackend, validator validators.PropertyTypeValidator, activity *ActivityRecorder) *PropertyTypeService {
	return &PropertyTypeService{backend: backend, validator: validator, activity: activity}
}

func (s *PropertyTypeService) List(ctx context.Context, q string) ([]inmobiliaria.PropertyType, error) {
	types, err := s.backend.List(ctx)
	if err != nil {
		return nil, err
	}
	return transformers.FilterPropertyTypes(types, q), nil
}

func (s *PropertyTypeService) Create(ctx context.Context, req *models.PropertyTypeRequest) (string, error) {
	pt, err := s.validator.Validate(req)
	if err != nil {
		return "", err
	}
	if _, err := s.backend.Create(ctx, pt); err != nil {
		logger.GlobalLogger.Errorf("creating property type %q: %v", pt.Name, err)
		return "", apperrors.WithFallback(err, msgTypeNotSaved)
	}
	s.activity.Record(ctx, models.ActionCreate, models.EntityPropertyType, "", pt.Name)
	return msgTypeCreated, nil
}

func (s *PropertyTypeService) Update(ctx context.Context, id string, req *models.PropertyTypeRequest) (string, error) {
	pt, err := s.validator.Validate(req)
	if err != nil {
		return "", err
	}
	if _, err := s.backend.Update(ctx, id, pt); err != nil {
		logger.GlobalLogger.Errorf("updating property type %s: %v", id, err)
		return "", apperrors.WithFallback(err, msgTypeNotSaved)
	}
	s.activity.Record(ctx, models.ActionUpdate, models.EntityPropertyType, id, pt.Name)
	return msgTypeUpdated, nil
}

func (s *PropertyTypeService) Delete(ctx context.Context, id string) (string, error) {
	if _, err := s.backend.Delete(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("deleting property type %s: %v", id, err)
		return "", apperrors.WithFallback(err, msgTypeNotDelete)
	}
	s.activity.Record(ctx, models.ActionDelete, models.EntityPropertyType, id, "")
	return msgTypeDeleted, nil
}

// SetActive activates or deactivates a property type.
func (s *PropertyTypeService) SetActive(ctx context.Context, id string, active bool) (string, error) {
	toggle, action, msg := s.backend.Deactivate, models.ActionDeactivate, msgTypeDeactivated
	if active {
		toggle, action, msg = s.backend.Activate, models.ActionActivate, msgTypeActivated
	}
	if _, err := toggle(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("%s property type %s: %v", action, id, err)
		return "", apperrors.WithFallback(err, msgTypeNotToggled)
	}
	s.activity.Record(ctx, action, models.EntityPropertyType, id, "")
	return msg, nil
}
