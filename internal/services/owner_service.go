package services

import (
	"context"
	"strings"
	"unicode/utf8"

	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/transformers"
	"karttem-admin/internal/validators"
	"karttem-admin/pkg/inmobiliaria"
	"karttem-admin/pkg/logger"
)

// MinOwnerSearchLength is the shortest query the quick search sends to the backend.
const MinOwnerSearchLength = 3

const (
	msgOwnerCreated   = "Propietario creado exitosamente"
	msgOwnerUpdated   = "Propietario actualizado exitosamente"
	msgOwnerDeleted   = "Propietario eliminado exitosamente"
	msgOwnerNotSaved  = "Error al guardar el propietario"
	msgOwnerNotDelete = "Error al eliminar el propietario"
)

type OwnerService struct {
	backend   OwnerBackend
	validator validators.OwnerValidator
	activity  *ActivityRecorder
}

func NewOwnerService(backend OwnerBackend, validator validators.OwnerValidator, activity *ActivityRecorder) *OwnerService {
	return &OwnerService{backend: backend, validator: validator, activity: activity}
}

func (s *OwnerService) List(ctx context.Context, q string) ([]inmobiliaria.Owner, error) {
	owners, err := s.backend.List(ctx)
	if err != nil {
		return nil, err
	}
	return transformers.FilterOwners(owners, q), nil
}

// QuickSearch backs the owner picker; short queries return nothing without a backend call.
func (s *OwnerService) QuickSearch(ctx context.Context, q string) ([]inmobiliaria.Owner, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinOwnerSearchLength {
		return []inmobiliaria.Owner{}, nil
	}
	owners, err := s.backend.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if owners == nil {
		owners = []inmobiliaria.Owner{}
	}
	return owners, nil
}

// FindByDocument validates the document and looks its owner up.
func (s *OwnerService) FindByDocument(ctx context.Context, docType, number string) (*inmobiliaria.Owner, error) {
	formatted, err := s.validator.ValidateDocument(docType, number)
	if err != nil {
		return nil, err
	}
	owner, err := s.backend.GetByDocument(ctx, strings.ToLower(strings.TrimSpace(docType)), formatted)
	if err != nil {
		if inmobiliaria.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgOwnerNotFound, err)
		}
		return nil, err
	}
	return owner, nil
}

func (s *OwnerService) Get(ctx context.Context, id string) (*inmobiliaria.Owner, error) {
	return s.backend.Get(ctx, id)
}

func (s *OwnerService) Create(ctx context.Context, req *models.OwnerRequest) (*inmobiliaria.Owner, string, error) {
	owner, err := s.validator.Validate(req)
	if err != nil {
		return nil, "", err
	}
	created, _, err := s.backend.Create(ctx, owner)
	if err != nil {
		logger.GlobalLogger.Errorf("creating owner %s: %v", owner.DocumentNumber, err)
		return nil, "", apperrors.WithFallback(err, msgOwnerNotSaved)
	}
	if created == nil {
		created = owner
	}
	s.activity.Record(ctx, models.ActionCreate, models.EntityOwner, created.ID.String(), owner.Name)
	return created, msgOwnerCreated, nil
}

func (s *OwnerService) Update(ctx context.Context, id string, req *models.OwnerRequest) (*inmobiliaria.Owner, string, error) {
	owner, err := s.validator.Validate(req)
	if err != nil {
		return nil, "", err
	}
	if _, err := s.backend.Update(ctx, id, owner); err != nil {
		logger.GlobalLogger.Errorf("updating owner %s: %v", id, err)
		return nil, "", apperrors.WithFallback(err, msgOwnerNotSaved)
	}
	owner.ID = inmobiliaria.ID(id)
	s.activity.Record(ctx, models.ActionUpdate, models.EntityOwner, id, owner.Name)
	return owner, msgOwnerUpdated, nil
}

func (s *OwnerService) Delete(ctx context.Context, id string) (string, error) {
	if _, err := s.backend.Delete(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("deleting owner %s: %v", id, err)
		return "", apperrors.WithFallback(err, msgOwnerNotDelete)
	}
	s.activity.Record(ctx, models.ActionDelete, models.EntityOwner, id, "")
	return msgOwnerDeleted, nil
}
