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
	msgUserCreated   = "Usuario creado exitosamente"
	msgUserUpdated   = "Usuario actualizado exitosamente"
	msgUserDeleted   = "Usuario eliminado exitosamente"
	msgUserNotSaved  = "Error al guardar el usuario"
	msgUserNotDelete = "Error al eliminar el usuario"
)

type UserService struct {
	backend   UserBackend
	validator validators.UserValidator
	activity  *ActivityRecorder
}

func NewUserService(backend UserBackend, validator validators.UserValidator, activity *ActivityRecorder) *UserService {
	return &UserService{backend: backend, validator: validator, activity: activity}
}

func (s *UserService) List(ctx context.Context, q string) ([]inmobiliaria.User, error) {
	users, err := s.backend.List(ctx)
	if err != nil {
		return nil, err
	}
	return transformers.FilterUsers(users, q), nil
}

func (s *UserService) Get(ctx context.Context, id string) (*inmobiliaria.User, error) {
	user, err := s.backend.Get(ctx, id)
	if err != nil {
		if inmobiliaria.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError(apperrors.MsgUserNotFound, err)
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req *models.UserRequest) (string, error) {
	user, err := s.validator.ValidateCreate(req)
	if err != nil {
		return "", err
	}
	if _, err := s.backend.Create(ctx, user); err != nil {
		logger.GlobalLogger.Errorf("creating user %s: %v", user.Email, err)
		return "", apperrors.WithFallback(err, msgUserNotSaved)
	}
	s.activity.Record(ctx, models.ActionCreate, models.EntityUser, "", user.Email)
	return msgUserCreated, nil
}

// Update keeps the current password when none is given.
func (s *UserService) Update(ctx context.Context, id string, req *models.UserRequest) (string, error) {
	user, err := s.validator.ValidateUpdate(req)
	if err != nil {
		return "", err
	}
	if _, err := s.backend.Update(ctx, id, user); err != nil {
		logger.GlobalLogger.Errorf("updating user %s: %v", id, err)
		return "", apperrors.WithFallback(err, msgUserNotSaved)
	}
	s.activity.Record(ctx, models.ActionUpdate, models.EntityUser, id, user.Email)
	return msgUserUpdated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) (string, error) {
	if _, err := s.backend.Delete(ctx, id); err != nil {
		logger.GlobalLogger.Errorf("deleting user %s: %v", id, err)
		return "", apperrors.WithFallback(err, msgUserNotDelete)
	}
	s.activity.Record(ctx, models.ActionDelete, models.EntityUser, id, "")
	return msgUserDeleted, nil
}
