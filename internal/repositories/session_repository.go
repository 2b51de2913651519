package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"karttem-admin/internal/models"
	"karttem-admin/pkg/cache"
)

// ErrSessionNotFound is returned when a session expired or was revoked.
var ErrSessionNotFound = errors.New("session not found")

type sessionRepository struct {
	store *cache.Store
}

func NewSessionRepository(store *cache.Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session without id")
	}
	return r.store.Set(ctx, cache.SessionKey(session.ID), session, ttl)
}

func (r *sessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}
	var session models.Session
	err := r.store.Get(ctx, cache.SessionKey(id), &session)
	if errors.Is(err, cache.ErrMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, cache.SessionKey(id))
}
