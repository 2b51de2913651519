package repositories

import (
	"context"
	"time"

	"karttem-admin/internal/models"
	"karttem-admin/pkg/inmobiliaria"
)

// SessionRepository stores panel sessions.
type SessionRepository interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// ListingCache keeps property lists per scope (all, a status, inactive).
type ListingCache interface {
	Get(ctx context.Context, scope string) ([]inmobiliaria.Property, bool)
	Set(ctx context.Context, scope string, properties []inmobiliaria.Property)
	Invalidate(ctx context.Context) error
}

// ActivityRepository persists the admin audit trail.
type ActivityRepository interface {
	Record(ctx context.Context, activity *models.Activity) error
	Recent(ctx context.Context, limit int) ([]models.Activity, error)
}
