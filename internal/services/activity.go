package services

import (
	"context"
	"time"

	"karttem-admin/internal/models"
	"karttem-admin/internal/repositories"
	"karttem-admin/pkg/logger"
)

type actorKey struct{}

// WithActor attaches the signed-in user to ctx so mutations can be audited.
func WithActor(ctx context.Context, user models.SessionUser) context.Context {
	return context.WithValue(ctx, actorKey{}, user)
}

func ActorFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(actorKey{}).(models.SessionUser)
	return user, ok
}

// ActivityRecorder writes audit entries. Failures are logged and never fail the request.
type ActivityRecorder struct {
	repo repositories.ActivityRepository
}

func NewActivityRecorder(repo repositories.ActivityRepository) *ActivityRecorder {
	if repo == nil {
		repo = repositories.NewNoopActivityRepository()
	}
	return &ActivityRecorder{repo: repo}
}

func (r *ActivityRecorder) Record(ctx context.Context, action, entity, entityID, summary string) {
	entry := &models.Activity{
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}
	if actor, ok := ActorFromContext(ctx); ok {
		entry.UserID = actor.ID
		entry.UserEmail = actor.Email
	}
	if err := r.repo.Record(ctx, entry); err != nil {
		logger.GlobalLogger.Warnf("failed to record %s %s activity: %v", action, entity, err)
	}
}

func (r *ActivityRecorder) Recent(ctx context.Context, limit int) []models.Activity {
	entries, err := r.repo.Recent(ctx, limit)
	if err != nil {
		logger.GlobalLogger.Warnf("failed to load recent activity: %v", err)
		return []models.Activity{}
	}
	return entries
}
