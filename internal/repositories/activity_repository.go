package repositories

import (
	"context"
	"time"

	"karttem-admin/internal/models"
	"karttem-admin/internal/utils"
	"karttem-admin/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxActivityPage = 50

type activityRepository struct {
	collection *mongo.Collection
}

func NewActivityRepository(db database.Database) ActivityRepository {
	return &activityRepository{
		collection: db.GetCollection(database.ActivityCollection),
	}
}

func (r *activityRepository) Record(ctx context.Context, activity *models.Activity) error {
	if activity.ID.IsZero() {
		activity.ID = primitive.NewObjectID()
	}
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now().UTC()
	}

	start := time.Now()
	_, err := r.collection.InsertOne(ctx, activity)
	utils.RecordMongoOperationDuration("insert", database.ActivityCollection, start)
	if err != nil {
		utils.RecordMongoError("insert", database.ActivityCollection)
		return err
	}
	return nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(clampLimit(limit)))

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	utils.RecordMongoOperationDuration("find", database.ActivityCollection, start)
	if err != nil {
		utils.RecordMongoError("find", database.ActivityCollection)
		return nil, err
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		utils.RecordMongoError("decode", database.ActivityCollection)
		return nil, err
	}
	return activities, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > maxActivityPage {
		return maxActivityPage
	}
	return limit
}

// noopActivityRepository is used when no MongoDB is configured.
type noopActivityRepository struct{}

func NewNoopActivityRepository() ActivityRepository {
	return noopActivityRepository{}
}

func (noopActivityRepository) Record(context.Context, *models.Activity) error {
	return nil
}

func (noopActivityRepository) Recent(context.Context, int) ([]models.Activity, error) {
	return []models.Activity{}, nil
}
