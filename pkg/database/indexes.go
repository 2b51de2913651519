package database

import (
	"context"
	"time"

	"karttem-admin/pkg/logger"
	"karttem-admin/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ActivityCollection holds the panel's audit trail.
const ActivityCollection = "activity"

// create indexes for the activity collection: newest-first listing and per-entity lookups.
func CreateActivityIndexes(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(ActivityCollection)
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "entity", Value: 1}, {Key: "entity_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", ActivityCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", ActivityCollection).Inc()
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("MongoDB indexes created successfully.")
	return nil
}
