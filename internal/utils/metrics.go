package utils

import (
	"time"

	"karttem-admin/pkg/metrics"
)

func RecordMongoOperationDuration(operation, collection string, start time.Time) {
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues(operation, collection).Observe(duration)
}

func RecordMongoError(operation, collection string) {
	metrics.MongoErrorsTotal.WithLabelValues(operation, collection).Inc()
}

// RecordSessionRevoked counts a session ending for the given reason (logout, expired, unauthorized).
func RecordSessionRevoked(reason string) {
	metrics.SessionsRevokedTotal.WithLabelValues(reason).Inc()
}
