package cache

import (
	"context"
	"time"
)

// interface for basic cache operations.
type CacheOperations interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// interface for keys grouped under an index set.
type IndexedOperations interface {
	SetIndexed(ctx context.Context, key, indexKey string, data []byte, expiration time.Duration) error
	GetBytes(ctx context.Context, key string) ([]byte, error)
	InvalidateIndex(ctx context.Context, indexKey string) (int64, error)
}
