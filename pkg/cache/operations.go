package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"karttem-admin/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// Store runs cache operations against a Redis client.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// store a value in the cache with the given key and expiration time.
func (s *Store) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		IncrementError("set_marshal")
		logger.GlobalLogger.Errorf("failed to marshal value for key %s: %v", key, err)
		return NewCacheError("marshal", err)
	}
	start := time.Now()
	err = s.client.Set(ctx, key, data, expiration).Err()
	RecordOperationDuration("set", start)
	if err != nil {
		IncrementError("set")
		logger.GlobalLogger.Errorf("failed to set key %s: %v", key, err)
		return NewCacheError("set", err)
	}
	return nil
}

// retrieve a value from the cache and unmarshal it into dest. Returns ErrMiss when absent.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.GetBytes(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		IncrementError("get_unmarshal")
		logger.GlobalLogger.Errorf("failed to unmarshal value for key %s: %v", key, err)
		return NewCacheError("unmarshal", err)
	}
	return nil
}

// retrieve the raw value stored under key. Returns ErrMiss when absent.
func (s *Store) GetBytes(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	val, err := s.client.Get(ctx, key).Bytes()
	RecordOperationDuration("get", start)
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		IncrementError("get")
		logger.GlobalLogger.Errorf("failed to get key %s: %v", key, err)
		return nil, NewCacheError("get", err)
	}
	return val, nil
}

// remove a key from the cache.
func (s *Store) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.client.Del(ctx, key).Err()
	RecordOperationDuration("delete", start)
	if err != nil {
		IncrementError("delete")
		logger.GlobalLogger.Errorf("failed to delete key %s: %v", key, err)
		return NewCacheError("delete", err)
	}
	return nil
}

// store data under key and register key in indexKey using a Lua script.
func (s *Store) SetIndexed(ctx context.Context, key, indexKey string, data []byte, expiration time.Duration) error {
	seconds := int(expiration.Seconds())
	if seconds < 1 {
		seconds = 1
	}
	start := time.Now()
	err := setIndexedScript.Run(ctx, s.client, []string{key, indexKey}, data, seconds).Err()
	RecordOperationDuration("set_indexed", start)
	if err != nil {
		IncrementError("set_indexed")
		logger.GlobalLogger.Errorf("failed to execute set indexed script for key %s: %v", key, err)
		return NewCacheError("set_indexed", err)
	}
	return nil
}

// delete every key registered in indexKey using a Lua script.
func (s *Store) InvalidateIndex(ctx context.Context, indexKey string) (int64, error) {
	start := time.Now()
	removed, err := invalidateIndexScript.Run(ctx, s.client, []string{indexKey}).Int64()
	RecordOperationDuration("invalidate_index", start)
	if err != nil {
		IncrementError("invalidate_index")
		logger.GlobalLogger.Errorf("failed to execute invalidate index script for %s: %v", indexKey, err)
		return 0, NewCacheError("invalidate_index", err)
	}
	return removed, nil
}
