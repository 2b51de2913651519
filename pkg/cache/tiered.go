package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"karttem-admin/pkg/logger"

	"github.com/karlseguin/ccache/v3"
)

// Tiered keeps a short-lived in-process copy in front of a Redis index.
// Values are stored as JSON so both tiers hold the same bytes.
type Tiered struct {
	local    *ccache.Cache[[]byte]
	remote   IndexedOperations
	indexKey string
	localTTL time.Duration
}

func NewTiered(remote IndexedOperations, indexKey string, localTTL time.Duration) *Tiered {
	return &Tiered{
		local:    ccache.New(ccache.Configure[[]byte]().MaxSize(500)),
		remote:   remote,
		indexKey: indexKey,
		localTTL: localTTL,
	}
}

// Get loads key into dest, first from memory and then from Redis. Returns ErrMiss when neither has it.
func (t *Tiered) Get(ctx context.Context, key string, dest interface{}) error {
	if item := t.local.Get(key); item != nil && !item.Expired() {
		if err := json.Unmarshal(item.Value(), dest); err == nil {
			recordHit("local")
			return nil
		}
		t.local.Delete(key)
	}

	data, err := t.remote.GetBytes(ctx, key)
	if err != nil {
		if errors.Is(err, ErrMiss) {
			recordMiss()
		}
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.GlobalLogger.Warnf("discarding unreadable cache entry %s: %v", key, err)
		recordMiss()
		return ErrMiss
	}

	t.local.Set(key, data, t.localTTL)
	recordHit("redis")
	return nil
}

// Set stores value in both tiers.
func (t *Tiered) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return NewCacheError("marshal", err)
	}
	t.local.Set(key, data, t.localTTL)
	return t.remote.SetIndexed(ctx, key, t.indexKey, data, expiration)
}

// Invalidate drops every entry of the index from both tiers.
func (t *Tiered) Invalidate(ctx context.Context) error {
	t.local.Clear()
	_, err := t.remote.InvalidateIndex(ctx, t.indexKey)
	return err
}

// Stop releases the in-process cache's background worker.
func (t *Tiered) Stop() {
	t.local.Stop()
}
