package repositories

import (
	"context"
	"errors"
	"time"

	"karttem-admin/pkg/cache"
	"karttem-admin/pkg/inmobiliaria"
	"karttem-admin/pkg/logger"
)

type listingCache struct {
	tiered *cache.Tiered
	ttl    time.Duration
}

// NewListingCache caches property lists in memory and in Redis.
// Cache failures are logged and treated as misses.
func NewListingCache(tiered *cache.Tiered, ttl time.Duration) ListingCache {
	return &listingCache{tiered: tiered, ttl: ttl}
}

func (c *listingCache) Get(ctx context.Context, scope string) ([]inmobiliaria.Property, bool) {
	var properties []inmobiliaria.Property
	err := c.tiered.Get(ctx, cache.PropertyListKey(scope), &properties)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logger.GlobalLogger.Warnf("property list cache read failed for %q: %v", scope, err)
		}
		return nil, false
	}
	return properties, true
}

func (c *listingCache) Set(ctx context.Context, scope string, properties []inmobiliaria.Property) {
	if properties == nil {
		properties = []inmobiliaria.Property{}
	}
	if err := c.tiered.Set(ctx, cache.PropertyListKey(scope), properties, c.ttl); err != nil {
		logger.GlobalLogger.Warnf("property list cache write failed for %q: %v", scope, err)
	}
}

func (c *listingCache) Invalidate(ctx context.Context) error {
	return c.tiered.Invalidate(ctx)
}
