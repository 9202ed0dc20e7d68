package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Store is the key value surface the cache needs. The redis client satisfies
// it; tests plug failing stores to exercise the degraded paths.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// Cache is a cache aside layer over a Store. Every store failure degrades to
// a miss: a broken redis slows the API down but never breaks it.
type Cache struct {
	store Store
}

// NewCache creates the cache. A nil store yields an always-miss cache.
func NewCache(store Store) *Cache {
	return &Cache{store: store}
}

// GetOrCompute returns the cached value under key, or runs compute and caches
// its result. Compute errors are returned as is and nothing is cached for
// them. Nil results marshal to "null" and are also not cached, so a later
// refresh can still populate the key.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if c.store != nil {
		if cached, err := c.store.Get(ctx, key); err == nil {
			var value T
			if err := json.Unmarshal([]byte(cached), &value); err == nil {
				return value, nil
			}
			// Stale encoding, fall through and recompute.
		}
	}

	value, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	if c.store != nil {
		if raw, err := json.Marshal(value); err == nil && string(raw) != "null" {
			c.store.Set(ctx, key, string(raw), ttl)
		}
	}

	return value, nil
}

// InvalidatePrefix drops every cached entry under a prefix.
// Store failures are swallowed: at worst a stale entry lives out its TTL.
func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) {
	if c.store == nil {
		return
	}
	c.store.DeleteByPrefix(ctx, prefix)
}
