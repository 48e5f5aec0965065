package cache

import (
	"context"
	"fmt"
	"time"
)

// ListTTL is how long a cached list response stays fresh. Entity writes bump
// a per-entity version key, so stale pages are abandoned immediately rather
// than waiting for expiry.
const ListTTL = 60 * time.Second

// ContentCache caches serialized public list responses (blogs, activities,
// team members) in Redis. Keys carry a per-entity version number; Invalidate
// increments the version, which orphans every cached page of that entity.
type ContentCache struct {
	redis *RedisClient
}

// NewContentCache creates a new ContentCache.
func NewContentCache(redis *RedisClient) *ContentCache {
	return &ContentCache{redis: redis}
}

// versionKey is the per-entity generation counter.
func (c *ContentCache) versionKey(entity string) string {
	return fmt.Sprintf("content:ver:%s", entity)
}

// listKey builds the cache key for one page of one entity listing.
func (c *ContentCache) listKey(entity string, version int64, page, limit int, filter string) string {
	return fmt.Sprintf("content:%s:v%d:p%d:l%d:s%s", entity, version, page, limit, filter)
}

// version reads the current generation for an entity; missing key means
// generation zero.
func (c *ContentCache) version(ctx context.Context, entity string) (int64, error) {
	raw, err := c.redis.Get(ctx, c.versionKey(entity))
	if err != nil {
		return 0, nil
	}
	var v int64
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return 0, nil
	}
	return v, nil
}

// GetList returns the cached JSON body for a list request, or ok=false on any
// miss or Redis failure. Cache failures never fail the request.
func (c *ContentCache) GetList(ctx context.Context, entity string, page, limit int, filter string) ([]byte, bool) {
	ver, _ := c.version(ctx, entity)
	body, err := c.redis.Get(ctx, c.listKey(entity, ver, page, limit, filter))
	if err != nil {
		return nil, false
	}
	return []byte(body), true
}

// SetList stores the JSON body for a list request.
func (c *ContentCache) SetList(ctx context.Context, entity string, page, limit int, filter string, body []byte) {
	ver, _ := c.version(ctx, entity)
	_ = c.redis.Set(ctx, c.listKey(entity, ver, page, limit, filter), string(body), ListTTL)
}

// Invalidate bumps the entity's generation so all cached pages become
// unreachable. Called after every create, update, or delete.
func (c *ContentCache) Invalidate(ctx context.Context, entity string) {
	_, _ = c.redis.Incr(ctx, c.versionKey(entity))
}
