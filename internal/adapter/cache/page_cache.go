package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PageCache stores raw page configuration documents in Redis so storefront
// renders skip the database on hot paths. Misses and Redis failures fall
// through to the repository; the cache is never load-bearing.
type PageCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewPageCache constructs a Redis-backed page cache.
func NewPageCache(client redis.UniversalClient, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

func pageKey(tenantID int64, slug string) string {
	return fmt.Sprintf("page_config:%d:%s", tenantID, slug)
}

// Get returns the cached document, or nil on miss or error.
func (c *PageCache) Get(ctx context.Context, tenantID int64, slug string) []byte {
	payload, err := c.client.Get(ctx, pageKey(tenantID, slug)).Bytes()
	if err != nil {
		return nil
	}
	return payload
}

// Set stores the document with the configured TTL.
func (c *PageCache) Set(ctx context.Context, tenantID int64, slug string, config []byte) error {
	if err := c.client.Set(ctx, pageKey(tenantID, slug), config, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache page config: %w", err)
	}
	return nil
}

// Invalidate drops the cached document after an admin edit.
func (c *PageCache) Invalidate(ctx context.Context, tenantID int64, slug string) error {
	if err := c.client.Del(ctx, pageKey(tenantID, slug)).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("invalidate page config: %w", err)
	}
	return nil
}
