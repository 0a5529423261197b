package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const presignKeyPrefix = "presign:"

// PresignCache memoizes presigned URLs per storage key. The TTL must stay
// safely below the presign TTL so a cached URL never outlives its signature.
type PresignCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewPresignCache(client redis.UniversalClient, presignTTL time.Duration) *PresignCache {
	return &PresignCache{
		client: client,
		ttl:    presignTTL * 8 / 10,
	}
}

// Get returns the cached URL for key, or "" on miss. Cache errors are
// reported as misses: the cache is an optimization, never a dependency.
func (c *PresignCache) Get(ctx context.Context, key string) string {
	url, err := c.client.Get(ctx, presignKeyPrefix+key).Result()
	if err != nil {
		return ""
	}
	return url
}

func (c *PresignCache) Set(ctx context.Context, key string, url string) {
	c.client.Set(ctx, presignKeyPrefix+key, url, c.ttl)
}

// Invalidate drops the cached URL for a key, used after the underlying
// object is removed.
func (c *PresignCache) Invalidate(ctx context.Context, key string) {
	c.client.Del(ctx, presignKeyPrefix+key)
}
