package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ListCache holds serialized public list responses. Failures never surface
// to callers; a miss simply falls through to the database.
type ListCache interface {
	Load(ctx context.Context, key string, dst any) bool
	Store(ctx context.Context, key string, v any)
	Invalidate(ctx context.Context, key string)
}

// NewListCache returns a Redis-backed cache, or a no-op cache when rdb is nil.
func NewListCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) ListCache {
	if rdb == nil {
		return noopListCache{}
	}
	return &redisListCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With().Str("component", "list_cache").Logger(),
	}
}

type redisListCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func (c *redisListCache) Load(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, dropping")
		c.Invalidate(ctx, key)
		return false
	}
	return true
}

func (c *redisListCache) Store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (c *redisListCache) Invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
	}
}

type noopListCache struct{}

func (noopListCache) Load(context.Context, string, any) bool { return false }
func (noopListCache) Store(context.Context, string, any)     {}
func (noopListCache) Invalidate(context.Context, string)     {}
