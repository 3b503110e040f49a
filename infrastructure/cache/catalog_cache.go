package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"enthro-backend/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// ICatalogCache is a short-TTL read-through cache over single-item catalog
// lookups. A nil Redis client disables it; every method degrades to a miss.
type ICatalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
	Delete(ctx context.Context, keys ...string)
}

type CatalogCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewCatalogCache(redisClient *redis.Client, ttl time.Duration) ICatalogCache {
	return &CatalogCache{redisClient: redisClient, ttl: ttl}
}

func (c *CatalogCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c.redisClient == nil {
		return false
	}
	raw, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.GetLogger().WithField("error", err).Warn("Cache read failed")
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cache entry corrupt")
		return false
	}
	return true
}

func (c *CatalogCache) Set(ctx context.Context, key string, value interface{}) {
	if c.redisClient == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cache marshal failed")
		return
	}
	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cache write failed")
	}
}

func (c *CatalogCache) Delete(ctx context.Context, keys ...string) {
	if c.redisClient == nil || len(keys) == 0 {
		return
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cache invalidation failed")
	}
}
