package cache

import (
	"context"
	"encoding/json"
	"time"

	"focusflow-api/core/config"
	"focusflow-api/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON cache over Redis. All operations are best-effort:
// a Redis outage degrades to cache misses, never to request failures.
type Cache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{client: client}
}

// Ping verifies connectivity at startup.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// GetJSON reads key and unmarshals into dest. Returns false on miss or any
// Redis/decoding failure.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Cache:GetJSON", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("Cache:GetJSON:Unmarshal", "key", key, "error", err)
		return false
	}
	return true
}

// SetJSON marshals value and stores it under key with the given TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Cache:SetJSON:Marshal", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logger.Warn("Cache:SetJSON", "key", key, "error", err)
	}
}

func (c *Cache) Close() error {
	return c.client.Close()
}
