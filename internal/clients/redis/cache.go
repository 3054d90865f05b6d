package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vendora/vendora-backend/internal/platform/logger"
)

// Cache is a thin JSON read-through cache over redis. Construction fails
// when REDIS_ADDR is unset or the server is unreachable; callers treat the
// cache as optional and run without one.
type Cache struct {
	client *goredis.Client
	log    *logger.Logger
}

func NewCache(log *logger.Logger) (*Cache, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR not set")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Cache{client: client, log: log.With("client", "RedisCache")}, nil
}

// GetJSON unmarshals the cached value at key into dest. The boolean is
// false on a miss; cache errors are logged and reported as misses.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		c.log.Warn("cache get failed", "key", key, "error", err)
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("cache entry corrupt", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	raw, err := json.Marshal(val)
	if err != nil {
		c.log.Warn("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}

// Delete drops the given keys so the next read goes back to the database.
// A failed delete is logged and left to expire with the entry's TTL.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("cache delete failed", "keys", keys, "error", err)
	}
}

func (c *Cache) Close() error {
	return c.client.Close()
}
