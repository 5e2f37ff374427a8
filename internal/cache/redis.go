package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pokemoves:pokeapi:"

// RedisCache shares fetched pokeapi responses between several harvesters or api instances.
type RedisCache struct {
	client  *redis.Client
	TTL     time.Duration
	Timeout time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, TTL: ttl, Timeout: 3 * time.Second}
}

func (c *RedisCache) Set(key string, value any) error {
	slog.Debug("writing to redis cache", slog.String("key", key))
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	return c.client.Set(ctx, redisKeyPrefix+key, bytes, c.TTL).Err()
}

func (c *RedisCache) Get(key string, value any) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()
	bytes, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		slog.Debug("not found in redis cache", slog.String("key", key))
		return false, nil
	}
	if err != nil {
		slog.Error("checking redis cache", slog.String("key", key), slog.Any("error", err))
		return false, err
	}
	slog.Debug("found in redis cache", slog.String("key", key))
	return true, json.Unmarshal(bytes, value)
}
