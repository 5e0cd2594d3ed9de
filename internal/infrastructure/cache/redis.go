package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisOpTimeout bounds a single cache round trip; a slow cache is a miss.
const redisOpTimeout = 500 * time.Millisecond

// RedisCache shares lookups between processes, so repeated CLI runs reuse
// them. Values are stored as JSON under prefix+key.
type RedisCache[V any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache[V any](redisURL, prefix string, ttl time.Duration) (*RedisCache[V], error) {
	if redisURL == "" {
		return nil, errors.New("redis url must be provided")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisCache[V]{client: client, prefix: prefix, ttl: ttl}, nil
}

// Get treats any redis failure as a miss.
func (c *RedisCache[V]) Get(key string) (V, bool) {
	var zero V
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return zero, false
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, false
	}
	return v, true
}

func (c *RedisCache[V]) Set(key string, value V) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	c.client.Set(ctx, c.prefix+key, data, c.ttl)
}

func (c *RedisCache[V]) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	c.client.Unlink(ctx, c.prefix+key)
}

func (c *RedisCache[V]) Close() error {
	return c.client.Close()
}
