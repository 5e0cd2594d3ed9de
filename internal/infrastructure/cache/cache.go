package cache

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// Cache stores lookups that rarely change, such as the destination list.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Remove(key string)
}

// Backends accepted by New.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNoOp   = "noop"
)

// Config selects the cache implementation. A zero TTL disables caching.
type Config struct {
	Backend   string
	MaxSize   int
	TTL       time.Duration
	RedisURL  string
	KeyPrefix string
}

// New builds the cache cfg asks for. An empty backend means memory; a memory
// cache without a size is disabled.
func New[V any](cfg Config) (Cache[V], error) {
	if cfg.TTL <= 0 {
		return NoOpCache[V]{}, nil
	}
	switch cfg.Backend {
	case "", BackendMemory:
		if cfg.MaxSize <= 0 {
			return NoOpCache[V]{}, nil
		}
		c, err := NewMemoryCache[V](cfg.MaxSize, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		c, err := NewRedisCache[V](cfg.RedisURL, cfg.KeyPrefix, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendNoOp:
		return NoOpCache[V]{}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}

// MemoryCache is a size-bounded LRU whose entries also expire after a TTL.
type MemoryCache[V any] struct {
	cache *lru.Cache
	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex
}

type cacheEntry[V any] struct {
	value     V
	expiresAt time.Time
}

func NewMemoryCache[V any](maxSize int, ttl time.Duration) (*MemoryCache[V], error) {
	c, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &MemoryCache[V]{
		cache: c,
		ttl:   ttl,
		now:   time.Now,
	}, nil
}

func (c *MemoryCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	val, found := c.cache.Get(key)
	if !found {
		return zero, false
	}

	entry := val.(cacheEntry[V])
	if c.now().After(entry.expiresAt) {
		// Expired
		c.cache.Remove(key)
		return zero, false
	}
	return entry.value, true
}

func (c *MemoryCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Add(key, cacheEntry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	})
}

func (c *MemoryCache[V]) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Remove(key)
}

// Len reports the number of entries, expired ones included.
func (c *MemoryCache[V]) Len() int {
	return c.cache.Len()
}

// NoOpCache disables caching.
type NoOpCache[V any] struct{}

func (NoOpCache[V]) Get(key string) (V, bool) {
	var zero V
	return zero, false // Always cache miss
}

func (NoOpCache[V]) Set(key string, value V) {}

func (NoOpCache[V]) Remove(key string) {}
