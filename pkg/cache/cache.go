package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"gastrobot/pkg/config"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/redis"
)

var (
	Module = fx.Provide(New)

	ErrNotFound = errors.New("cache: key not found")
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type (
	Params struct {
		fx.In
		Lifecycle fx.Lifecycle
		Config    config.IConfig
		Logger    logger.Logger
	}

	// ICache is the per-key store behind conversation sessions and the result cache.
	// Values are JSON-encoded so both backends round-trip the same shapes.
	ICache interface {
		SaveObj(ctx context.Context, key string, value interface{}) error
		GetObj(ctx context.Context, key string, value interface{}) error
		Delete(ctx context.Context, key string) error
		// Mutate atomically replaces the raw JSON stored at key with fn's result.
		// cur is nil when the key is absent; a nil result deletes the key.
		// An error from fn leaves the key untouched and is returned as is.
		Mutate(ctx context.Context, key string, fn func(cur []byte) ([]byte, error)) error
	}

	cache struct {
		mu       sync.Mutex
		memCache *gocache.Cache
	}
)

func New(p Params) (ICache, error) {
	backend := p.Config.GetString("cache.backend")
	switch backend {
	case "", BackendMemory:
		p.Logger.Info(context.Background(), "cache: using in-memory backend")
		return NewMemory(), nil
	case BackendRedis:
		client, err := redis.New(redis.Params{Config: p.Config})
		if err != nil {
			p.Logger.Error(context.Background(), "cache: redis unavailable", zap.Error(err))
			return nil, err
		}
		p.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error { return client.Close() },
		})
		p.Logger.Info(context.Background(), "cache: using redis backend")
		return NewRedis(client), nil
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", backend)
	}
}

// NewMemory keeps entries in process memory without expiry.
func NewMemory() ICache {
	return &cache{
		memCache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (c *cache) SaveObj(_ context.Context, key string, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.memCache.Set(key, b, gocache.NoExpiration)
	return nil
}

func (c *cache) GetObj(_ context.Context, key string, value interface{}) error {
	cacheVal, ok := c.memCache.Get(key)
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(cacheVal.([]byte), value); err != nil {
		return fmt.Errorf("cache: unmarshal %s: %w", key, err)
	}
	return nil
}

func (c *cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.memCache.Delete(key)
	return nil
}

func (c *cache) Mutate(_ context.Context, key string, fn func(cur []byte) ([]byte, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var cur []byte
	if v, ok := c.memCache.Get(key); ok {
		cur = v.([]byte)
	}

	next, err := fn(cur)
	if err != nil {
		return err
	}
	if next == nil {
		c.memCache.Delete(key)
		return nil
	}
	c.memCache.Set(key, next, gocache.NoExpiration)
	return nil
}
