package cache

import (
	"context"
	"errors"

	"gastrobot/pkg/redis"
)

type redisCache struct {
	client redis.Client
}

// NewRedis stores entries without expiry; entries are replaced wholesale by the next write.
func NewRedis(client redis.Client) ICache {
	return &redisCache{client: client}
}

func (c *redisCache) SaveObj(ctx context.Context, key string, value interface{}) error {
	return c.client.SaveObj(ctx, key, value, 0)
}

func (c *redisCache) GetObj(ctx context.Context, key string, value interface{}) error {
	err := c.client.FindObj(ctx, key, value)
	if errors.Is(err, redis.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, key)
}

func (c *redisCache) Mutate(ctx context.Context, key string, fn func(cur []byte) ([]byte, error)) error {
	return c.client.Mutate(ctx, key, fn)
}
