package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gastrobot/pkg/redis"
)

type entry struct {
	Title string `json:"title"`
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	var got entry
	require.ErrorIs(t, c.GetObj(ctx, "k", &got), ErrNotFound)

	require.NoError(t, c.SaveObj(ctx, "k", entry{Title: "pasta"}))
	require.NoError(t, c.GetObj(ctx, "k", &got))
	assert.Equal(t, "pasta", got.Title)

	require.NoError(t, c.SaveObj(ctx, "k", entry{Title: "pizza"}))
	require.NoError(t, c.GetObj(ctx, "k", &got))
	assert.Equal(t, "pizza", got.Title)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.ErrorIs(t, c.GetObj(ctx, "k", &got), ErrNotFound)
}

func TestMemoryConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("chat:%d", i%5)
			_ = c.SaveObj(ctx, key, map[int64]string{int64(i): "t"})
			var m map[int64]string
			_ = c.GetObj(ctx, key, &m)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		var m map[int64]string
		require.NoError(t, c.GetObj(ctx, fmt.Sprintf("chat:%d", i), &m))
		assert.Len(t, m, 1)
	}
}

func TestMemoryMutate(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	errSkip := errors.New("skip")

	var seen []byte
	require.NoError(t, c.Mutate(ctx, "k", func(cur []byte) ([]byte, error) {
		seen = cur
		return json.Marshal(entry{Title: "stew"})
	}))
	assert.Nil(t, seen, "absent key")

	var got entry
	require.NoError(t, c.GetObj(ctx, "k", &got))
	assert.Equal(t, "stew", got.Title)

	err := c.Mutate(ctx, "k", func([]byte) ([]byte, error) { return nil, errSkip })
	require.ErrorIs(t, err, errSkip)
	require.NoError(t, c.GetObj(ctx, "k", &got), "failed mutation keeps the value")

	require.NoError(t, c.Mutate(ctx, "k", func([]byte) ([]byte, error) { return nil, nil }))
	assert.ErrorIs(t, c.GetObj(ctx, "k", &got), ErrNotFound)
}

func TestMemoryMutateSerializes(t *testing.T) {
	ctx := context.Background()
	c := NewMemory()
	require.NoError(t, c.SaveObj(ctx, "n", 0))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Mutate(ctx, "n", func(cur []byte) ([]byte, error) {
				var n int
				if err := json.Unmarshal(cur, &n); err != nil {
					return nil, err
				}
				return json.Marshal(n + 1)
			})
		}()
	}
	wg.Wait()

	var n int
	require.NoError(t, c.GetObj(ctx, "n", &n))
	assert.Equal(t, 100, n)
}

type fakeRedis struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (f *fakeRedis) SaveObj(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = b
	return nil
}

func (f *fakeRedis) FindObj(_ context.Context, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.data[key]
	if !ok {
		return redis.ErrNotFound
	}
	return json.Unmarshal(b, value)
}

func (f *fakeRedis) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

func (f *fakeRedis) Mutate(_ context.Context, key string, fn func(cur []byte) ([]byte, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := fn(f.data[key])
	if err != nil {
		return err
	}
	if next == nil {
		delete(f.data, key)
		return nil
	}
	f.data[key] = next
	return nil
}

func (f *fakeRedis) Close() error { return nil }

func TestRedisBackendMapsNotFound(t *testing.T) {
	ctx := context.Background()
	c := NewRedis(&fakeRedis{data: map[string][]byte{}})

	var got entry
	require.ErrorIs(t, c.GetObj(ctx, "missing", &got), ErrNotFound)

	require.NoError(t, c.SaveObj(ctx, "k", entry{Title: "soup"}))
	require.NoError(t, c.GetObj(ctx, "k", &got))
	assert.Equal(t, "soup", got.Title)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.ErrorIs(t, c.GetObj(ctx, "k", &got), ErrNotFound)
}
