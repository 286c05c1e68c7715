package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
)

// handles returns one Handle per bridge, each backed by a fresh store.
func handles(clock *fakeClock) map[string]cache.Handle {
	return map[string]cache.Handle{
		"key-value": cache.NewKeyValueAdapter(cache.NewMemory(16, cache.WithClock(clock.Now))),
		"item-pool": cache.NewItemPoolAdapter(cache.NewMemoryPool(16, cache.WithClock(clock.Now))),
		"static":    cache.NewStatic(),
	}
}

func TestHandle_Contract(t *testing.T) {
	t.Parallel()

	for name, h := range handles(newFakeClock()) {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			data, ok, err := h.Fetch(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Nil(t, data)

			require.NoError(t, h.Save(ctx, "k", []byte("v"), time.Minute))

			data, ok, err = h.Fetch(ctx, "k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("v"), data)

			found, err := h.Contains(ctx, "k")
			require.NoError(t, err)
			assert.True(t, found)

			require.NoError(t, h.Delete(ctx, "k"))
			found, err = h.Contains(ctx, "k")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, h.Save(ctx, "a", []byte("1"), 0))
			require.NoError(t, h.Save(ctx, "b", []byte("2"), 0))
			require.NoError(t, h.Flush(ctx))

			_, ok, err = h.Fetch(ctx, "a")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestHandle_TTL(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"key-value", "item-pool"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			clock := newFakeClock()
			h := handles(clock)[name]

			require.NoError(t, h.Save(ctx, "k", []byte("v"), time.Minute))
			clock.Advance(time.Minute)

			_, ok, err := h.Fetch(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestKeyValueAdapter_ClampsTTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	store := limitedStore{
		Memory: cache.NewMemory(4, cache.WithClock(clock.Now)),
		caps: cache.Capabilities{
			SupportedTypes: map[string]bool{cache.TypeBytes: true},
			MaxTTL:         time.Minute,
		},
	}
	a := cache.NewKeyValueAdapter(store)
	assert.Equal(t, cache.KeyValueCache(store), a.Unwrap())

	require.NoError(t, a.Save(ctx, "forever", []byte("v"), 0))
	require.NoError(t, a.Save(ctx, "long", []byte("v"), time.Hour))

	clock.Advance(time.Minute)

	_, ok, err := a.Fetch(ctx, "forever")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = a.Fetch(ctx, "long")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemPoolAdapter_Unwrap(t *testing.T) {
	t.Parallel()

	pool := cache.NewMemoryPool(4)
	a := cache.NewItemPoolAdapter(pool)
	assert.Same(t, pool, a.Unwrap())
}
