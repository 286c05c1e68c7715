package cache_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
)

func TestValidateKey(t *testing.T) {
	t.Parallel()

	assert.NoError(t, cache.ValidateKey("dd:abc"))
	assert.ErrorIs(t, cache.ValidateKey(""), cache.ErrInvalidKey)
	assert.ErrorIs(t, cache.ValidateKey("   "), cache.ErrInvalidKey)
	assert.ErrorIs(t, cache.ValidateKey("a\nb"), cache.ErrInvalidKey)
	assert.ErrorIs(t, cache.ValidateKey(strings.Repeat("k", cache.MaxKeyLength+1)), cache.ErrKeyTooLong)
}

func TestMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("values are copied", func(t *testing.T) {
		t.Parallel()
		m := cache.NewMemory(4)

		in := []byte("abc")
		require.NoError(t, m.Set(ctx, "k", in, 0))
		in[0] = 'x'

		out, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("abc"), out)

		out[0] = 'y'
		again, _, _ := m.Get(ctx, "k")
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("invalid key", func(t *testing.T) {
		t.Parallel()
		m := cache.NewMemory(4)

		_, _, err := m.Get(ctx, "")
		assert.ErrorIs(t, err, cache.ErrInvalidKey)
		assert.ErrorIs(t, m.Set(ctx, "", nil, 0), cache.ErrInvalidKey)
		_, err = m.Has(ctx, "")
		assert.ErrorIs(t, err, cache.ErrInvalidKey)
	})

	t.Run("capabilities", func(t *testing.T) {
		t.Parallel()
		caps := cache.NewMemory(4).Capabilities()
		assert.True(t, caps.Supports(cache.TypeBytes))
		assert.False(t, caps.Supports(cache.TypeObject))
		assert.True(t, caps.AcceptsKeyLength(cache.RequiredKeyLength))
		assert.False(t, caps.AcceptsKeyLength(cache.MaxKeyLength+1))
	})
}

func TestMemoryPool(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("miss then save", func(t *testing.T) {
		t.Parallel()
		p := cache.NewMemoryPool(4)

		item, err := p.GetItem(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "k", item.Key())
		assert.False(t, item.IsHit())
		assert.Nil(t, item.Value())

		require.NoError(t, p.Save(ctx, item.Set([]byte("v")).ExpiresAfter(time.Minute)))
		assert.True(t, item.IsHit())

		again, err := p.GetItem(ctx, "k")
		require.NoError(t, err)
		assert.True(t, again.IsHit())
		assert.Equal(t, []byte("v"), again.Value())

		ok, err := p.HasItem(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("foreign item rejected", func(t *testing.T) {
		t.Parallel()
		a := cache.NewMemoryPool(4)
		b := cache.NewMemoryPool(4)

		item, err := a.GetItem(ctx, "k")
		require.NoError(t, err)
		assert.ErrorIs(t, b.Save(ctx, item), cache.ErrForeignItem)
	})

	t.Run("unsaved changes are not visible", func(t *testing.T) {
		t.Parallel()
		p := cache.NewMemoryPool(4)

		item, err := p.GetItem(ctx, "k")
		require.NoError(t, err)
		item.Set([]byte("v"))

		ok, err := p.HasItem(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete and clear", func(t *testing.T) {
		t.Parallel()
		p := cache.NewMemoryPool(4)

		for _, k := range []string{"a", "b"} {
			item, err := p.GetItem(ctx, k)
			require.NoError(t, err)
			require.NoError(t, p.Save(ctx, item.Set([]byte(k))))
		}

		require.NoError(t, p.DeleteItem(ctx, "a"))
		ok, _ := p.HasItem(ctx, "a")
		assert.False(t, ok)

		require.NoError(t, p.Clear(ctx))
		ok, _ = p.HasItem(ctx, "b")
		assert.False(t, ok)
	})
}

func TestStatic_IgnoresTTL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := cache.NewStatic()
	require.NoError(t, s.Save(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(time.Millisecond)

	v, ok, err := s.Fetch(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)
}
