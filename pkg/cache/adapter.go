package cache

import (
	"context"
	"time"
)

// KeyValueAdapter bridges a KeyValueCache to Handle.
type KeyValueAdapter struct {
	store KeyValueCache
	caps  Capabilities
}

// NewKeyValueAdapter wraps store. Capabilities are read once and used to
// clamp TTLs; compatibility checks belong to Classify.
func NewKeyValueAdapter(store KeyValueCache) *KeyValueAdapter {
	return &KeyValueAdapter{store: store, caps: store.Capabilities()}
}

// Unwrap returns the wrapped backend.
func (a *KeyValueAdapter) Unwrap() KeyValueCache { return a.store }

func (a *KeyValueAdapter) Fetch(ctx context.Context, id string) ([]byte, bool, error) {
	return a.store.Get(ctx, id)
}

func (a *KeyValueAdapter) Contains(ctx context.Context, id string) (bool, error) {
	return a.store.Has(ctx, id)
}

func (a *KeyValueAdapter) Save(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	if a.caps.MaxTTL > 0 && (ttl <= 0 || ttl > a.caps.MaxTTL) {
		ttl = a.caps.MaxTTL
	}
	return a.store.Set(ctx, id, data, ttl)
}

func (a *KeyValueAdapter) Delete(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

func (a *KeyValueAdapter) Flush(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// ItemPoolAdapter bridges an ItemPoolCache to Handle.
type ItemPoolAdapter struct {
	pool ItemPoolCache
}

// NewItemPoolAdapter wraps pool.
func NewItemPoolAdapter(pool ItemPoolCache) *ItemPoolAdapter {
	return &ItemPoolAdapter{pool: pool}
}

// Unwrap returns the wrapped pool.
func (a *ItemPoolAdapter) Unwrap() ItemPoolCache { return a.pool }

func (a *ItemPoolAdapter) Fetch(ctx context.Context, id string) ([]byte, bool, error) {
	item, err := a.pool.GetItem(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if !item.IsHit() {
		return nil, false, nil
	}
	return item.Value(), true, nil
}

func (a *ItemPoolAdapter) Contains(ctx context.Context, id string) (bool, error) {
	return a.pool.HasItem(ctx, id)
}

func (a *ItemPoolAdapter) Save(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	item, err := a.pool.GetItem(ctx, id)
	if err != nil {
		return err
	}
	item = item.Set(data)
	if ttl > 0 {
		item = item.ExpiresAfter(ttl)
	}
	return a.pool.Save(ctx, item)
}

func (a *ItemPoolAdapter) Delete(ctx context.Context, id string) error {
	return a.pool.DeleteItem(ctx, id)
}

func (a *ItemPoolAdapter) Flush(ctx context.Context) error {
	return a.pool.Clear(ctx)
}

var (
	_ Handle = (*KeyValueAdapter)(nil)
	_ Handle = (*ItemPoolAdapter)(nil)
)
