package cache

import (
	"context"
	"slices"
	"time"
)

type memoryItem struct {
	pool  *MemoryPool
	key   string
	value []byte
	hit   bool
	ttl   time.Duration
}

func (i *memoryItem) Key() string   { return i.key }
func (i *memoryItem) Value() []byte { return i.value }
func (i *memoryItem) IsHit() bool   { return i.hit }

func (i *memoryItem) Set(value []byte) Item {
	i.value = slices.Clone(value)
	return i
}

func (i *memoryItem) ExpiresAfter(ttl time.Duration) Item {
	i.ttl = ttl
	return i
}

// MemoryPool is an in-memory ItemPoolCache bounded by an LRU.
type MemoryPool struct {
	lru *LRUCache[string, []byte]
}

// NewMemoryPool creates an item pool holding at most capacity entries.
func NewMemoryPool(capacity int, opts ...LRUOption) *MemoryPool {
	return &MemoryPool{lru: NewLRUCache[string, []byte](capacity, opts...)}
}

// GetItem returns the item for key; on a miss the item is empty and IsHit is false.
func (p *MemoryPool) GetItem(_ context.Context, key string) (Item, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	item := &memoryItem{pool: p, key: key}
	if v, ok := p.lru.Get(key); ok {
		item.value = slices.Clone(v)
		item.hit = true
	}
	return item, nil
}

func (p *MemoryPool) HasItem(_ context.Context, key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}
	return p.lru.Contains(key), nil
}

// Save persists an item obtained from this pool.
func (p *MemoryPool) Save(_ context.Context, item Item) error {
	mi, ok := item.(*memoryItem)
	if !ok || mi.pool != p {
		return ErrForeignItem
	}
	p.lru.PutTTL(mi.key, slices.Clone(mi.value), mi.ttl)
	mi.hit = true
	return nil
}

func (p *MemoryPool) DeleteItem(_ context.Context, key string) error {
	p.lru.Remove(key)
	return nil
}

func (p *MemoryPool) Clear(context.Context) error {
	p.lru.Clear()
	return nil
}

var _ ItemPoolCache = (*MemoryPool)(nil)
