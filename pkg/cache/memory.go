package cache

import (
	"context"
	"slices"
	"strings"
	"time"
)

// MaxKeyLength is the longest key accepted by the in-memory backends.
const MaxKeyLength = 512

// ValidateKey rejects empty keys, keys with line breaks and keys longer than
// MaxKeyLength.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	return nil
}

// Memory is an in-memory KeyValueCache bounded by an LRU.
type Memory struct {
	lru *LRUCache[string, []byte]
}

// NewMemory creates a key-value cache holding at most capacity entries.
func NewMemory(capacity int, opts ...LRUOption) *Memory {
	return &Memory{lru: NewLRUCache[string, []byte](capacity, opts...)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := ValidateKey(key); err != nil {
		return nil, false, err
	}
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	m.lru.PutTTL(key, slices.Clone(value), ttl)
	return nil
}

func (m *Memory) Has(_ context.Context, key string) (bool, error) {
	if err := ValidateKey(key); err != nil {
		return false, err
	}
	return m.lru.Contains(key), nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.lru.Clear()
	return nil
}

func (m *Memory) Capabilities() Capabilities {
	return Capabilities{
		SupportedTypes: map[string]bool{TypeBytes: true, TypeString: true},
		MaxKeyLength:   MaxKeyLength,
	}
}

var _ KeyValueCache = (*Memory)(nil)
