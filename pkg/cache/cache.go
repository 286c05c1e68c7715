package cache

import (
	"context"
	"time"
)

// RequiredKeyLength is the shortest key length a key-value backend must accept
// to be usable by the detector. Keys produced by the detector never exceed it.
const RequiredKeyLength = 64

// Data types a key-value backend may declare in its Capabilities.
const (
	TypeBytes   = "bytes"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeFloat   = "double"
	TypeBoolean = "boolean"
	TypeNull    = "NULL"
	TypeArray   = "array"
	TypeObject  = "object"
)

// Capabilities describes what a key-value backend can store.
type Capabilities struct {
	// SupportedTypes lists the value types the backend stores natively.
	SupportedTypes map[string]bool
	// MaxKeyLength is the longest accepted key; zero or negative means unbounded.
	MaxKeyLength int
	// MaxTTL caps item lifetimes; zero means unbounded.
	MaxTTL time.Duration
}

// Supports reports whether a value type is declared as supported.
func (c Capabilities) Supports(typ string) bool {
	return c.SupportedTypes[typ]
}

// AcceptsKeyLength reports whether keys of length n are accepted.
func (c Capabilities) AcceptsKeyLength(n int) bool {
	return c.MaxKeyLength <= 0 || n <= c.MaxKeyLength
}

// KeyValueCache is a cache addressed by opaque string keys.
//
// Contract:
//   - Get returns (nil, false, nil) on a miss.
//   - Set with ttl <= 0 stores without expiry.
//   - Delete is idempotent.
//   - Implementations must be safe for concurrent use.
type KeyValueCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Has(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Capabilities() Capabilities
}

// Item is a mutable cache entry handed out by an ItemPoolCache.
// Changes are persisted only when the item is passed to ItemPoolCache.Save.
type Item interface {
	Key() string
	Value() []byte
	IsHit() bool
	Set(value []byte) Item
	ExpiresAfter(ttl time.Duration) Item
}

// ItemPoolCache is a cache where items are acquired, mutated, then saved.
//
// GetItem never returns a nil Item without an error; a miss yields an item
// whose IsHit is false.
type ItemPoolCache interface {
	GetItem(ctx context.Context, key string) (Item, error)
	HasItem(ctx context.Context, key string) (bool, error)
	Save(ctx context.Context, item Item) error
	DeleteItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Handle is the cache surface the detector works with. Every supported
// backend is bridged to it by an adapter.
type Handle interface {
	Fetch(ctx context.Context, id string) ([]byte, bool, error)
	Contains(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Flush(ctx context.Context) error
}

// Kind identifies which bridge a Handle is.
type Kind int

const (
	// KindNone means no external cache is configured.
	KindNone Kind = iota
	// KindKeyValue is a KeyValueCache behind a KeyValueAdapter.
	KindKeyValue
	// KindItemPool is an ItemPoolCache behind an ItemPoolAdapter.
	KindItemPool
)

func (k Kind) String() string {
	switch k {
	case KindKeyValue:
		return "key-value"
	case KindItemPool:
		return "item-pool"
	default:
		return "none"
	}
}

// KindOf reports the bridge kind of a handle. Anything that is not one of the
// two adapters, a Static cache included, counts as KindNone.
func KindOf(h Handle) Kind {
	switch h.(type) {
	case *KeyValueAdapter:
		return KindKeyValue
	case *ItemPoolAdapter:
		return KindItemPool
	default:
		return KindNone
	}
}
