// Package cache defines the two cache protocols the device detector can be
// configured with, the adapters that bridge them to a single Handle, and the
// classification step that picks the adapter for an arbitrary value.
//
// # Protocols
//
//   - KeyValueCache: get/set/has by string key with a TTL, plus Capabilities
//     introspection (supported data types, max key length, max TTL).
//   - ItemPoolCache: acquire an Item, mutate it, then Save it back.
//
// A value that satisfies both protocols is treated as an item pool.
//
// # Classification
//
// Classify probes a candidate in a fixed order and returns a Handle together
// with its Kind:
//
//	h, kind, err := cache.Classify(candidate)
//	switch {
//	case errors.Is(err, cache.ErrIncompatibleCache):
//	    // key-value backend that cannot store bytes or long enough keys
//	case kind == cache.KindNone:
//	    // nil, or a value matching neither protocol
//	}
//
// Unrecognized shapes are not an error; they classify as KindNone.
//
// # Backends
//
// The package ships in-memory backends built on a generic, thread-safe LRU
// with optional per-entry expiry:
//
//	kv := cache.NewMemory(10_000)      // KeyValueCache
//	pool := cache.NewMemoryPool(10_000) // ItemPoolCache
//
// Static is the Handle a detector falls back to when no cache is configured.
// It keeps entries for its own lifetime and ignores TTLs.
//
// A Redis-backed KeyValueCache lives in the redis package.
//
// # Thread Safety
//
// All backends, adapters and the LRU are safe for concurrent use.
package cache
