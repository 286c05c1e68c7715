package cache

import (
	"errors"
	"fmt"
	"reflect"
)

// Classify decides which adapter, if any, fits candidate.
//
// Probes run in a fixed order, so the same candidate shape always yields the
// same result:
//
//  1. nil or a nil pointer: KindNone.
//  2. An existing adapter: returned unchanged.
//  3. ItemPoolCache: wrapped in an ItemPoolAdapter. A value that satisfies
//     both protocols is therefore treated as an item pool.
//  4. KeyValueCache: its Capabilities must support TypeBytes and accept keys
//     of RequiredKeyLength, otherwise ErrIncompatibleCache with KindNone.
//  5. Anything else: KindNone with a nil error.
//
// Only step 4 can return an error; callers decide whether to surface it.
func Classify(candidate any) (Handle, Kind, error) {
	if isNil(candidate) {
		return nil, KindNone, nil
	}

	switch c := candidate.(type) {
	case *ItemPoolAdapter:
		return c, KindItemPool, nil
	case *KeyValueAdapter:
		return c, KindKeyValue, nil
	}

	if pool, ok := candidate.(ItemPoolCache); ok {
		return NewItemPoolAdapter(pool), KindItemPool, nil
	}

	if store, ok := candidate.(KeyValueCache); ok {
		if err := checkCapabilities(store.Capabilities()); err != nil {
			return nil, KindNone, err
		}
		return NewKeyValueAdapter(store), KindKeyValue, nil
	}

	return nil, KindNone, nil
}

func checkCapabilities(caps Capabilities) error {
	if !caps.Supports(TypeBytes) {
		return errors.Join(ErrIncompatibleCache, fmt.Errorf("data type %q is not supported", TypeBytes))
	}
	if !caps.AcceptsKeyLength(RequiredKeyLength) {
		return errors.Join(ErrIncompatibleCache,
			fmt.Errorf("max key length %d is below required %d", caps.MaxKeyLength, RequiredKeyLength))
	}
	return nil
}

// isNil catches typed nil pointers hidden in a non-nil interface, which would
// otherwise pass the protocol probes and panic on first use.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
