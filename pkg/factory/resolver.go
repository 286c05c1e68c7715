package factory

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
)

// Locator looks services up by key. *container.Registry implements it.
type Locator interface {
	Resolve(key string) (any, error)
}

// LocatorFunc adapts a function to Locator.
type LocatorFunc func(key string) (any, error)

func (f LocatorFunc) Resolve(key string) (any, error) { return f(key) }

// Resolution is the outcome of ResolveCache.
type Resolution struct {
	// Handle is nil when no cache is used.
	Handle cache.Handle
	Kind   cache.Kind
	// Descriptor is the setting that was resolved.
	Descriptor Descriptor
	// Degraded explains why a present candidate was dropped: it wraps
	// ErrUnrecognizedCache or cache.ErrIncompatibleCache.
	Degraded error
}

// ResolveCache turns a cache descriptor into a handle.
//
// Absent descriptors resolve to no cache. A key is looked up through locator
// exactly once; a failed lookup is the only error and wraps
// ErrServiceNotCreated. The candidate is then classified with cache.Classify,
// so an item pool wins over a key-value cache. Candidates that match neither
// protocol, or a key-value cache whose capabilities fall short, resolve to no
// cache and are reported in Resolution.Degraded.
func ResolveCache(d Descriptor, locator Locator) (Resolution, error) {
	res := Resolution{Descriptor: d, Kind: cache.KindNone}

	var candidate any
	switch d.Kind() {
	case DescriptorAbsent:
		return res, nil
	case DescriptorHandle:
		candidate = d.Handle()
	case DescriptorKey:
		if locator == nil {
			return res, errors.Join(ErrServiceNotCreated, fmt.Errorf("cache %q: %w", d.Key(), ErrNoLocator))
		}
		svc, err := locator.Resolve(d.Key())
		if err != nil {
			return res, errors.Join(ErrServiceNotCreated, fmt.Errorf("cache %q: %w", d.Key(), err))
		}
		candidate = svc
	}

	handle, kind, err := cache.Classify(candidate)
	switch {
	case err != nil:
		res.Degraded = err
	case handle == nil && candidate != nil:
		res.Degraded = fmt.Errorf("%w: %T", ErrUnrecognizedCache, candidate)
	default:
		res.Handle = handle
		res.Kind = kind
	}
	return res, nil
}
