package container

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Factory builds a service on demand.
type Factory func(r *Registry) (any, error)

type entry struct {
	factory Factory
	shared  bool
}

// Registry maps service keys to instances or factories.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	entries   map[string]entry
	instances map[string]any
	group     singleflight.Group
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries:   make(map[string]entry),
		instances: make(map[string]any),
	}
}

// Set registers a ready-made service, replacing any previous registration.
func (r *Registry) Set(key string, service any) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	r.instances[key] = service
	return nil
}

// Register adds a factory invoked on every Resolve.
func (r *Registry) Register(key string, factory Factory) error {
	return r.register(key, factory, false)
}

// RegisterShared adds a factory whose first successful result is reused.
// Concurrent first resolutions share a single factory call.
func (r *Registry) RegisterShared(key string, factory Factory) error {
	return r.register(key, factory, true)
}

func (r *Registry) register(key string, factory Factory, shared bool) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if factory == nil {
		return ErrNilFactory
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, key)
	}
	if _, exists := r.instances[key]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadyRegistered, key)
	}
	r.entries[key] = entry{factory: factory, shared: shared}
	return nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	key = strings.TrimSpace(key)
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.instances[key]
	if !ok {
		_, ok = r.entries[key]
	}
	return ok
}

// Resolve returns the service registered under key.
// Unknown keys yield ErrNotFound; factory failures are joined with ErrResolve.
func (r *Registry) Resolve(key string) (any, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	if svc, ok := r.instances[key]; ok {
		r.mu.RUnlock()
		return svc, nil
	}
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	if !e.shared {
		return r.build(key, e.factory)
	}

	svc, err, _ := r.group.Do(key, func() (any, error) {
		r.mu.RLock()
		cached, ok := r.instances[key]
		r.mu.RUnlock()
		if ok {
			return cached, nil
		}

		svc, err := r.build(key, e.factory)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.instances[key] = svc
		delete(r.entries, key)
		r.mu.Unlock()
		return svc, nil
	})
	return svc, err
}

func (r *Registry) build(key string, factory Factory) (any, error) {
	svc, err := factory(r)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%w: %q", ErrResolve, key), err)
	}
	return svc, nil
}

// Keys returns every registered key in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries)+len(r.instances))
	for k := range r.instances {
		keys = append(keys, k)
	}
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrEmptyKey
	}
	return key, nil
}
