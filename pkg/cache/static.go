package cache

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Static is the default Handle of a detector without a configured cache.
// Entries live as long as the Static value; TTLs are ignored.
type Static struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewStatic returns an empty Static cache.
func NewStatic() *Static {
	return &Static{entries: make(map[string][]byte)}
}

func (s *Static) Fetch(_ context.Context, id string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[id]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

func (s *Static) Contains(_ context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[id]
	return ok, nil
}

func (s *Static) Save(_ context.Context, id string, data []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = slices.Clone(data)
	return nil
}

func (s *Static) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

func (s *Static) Flush(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
	return nil
}

var _ Handle = (*Static)(nil)
