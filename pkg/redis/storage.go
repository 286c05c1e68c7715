package redis

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
)

const defaultScanBatchSize = 1000

// Storage is a cache.KeyValueCache backed by Redis. Every key is stored under
// a prefix so that Clear only touches this storage's entries.
type Storage struct {
	db            redis.UniversalClient
	prefix        string
	scanBatchSize int64
	maxTTL        time.Duration
	closed        atomic.Bool
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithKeyPrefix namespaces every key.
func WithKeyPrefix(prefix string) StorageOption {
	return func(s *Storage) { s.prefix = prefix }
}

// WithScanBatchSize sets the SCAN COUNT hint. Values below 1 are ignored.
func WithScanBatchSize(n int) StorageOption {
	return func(s *Storage) {
		if n > 0 {
			s.scanBatchSize = int64(n)
		}
	}
}

// WithMaxTTL caps the TTL of stored entries. 0 means unbounded.
func WithMaxTTL(ttl time.Duration) StorageOption {
	return func(s *Storage) {
		if ttl >= 0 {
			s.maxTTL = ttl
		}
	}
}

// NewStorage wraps a Redis client.
func NewStorage(client redis.UniversalClient, opts ...StorageOption) *Storage {
	s := &Storage{
		db:            client,
		scanBatchSize: defaultScanBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStorageWithConfig wraps a Redis client using the storage fields of cfg.
func NewStorageWithConfig(client redis.UniversalClient, cfg Config) *Storage {
	return NewStorage(client,
		WithKeyPrefix(cfg.KeyPrefix),
		WithScanBatchSize(cfg.ScanBatchSize),
		WithMaxTTL(cfg.MaxTTL),
	)
}

// Get returns the stored bytes. A missing key is not an error.
func (s *Storage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := s.check(key); err != nil {
		return nil, false, err
	}
	val, err := s.db.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores value. A ttl of 0 or less keeps the entry until evicted.
func (s *Storage) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.check(key); err != nil {
		return err
	}
	if ttl < 0 {
		ttl = 0
	}
	if s.maxTTL > 0 && (ttl == 0 || ttl > s.maxTTL) {
		ttl = s.maxTTL
	}
	return s.db.Set(ctx, s.prefix+key, value, ttl).Err()
}

// Has reports whether key exists.
func (s *Storage) Has(ctx context.Context, key string) (bool, error) {
	if err := s.check(key); err != nil {
		return false, err
	}
	n, err := s.db.Exists(ctx, s.prefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes key. Missing keys are not an error.
func (s *Storage) Delete(ctx context.Context, key string) error {
	if err := s.check(key); err != nil {
		return err
	}
	return s.db.Del(ctx, s.prefix+key).Err()
}

// Clear removes every key under the prefix. A storage without a prefix
// shares the keyspace with other users of the database, so Clear fails with
// ErrClearWithoutPrefix.
func (s *Storage) Clear(ctx context.Context) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}
	if s.prefix == "" {
		return ErrClearWithoutPrefix
	}

	var cursor uint64
	for {
		batch, next, err := s.db.Scan(ctx, cursor, s.pattern(), s.scanBatchSize).Result()
		if err != nil {
			return err
		}
		if len(batch) > 0 {
			if err := s.db.Unlink(ctx, batch...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Keys lists the stored keys without the prefix. SCAN is used so that Redis
// is never blocked.
func (s *Storage) Keys(ctx context.Context) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrStorageClosed
	}

	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.db.Scan(ctx, cursor, s.pattern(), s.scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, k := range batch {
			keys = append(keys, k[len(s.prefix):])
		}
		if next == 0 {
			return keys, nil
		}
		cursor = next
	}
}

// Capabilities advertises the scalar types Redis strings hold and keys up to
// cache.MaxKeyLength.
func (s *Storage) Capabilities() cache.Capabilities {
	return cache.Capabilities{
		SupportedTypes: map[string]bool{
			cache.TypeBytes:   true,
			cache.TypeString:  true,
			cache.TypeInteger: true,
			cache.TypeFloat:   true,
		},
		MaxKeyLength: cache.MaxKeyLength,
		MaxTTL:       s.maxTTL,
	}
}

// Close closes the underlying client. Later calls fail with ErrStorageClosed.
func (s *Storage) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.db.Close()
}

// Conn returns the underlying Redis client.
func (s *Storage) Conn() redis.UniversalClient {
	return s.db
}

// pattern matches every key under the prefix. Glob metacharacters in the
// prefix are escaped.
func (s *Storage) pattern() string {
	return escapeGlob(s.prefix) + "*"
}

func escapeGlob(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Storage) check(key string) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}
	return cache.ValidateKey(key)
}

var _ cache.KeyValueCache = (*Storage)(nil)
