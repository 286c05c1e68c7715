package redis

import "time"

// Config describes the Redis connection and the cache storage built on it.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"` // Format: "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`                      // Connection attempts before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`                     // Pause between attempts, e.g. "5s".
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`                   // Upper bound for all attempts together.
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"devicedetector:"`            // Namespace for cache keys.
	ScanBatchSize  int           `env:"REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`                  // SCAN COUNT hint used by Clear and Keys.
	MaxTTL         time.Duration `env:"REDIS_MAX_TTL" envDefault:"0"`                             // Longest TTL the storage accepts; 0 is unbounded.
}
