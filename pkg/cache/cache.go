// Package cache stores encoded values in process memory, in Redis, or in both
// with memory acting as a near cache in front of Redis.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent, expired or unreadable.
var ErrCacheMiss = errors.New("cache: miss")

// Service defines cache operations.
// Values are stored JSON-encoded, except string and []byte which are stored raw;
// Get decodes into dest.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, keys ...string) (bool, error)
	Close() error
}

// Stats counts lookup outcomes since the cache was created.
type Stats struct {
	Hits      uint64 `json:"hits"`
	NearHits  uint64 `json:"near_hits,omitempty"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
	Entries   int    `json:"entries"`
}

// StatsReporter is implemented by backends that keep local counters.
type StatsReporter interface {
	Stats() Stats
}

// Backend names accepted in configuration.
const (
	BackendNone    = "none"
	BackendMemory  = "memory"
	BackendRedis   = "redis"
	BackendLayered = "layered"
)
