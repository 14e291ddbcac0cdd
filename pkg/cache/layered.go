package cache

import (
	"context"
	"sync/atomic"
	"time"
)

// LayeredCache keeps a short-lived in-process copy in front of a remote Service.
// Writes go to the remote first; the near copy never outlives the remote one.
type LayeredCache struct {
	near   *MemoryCache
	remote Service
	ttl    time.Duration

	nearHits, remoteHits, misses atomic.Uint64
}

// NewLayeredCache creates a layered cache in front of remote.
func NewLayeredCache(remote Service, opts ...LayeredOption) *LayeredCache {
	cfg := &LayeredConfig{
		MemoryMaxSize: 1000,
		MemoryTTL:     time.Minute,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &LayeredCache{
		near:   NewMemoryCache(WithMemoryMaxSize(cfg.MemoryMaxSize), WithMemoryTTL(cfg.MemoryTTL)),
		remote: remote,
		ttl:    cfg.MemoryTTL,
	}
}

func (lc *LayeredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := encode(value)
	if err != nil {
		return err
	}
	if err := lc.remote.Set(ctx, key, data, expiration); err != nil {
		return err
	}
	_ = lc.near.Set(ctx, key, data, lc.nearTTL(expiration))
	return nil
}

// Get fetches the raw remote bytes on a near miss so the near copy stores exactly
// what the remote holds.
func (lc *LayeredCache) Get(ctx context.Context, key string, dest interface{}) error {
	var raw []byte
	if err := lc.near.Get(ctx, key, &raw); err == nil {
		lc.nearHits.Add(1)
		return decode(raw, dest)
	}

	if err := lc.remote.Get(ctx, key, &raw); err != nil {
		lc.misses.Add(1)
		return err
	}
	if err := decode(raw, dest); err != nil {
		lc.misses.Add(1)
		return err
	}
	lc.remoteHits.Add(1)
	_ = lc.near.Set(ctx, key, raw, lc.ttl)
	return nil
}

func (lc *LayeredCache) Delete(ctx context.Context, keys ...string) error {
	_ = lc.near.Delete(ctx, keys...)
	return lc.remote.Delete(ctx, keys...)
}

func (lc *LayeredCache) Exists(ctx context.Context, keys ...string) (bool, error) {
	if ok, _ := lc.near.Exists(ctx, keys...); ok {
		return true, nil
	}
	return lc.remote.Exists(ctx, keys...)
}

// Stats reports near hits separately from remote hits.
func (lc *LayeredCache) Stats() Stats {
	return Stats{
		Hits:      lc.nearHits.Load() + lc.remoteHits.Load(),
		NearHits:  lc.nearHits.Load(),
		Misses:    lc.misses.Load(),
		Evictions: lc.near.Stats().Evictions,
		Entries:   lc.near.Len(),
	}
}

// Close closes both layers.
func (lc *LayeredCache) Close() error {
	_ = lc.near.Close()
	return lc.remote.Close()
}

func (lc *LayeredCache) nearTTL(remote time.Duration) time.Duration {
	if remote > 0 && remote < lc.ttl {
		return remote
	}
	return lc.ttl
}

var (
	_ Service       = (*LayeredCache)(nil)
	_ StatsReporter = (*LayeredCache)(nil)
)
