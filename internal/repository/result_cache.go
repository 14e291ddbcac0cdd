package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	domrepo "HealthFeas/internal/domain/repository"
	pkgcache "HealthFeas/pkg/cache"
)

// CacheResultStore implements ResultCache on top of a cache backend.
type CacheResultStore struct {
	svc       pkgcache.Service
	namespace string
}

// NewCacheResultStore namespaces every key so results can share a Redis database
// with other data.
func NewCacheResultStore(svc pkgcache.Service, namespace string) *CacheResultStore {
	return &CacheResultStore{svc: svc, namespace: namespace}
}

func (s *CacheResultStore) Get(ctx context.Context, key string, dest interface{}) error {
	err := s.svc.Get(ctx, s.key(key), dest)
	if errors.Is(err, pkgcache.ErrCacheMiss) {
		return domrepo.ErrNotCached
	}
	if err != nil {
		return fmt.Errorf("result cache get: %w", err)
	}
	return nil
}

func (s *CacheResultStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := s.svc.Set(ctx, s.key(key), value, ttl); err != nil {
		return fmt.Errorf("result cache set: %w", err)
	}
	return nil
}

// Close releases the backend.
func (s *CacheResultStore) Close() error {
	return s.svc.Close()
}

func (s *CacheResultStore) key(k string) string {
	if s.namespace == "" {
		return k
	}
	return s.namespace + ":" + k
}

var _ domrepo.ResultCache = (*CacheResultStore)(nil)
