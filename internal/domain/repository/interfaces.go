package repository

import (
	"context"
	"errors"
	"time"

	"HealthFeas/internal/domain/models"
)

// ResultCache memoises scenario results keyed by their inputs.
type ResultCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

type Metrics interface {
	RecordRun(venture models.VentureID)
	RecordUndefined(venture models.VentureID, metric string)
	RecordCache(result string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}

// ErrNotCached is returned by ResultCache.Get when no entry exists for a key.
var ErrNotCached = errors.New("result not cached")
