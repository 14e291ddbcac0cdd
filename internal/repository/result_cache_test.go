package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"HealthFeas/internal/domain/models"
	domrepo "HealthFeas/internal/domain/repository"
	pkgcache "HealthFeas/pkg/cache"
)

func TestCacheResultStoreRoundTrip(t *testing.T) {
	mc := pkgcache.NewMemoryCache()
	store := NewCacheResultStore(mc, "results")
	defer store.Close()
	ctx := context.Background()

	var got models.ScenarioResult
	if err := store.Get(ctx, "k", &got); !errors.Is(err, domrepo.ErrNotCached) {
		t.Fatalf("expected ErrNotCached, got %v", err)
	}

	in := models.ScenarioResult{
		Venture:   models.VentureTeleWellness,
		Flows:     models.CashFlowSeries{-18, 5, 6},
		Appraisal: models.AppraisalResult{NPV: 1.5, IRR: models.Undefined(), Payback: models.Defined(3.6)},
	}
	if err := store.Set(ctx, "k", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ok, _ := mc.Exists(ctx, "results:k"); !ok {
		t.Fatalf("expected namespaced key in backend")
	}
	if err := store.Get(ctx, "k", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Venture != in.Venture || got.Appraisal.IRR.Valid || got.Appraisal.Payback != in.Appraisal.Payback || len(got.Flows) != 3 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
