package metrics

import (
	"testing"

	"HealthFeas/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RecordRun(models.VentureDiagnostics)
	r.RecordRun(models.VentureDiagnostics)
	r.RecordUndefined(models.VentureTeleWellness, "irr")
	r.RecordCache("hit")
	r.RecordError("run")

	if got := testutil.ToFloat64(r.runsTotal.WithLabelValues("diagnostics")); got != 2 {
		t.Fatalf("runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.undefinedTotal.WithLabelValues("tele_wellness", "irr")); got != 1 {
		t.Fatalf("undefined = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.cacheTotal.WithLabelValues("hit")); got != 1 {
		t.Fatalf("cache hits = %v, want 1", got)
	}

	r.InFlight("/api/portfolio", "POST", 1)
	r.InFlight("/api/portfolio", "POST", -1)
	if got := testutil.ToFloat64(r.httpInFlight.WithLabelValues("/api/portfolio", "POST")); got != 0 {
		t.Fatalf("in flight = %v, want 0", got)
	}
}

func TestNewOnSeparateRegistriesDoesNotPanic(t *testing.T) {
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
