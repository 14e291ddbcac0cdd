package usecase_test

import (
	"errors"
	"math"
	"testing"

	"HealthFeas/internal/domain/models"
	"HealthFeas/internal/services/ventures"
	"HealthFeas/internal/usecase"

	"github.com/creasty/defaults"
)

func defaultParams(t *testing.T, id models.VentureID) models.VentureParameters {
	t.Helper()
	p, err := models.NewParams(id)
	if err != nil {
		t.Fatalf("new params: %v", err)
	}
	if err := defaults.Set(p); err != nil {
		t.Fatalf("defaults: %v", err)
	}
	return p
}

func TestRunnerDispatchesByVenture(t *testing.T) {
	r := usecase.NewScenarioRunner(ventures.All()...)
	g := models.DefaultGlobals()

	for _, id := range models.Ventures() {
		res, err := r.Run(g, defaultParams(t, id))
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if res.Venture != id || len(res.Flows) != g.Years+1 {
			t.Fatalf("%s: unexpected result %+v", id, res)
		}
		if res.Flows.Outlay() <= 0 {
			t.Fatalf("%s: expected positive outlay", id)
		}
	}
}

func TestRunnerDiagnosticsAppraisal(t *testing.T) {
	r := usecase.NewScenarioRunner(ventures.All()...)
	res, err := r.Run(models.DefaultGlobals(), defaultParams(t, models.VentureDiagnostics))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if want := 35_000_000.0 / 22_907_520; math.Abs(res.Appraisal.Payback.Value-want) > 1e-9 || !res.Appraisal.Payback.Valid {
		t.Fatalf("payback = %+v, want %v", res.Appraisal.Payback, want)
	}

	var npv float64
	for i, f := range res.Flows {
		npv += f / math.Pow(1.18, float64(i))
	}
	if math.Abs(res.Appraisal.NPV-npv) > 1e-3 {
		t.Fatalf("npv = %v, want %v", res.Appraisal.NPV, npv)
	}
	if !res.Appraisal.IRR.Valid || res.Appraisal.IRR.Value <= 0.18 {
		t.Fatalf("expected IRR above the discount rate for positive NPV, got %+v", res.Appraisal.IRR)
	}
}

func TestRunnerTeleWithoutUsersHasNoPayback(t *testing.T) {
	r := usecase.NewScenarioRunner(ventures.All()...)
	p := defaultParams(t, models.VentureTeleWellness).(*models.TeleWellnessParams)
	p.Users = 0

	res, err := r.Run(models.DefaultGlobals(), p)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Appraisal.Payback.Valid || res.Appraisal.IRR.Valid {
		t.Fatalf("all-negative flows should leave payback and IRR undefined, got %+v", res.Appraisal)
	}
	if res.Appraisal.NPV >= 0 {
		t.Fatalf("expected negative NPV, got %v", res.Appraisal.NPV)
	}
}

func TestRunnerRejectsUnregisteredVenture(t *testing.T) {
	r := usecase.NewScenarioRunner(ventures.Diagnostics{})

	_, err := r.Run(models.DefaultGlobals(), defaultParams(t, models.VentureCosmeticStudio))
	if !errors.Is(err, models.ErrUnknownVenture) {
		t.Fatalf("expected ErrUnknownVenture, got %v", err)
	}
	if _, err := r.Run(models.DefaultGlobals(), nil); !errors.Is(err, models.ErrUnknownVenture) {
		t.Fatalf("expected ErrUnknownVenture for nil params, got %v", err)
	}
	if _, err := r.RunVenture(models.VentureTeleWellness, models.DefaultGlobals(), defaultParams(t, models.VentureDiagnostics)); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
