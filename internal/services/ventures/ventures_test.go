package ventures_test

import (
	"math"
	"testing"

	"HealthFeas/internal/domain/models"
	"HealthFeas/internal/services/ventures"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func defaultDiagnostics() models.DiagnosticsParams {
	return models.DiagnosticsParams{
		Capex:           35_000_000,
		LeaseRatio:      0.5,
		OpexRatio:       0.58,
		AvgPrice:        4_200,
		TestsPerDay:     120,
		UtilizationDays: 300,
		StaffingCost:    18_000_000,
		OtherFixedCost:  6_000_000,
		LeaseCostRate:   0.12,
	}
}

func defaultTeleWellness() models.TeleWellnessParams {
	return models.TeleWellnessParams{
		Capex:          18_000_000,
		Users:          25_000,
		ARPU:           550,
		COGSRatio:      0.15,
		SGARatio:       0.25,
		MonthlyChurn:   0.05,
		UserGrowthRate: 0.35,
		ARPUGrowthRate: 0.08,
		FixedCosts:     12_000_000,
	}
}

func defaultCosmetic() models.CosmeticStudioParams {
	return models.CosmeticStudioParams{
		Capex:            22_000_000,
		SessionsPerDay:   45,
		AvgPrice:         9_000,
		OperatingDays:    300,
		ConsumablesRatio: 0.15,
		MarketingRatio:   0.12,
		StaffingCost:     14_000_000,
		RentCost:         9_000_000,
		LocalPriceGrowth: 0.07,
	}
}

func TestTaxIsNeverNegative(t *testing.T) {
	for _, ebitda := range []float64{-1e9, -1, 0, 1, 28_634_400, 1e12} {
		tax := ventures.Tax(ebitda)
		if tax < 0 {
			t.Fatalf("negative tax %v for ebitda %v", tax, ebitda)
		}
		if ebitda <= 0 && tax != 0 {
			t.Fatalf("expected zero tax for ebitda %v, got %v", ebitda, tax)
		}
		if ebitda > 0 && tax > 0.20*ebitda+1e-9 {
			t.Fatalf("tax %v exceeds 20%% of %v", tax, ebitda)
		}
	}
}

func TestDiagnosticsLiteralScenario(t *testing.T) {
	g := models.GlobalAssumptions{FXDepreciation: 0.10, DiscountRate: 0.18, Years: 5, PriceGrowth: 0.05}
	flows, snap, err := ventures.Diagnostics{}.Project(g, defaultDiagnostics())
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	checks := []struct {
		name      string
		got, want float64
	}{
		{"revenue", snap.Revenue, 151_200_000},
		{"ebitda", snap.EBITDA, 28_634_400},
		{"tax", snap.Tax, 5_726_880},
		{"fcfe", snap.FCFE, 22_907_520},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, 1e-3) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if len(flows) != 6 {
		t.Fatalf("expected 6 flows, got %d", len(flows))
	}
	if flows[0] != -35_000_000 {
		t.Fatalf("unexpected outlay %v", flows[0])
	}
	for y := 1; y <= 5; y++ {
		want := snap.FCFE * math.Pow(1.05, float64(y-1))
		if !almostEqual(flows[y], want, 1e-6) {
			t.Errorf("flow[%d] = %v, want %v", y, flows[y], want)
		}
	}
}

func TestTeleWellnessRecurrence(t *testing.T) {
	g := models.DefaultGlobals()
	p := defaultTeleWellness()
	flows, snap, err := ventures.TeleWellness{}.Project(g, p)
	if err != nil {
		t.Fatalf("project: %v", err)
	}

	if !almostEqual(snap.Revenue, 165_000_000, 1e-6) {
		t.Fatalf("unexpected year-1 revenue %v", snap.Revenue)
	}
	if !almostEqual(snap.EBITDA, 86_257_500, 1e-6) {
		t.Fatalf("unexpected year-1 ebitda %v", snap.EBITDA)
	}
	if !almostEqual(flows[1], snap.FCFE, 1e-9) || !almostEqual(snap.FCFE, 69_006_000, 1e-6) {
		t.Fatalf("flow[1] %v and snapshot fcfe %v disagree", flows[1], snap.FCFE)
	}

	users := p.Users * (1 + p.UserGrowthRate) * (1 - p.MonthlyChurn*12*0.4)
	arpu := p.ARPU * (1 + p.ARPUGrowthRate)
	rev := users * arpu * 12
	ebitda := rev - p.COGSRatio*rev*(1+g.FXDepreciation*0.3) - p.SGARatio*rev - p.FixedCosts
	want := ebitda - math.Max(0, ebitda)*0.20
	if !almostEqual(flows[2], want, 1e-6) {
		t.Fatalf("flow[2] = %v, want %v", flows[2], want)
	}
}

func TestTeleWellnessWithoutRevenueLosesMoneyEveryYear(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*models.TeleWellnessParams)
	}{
		{"zero users", func(p *models.TeleWellnessParams) { p.Users = 0 }},
		{"zero arpu", func(p *models.TeleWellnessParams) { p.ARPU = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := defaultTeleWellness()
			tt.mut(&p)
			flows, snap, err := ventures.TeleWellness{}.Project(models.DefaultGlobals(), p)
			if err != nil {
				t.Fatalf("project: %v", err)
			}
			if snap.Revenue != 0 {
				t.Fatalf("expected zero revenue, got %v", snap.Revenue)
			}
			for y := 1; y < len(flows); y++ {
				if flows[y] != -p.FixedCosts {
					t.Fatalf("flow[%d] = %v, want %v", y, flows[y], -p.FixedCosts)
				}
			}
		})
	}
}

func TestCosmeticStudioUsesLocalPriceGrowth(t *testing.T) {
	p := defaultCosmetic()
	g := models.DefaultGlobals()
	flows, snap, err := ventures.CosmeticStudio{}.Project(g, p)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if !almostEqual(snap.Revenue, 121_500_000, 1e-6) {
		t.Fatalf("unexpected revenue %v", snap.Revenue)
	}
	if !almostEqual(snap.FCFE, 51_827_000, 1e-6) {
		t.Fatalf("unexpected fcfe %v", snap.FCFE)
	}

	g.PriceGrowth = 0.20
	other, _, err := ventures.CosmeticStudio{}.Project(g, p)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	for y := range flows {
		if flows[y] != other[y] {
			t.Fatalf("global price growth changed flow[%d]: %v vs %v", y, flows[y], other[y])
		}
	}

	rev3 := 121_500_000 * math.Pow(1.07, 2)
	ebitda3 := rev3 - 0.15*rev3*1.05 - 0.12*rev3 - 14_000_000 - 9_000_000
	if want := ebitda3 * 0.8; !almostEqual(flows[3], want, 1e-6) {
		t.Fatalf("flow[3] = %v, want %v", flows[3], want)
	}
}

func TestHorizonDoesNotChangeYearOneFlow(t *testing.T) {
	params := []models.VentureParameters{defaultDiagnostics(), defaultTeleWellness(), defaultCosmetic()}
	for i, m := range ventures.All() {
		t.Run(string(m.Venture()), func(t *testing.T) {
			var first float64
			for years := 3; years <= 7; years++ {
				g := models.DefaultGlobals()
				g.Years = years
				flows, _, err := m.Project(g, params[i])
				if err != nil {
					t.Fatalf("project: %v", err)
				}
				if len(flows) != years+1 {
					t.Fatalf("expected %d flows, got %d", years+1, len(flows))
				}
				if years == 3 {
					first = flows[1]
					continue
				}
				if flows[1] != first {
					t.Fatalf("flow[1] changed with horizon %d: %v vs %v", years, flows[1], first)
				}
			}
		})
	}
}

func TestProjectAcceptsPointerParams(t *testing.T) {
	p := defaultDiagnostics()
	byValue, _, err := ventures.Diagnostics{}.Project(models.DefaultGlobals(), p)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	byPtr, _, err := ventures.Diagnostics{}.Project(models.DefaultGlobals(), &p)
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	if byValue[1] != byPtr[1] {
		t.Fatalf("pointer and value params disagree")
	}
}

func TestProjectRejectsOtherVentureParams(t *testing.T) {
	if _, _, err := (ventures.Diagnostics{}).Project(models.DefaultGlobals(), defaultCosmetic()); err == nil {
		t.Fatalf("expected error for mismatched params")
	}
	if _, _, err := (ventures.TeleWellness{}).Project(models.DefaultGlobals(), nil); err == nil {
		t.Fatalf("expected error for nil params")
	}
	var nilPtr *models.CosmeticStudioParams
	if _, _, err := (ventures.CosmeticStudio{}).Project(models.DefaultGlobals(), nilPtr); err == nil {
		t.Fatalf("expected error for nil pointer params")
	}
}
