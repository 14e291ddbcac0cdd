package ventures

import (
	"math"

	"HealthFeas/internal/domain/models"
	domsvc "HealthFeas/internal/domain/service"
)

// Diagnostics models a diagnostics micro-clinic. Costs stay at year-1 level and
// only the realised FCFE grows with the global price growth.
type Diagnostics struct{}

func (Diagnostics) Venture() models.VentureID { return models.VentureDiagnostics }

func (m Diagnostics) Project(g models.GlobalAssumptions, p models.VentureParameters) (models.CashFlowSeries, models.Year1Snapshot, error) {
	var dp models.DiagnosticsParams
	switch v := p.(type) {
	case models.DiagnosticsParams:
		dp = v
	case *models.DiagnosticsParams:
		if v == nil {
			return nil, models.Year1Snapshot{}, paramsMismatch(m.Venture(), nil)
		}
		dp = *v
	default:
		return nil, models.Year1Snapshot{}, paramsMismatch(m.Venture(), p)
	}

	snap := DiagnosticsYear1(g, dp)
	flows := newSeries(dp.Capex, g.Years)
	for t := 1; t <= g.Years; t++ {
		flows[t] = snap.FCFE * math.Pow(1+g.PriceGrowth, float64(t-1))
	}
	return flows, snap, nil
}

// DiagnosticsYear1 computes the year-1 P&L of the clinic.
func DiagnosticsYear1(g models.GlobalAssumptions, p models.DiagnosticsParams) models.Year1Snapshot {
	revenue := p.AvgPrice * p.TestsPerDay * float64(p.UtilizationDays)
	variable := p.OpexRatio * revenue * (1 + g.FXDepreciation)
	lease := p.LeaseCostRate * (p.Capex * p.LeaseRatio)
	ebitda := revenue - variable - p.StaffingCost - p.OtherFixedCost - lease
	tax := Tax(ebitda)
	return models.Year1Snapshot{
		Revenue: revenue,
		EBITDA:  ebitda,
		Tax:     tax,
		FCFE:    ebitda - tax,
	}
}

var _ domsvc.VentureModel = Diagnostics{}
