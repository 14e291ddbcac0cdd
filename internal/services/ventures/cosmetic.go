package ventures

import (
	"math"

	"HealthFeas/internal/domain/models"
	domsvc "HealthFeas/internal/domain/service"
)

// CosmeticStudio models a cosmetic / laser studio. Session volume is flat; only
// price compounds, at the studio's own growth rate rather than the global one.
type CosmeticStudio struct{}

func (CosmeticStudio) Venture() models.VentureID { return models.VentureCosmeticStudio }

func (m CosmeticStudio) Project(g models.GlobalAssumptions, p models.VentureParameters) (models.CashFlowSeries, models.Year1Snapshot, error) {
	var cp models.CosmeticStudioParams
	switch v := p.(type) {
	case models.CosmeticStudioParams:
		cp = v
	case *models.CosmeticStudioParams:
		if v == nil {
			return nil, models.Year1Snapshot{}, paramsMismatch(m.Venture(), nil)
		}
		cp = *v
	default:
		return nil, models.Year1Snapshot{}, paramsMismatch(m.Venture(), p)
	}

	base := cp.SessionsPerDay * cp.AvgPrice * float64(cp.OperatingDays)
	flows := newSeries(cp.Capex, g.Years)
	for t := 1; t <= g.Years; t++ {
		flows[t] = cosmeticYear(g, cp, base*math.Pow(1+cp.LocalPriceGrowth, float64(t-1))).FCFE
	}
	return flows, cosmeticYear(g, cp, base), nil
}

func cosmeticYear(g models.GlobalAssumptions, p models.CosmeticStudioParams, revenue float64) models.Year1Snapshot {
	consumables := p.ConsumablesRatio * revenue * (1 + g.FXDepreciation*0.5)
	marketing := p.MarketingRatio * revenue
	ebitda := revenue - consumables - marketing - p.StaffingCost - p.RentCost
	tax := Tax(ebitda)
	return models.Year1Snapshot{
		Revenue: revenue,
		EBITDA:  ebitda,
		Tax:     tax,
		FCFE:    ebitda - tax,
	}
}

var _ domsvc.VentureModel = CosmeticStudio{}
