package ventures

import (
	"math"

	"HealthFeas/internal/domain/models"
	domsvc "HealthFeas/internal/domain/service"
)

// Retention damping applied to annualised monthly churn: u *= (1+g) * (1 - churn*12*0.4).
// This is an approximation, not (1-churn)^12 compounding.
const churnDamping = 0.4

// TeleWellness models a subscription platform. Users and ARPU compound each year;
// cost ratios apply to that year's revenue.
type TeleWellness struct{}

func (TeleWellness) Venture() models.VentureID { return models.VentureTeleWellness }

func (m TeleWellness) Project(g models.GlobalAssumptions, p models.VentureParameters) (models.CashFlowSeries, models.Year1Snapshot, error) {
	var tp models.TeleWellnessParams
	switch v := p.(type) {
	case models.TeleWellnessParams:
		tp = v
	case *models.TeleWellnessParams:
		if v == nil {
			return nil, models.Year1Snapshot{}, paramsMismatch(m.Venture(), nil)
		}
		tp = *v
	default:
		return nil, models.Year1Snapshot{}, paramsMismatch(m.Venture(), p)
	}

	flows := newSeries(tp.Capex, g.Years)
	retention := (1 + tp.UserGrowthRate) * (1 - tp.MonthlyChurn*12*churnDamping)
	users := tp.Users
	for t := 1; t <= g.Years; t++ {
		if t > 1 {
			users *= retention
		}
		flows[t] = teleWellnessYear(g, tp, users, t).FCFE
	}
	return flows, teleWellnessYear(g, tp, tp.Users, 1), nil
}

func teleWellnessYear(g models.GlobalAssumptions, p models.TeleWellnessParams, users float64, t int) models.Year1Snapshot {
	arpu := p.ARPU * math.Pow(1+p.ARPUGrowthRate, float64(t-1))
	revenue := users * arpu * 12
	cogs := p.COGSRatio * revenue * (1 + g.FXDepreciation*0.3)
	sga := p.SGARatio * revenue
	ebitda := revenue - cogs - sga - p.FixedCosts
	tax := Tax(ebitda)
	return models.Year1Snapshot{
		Revenue: revenue,
		EBITDA:  ebitda,
		Tax:     tax,
		FCFE:    ebitda - tax,
	}
}

var _ domsvc.VentureModel = TeleWellness{}
