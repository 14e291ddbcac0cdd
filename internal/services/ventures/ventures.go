// Package ventures holds the per-template cash-flow projections. Each template
// follows revenue -> costs -> EBITDA -> tax -> FCFE but differs in which lines
// compound and which costs carry the FX depreciation load, so they are kept as
// separate models behind service.VentureModel.
package ventures

import (
	"fmt"
	"math"

	"HealthFeas/internal/domain/models"
	domsvc "HealthFeas/internal/domain/service"
)

// All returns one model per venture template in tab order.
func All() []domsvc.VentureModel {
	return []domsvc.VentureModel{Diagnostics{}, TeleWellness{}, CosmeticStudio{}}
}

// Tax is the flat corporate tax on positive EBITDA; losses are never credited.
func Tax(ebitda float64) float64 {
	return math.Max(0, ebitda) * models.CorporateTaxRate
}

// newSeries allocates a horizon-length series seeded with the outlay.
func newSeries(capex float64, years int) models.CashFlowSeries {
	if years < 0 {
		years = 0
	}
	flows := make(models.CashFlowSeries, years+1)
	flows[0] = -capex
	return flows
}

func paramsMismatch(want models.VentureID, got models.VentureParameters) error {
	if got == nil {
		return fmt.Errorf("%s: nil parameters", want)
	}
	return fmt.Errorf("%s: unexpected parameters for %s (%T)", want, got.Venture(), got)
}
