package presenter

import "HealthFeas/internal/domain/models"

var titles = map[models.VentureID]string{
	models.VentureDiagnostics:    "Diagnostics Micro-Clinic",
	models.VentureTeleWellness:   "Tele-Wellness Platform",
	models.VentureCosmeticStudio: "Cosmetic / Laser Studio",
}

// Title returns the display name of a venture.
func Title(id models.VentureID) string {
	if t, ok := titles[id]; ok {
		return t
	}
	return string(id)
}

// MetricTable returns the ordered result rows for a venture. Tele-wellness
// reports its first projected year as the EBITDA estimate and omits tax.
func MetricTable(r models.ScenarioResult) []models.MetricRow {
	a := r.Appraisal
	if r.Venture == models.VentureTeleWellness {
		return []models.MetricRow{
			{Metric: "Revenue (Year 1)", Value: FormatPKR(r.Year1.Revenue)},
			{Metric: "EBITDA (Year 1 est.)", Value: FormatPKR(r.Flows.Year(1))},
			{Metric: "Simple Payback (approx.)", Value: FormatPayback(a.Payback)},
			{Metric: "NPV", Value: FormatPKR(a.NPV)},
			{Metric: "IRR", Value: FormatPercent(a.IRR)},
		}
	}
	return []models.MetricRow{
		{Metric: "Revenue (Year 1)", Value: FormatPKR(r.Year1.Revenue)},
		{Metric: "EBITDA (Year 1)", Value: FormatPKR(r.Year1.EBITDA)},
		{Metric: "Tax (Year 1)", Value: FormatPKR(r.Year1.Tax)},
		{Metric: "FCFE (Year 1)", Value: FormatPKR(r.Year1.FCFE)},
		{Metric: "Simple Payback (yrs)", Value: FormatPayback(a.Payback)},
		{Metric: "NPV", Value: FormatPKR(a.NPV)},
		{Metric: "IRR", Value: FormatPercent(a.IRR)},
	}
}

// View pairs a result with its title and table.
func View(r models.ScenarioResult) models.ScenarioView {
	return models.ScenarioView{
		Title:  Title(r.Venture),
		Result: r,
		Table:  MetricTable(r),
	}
}

// Views maps View over results, keeping order.
func Views(rs []models.ScenarioResult) []models.ScenarioView {
	out := make([]models.ScenarioView, len(rs))
	for i, r := range rs {
		out[i] = View(r)
	}
	return out
}
