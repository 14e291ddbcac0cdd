package service

import "HealthFeas/internal/domain/models"

// VentureModel projects a venture's cash flows from its parameters and the shared assumptions.
// The returned series has length g.Years+1 with the negative outlay at index 0.
type VentureModel interface {
	Venture() models.VentureID
	Project(g models.GlobalAssumptions, p models.VentureParameters) (models.CashFlowSeries, models.Year1Snapshot, error)
}
