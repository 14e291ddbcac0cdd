package usecase

import (
	"fmt"

	"HealthFeas/internal/domain/models"
	domsvc "HealthFeas/internal/domain/service"
	"HealthFeas/internal/services/appraisal"
)

// ScenarioRunner dispatches a venture's parameters to its model and appraises the
// resulting series. It holds no mutable state; Run is a pure function of its inputs.
type ScenarioRunner struct {
	models map[models.VentureID]domsvc.VentureModel
}

// NewScenarioRunner registers the given models by venture id.
func NewScenarioRunner(vm ...domsvc.VentureModel) *ScenarioRunner {
	r := &ScenarioRunner{models: make(map[models.VentureID]domsvc.VentureModel, len(vm))}
	for _, m := range vm {
		r.models[m.Venture()] = m
	}
	return r
}

// Run projects and appraises one venture.
func (r *ScenarioRunner) Run(g models.GlobalAssumptions, p models.VentureParameters) (models.ScenarioResult, error) {
	if p == nil {
		return models.ScenarioResult{}, fmt.Errorf("run scenario: %w: nil parameters", models.ErrUnknownVenture)
	}
	id := p.Venture()
	m, ok := r.models[id]
	if !ok {
		return models.ScenarioResult{}, fmt.Errorf("run scenario: %w: %q", models.ErrUnknownVenture, id)
	}

	flows, snap, err := m.Project(g, p)
	if err != nil {
		return models.ScenarioResult{}, fmt.Errorf("project %s: %w", id, err)
	}

	return models.ScenarioResult{
		Venture:   id,
		Year1:     snap,
		Flows:     flows,
		Appraisal: appraisal.Appraise(g.DiscountRate, flows, snap.FCFE),
	}, nil
}

// RunVenture is Run with an explicit venture id that must match the parameters.
func (r *ScenarioRunner) RunVenture(id models.VentureID, g models.GlobalAssumptions, p models.VentureParameters) (models.ScenarioResult, error) {
	if p == nil || p.Venture() != id {
		return models.ScenarioResult{}, fmt.Errorf("run %s: parameters do not match venture", id)
	}
	return r.Run(g, p)
}
