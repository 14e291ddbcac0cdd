package models

import "encoding/json"

// Requests for the scenario endpoints. Defined in domain for reuse by HTTP, WebSocket and CLI.

// ScenarioRequest evaluates a single venture. Params is decoded against the venture's record.
type ScenarioRequest struct {
	Globals GlobalAssumptions `json:"globals" yaml:"globals"`
	Params  json.RawMessage   `json:"params,omitempty"`
}

// LiveRequest is one WebSocket message.
type LiveRequest struct {
	Venture string            `json:"venture" validate:"required"`
	Globals GlobalAssumptions `json:"globals"`
	Params  json.RawMessage   `json:"params,omitempty"`
}

// PortfolioRequest evaluates all three ventures under one set of globals.
type PortfolioRequest struct {
	Globals        GlobalAssumptions    `json:"globals" yaml:"globals"`
	Diagnostics    DiagnosticsParams    `json:"diagnostics" yaml:"diagnostics"`
	TeleWellness   TeleWellnessParams   `json:"tele_wellness" yaml:"tele_wellness"`
	CosmeticStudio CosmeticStudioParams `json:"cosmetic_studio" yaml:"cosmetic_studio"`
}

// Params returns the venture records in tab order.
func (r PortfolioRequest) Params() []VentureParameters {
	return []VentureParameters{r.Diagnostics, r.TeleWellness, r.CosmeticStudio}
}

// MetricRow is one display line of a result table.
type MetricRow struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// ScenarioView pairs a result with its formatted table.
type ScenarioView struct {
	Title  string         `json:"title"`
	Result ScenarioResult `json:"result"`
	Table  []MetricRow    `json:"table"`
}

// DefaultsView lists the starting inputs for every venture.
type DefaultsView struct {
	Globals        GlobalAssumptions    `json:"globals"`
	Diagnostics    DiagnosticsParams    `json:"diagnostics"`
	TeleWellness   TeleWellnessParams   `json:"tele_wellness"`
	CosmeticStudio CosmeticStudioParams `json:"cosmetic_studio"`
}

// LiveResponse answers one WebSocket message: either a view or an error.
type LiveResponse struct {
	Venture string          `json:"venture,omitempty"`
	Title   string          `json:"title,omitempty"`
	Result  *ScenarioResult `json:"result,omitempty"`
	Table   []MetricRow     `json:"table,omitempty"`
	Error   string          `json:"error,omitempty"`
	Details interface{}     `json:"details,omitempty"`
}
