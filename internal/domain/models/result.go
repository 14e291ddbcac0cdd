package models

import (
	"bytes"
	"encoding/json"
)

// CashFlowSeries holds the year-0 outlay followed by projected annual FCFE.
type CashFlowSeries []float64

// Outlay returns the initial investment as a positive amount.
func (s CashFlowSeries) Outlay() float64 {
	if len(s) == 0 {
		return 0
	}
	return -s[0]
}

// Year returns flow t, or 0 when t is outside the horizon.
func (s CashFlowSeries) Year(t int) float64 {
	if t < 0 || t >= len(s) {
		return 0
	}
	return s[t]
}

// Year1Snapshot is the undiscounted, ungrown first-year P&L.
type Year1Snapshot struct {
	Revenue float64 `json:"revenue"`
	EBITDA  float64 `json:"ebitda"`
	Tax     float64 `json:"tax"`
	FCFE    float64 `json:"fcfe"`
}

// Metric is an appraisal value that may be undefined (no IRR root, non-positive payback flow).
// It encodes to JSON null when undefined.
type Metric struct {
	Value float64
	Valid bool
}

// Defined wraps a computed value.
func Defined(v float64) Metric { return Metric{Value: v, Valid: true} }

// Undefined is the "not applicable" metric.
func Undefined() Metric { return Metric{} }

func (m Metric) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

func (m *Metric) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = Undefined()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Defined(v)
	return nil
}

// AppraisalResult holds the investment metrics for a cash-flow series.
type AppraisalResult struct {
	NPV     float64 `json:"npv"`
	IRR     Metric  `json:"irr"`
	Payback Metric  `json:"payback"`
}

// ScenarioResult is the full output of one venture run.
type ScenarioResult struct {
	Venture   VentureID       `json:"venture"`
	Year1     Year1Snapshot   `json:"year1"`
	Flows     CashFlowSeries  `json:"flows"`
	Appraisal AppraisalResult `json:"appraisal"`
}
