// Package appraisal implements the investment-appraisal primitives applied to a
// venture's cash-flow series: net present value, internal rate of return and
// simple payback.
package appraisal

import (
	"math"

	"HealthFeas/internal/domain/models"
)

const (
	irrGuess       = 0.1
	irrTolerance   = 1e-10
	newtonMaxIter  = 100
	bisectMaxIter  = 200
	bracketMaxStep = 60
	bracketFloor   = -0.9999
)

// PresentValue discounts flows at rate with flows[0] taken at t=0 (undiscounted).
func PresentValue(rate float64, flows []float64) float64 {
	var pv float64
	factor := 1.0
	for _, cf := range flows {
		pv += cf * factor
		factor /= 1.0 + rate
	}
	return pv
}

// InternalRateOfReturn returns the rate at which PresentValue(rate, flows) is zero.
// Newton-Raphson is tried first from a 10% guess; bisection over an expanding bracket
// is the fallback. The result is undefined when the series never changes sign or
// neither method converges within its iteration budget.
func InternalRateOfReturn(flows []float64) models.Metric {
	if len(flows) < 2 || !hasSignChange(flows) {
		return models.Undefined()
	}
	if r, ok := newton(flows, irrGuess); ok {
		return models.Defined(r)
	}
	if r, ok := bisect(flows); ok {
		return models.Defined(r)
	}
	return models.Undefined()
}

// SimplePayback returns outlay / annualFlow, undefined unless annualFlow > 0.
func SimplePayback(outlay, annualFlow float64) models.Metric {
	if !(annualFlow > 0) || math.IsInf(annualFlow, 0) {
		return models.Undefined()
	}
	return models.Defined(outlay / annualFlow)
}

// Appraise computes NPV, IRR and payback for a series. annualFlow is the
// representative flow used for payback (year-1 FCFE for every venture).
func Appraise(discountRate float64, flows models.CashFlowSeries, annualFlow float64) models.AppraisalResult {
	return models.AppraisalResult{
		NPV:     PresentValue(discountRate, flows),
		IRR:     InternalRateOfReturn(flows),
		Payback: SimplePayback(flows.Outlay(), annualFlow),
	}
}

func hasSignChange(flows []float64) bool {
	var pos, neg bool
	for _, cf := range flows {
		if cf > 0 {
			pos = true
		} else if cf < 0 {
			neg = true
		}
	}
	return pos && neg
}

// pvDerivative is d/dr of PresentValue.
func pvDerivative(rate float64, flows []float64) float64 {
	var d float64
	for t := 1; t < len(flows); t++ {
		d -= float64(t) * flows[t] / math.Pow(1.0+rate, float64(t+1))
	}
	return d
}

// converged reports whether rate is a root within a tolerance scaled to the flows.
func converged(rate float64, flows []float64) bool {
	scale := 0.0
	for _, cf := range flows {
		scale = math.Max(scale, math.Abs(cf))
	}
	pv := PresentValue(rate, flows)
	return !math.IsNaN(pv) && math.Abs(pv) <= 1e-7*math.Max(scale, 1)
}

func newton(flows []float64, guess float64) (float64, bool) {
	r := guess
	for i := 0; i < newtonMaxIter; i++ {
		f := PresentValue(r, flows)
		df := pvDerivative(r, flows)
		if df == 0 || math.IsNaN(df) || math.IsInf(df, 0) {
			return 0, false
		}
		next := r - f/df
		if next <= -1 || math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-r) < irrTolerance {
			return next, converged(next, flows)
		}
		r = next
	}
	return 0, false
}

func bisect(flows []float64) (float64, bool) {
	lo, hi := bracketFloor, 1.0
	flo, fhi := PresentValue(lo, flows), PresentValue(hi, flows)
	for step := 0; sameSign(flo, fhi); step++ {
		if step >= bracketMaxStep {
			return 0, false
		}
		hi = hi*2 + 1
		fhi = PresentValue(hi, flows)
	}
	if flo == 0 {
		return lo, true
	}
	if fhi == 0 {
		return hi, true
	}
	for i := 0; i < bisectMaxIter; i++ {
		mid := lo + (hi-lo)/2
		fmid := PresentValue(mid, flows)
		if fmid == 0 || (hi-lo)/2 < irrTolerance {
			return mid, converged(mid, flows)
		}
		if sameSign(fmid, flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0, false
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
