// Package presenter turns scenario results into display rows and workbooks.
package presenter

import (
	"fmt"
	"math"
	"strconv"

	"HealthFeas/internal/domain/models"

	"github.com/dustin/go-humanize"
)

const (
	currency = "PKR"
	notAvail = "n/a"
)

// FormatPKR renders whole rupees with thousands separators: "PKR 1,234,568".
// Exact halves round to even.
func FormatPKR(x float64) string {
	if s, ok := nonFinite(x); ok {
		return currency + " " + s
	}
	r := math.RoundToEven(x)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return currency + " " + humanize.Commaf(r)
}

// FormatPercent renders a rate as "12.3%", or "n/a" when undefined.
func FormatPercent(m models.Metric) string {
	if !m.Valid {
		return notAvail
	}
	if s, ok := nonFinite(m.Value); ok {
		return s
	}
	return fmt.Sprintf("%.1f%%", m.Value*100)
}

// FormatPayback renders years with one decimal and thousands separators, or "n/a".
func FormatPayback(m models.Metric) string {
	if !m.Valid {
		return notAvail
	}
	if s, ok := nonFinite(m.Value); ok {
		return s
	}
	return oneDecimal(m.Value)
}

func oneDecimal(x float64) string {
	s := strconv.FormatFloat(math.Abs(x), 'f', 1, 64)
	whole, err := strconv.ParseFloat(s[:len(s)-2], 64)
	if err != nil {
		return s
	}
	sign := ""
	if x < 0 && s != "0.0" {
		sign = "-"
	}
	return sign + humanize.Commaf(whole) + s[len(s)-2:]
}

func nonFinite(x float64) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "nan", true
	case math.IsInf(x, 1):
		return "inf", true
	case math.IsInf(x, -1):
		return "-inf", true
	}
	return "", false
}
