package models

// GlobalAssumptions are the macro inputs shared by every venture in a run.
type GlobalAssumptions struct {
	FXDepreciation float64 `json:"fx_depreciation" yaml:"fx_depreciation" default:"0.10" validate:"gte=0,lte=0.3"`
	DiscountRate   float64 `json:"discount_rate" yaml:"discount_rate" default:"0.18" validate:"gte=0.1,lte=0.3"`
	Years          int     `json:"years" yaml:"years" default:"5" validate:"gte=3,lte=7"`
	PriceGrowth    float64 `json:"price_growth" yaml:"price_growth" default:"0.05" validate:"gte=0,lte=0.2"`
}

// DefaultGlobals returns the dashboard's starting macro assumptions.
func DefaultGlobals() GlobalAssumptions {
	return GlobalAssumptions{
		FXDepreciation: 0.10,
		DiscountRate:   0.18,
		Years:          5,
		PriceGrowth:    0.05,
	}
}
