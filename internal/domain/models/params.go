package models

// Tax rate applied to positive EBITDA. No loss carry-forward.
const CorporateTaxRate = 0.20

// DiagnosticsParams describes a diagnostics and imaging micro-clinic.
type DiagnosticsParams struct {
	Capex           float64 `json:"capex" yaml:"capex" default:"35000000" validate:"gt=0"`
	LeaseRatio      float64 `json:"lease_ratio" yaml:"lease_ratio" default:"0.5" validate:"gte=0,lte=0.8"`
	OpexRatio       float64 `json:"opex_ratio" yaml:"opex_ratio" default:"0.58" validate:"gte=0.4,lte=0.8"`
	AvgPrice        float64 `json:"avg_price" yaml:"avg_price" default:"4200" validate:"gte=0"`
	TestsPerDay     float64 `json:"tests_per_day" yaml:"tests_per_day" default:"120" validate:"gte=0"`
	UtilizationDays int     `json:"utilization_days" yaml:"utilization_days" default:"300" validate:"gte=200,lte=340"`
	StaffingCost    float64 `json:"staffing_cost" yaml:"staffing_cost" default:"18000000" validate:"gte=0"`
	OtherFixedCost  float64 `json:"other_fixed_cost" yaml:"other_fixed_cost" default:"6000000" validate:"gte=0"`
	LeaseCostRate   float64 `json:"lease_cost_rate" yaml:"lease_cost_rate" default:"0.12" validate:"gte=0,lte=0.25"`
}

func (DiagnosticsParams) Venture() VentureID { return VentureDiagnostics }

// TeleWellnessParams describes a subscription tele-wellness platform.
// ARPU is monthly; users is the year-1 base.
type TeleWellnessParams struct {
	Capex          float64 `json:"capex" yaml:"capex" default:"18000000" validate:"gt=0"`
	Users          float64 `json:"users" yaml:"users" default:"25000" validate:"gte=0"`
	ARPU           float64 `json:"arpu" yaml:"arpu" default:"550" validate:"gte=0"`
	COGSRatio      float64 `json:"cogs_ratio" yaml:"cogs_ratio" default:"0.15" validate:"gte=0.05,lte=0.4"`
	SGARatio       float64 `json:"sga_ratio" yaml:"sga_ratio" default:"0.25" validate:"gte=0.1,lte=0.6"`
	MonthlyChurn   float64 `json:"monthly_churn" yaml:"monthly_churn" default:"0.05" validate:"gte=0,lte=0.15"`
	UserGrowthRate float64 `json:"user_growth_rate" yaml:"user_growth_rate" default:"0.35" validate:"gte=0.05,lte=1"`
	ARPUGrowthRate float64 `json:"arpu_growth_rate" yaml:"arpu_growth_rate" default:"0.08" validate:"gte=0,lte=0.25"`
	FixedCosts     float64 `json:"fixed_costs" yaml:"fixed_costs" default:"12000000" validate:"gte=0"`
}

func (TeleWellnessParams) Venture() VentureID { return VentureTeleWellness }

// CosmeticStudioParams describes a cosmetic / laser therapy studio.
// LocalPriceGrowth replaces the global price growth for this venture.
type CosmeticStudioParams struct {
	Capex            float64 `json:"capex" yaml:"capex" default:"22000000" validate:"gt=0"`
	SessionsPerDay   float64 `json:"sessions_per_day" yaml:"sessions_per_day" default:"45" validate:"gte=0"`
	AvgPrice         float64 `json:"avg_price" yaml:"avg_price" default:"9000" validate:"gte=0"`
	OperatingDays    int     `json:"operating_days" yaml:"operating_days" default:"300" validate:"gte=220,lte=340"`
	ConsumablesRatio float64 `json:"consumables_ratio" yaml:"consumables_ratio" default:"0.15" validate:"gte=0.05,lte=0.35"`
	MarketingRatio   float64 `json:"marketing_ratio" yaml:"marketing_ratio" default:"0.12" validate:"gte=0.05,lte=0.3"`
	StaffingCost     float64 `json:"staffing_cost" yaml:"staffing_cost" default:"14000000" validate:"gte=0"`
	RentCost         float64 `json:"rent_cost" yaml:"rent_cost" default:"9000000" validate:"gte=0"`
	LocalPriceGrowth float64 `json:"local_price_growth" yaml:"local_price_growth" default:"0.07" validate:"gte=0,lte=0.25"`
}

func (CosmeticStudioParams) Venture() VentureID { return VentureCosmeticStudio }
