package domain

import (
	"github.com/shopspring/decimal"
)

// SensitivityParameter represents a profile field to sweep in sensitivity analysis
type SensitivityParameter struct {
	Name        string          `yaml:"name" json:"name"`
	MinValue    decimal.Decimal `yaml:"min_value" json:"minValue"`
	MaxValue    decimal.Decimal `yaml:"max_value" json:"maxValue"`
	Steps       int             `yaml:"steps" json:"steps"`
	Unit        string          `yaml:"unit" json:"unit"` // "percent", "dollars", "years"
	Description string          `yaml:"description" json:"description"`
}

// SensitivityPoint is the projection outcome at one parameter value
type SensitivityPoint struct {
	Value           decimal.Decimal `json:"value"`
	FireNumber      decimal.Decimal `json:"fireNumber"`
	CoastFireNumber decimal.Decimal `json:"coastFireNumber"`
	Gap             decimal.Decimal `json:"gap"`
	Surplus         decimal.Decimal `json:"surplus"`
	Timeline        Timeline        `json:"timeline"`
	AlreadyCoasting bool            `json:"alreadyCoasting"`
}

// SensitivityAnalysis is the result of sweeping one parameter
type SensitivityAnalysis struct {
	Parameter SensitivityParameter `json:"parameter"`
	BaseValue decimal.Decimal      `json:"baseValue"`
	Points    []SensitivityPoint   `json:"points"`
	Skipped   []string             `json:"skipped,omitempty"`
	Summary   SensitivitySummary   `json:"summary"`
}

// SensitivitySummary provides overall analysis summary
type SensitivitySummary struct {
	CoastFireRange decimal.Decimal `json:"coastFireRange"` // max - min Coast FIRE number
	CoastFireSwing decimal.Decimal `json:"coastFireSwing"` // range as percent of the base Coast FIRE number
	RiskLevel      string          `json:"riskLevel"`      // "LOW", "MEDIUM", "HIGH"
	Recommendation string          `json:"recommendation"`
}

// Common sensitivity parameters
var (
	GrowthRateParam = SensitivityParameter{
		Name:        "growth_rate",
		MinValue:    decimal.NewFromInt(4),
		MaxValue:    decimal.NewFromInt(12),
		Steps:       5,
		Unit:        "percent",
		Description: "Nominal annual portfolio growth",
	}

	InflationRateParam = SensitivityParameter{
		Name:        "inflation_rate",
		MinValue:    decimal.NewFromFloat(1.5),
		MaxValue:    decimal.NewFromFloat(4.5),
		Steps:       7,
		Unit:        "percent",
		Description: "General inflation eroding real returns",
	}

	WithdrawalRateParam = SensitivityParameter{
		Name:        "withdrawal_rate",
		MinValue:    decimal.NewFromFloat(3),
		MaxValue:    decimal.NewFromFloat(5),
		Steps:       5,
		Unit:        "percent",
		Description: "Safe withdrawal rate used to size the FIRE number",
	}

	InvestmentFeesParam = SensitivityParameter{
		Name:        "investment_fees",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromFloat(1.5),
		Steps:       4,
		Unit:        "percent",
		Description: "Annual fee drag on the portfolio",
	}

	MonthlyContributionsParam = SensitivityParameter{
		Name:        "monthly_contributions",
		MinValue:    decimal.Zero,
		MaxValue:    decimal.NewFromInt(2000),
		Steps:       5,
		Unit:        "dollars",
		Description: "Monthly amount added to the portfolio until retirement",
	}

	RetirementAgeParam = SensitivityParameter{
		Name:        "retirement_age",
		MinValue:    decimal.NewFromInt(55),
		MaxValue:    decimal.NewFromInt(70),
		Steps:       4,
		Unit:        "years",
		Description: "Target retirement age",
	}
)

// GetCommonSensitivityParameters returns the built-in sweeps keyed by name
func GetCommonSensitivityParameters() map[string]SensitivityParameter {
	return map[string]SensitivityParameter{
		GrowthRateParam.Name:           GrowthRateParam,
		InflationRateParam.Name:        InflationRateParam,
		WithdrawalRateParam.Name:       WithdrawalRateParam,
		InvestmentFeesParam.Name:       InvestmentFeesParam,
		MonthlyContributionsParam.Name: MonthlyContributionsParam,
		RetirementAgeParam.Name:        RetirementAgeParam,
	}
}
