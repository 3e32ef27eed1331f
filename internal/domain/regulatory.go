package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PlanningRules contains every constant the calculators depend on. It is
// loaded from a rules YAML file or built from DefaultPlanningRules and handed
// to the calculation engine at construction time.
type PlanningRules struct {
	Metadata RulesMetadata `yaml:"metadata" json:"metadata"`
	TaxTable TaxTable      `yaml:"tax_table" json:"taxTable"`

	// Gross-income solver
	ReinvestmentBuffer  decimal.Decimal `yaml:"reinvestment_buffer" json:"reinvestmentBuffer"`
	SeedTaxRate         decimal.Decimal `yaml:"seed_tax_rate" json:"seedTaxRate"`
	MaxSolverIterations int             `yaml:"max_solver_iterations" json:"maxSolverIterations"`
	SolverTolerance     decimal.Decimal `yaml:"solver_tolerance" json:"solverTolerance"` // annual currency units

	// Time-to-target loops
	MaxTimelineYears  int `yaml:"max_timeline_years" json:"maxTimelineYears"`
	MaxTimelineMonths int `yaml:"max_timeline_months" json:"maxTimelineMonths"`

	// Freedom Number target = monthly gap * 12 * AnnuityMultiplier
	AnnuityMultiplier decimal.Decimal `yaml:"annuity_multiplier" json:"annuityMultiplier"`

	// Scenario rates (nominal annual percent)
	ConservativeRatePercent decimal.Decimal `yaml:"conservative_rate_percent" json:"conservativeRatePercent"`
	AggressiveRatePercent   decimal.Decimal `yaml:"aggressive_rate_percent" json:"aggressiveRatePercent"`
	HorizonMonths           int             `yaml:"horizon_months" json:"horizonMonths"`
}

// RulesMetadata describes where a rules file came from
type RulesMetadata struct {
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description" json:"description"`
}

// DefaultPlanningRules returns the rules used by the calculators in production
func DefaultPlanningRules() PlanningRules {
	return PlanningRules{
		Metadata: RulesMetadata{
			Version:     "2024.1",
			Description: "2024 single filer, 8% reinvestment buffer",
		},
		TaxTable:                TaxTable2024Single(),
		ReinvestmentBuffer:      decimal.RequireFromString("0.08"),
		SeedTaxRate:             decimal.RequireFromString("0.25"),
		MaxSolverIterations:     10,
		SolverTolerance:         decimal.NewFromInt(1),
		MaxTimelineYears:        100,
		MaxTimelineMonths:       600,
		AnnuityMultiplier:       decimal.NewFromInt(25),
		ConservativeRatePercent: decimal.NewFromInt(4),
		AggressiveRatePercent:   decimal.NewFromInt(10),
		HorizonMonths:           120,
	}
}

// ServicePricingRules is the variant used by the service pricing workbook,
// which reserves 15% of gross for reinvestment.
func ServicePricingRules() PlanningRules {
	r := DefaultPlanningRules()
	r.Metadata.Description = "2024 single filer, 15% reinvestment buffer"
	r.ReinvestmentBuffer = decimal.RequireFromString("0.15")
	return r
}

// WithDefaults fills the fields where zero cannot work (tax table, solver
// caps, tolerance, timeline caps, multiplier) from DefaultPlanningRules. Zero
// is a real setting for the buffer, seed rate, scenario rates and horizon, so
// those are kept as given.
func (r PlanningRules) WithDefaults() PlanningRules {
	d := DefaultPlanningRules()
	if len(r.TaxTable.Brackets) == 0 {
		r.TaxTable = d.TaxTable
	}
	if r.MaxSolverIterations == 0 {
		r.MaxSolverIterations = d.MaxSolverIterations
	}
	if r.SolverTolerance.IsZero() {
		r.SolverTolerance = d.SolverTolerance
	}
	if r.MaxTimelineYears == 0 {
		r.MaxTimelineYears = d.MaxTimelineYears
	}
	if r.MaxTimelineMonths == 0 {
		r.MaxTimelineMonths = d.MaxTimelineMonths
	}
	if r.AnnuityMultiplier.IsZero() {
		r.AnnuityMultiplier = d.AnnuityMultiplier
	}
	return r
}

// Validate checks the rules for values the calculators cannot work with
func (r PlanningRules) Validate() error {
	if err := r.TaxTable.Validate(); err != nil {
		return fmt.Errorf("tax table: %w", err)
	}
	one := decimal.NewFromInt(1)
	if r.ReinvestmentBuffer.IsNegative() || r.ReinvestmentBuffer.GreaterThanOrEqual(one) {
		return fmt.Errorf("reinvestment_buffer must be in [0, 1)")
	}
	if r.SeedTaxRate.IsNegative() || r.SeedTaxRate.Add(r.ReinvestmentBuffer).GreaterThanOrEqual(one) {
		return fmt.Errorf("seed_tax_rate plus reinvestment_buffer must be below 1")
	}
	if r.MaxSolverIterations < 1 {
		return fmt.Errorf("max_solver_iterations must be at least 1")
	}
	if !r.SolverTolerance.IsPositive() {
		return fmt.Errorf("solver_tolerance must be positive")
	}
	if r.MaxTimelineYears < 1 || r.MaxTimelineMonths < 1 {
		return fmt.Errorf("timeline caps must be at least 1")
	}
	if !r.AnnuityMultiplier.IsPositive() {
		return fmt.Errorf("annuity_multiplier must be positive")
	}
	if r.HorizonMonths < 0 {
		return fmt.Errorf("horizon_months cannot be negative")
	}
	return nil
}
