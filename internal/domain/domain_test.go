package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() FinancialProfile {
	return FinancialProfile{
		CurrentAge:            30,
		RetirementAge:         65,
		AnnualSpending:        decimal.NewFromInt(60000),
		CurrentAssets:         decimal.NewFromInt(100000),
		MonthlyContributions:  decimal.NewFromInt(1000),
		GrowthRatePercent:     decimal.NewFromInt(7),
		InflationRatePercent:  decimal.NewFromInt(3),
		WithdrawalRatePercent: decimal.NewFromInt(4),
		InvestmentFeesPercent: decimal.RequireFromString("0.5"),
	}
}

func TestFinancialProfile_Derived(t *testing.T) {
	p := validProfile()
	assert.Equal(t, 35, p.YearsToRetirement())
	assert.True(t, p.RealReturnRate().Equal(decimal.RequireFromString("0.035")),
		"real return should be (7-3-0.5)/100, got %s", p.RealReturnRate())
}

func TestFinancialProfile_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *FinancialProfile)
		field  string
	}{
		{"valid", func(p *FinancialProfile) {}, ""},
		{"negative current age", func(p *FinancialProfile) { p.CurrentAge = -1 }, "current_age"},
		{"retirement equals current", func(p *FinancialProfile) { p.RetirementAge = 30 }, "retirement_age"},
		{"retirement before current", func(p *FinancialProfile) { p.CurrentAge = 70 }, "retirement_age"},
		{"age at cap", func(p *FinancialProfile) { p.RetirementAge = MaxAge }, "retirement_age"},
		{"negative spending", func(p *FinancialProfile) { p.AnnualSpending = decimal.NewFromInt(-1) }, "annual_spending"},
		{"negative assets", func(p *FinancialProfile) { p.CurrentAssets = decimal.NewFromInt(-1) }, "current_assets"},
		{"negative contributions", func(p *FinancialProfile) { p.MonthlyContributions = decimal.NewFromInt(-1) }, "monthly_contributions"},
		{"negative retirement income", func(p *FinancialProfile) { p.RetirementIncome = decimal.NewFromInt(-1) }, "retirement_income"},
		{"zero withdrawal rate", func(p *FinancialProfile) { p.WithdrawalRatePercent = decimal.Zero }, "withdrawal_rate_percent"},
		{"real return at -100%", func(p *FinancialProfile) { p.InflationRatePercent = decimal.NewFromInt(110) }, "growth_rate_percent"},
		{"negative real return allowed", func(p *FinancialProfile) { p.GrowthRatePercent = decimal.NewFromInt(2) }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.modify(&p)
			err := p.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestFreedomProfile_Validate(t *testing.T) {
	ok := FreedomProfile{MonthlyExpenses: decimal.NewFromInt(5000)}
	assert.NoError(t, ok.Validate())

	for _, f := range []FreedomProfile{
		{MonthlyExpenses: decimal.NewFromInt(-1)},
		{CurrentPassiveIncome: decimal.NewFromInt(-1)},
		{MonthlySavings: decimal.NewFromInt(-1)},
	} {
		assert.True(t, IsValidationError(f.Validate()))
	}
}

func TestErrors(t *testing.T) {
	ve := &ValidationError{Field: "current_age", Message: "bad"}
	assert.Equal(t, "current_age: bad", ve.Error())
	assert.Equal(t, "bad", (&ValidationError{Message: "bad"}).Error())

	wrapped := fmt.Errorf("loading: %w", ve)
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(errors.New("plain")))

	cause := errors.New("boom")
	ce := &CalculationError{Operation: "solve", Message: "failed", Cause: cause}
	assert.Equal(t, "solve: failed: boom", ce.Error())
	assert.ErrorIs(t, ce, cause)
	assert.Equal(t, "solve: failed", (&CalculationError{Operation: "solve", Message: "failed"}).Error())
}

func TestTaxTable2024Single(t *testing.T) {
	table := TaxTable2024Single()
	require.NoError(t, table.Validate())
	assert.Len(t, table.Brackets, 7)
	assert.True(t, table.Brackets[len(table.Brackets)-1].Unbounded())
	assert.False(t, table.Brackets[0].Unbounded())
	assert.True(t, table.SSWageBase.Equal(decimal.NewFromInt(168600)))
}

func TestTaxTable_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(t *TaxTable)
		errMsg string
	}{
		{"no brackets", func(t *TaxTable) { t.Brackets = nil }, "no brackets"},
		{"rate of one", func(t *TaxTable) { t.Brackets[0].Rate = decimal.NewFromInt(1) }, "rate must be in [0, 1)"},
		{"bounded last bracket", func(t *TaxTable) { t.Brackets[6].UpperLimit = limit(1000000) }, "last bracket must omit upper_limit"},
		{"unbounded middle bracket", func(t *TaxTable) { t.Brackets[2].UpperLimit = nil }, "only the last bracket"},
		{"non-increasing limits", func(t *TaxTable) { t.Brackets[1].UpperLimit = limit(11600) }, "strictly increasing"},
		{"negative wage base", func(t *TaxTable) { t.SSWageBase = decimal.NewFromInt(-1) }, "ss_wage_base"},
		{"negative state rate", func(t *TaxTable) { t.StateRate = decimal.NewFromInt(-1) }, "surcharge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := TaxTable2024Single()
			tt.modify(&table)
			err := table.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestPlanningRules_Defaults(t *testing.T) {
	rules := DefaultPlanningRules()
	require.NoError(t, rules.Validate())
	assert.True(t, rules.ReinvestmentBuffer.Equal(decimal.RequireFromString("0.08")))
	assert.Equal(t, 10, rules.MaxSolverIterations)
	assert.True(t, rules.AnnuityMultiplier.Equal(decimal.NewFromInt(25)))

	pricing := ServicePricingRules()
	require.NoError(t, pricing.Validate())
	assert.True(t, pricing.ReinvestmentBuffer.Equal(decimal.RequireFromString("0.15")))
	assert.Equal(t, rules.TaxTable.Name, pricing.TaxTable.Name)
}

func TestPlanningRules_WithDefaults(t *testing.T) {
	partial := PlanningRules{
		ReinvestmentBuffer: decimal.RequireFromString("0.10"),
		HorizonMonths:      60,
	}
	filled := partial.WithDefaults()

	require.NoError(t, filled.Validate())
	assert.True(t, filled.ReinvestmentBuffer.Equal(decimal.RequireFromString("0.10")), "explicit value must survive")
	assert.Equal(t, 60, filled.HorizonMonths)
	assert.Len(t, filled.TaxTable.Brackets, 7)
	assert.Equal(t, 100, filled.MaxTimelineYears)
	assert.Equal(t, 600, filled.MaxTimelineMonths)
	assert.True(t, filled.AnnuityMultiplier.Equal(decimal.NewFromInt(25)))
	assert.True(t, filled.SeedTaxRate.IsZero(), "zero seed rate is a valid setting and must be kept")
	assert.True(t, filled.ConservativeRatePercent.IsZero(), "zero scenario rate must be kept")
}

func TestPlanningRules_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *PlanningRules)
		errMsg string
	}{
		{"buffer of one", func(r *PlanningRules) { r.ReinvestmentBuffer = decimal.NewFromInt(1) }, "reinvestment_buffer"},
		{"seed plus buffer too high", func(r *PlanningRules) { r.SeedTaxRate = decimal.RequireFromString("0.95") }, "seed_tax_rate"},
		{"no iterations", func(r *PlanningRules) { r.MaxSolverIterations = 0 }, "max_solver_iterations"},
		{"zero tolerance", func(r *PlanningRules) { r.SolverTolerance = decimal.Zero }, "solver_tolerance"},
		{"zero timeline cap", func(r *PlanningRules) { r.MaxTimelineMonths = 0 }, "timeline caps"},
		{"zero multiplier", func(r *PlanningRules) { r.AnnuityMultiplier = decimal.Zero }, "annuity_multiplier"},
		{"negative horizon", func(r *PlanningRules) { r.HorizonMonths = -1 }, "horizon_months"},
		{"broken tax table", func(r *PlanningRules) { r.TaxTable.Brackets = nil }, "tax table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultPlanningRules()
			tt.modify(&rules)
			err := rules.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestResultLookups(t *testing.T) {
	paths := GrowthPaths{
		Aggressive:   GrowthPath{Name: PathAggressive},
		Moderate:     GrowthPath{Name: PathModerate},
		Conservative: GrowthPath{Name: PathConservative},
	}
	all := paths.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{PathAggressive, PathModerate, PathConservative}, []string{all[0].Name, all[1].Name, all[2].Name})

	r := &FreedomResult{Scenarios: []FreedomScenario{{Name: PathConservative}, {Name: PathModerate}}}
	s, ok := r.Scenario(PathModerate)
	assert.True(t, ok)
	assert.Equal(t, PathModerate, s.Name)
	_, ok = r.Scenario(PathAggressive)
	assert.False(t, ok)
}
