package domain

import (
	"github.com/shopspring/decimal"
)

// MaxAge is the exclusive upper bound for both ages in a FinancialProfile
const MaxAge = 100

// FinancialProfile holds the inputs of a single FIRE / Coast-FIRE projection.
// Percent fields are whole percentages (10 means 10%), money fields are annual
// unless the name says otherwise.
type FinancialProfile struct {
	CurrentAge            int             `yaml:"current_age" json:"currentAge"`
	RetirementAge         int             `yaml:"retirement_age" json:"retirementAge"`
	AnnualSpending        decimal.Decimal `yaml:"annual_spending" json:"annualSpending"`
	CurrentAssets         decimal.Decimal `yaml:"current_assets" json:"currentAssets"`
	MonthlyContributions  decimal.Decimal `yaml:"monthly_contributions" json:"monthlyContributions"`
	RetirementIncome      decimal.Decimal `yaml:"retirement_income" json:"retirementIncome"` // pensions, SS etc. in retirement
	GrowthRatePercent     decimal.Decimal `yaml:"growth_rate_percent" json:"growthRatePercent"`
	InflationRatePercent  decimal.Decimal `yaml:"inflation_rate_percent" json:"inflationRatePercent"`
	WithdrawalRatePercent decimal.Decimal `yaml:"withdrawal_rate_percent" json:"withdrawalRatePercent"`
	InvestmentFeesPercent decimal.Decimal `yaml:"investment_fees_percent" json:"investmentFeesPercent"`
}

// YearsToRetirement returns the number of whole years between the two ages
func (p FinancialProfile) YearsToRetirement() int {
	return p.RetirementAge - p.CurrentAge
}

// RealReturnRate returns growth minus inflation minus fees as a fraction
func (p FinancialProfile) RealReturnRate() decimal.Decimal {
	return p.GrowthRatePercent.Sub(p.InflationRatePercent).Sub(p.InvestmentFeesPercent).Div(decimal.NewFromInt(100))
}

// Validate checks the hard preconditions of a projection. Ages are the only
// precondition the planner surfaces to users; the remaining checks keep the
// arithmetic defined (no division by zero, no negative compounding base).
func (p FinancialProfile) Validate() error {
	if p.CurrentAge < 0 {
		return &ValidationError{Field: "current_age", Message: "current age cannot be negative"}
	}
	if p.CurrentAge >= MaxAge || p.RetirementAge >= MaxAge {
		return &ValidationError{Field: "retirement_age", Message: "ages must be below 100"}
	}
	if p.CurrentAge >= p.RetirementAge {
		return &ValidationError{Field: "retirement_age", Message: "retirement age must be greater than current age"}
	}

	money := []struct {
		field string
		value decimal.Decimal
	}{
		{"annual_spending", p.AnnualSpending},
		{"current_assets", p.CurrentAssets},
		{"monthly_contributions", p.MonthlyContributions},
		{"retirement_income", p.RetirementIncome},
	}
	for _, m := range money {
		if m.value.IsNegative() {
			return &ValidationError{Field: m.field, Message: "amount cannot be negative"}
		}
	}

	if !p.WithdrawalRatePercent.IsPositive() {
		return &ValidationError{Field: "withdrawal_rate_percent", Message: "withdrawal rate must be positive"}
	}
	if p.RealReturnRate().LessThanOrEqual(decimal.NewFromInt(-1)) {
		return &ValidationError{Field: "growth_rate_percent", Message: "real return rate must be above -100%"}
	}
	return nil
}

// FreedomProfile holds the inputs of the Freedom Number tool. All amounts are monthly.
type FreedomProfile struct {
	MonthlyExpenses       decimal.Decimal `yaml:"monthly_expenses" json:"monthlyExpenses"`
	CurrentPassiveIncome  decimal.Decimal `yaml:"current_passive_income" json:"currentPassiveIncome"`
	MonthlySavings        decimal.Decimal `yaml:"monthly_savings" json:"monthlySavings"`
	ExpectedReturnPercent decimal.Decimal `yaml:"expected_return_percent" json:"expectedReturnPercent"`
}

// Validate rejects negative amounts
func (f FreedomProfile) Validate() error {
	if f.MonthlyExpenses.IsNegative() {
		return &ValidationError{Field: "monthly_expenses", Message: "amount cannot be negative"}
	}
	if f.CurrentPassiveIncome.IsNegative() {
		return &ValidationError{Field: "current_passive_income", Message: "amount cannot be negative"}
	}
	if f.MonthlySavings.IsNegative() {
		return &ValidationError{Field: "monthly_savings", Message: "amount cannot be negative"}
	}
	return nil
}

// PlanInput is the document loaded from a profile file. Either section may be omitted.
type PlanInput struct {
	Name    string            `yaml:"name" json:"name"`
	Profile *FinancialProfile `yaml:"profile,omitempty" json:"profile,omitempty"`
	Freedom *FreedomProfile   `yaml:"freedom,omitempty" json:"freedom,omitempty"`
}
