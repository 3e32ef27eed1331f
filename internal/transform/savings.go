package transform

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// AdjustContributions adds a monthly amount to contributions. The result is
// floored at zero.
type AdjustContributions struct {
	MonthlyDelta decimal.Decimal
}

func (ac *AdjustContributions) Name() string {
	return "adjust_contributions"
}

func (ac *AdjustContributions) Description() string {
	if ac.MonthlyDelta.IsNegative() {
		return fmt.Sprintf("Contribute $%s less per month", ac.MonthlyDelta.Neg().StringFixed(0))
	}
	return fmt.Sprintf("Contribute $%s more per month", ac.MonthlyDelta.StringFixed(0))
}

func (ac *AdjustContributions) Validate(base domain.FinancialProfile) error {
	if ac.MonthlyDelta.IsZero() {
		return NewTransformError(ac.Name(), "validate", "monthly delta cannot be zero", nil)
	}
	return nil
}

func (ac *AdjustContributions) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.MonthlyContributions = decimal.Max(decimal.Zero, base.MonthlyContributions.Add(ac.MonthlyDelta))
	return base, nil
}

// SetContributions replaces the monthly contribution amount
type SetContributions struct {
	Monthly decimal.Decimal
}

func (sc *SetContributions) Name() string {
	return "set_contributions"
}

func (sc *SetContributions) Description() string {
	return fmt.Sprintf("Contribute $%s per month", sc.Monthly.StringFixed(0))
}

func (sc *SetContributions) Validate(base domain.FinancialProfile) error {
	if sc.Monthly.IsNegative() {
		return NewTransformError(sc.Name(), "validate", "monthly contributions cannot be negative", nil)
	}
	return nil
}

func (sc *SetContributions) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.MonthlyContributions = sc.Monthly
	return base, nil
}

// SetSpending replaces annual retirement spending
type SetSpending struct {
	Annual decimal.Decimal
}

func (ss *SetSpending) Name() string {
	return "set_spending"
}

func (ss *SetSpending) Description() string {
	return fmt.Sprintf("Spend $%s per year in retirement", ss.Annual.StringFixed(0))
}

func (ss *SetSpending) Validate(base domain.FinancialProfile) error {
	if ss.Annual.IsNegative() {
		return NewTransformError(ss.Name(), "validate", "annual spending cannot be negative", nil)
	}
	return nil
}

func (ss *SetSpending) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.AnnualSpending = ss.Annual
	return base, nil
}

// ScaleSpending multiplies annual spending by a factor (0.9 = spend 10% less)
type ScaleSpending struct {
	Factor decimal.Decimal
}

func (ss *ScaleSpending) Name() string {
	return "scale_spending"
}

func (ss *ScaleSpending) Description() string {
	pct := ss.Factor.Sub(decimal.NewFromInt(1)).Mul(decimal.NewFromInt(100))
	if pct.IsNegative() {
		return fmt.Sprintf("Spend %s%% less in retirement", pct.Neg().StringFixed(0))
	}
	return fmt.Sprintf("Spend %s%% more in retirement", pct.StringFixed(0))
}

func (ss *ScaleSpending) Validate(base domain.FinancialProfile) error {
	if !ss.Factor.IsPositive() {
		return NewTransformError(ss.Name(), "validate", "factor must be positive", nil)
	}
	return nil
}

func (ss *ScaleSpending) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.AnnualSpending = base.AnnualSpending.Mul(ss.Factor).Round(2)
	return base, nil
}

// AddRetirementIncome adds annual income (pension, part-time work) received in retirement
type AddRetirementIncome struct {
	Annual decimal.Decimal
}

func (ar *AddRetirementIncome) Name() string {
	return "add_retirement_income"
}

func (ar *AddRetirementIncome) Description() string {
	return fmt.Sprintf("Add $%s/year of retirement income", ar.Annual.StringFixed(0))
}

func (ar *AddRetirementIncome) Validate(base domain.FinancialProfile) error {
	if !ar.Annual.IsPositive() {
		return NewTransformError(ar.Name(), "validate", "annual income must be positive", nil)
	}
	return nil
}

func (ar *AddRetirementIncome) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.RetirementIncome = base.RetirementIncome.Add(ar.Annual)
	return base, nil
}
