package calculation

import (
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX ESTIMATE ASSUMPTIONS:
//
// 1. Progressive brackets are applied to the full gross income. There is no
//    standard deduction; the estimate is deliberately pessimistic.
//
// 2. Self-employment tax: SelfEmploymentRate * SelfEmploymentFactor on gross
//    income up to the Social Security wage base.
//
// 3. State tax: flat StateRate on gross income.
//
// The effective rate is not clamped. Custom tables with very high surcharges
// can push it past 1.

// EffectiveTaxEstimator computes a blended effective tax rate from a TaxTable
type EffectiveTaxEstimator struct {
	Table domain.TaxTable
}

// NewEffectiveTaxEstimator creates an estimator for the 2024 single-filer table
func NewEffectiveTaxEstimator() *EffectiveTaxEstimator {
	return NewEffectiveTaxEstimatorWithConfig(domain.TaxTable2024Single())
}

// NewEffectiveTaxEstimatorWithConfig creates an estimator for a custom table
func NewEffectiveTaxEstimatorWithConfig(table domain.TaxTable) *EffectiveTaxEstimator {
	return &EffectiveTaxEstimator{Table: table}
}

// CalculateIncomeTax walks the brackets and returns the progressive tax
func (e *EffectiveTaxEstimator) CalculateIncomeTax(grossIncome decimal.Decimal) decimal.Decimal {
	if !grossIncome.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	prevLimit := decimal.Zero
	for _, bracket := range e.Table.Brackets {
		if grossIncome.LessThanOrEqual(prevLimit) {
			break
		}
		if bracket.Unbounded() {
			tax = tax.Add(grossIncome.Sub(prevLimit).Mul(bracket.Rate))
			break
		}
		incomeInBracket := decimal.Min(grossIncome, *bracket.UpperLimit).Sub(prevLimit)
		tax = tax.Add(incomeInBracket.Mul(bracket.Rate))
		prevLimit = *bracket.UpperLimit
	}
	return tax
}

// CalculateSelfEmploymentTax applies the SE surcharge up to the wage base
func (e *EffectiveTaxEstimator) CalculateSelfEmploymentTax(grossIncome decimal.Decimal) decimal.Decimal {
	if !grossIncome.IsPositive() {
		return decimal.Zero
	}
	taxable := decimal.Min(grossIncome, e.Table.SSWageBase)
	return taxable.Mul(e.Table.SelfEmploymentRate).Mul(e.Table.SelfEmploymentFactor)
}

// CalculateStateTax applies the flat state estimate
func (e *EffectiveTaxEstimator) CalculateStateTax(grossIncome decimal.Decimal) decimal.Decimal {
	if !grossIncome.IsPositive() {
		return decimal.Zero
	}
	return grossIncome.Mul(e.Table.StateRate)
}

// EstimateTotalTax returns the itemized estimate for an annual gross income
func (e *EffectiveTaxEstimator) EstimateTotalTax(grossIncome decimal.Decimal) domain.TaxBreakdown {
	b := domain.TaxBreakdown{
		GrossIncome:       grossIncome,
		IncomeTax:         e.CalculateIncomeTax(grossIncome),
		SelfEmploymentTax: e.CalculateSelfEmploymentTax(grossIncome),
		StateTax:          e.CalculateStateTax(grossIncome),
	}
	b.TotalTax = b.IncomeTax.Add(b.SelfEmploymentTax).Add(b.StateTax)
	if grossIncome.IsPositive() {
		b.EffectiveRate = b.TotalTax.Div(grossIncome)
	}
	return b
}

// EstimateEffectiveTaxRate returns total tax / gross, or 0 for gross <= 0
func (e *EffectiveTaxEstimator) EstimateEffectiveTaxRate(grossIncome decimal.Decimal) decimal.Decimal {
	return e.EstimateTotalTax(grossIncome).EffectiveRate
}
