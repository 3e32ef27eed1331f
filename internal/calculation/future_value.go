package calculation

import (
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateFutureValue compounds a fixed monthly contribution. Each month the
// contribution lands first and that month's growth is applied after.
func CalculateFutureValue(monthlyContribution, monthlyRate decimal.Decimal, months int) decimal.Decimal {
	growth := one.Add(monthlyRate)
	fv := decimal.Zero
	for m := 0; m < months; m++ {
		fv = fv.Add(monthlyContribution).Mul(growth).Round(workingScale)
	}
	return fv
}

// FutureValueProjector answers "how long until savings cover the gap"
type FutureValueProjector struct {
	AnnuityMultiplier decimal.Decimal
	MaxMonths         int
}

// NewFutureValueProjector creates a projector with the default planning rules
func NewFutureValueProjector() *FutureValueProjector {
	return NewFutureValueProjectorWithConfig(domain.DefaultPlanningRules())
}

// NewFutureValueProjectorWithConfig creates a projector from the given rules
func NewFutureValueProjectorWithConfig(rules domain.PlanningRules) *FutureValueProjector {
	return &FutureValueProjector{
		AnnuityMultiplier: rules.AnnuityMultiplier,
		MaxMonths:         rules.MaxTimelineMonths,
	}
}

// TargetAmount annualizes a monthly gap and capitalizes it. With the default
// multiplier of 25 this is the 4% rule whatever withdrawal rate the caller
// uses elsewhere.
func (p *FutureValueProjector) TargetAmount(monthlyGap decimal.Decimal) decimal.Decimal {
	return monthlyGap.Mul(twelve).Mul(p.AnnuityMultiplier)
}

// CalculateTimeToFreedom returns the months of saving needed to accumulate
// TargetAmount(gap). It returns nil when either gap or savings is not
// positive. Growth is applied before each month's savings are added.
func (p *FutureValueProjector) CalculateTimeToFreedom(gap, monthlySavings, annualReturnPercent decimal.Decimal) *domain.TimeToFreedom {
	if !monthlySavings.IsPositive() || !gap.IsPositive() {
		return nil
	}

	target := p.TargetAmount(gap)
	growth := one.Add(monthlyRate(annualReturnPercent))
	accumulated := decimal.Zero
	for month := 1; month <= p.MaxMonths; month++ {
		accumulated = accumulated.Mul(growth).Add(monthlySavings).Round(workingScale)
		if accumulated.GreaterThanOrEqual(target) {
			return &domain.TimeToFreedom{
				Months:          month,
				Years:           month / 12,
				RemainingMonths: month % 12,
				Achievable:      true,
			}
		}
	}
	return &domain.TimeToFreedom{
		Months:          p.MaxMonths,
		Years:           p.MaxMonths / 12,
		RemainingMonths: p.MaxMonths % 12,
		Achievable:      false,
	}
}
