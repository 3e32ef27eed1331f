package calculation

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/interpret"
	"github.com/shopspring/decimal"
)

var milestonePercents = []int{25, 50, 75, 100}

// CoastFireProjector computes the FIRE number, the Coast FIRE number and the
// year-by-year growth of a profile's assets.
type CoastFireProjector struct {
	MaxYears                int
	AggressiveRatePercent   decimal.Decimal
	ConservativeRatePercent decimal.Decimal
	Logger                  Logger
}

// NewCoastFireProjector creates a projector with the default planning rules
func NewCoastFireProjector() *CoastFireProjector {
	return NewCoastFireProjectorWithConfig(domain.DefaultPlanningRules())
}

// NewCoastFireProjectorWithConfig creates a projector from the given rules
func NewCoastFireProjectorWithConfig(rules domain.PlanningRules) *CoastFireProjector {
	return &CoastFireProjector{
		MaxYears:                rules.MaxTimelineYears,
		AggressiveRatePercent:   rules.AggressiveRatePercent,
		ConservativeRatePercent: rules.ConservativeRatePercent,
		Logger:                  NopLogger{},
	}
}

// ProjectCoastFire runs the full Coast-FIRE projection for a profile.
// Invalid profiles are rejected with a *domain.ValidationError before any
// arithmetic happens.
func (p *CoastFireProjector) ProjectCoastFire(profile domain.FinancialProfile) (*domain.ProjectionResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	log := orNop(p.Logger)

	years := profile.YearsToRetirement()
	realRate := profile.RealReturnRate()
	growthFactor := one.Add(realRate)
	annualContributions := profile.MonthlyContributions.Mul(twelve)
	withdrawalRate := percentToFraction(profile.WithdrawalRatePercent)

	netSpending := decimal.Max(decimal.Zero, profile.AnnualSpending.Sub(profile.RetirementIncome))
	fireNumber := netSpending.Div(withdrawalRate).Round(2)

	compounded := growthFactor.Pow(decimal.NewFromInt(int64(years)))
	if !compounded.IsPositive() {
		return nil, &domain.CalculationError{
			Operation: "project_coast_fire",
			Message:   fmt.Sprintf("growth factor %s compounds to zero over %d years", growthFactor, years),
		}
	}
	coastFireNumber := fireNumber.Div(compounded).Round(2)

	projected := profile.CurrentAssets
	for y := 0; y < years; y++ {
		projected = projected.Mul(growthFactor).Add(annualContributions).Round(workingScale)
	}
	projected = projected.Round(2)

	alreadyCoasting := profile.CurrentAssets.GreaterThanOrEqual(coastFireNumber)
	gap := decimal.Max(decimal.Zero, coastFireNumber.Sub(profile.CurrentAssets))

	availableWithdrawal := projected.Mul(withdrawalRate).Round(2)

	result := &domain.ProjectionResult{
		Profile:                profile,
		YearsToRetirement:      years,
		RealReturnRate:         realRate,
		FireNumber:             fireNumber,
		CoastFireNumber:        coastFireNumber,
		CurrentAssetsProjected: projected,
		Gap:                    gap,
		AlreadyCoasting:        alreadyCoasting,
		Timeline:               p.timelineToCoast(profile, growthFactor, annualContributions, coastFireNumber, alreadyCoasting, gap),
		RequiredWithdrawal:     netSpending.Round(2),
		AvailableWithdrawal:    availableWithdrawal,
		Surplus:                availableWithdrawal.Sub(netSpending).Round(2),
		Paths: domain.GrowthPaths{
			Aggressive:   p.growthPath(domain.PathAggressive, p.AggressiveRatePercent, profile, fireNumber),
			Moderate:     p.growthPath(domain.PathModerate, profile.GrowthRatePercent, profile, fireNumber),
			Conservative: p.growthPath(domain.PathConservative, p.ConservativeRatePercent, profile, fireNumber),
		},
	}
	result.Summary = interpret.DescribeCoast(result)

	log.Debugf("coast projection: years=%d real=%s fire=%s coast=%s projected=%s coasting=%v",
		years, realRate.String(), fireNumber.StringFixed(2), coastFireNumber.StringFixed(2), projected.StringFixed(2), alreadyCoasting)
	if !result.Timeline.Achievable {
		log.Warnf("coast fire not reachable within %d years for age %d", p.MaxYears, profile.CurrentAge)
	}
	return result, nil
}

// timelineToCoast counts whole years of growth plus contributions until the
// balance reaches the Coast FIRE number. Hitting MaxYears yields the
// not-achievable sentinel.
func (p *CoastFireProjector) timelineToCoast(profile domain.FinancialProfile, growthFactor, annualContributions, target decimal.Decimal, alreadyCoasting bool, gap decimal.Decimal) domain.Timeline {
	if alreadyCoasting || !gap.IsPositive() {
		return domain.Timeline{Years: 0, Age: profile.CurrentAge, Achievable: true}
	}

	assets := profile.CurrentAssets
	for year := 1; year <= p.MaxYears; year++ {
		assets = assets.Mul(growthFactor).Add(annualContributions).Round(workingScale)
		if assets.GreaterThanOrEqual(target) {
			return domain.Timeline{Years: year, Age: profile.CurrentAge + year, Achievable: true}
		}
	}
	return domain.Timeline{Years: p.MaxYears, Achievable: false}
}

// growthPath compounds current assets plus contributions at a nominal rate
// (less the profile's inflation and fees) until retirement, recording the
// first year each share of the FIRE number is crossed.
func (p *CoastFireProjector) growthPath(name string, nominalPercent decimal.Decimal, profile domain.FinancialProfile, fireNumber decimal.Decimal) domain.GrowthPath {
	realRate := nominalPercent.Sub(profile.InflationRatePercent).Sub(profile.InvestmentFeesPercent).Div(hundred)
	growthFactor := decimal.Max(decimal.Zero, one.Add(realRate))
	annualContributions := profile.MonthlyContributions.Mul(twelve)
	years := profile.YearsToRetirement()

	milestones := make([]domain.Milestone, len(milestonePercents))
	for i, pct := range milestonePercents {
		milestones[i] = domain.Milestone{
			Label:   fmt.Sprintf("%d%% of FIRE number", pct),
			Percent: pct,
			Amount:  fireNumber.Mul(decimal.NewFromInt(int64(pct))).Div(hundred).Round(2),
		}
	}

	mark := func(balance decimal.Decimal, year int) {
		for i := range milestones {
			if !milestones[i].Reached && balance.GreaterThanOrEqual(milestones[i].Amount) {
				milestones[i].Reached = true
				milestones[i].Year = year
				milestones[i].Age = profile.CurrentAge + year
			}
		}
	}

	balance := profile.CurrentAssets
	mark(balance, 0)
	for year := 1; year <= years; year++ {
		balance = balance.Mul(growthFactor).Add(annualContributions).Round(workingScale)
		mark(balance, year)
	}
	balance = balance.Round(2)

	retirementPercent := 0
	if fireNumber.IsPositive() {
		retirementPercent = int(balance.Div(fireNumber).Mul(hundred).IntPart())
	}
	milestones = append(milestones, domain.Milestone{
		Label:   "Retirement",
		Percent: retirementPercent,
		Year:    years,
		Age:     profile.RetirementAge,
		Amount:  balance,
		Reached: true,
	})

	return domain.GrowthPath{
		Name:               name,
		NominalRatePercent: nominalPercent,
		RealReturnRate:     realRate,
		ProjectedAssets:    balance,
		Milestones:         milestones,
	}
}
