package calculation

import (
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/interpret"
	"github.com/shopspring/decimal"
)

// FreedomCalculator implements the Freedom Number tool: the gross monthly
// income that covers expenses, progress toward it from passive income, and
// three savings scenarios.
type FreedomCalculator struct {
	Solver                  *IncomeSolver
	FutureValue             *FutureValueProjector
	ConservativeRatePercent decimal.Decimal
	AggressiveRatePercent   decimal.Decimal
	HorizonMonths           int
	Logger                  Logger
}

// NewFreedomCalculator creates a calculator with the default planning rules
func NewFreedomCalculator() *FreedomCalculator {
	return NewFreedomCalculatorWithConfig(domain.DefaultPlanningRules())
}

// NewFreedomCalculatorWithConfig creates a calculator from the given rules
func NewFreedomCalculatorWithConfig(rules domain.PlanningRules) *FreedomCalculator {
	return &FreedomCalculator{
		Solver:                  NewIncomeSolverWithConfig(rules),
		FutureValue:             NewFutureValueProjectorWithConfig(rules),
		ConservativeRatePercent: rules.ConservativeRatePercent,
		AggressiveRatePercent:   rules.AggressiveRatePercent,
		HorizonMonths:           rules.HorizonMonths,
		Logger:                  NopLogger{},
	}
}

// Calculate runs the Freedom Number pipeline for a profile
func (fc *FreedomCalculator) Calculate(profile domain.FreedomProfile) (*domain.FreedomResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	log := orNop(fc.Logger)

	income, err := fc.Solver.SolveRequiredGrossIncome(profile.MonthlyExpenses)
	if err != nil {
		return nil, err
	}
	freedomNumber := income.GrossMonthly

	progress := hundred
	if freedomNumber.IsPositive() {
		progress = profile.CurrentPassiveIncome.Div(freedomNumber).Mul(hundred)
		progress = decimal.Min(hundred, decimal.Max(decimal.Zero, progress)).Round(2)
	}
	gap := decimal.Max(decimal.Zero, freedomNumber.Sub(profile.CurrentPassiveIncome))

	result := &domain.FreedomResult{
		Profile:         profile,
		Income:          income,
		FreedomNumber:   freedomNumber,
		ProgressPercent: progress,
		Gap:             gap,
		TargetAmount:    fc.FutureValue.TargetAmount(gap),
		Scenarios: []domain.FreedomScenario{
			fc.scenario(domain.PathConservative, fc.ConservativeRatePercent, gap, profile.MonthlySavings),
			fc.scenario(domain.PathModerate, profile.ExpectedReturnPercent, gap, profile.MonthlySavings),
			fc.scenario(domain.PathAggressive, fc.AggressiveRatePercent, gap, profile.MonthlySavings),
		},
	}
	result.Band = interpret.BandFor(progress)
	result.Narrative = interpret.Narrate(result)

	log.Debugf("freedom number: expenses=%s gross=%s progress=%s%% gap=%s",
		profile.MonthlyExpenses.StringFixed(2), freedomNumber.String(), progress.String(), gap.String())
	return result, nil
}

func (fc *FreedomCalculator) scenario(name string, ratePercent, gap, savings decimal.Decimal) domain.FreedomScenario {
	return domain.FreedomScenario{
		Name:           name,
		RatePercent:    ratePercent,
		Timeline:       fc.FutureValue.CalculateTimeToFreedom(gap, savings, ratePercent),
		ValueAtHorizon: CalculateFutureValue(savings, monthlyRate(ratePercent), fc.HorizonMonths).Round(2),
		HorizonMonths:  fc.HorizonMonths,
	}
}
