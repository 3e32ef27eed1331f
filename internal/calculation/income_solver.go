package calculation

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeSolver inverts "net after tax and reinvestment" into the gross income
// that produces it, by fixed-point iteration on the effective tax rate.
type IncomeSolver struct {
	TaxCalc            *EffectiveTaxEstimator
	ReinvestmentBuffer decimal.Decimal
	SeedTaxRate        decimal.Decimal
	MaxIterations      int
	Tolerance          decimal.Decimal // annual
	Logger             Logger
}

// NewIncomeSolver creates a solver with the default planning rules
func NewIncomeSolver() *IncomeSolver {
	return NewIncomeSolverWithConfig(domain.DefaultPlanningRules())
}

// NewIncomeSolverWithConfig creates a solver from the given rules
func NewIncomeSolverWithConfig(rules domain.PlanningRules) *IncomeSolver {
	return &IncomeSolver{
		TaxCalc:            NewEffectiveTaxEstimatorWithConfig(rules.TaxTable),
		ReinvestmentBuffer: rules.ReinvestmentBuffer,
		SeedTaxRate:        rules.SeedTaxRate,
		MaxIterations:      rules.MaxSolverIterations,
		Tolerance:          rules.SolverTolerance,
		Logger:             NopLogger{},
	}
}

// SolveRequiredGrossIncome finds the gross monthly income whose net, after the
// effective tax rate and the reinvestment buffer, equals monthlyNet.
//
// The iteration stops once two successive annual estimates differ by less
// than Tolerance. If MaxIterations is reached first the last estimate is kept
// and the solution is flagged Converged=false.
func (s *IncomeSolver) SolveRequiredGrossIncome(monthlyNet decimal.Decimal) (domain.IncomeSolution, error) {
	log := orNop(s.Logger)

	if !monthlyNet.IsPositive() {
		return domain.IncomeSolution{
			NetMonthly:         decimal.Zero,
			GrossMonthly:       decimal.Zero,
			TaxRate:            decimal.Zero,
			TaxAmount:          decimal.Zero,
			ReinvestmentAmount: decimal.Zero,
			Converged:          true,
			ConvergenceInfo:    "no net income required",
		}, nil
	}

	netAnnual := monthlyNet.Mul(twelve)

	denominator := one.Sub(s.SeedTaxRate).Sub(s.ReinvestmentBuffer)
	if !denominator.IsPositive() {
		return domain.IncomeSolution{}, &domain.CalculationError{
			Operation: "solve_gross_income",
			Message:   fmt.Sprintf("seed tax rate %s plus reinvestment buffer %s leaves nothing to keep", s.SeedTaxRate, s.ReinvestmentBuffer),
		}
	}
	grossAnnual := netAnnual.Div(denominator).Round(workingScale)

	iterations := 0
	converged := false
	delta := decimal.Zero
	for iterations < s.MaxIterations {
		taxRate := s.TaxCalc.EstimateEffectiveTaxRate(grossAnnual)
		denominator = one.Sub(taxRate).Sub(s.ReinvestmentBuffer)
		if !denominator.IsPositive() {
			return domain.IncomeSolution{}, &domain.CalculationError{
				Operation: "solve_gross_income",
				Message:   fmt.Sprintf("effective tax rate %s at gross %s leaves nothing to keep", taxRate.StringFixed(4), grossAnnual.StringFixed(0)),
			}
		}

		next := netAnnual.Div(denominator).Round(workingScale)
		iterations++
		delta = next.Sub(grossAnnual).Abs()
		log.Debugf("solver iteration %d: gross=%s rate=%s next=%s", iterations, grossAnnual.StringFixed(2), taxRate.StringFixed(6), next.StringFixed(2))
		grossAnnual = next
		if delta.LessThan(s.Tolerance) {
			converged = true
			break
		}
	}

	taxRate := s.TaxCalc.EstimateEffectiveTaxRate(grossAnnual)
	solution := domain.IncomeSolution{
		NetMonthly:         monthlyNet,
		GrossMonthly:       grossAnnual.Div(twelve).Round(0),
		TaxRate:            taxRate.Round(6),
		TaxAmount:          grossAnnual.Mul(taxRate).Div(twelve).Round(0),
		ReinvestmentAmount: grossAnnual.Mul(s.ReinvestmentBuffer).Div(twelve).Round(0),
		Iterations:         iterations,
		Converged:          converged,
	}

	if converged {
		solution.ConvergenceInfo = fmt.Sprintf("converged in %d iterations (last change %s)", iterations, delta.StringFixed(4))
	} else {
		solution.ConvergenceInfo = fmt.Sprintf("did not converge in %d iterations (last change %s); using last estimate", iterations, delta.StringFixed(4))
		log.Warnf("gross income solver did not converge for net %s/month: %s", monthlyNet.StringFixed(2), solution.ConvergenceInfo)
	}
	return solution, nil
}
