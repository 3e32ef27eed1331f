package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine orchestrates all planning calculations
type Engine struct {
	Rules   domain.PlanningRules
	TaxCalc *EffectiveTaxEstimator
	Solver  *IncomeSolver
	Coast   *CoastFireProjector
	Freedom *FreedomCalculator
	Logger  Logger
	Debug   bool // Enable debug output for detailed calculations
}

// NewEngine creates a new calculation engine with the default planning rules
func NewEngine() *Engine {
	return NewEngineWithConfig(domain.DefaultPlanningRules())
}

// NewEngineWithConfig creates a new calculation engine with custom rules.
// Zero-valued rule fields fall back to the defaults.
func NewEngineWithConfig(rules domain.PlanningRules) *Engine {
	rules = rules.WithDefaults()
	freedom := NewFreedomCalculatorWithConfig(rules)
	e := &Engine{
		Rules:   rules,
		TaxCalc: freedom.Solver.TaxCalc,
		Solver:  freedom.Solver,
		Coast:   NewCoastFireProjectorWithConfig(rules),
		Freedom: freedom,
	}
	e.SetLogger(nil)
	return e
}

// SetLogger sets the logger on the engine and every calculator it owns.
// A nil logger installs NopLogger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	e.Solver.Logger = l
	e.Coast.Logger = l
	e.Freedom.Logger = l
}

// ProjectCoastFire runs the Coast-FIRE projection
func (e *Engine) ProjectCoastFire(profile domain.FinancialProfile) (*domain.ProjectionResult, error) {
	return e.Coast.ProjectCoastFire(profile)
}

// CalculateFreedom runs the Freedom Number tool
func (e *Engine) CalculateFreedom(profile domain.FreedomProfile) (*domain.FreedomResult, error) {
	return e.Freedom.Calculate(profile)
}

// SolveGrossIncome returns the gross monthly income needed for a net amount
func (e *Engine) SolveGrossIncome(monthlyNet decimal.Decimal) (domain.IncomeSolution, error) {
	return e.Solver.SolveRequiredGrossIncome(monthlyNet)
}

// EstimateTax itemizes the tax estimate for an annual gross income
func (e *Engine) EstimateTax(annualGross decimal.Decimal) domain.TaxBreakdown {
	return e.TaxCalc.EstimateTotalTax(annualGross)
}

// RunPlan runs every calculation a PlanInput asks for
func (e *Engine) RunPlan(ctx context.Context, plan *domain.PlanInput) (*domain.PlanResult, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan cannot be nil")
	}
	if plan.Profile == nil && plan.Freedom == nil {
		return nil, &domain.ValidationError{Field: "plan", Message: "plan needs a profile or a freedom section"}
	}

	result := &domain.PlanResult{Name: plan.Name}

	if plan.Profile != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		projection, err := e.ProjectCoastFire(*plan.Profile)
		if err != nil {
			return nil, fmt.Errorf("coast fire projection for %q: %w", plan.Name, err)
		}
		result.Projection = projection
	}

	if plan.Freedom != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		freedom, err := e.CalculateFreedom(*plan.Freedom)
		if err != nil {
			return nil, fmt.Errorf("freedom number for %q: %w", plan.Name, err)
		}
		result.Freedom = freedom
	}

	if e.Debug {
		e.Logger.Debugf("plan %q complete (projection=%v freedom=%v)", plan.Name, result.Projection != nil, result.Freedom != nil)
	}
	return result, nil
}
