package breakeven

import (
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizationTarget defines what profile field to solve for
type OptimizationTarget string

const (
	OptimizeContributions OptimizationTarget = "monthly_contributions"
	OptimizeRetirementAge OptimizationTarget = "retirement_age"
	OptimizeSpending      OptimizationTarget = "annual_spending"
	OptimizeAll           OptimizationTarget = "all"
)

// OptimizationGoal defines what outcome the solved value must achieve
type OptimizationGoal string

const (
	GoalFundRetirement OptimizationGoal = "fund_retirement" // projected withdrawals cover spending (surplus >= 0)
	GoalCoastByAge     OptimizationGoal = "coast_by_age"    // reach Coast FIRE no later than TargetCoastAge
)

// ParseTarget maps a CLI spelling to a target
func ParseTarget(s string) (OptimizationTarget, bool) {
	switch s {
	case "monthly_contributions", "contributions":
		return OptimizeContributions, true
	case "retirement_age", "age":
		return OptimizeRetirementAge, true
	case "annual_spending", "spending":
		return OptimizeSpending, true
	case "all":
		return OptimizeAll, true
	}
	return "", false
}

// Constraints bound the search. Nil bounds fall back to DefaultConstraints.
type Constraints struct {
	MinContribution *decimal.Decimal `json:"min_contribution,omitempty"`
	MaxContribution *decimal.Decimal `json:"max_contribution,omitempty"`

	MinRetirementAge *int `json:"min_retirement_age,omitempty"`
	MaxRetirementAge *int `json:"max_retirement_age,omitempty"`

	MinSpending *decimal.Decimal `json:"min_spending,omitempty"`
	MaxSpending *decimal.Decimal `json:"max_spending,omitempty"`

	// Required for GoalCoastByAge
	TargetCoastAge *int `json:"target_coast_age,omitempty"`
}

// DefaultConstraints returns search bounds sized to the profile
func DefaultConstraints(profile domain.FinancialProfile) Constraints {
	minContribution := decimal.Zero
	maxContribution := decimal.NewFromInt(20000)
	minAge := profile.CurrentAge + 1
	maxAge := domain.MaxAge - 1
	minSpending := decimal.Zero
	maxSpending := decimal.Max(profile.AnnualSpending.Mul(decimal.NewFromInt(3)), decimal.NewFromInt(100000))

	return Constraints{
		MinContribution:  &minContribution,
		MaxContribution:  &maxContribution,
		MinRetirementAge: &minAge,
		MaxRetirementAge: &maxAge,
		MinSpending:      &minSpending,
		MaxSpending:      &maxSpending,
	}
}

// withDefaults fills nil bounds from DefaultConstraints
func (c Constraints) withDefaults(profile domain.FinancialProfile) Constraints {
	d := DefaultConstraints(profile)
	if c.MinContribution == nil {
		c.MinContribution = d.MinContribution
	}
	if c.MaxContribution == nil {
		c.MaxContribution = d.MaxContribution
	}
	if c.MinRetirementAge == nil {
		c.MinRetirementAge = d.MinRetirementAge
	}
	if c.MaxRetirementAge == nil {
		c.MaxRetirementAge = d.MaxRetirementAge
	}
	if c.MinSpending == nil {
		c.MinSpending = d.MinSpending
	}
	if c.MaxSpending == nil {
		c.MaxSpending = d.MaxSpending
	}
	return c
}

// OptimizationRequest defines the parameters for an optimization run
type OptimizationRequest struct {
	Profile       domain.FinancialProfile `json:"profile"`
	Target        OptimizationTarget      `json:"target"`
	Goal          OptimizationGoal        `json:"goal"`
	Constraints   Constraints             `json:"constraints"`
	MaxIterations int                     `json:"max_iterations"`
	Tolerance     decimal.Decimal         `json:"tolerance"` // bisection stops once the bracket is narrower than this
}

// OptimizationResult contains the results of an optimization run
type OptimizationResult struct {
	Request         OptimizationRequest `json:"request"`
	Success         bool                `json:"success"`
	AlreadyMet      bool                `json:"already_met"` // the profile as entered meets the goal
	Iterations      int                 `json:"iterations"`
	ConvergenceInfo string              `json:"convergence_info"`

	OptimalContribution  *decimal.Decimal `json:"optimal_contribution,omitempty"`
	OptimalRetirementAge *int             `json:"optimal_retirement_age,omitempty"`
	OptimalSpending      *decimal.Decimal `json:"optimal_spending,omitempty"`

	// Projection at the solved value, and the base for comparison
	Projection     *domain.ProjectionResult `json:"projection,omitempty"`
	BaseProjection *domain.ProjectionResult `json:"base_projection,omitempty"`

	SurplusDiffFromBase decimal.Decimal `json:"surplus_diff_from_base"`
}

// MultiDimensionalResult contains results when solving several targets
type MultiDimensionalResult struct {
	Goal            OptimizationGoal     `json:"goal"`
	Results         []OptimizationResult `json:"results"`
	Recommendations []string             `json:"recommendations"`
}

// SolverOptions configures the solver algorithm
type SolverOptions struct {
	Tolerance     decimal.Decimal // currency units
	MaxIterations int
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1), // $1
		MaxIterations: 60,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate(goal OptimizationGoal) error {
	if c.MinContribution != nil && c.MaxContribution != nil && c.MinContribution.GreaterThan(*c.MaxContribution) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_contribution cannot be greater than max_contribution",
		}
	}
	if c.MinContribution != nil && c.MinContribution.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_contribution cannot be negative",
		}
	}

	if c.MinRetirementAge != nil && c.MaxRetirementAge != nil && *c.MinRetirementAge > *c.MaxRetirementAge {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_retirement_age cannot be greater than max_retirement_age",
		}
	}
	if c.MaxRetirementAge != nil && *c.MaxRetirementAge >= domain.MaxAge {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "max_retirement_age must be below 100",
		}
	}

	if c.MinSpending != nil && c.MaxSpending != nil && c.MinSpending.GreaterThan(*c.MaxSpending) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_spending cannot be greater than max_spending",
		}
	}

	if goal == GoalCoastByAge && c.TargetCoastAge == nil {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "target_coast_age is required for the coast_by_age goal",
		}
	}
	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
