package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/transform"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the contribution, retirement age or spending level at which a
// profile just meets a goal
type Solver struct {
	CalcEngine *calculation.Engine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver. A nil engine gets a default one.
func NewSolver(calcEngine *calculation.Engine, options SolverOptions) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.Engine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Optimize solves one target for one goal
func (s *Solver) Optimize(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	req.Constraints = req.Constraints.withDefaults(req.Profile)
	if err := req.Constraints.Validate(req.Goal); err != nil {
		return nil, err
	}
	if req.Goal != GoalFundRetirement && req.Goal != GoalCoastByAge {
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization goal: %s", req.Goal),
		}
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	base, err := s.CalcEngine.ProjectCoastFire(req.Profile)
	if err != nil {
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   "failed to project base profile",
			Cause:     err,
		}
	}

	var result *OptimizationResult
	switch req.Target {
	case OptimizeContributions:
		result, err = s.optimizeContributions(ctx, req)
	case OptimizeRetirementAge:
		result, err = s.optimizeRetirementAge(ctx, req)
	case OptimizeSpending:
		result, err = s.optimizeSpending(ctx, req)
	default:
		return nil, &BreakEvenError{
			Operation: "optimize",
			Message:   fmt.Sprintf("unsupported optimization target: %s", req.Target),
		}
	}
	if err != nil {
		return nil, err
	}

	result.Request = req
	result.BaseProjection = base
	result.AlreadyMet = meetsGoal(req, base)
	if result.Projection != nil {
		result.SurplusDiffFromBase = result.Projection.Surplus.Sub(base.Surplus)
	}
	return result, nil
}

// optimizeContributions bisects for the smallest monthly contribution that meets the goal
func (s *Solver) optimizeContributions(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	lo := *req.Constraints.MinContribution
	hi := *req.Constraints.MaxContribution
	evaluate := func(v decimal.Decimal) (*domain.ProjectionResult, error) {
		return s.project(req.Profile, &transform.SetContributions{Monthly: v})
	}

	top, err := evaluate(hi)
	if err != nil {
		return nil, wrap("optimize_contributions", err)
	}
	if !meetsGoal(req, top) {
		return &OptimizationResult{
			Iterations:      1,
			ConvergenceInfo: fmt.Sprintf("Goal not met even at $%s/month", hi.StringFixed(0)),
		}, nil
	}

	bottom, err := evaluate(lo)
	if err != nil {
		return nil, wrap("optimize_contributions", err)
	}
	if meetsGoal(req, bottom) {
		return &OptimizationResult{
			Success:             true,
			Iterations:          2,
			ConvergenceInfo:     "Goal met at the minimum contribution",
			OptimalContribution: &lo,
			Projection:          bottom,
		}, nil
	}

	iterations := 2
	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThanOrEqual(req.Tolerance) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		iterations++

		mid := lo.Add(hi).Div(two)
		projection, err := evaluate(mid)
		if err != nil {
			return nil, wrap("optimize_contributions", err)
		}
		s.CalcEngine.Logger.Debugf("breakeven contributions: try=%s surplus=%s coast_age=%d", mid.StringFixed(2), projection.Surplus.StringFixed(2), projection.Timeline.Age)
		if meetsGoal(req, projection) {
			hi = mid
		} else {
			lo = mid
		}
	}

	optimal := hi.RoundCeil(2)
	projection, err := evaluate(optimal)
	if err != nil {
		return nil, wrap("optimize_contributions", err)
	}
	return &OptimizationResult{
		Success:             true,
		Iterations:          iterations,
		ConvergenceInfo:     convergenceInfo(iterations, req.MaxIterations, hi.Sub(lo), req.Tolerance),
		OptimalContribution: &optimal,
		Projection:          projection,
	}, nil
}

// optimizeRetirementAge scans for the earliest retirement age that meets the goal
func (s *Solver) optimizeRetirementAge(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	minAge := *req.Constraints.MinRetirementAge
	maxAge := *req.Constraints.MaxRetirementAge

	iterations := 0
	for age := minAge; age <= maxAge; age++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		iterations++

		projection, err := s.project(req.Profile, &transform.SetRetirementAge{Age: age})
		if err != nil {
			continue // ages at or before the current age
		}
		if meetsGoal(req, projection) {
			optimal := age
			return &OptimizationResult{
				Success:              true,
				Iterations:           iterations,
				ConvergenceInfo:      fmt.Sprintf("Evaluated %d retirement ages", iterations),
				OptimalRetirementAge: &optimal,
				Projection:           projection,
			}, nil
		}
	}

	return &OptimizationResult{
		Iterations:      iterations,
		ConvergenceInfo: fmt.Sprintf("No retirement age between %d and %d meets the goal", minAge, maxAge),
	}, nil
}

// optimizeSpending bisects for the largest annual spending that still meets the goal
func (s *Solver) optimizeSpending(ctx context.Context, req OptimizationRequest) (*OptimizationResult, error) {
	lo := *req.Constraints.MinSpending
	hi := *req.Constraints.MaxSpending
	evaluate := func(v decimal.Decimal) (*domain.ProjectionResult, error) {
		return s.project(req.Profile, &transform.SetSpending{Annual: v})
	}

	bottom, err := evaluate(lo)
	if err != nil {
		return nil, wrap("optimize_spending", err)
	}
	if !meetsGoal(req, bottom) {
		return &OptimizationResult{
			Iterations:      1,
			ConvergenceInfo: fmt.Sprintf("Goal not met even at $%s/year", lo.StringFixed(0)),
		}, nil
	}

	top, err := evaluate(hi)
	if err != nil {
		return nil, wrap("optimize_spending", err)
	}
	if meetsGoal(req, top) {
		return &OptimizationResult{
			Success:         true,
			Iterations:      2,
			ConvergenceInfo: "Goal met at the maximum spending",
			OptimalSpending: &hi,
			Projection:      top,
		}, nil
	}

	iterations := 2
	for iterations < req.MaxIterations && hi.Sub(lo).GreaterThanOrEqual(req.Tolerance) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		iterations++

		mid := lo.Add(hi).Div(two)
		projection, err := evaluate(mid)
		if err != nil {
			return nil, wrap("optimize_spending", err)
		}
		s.CalcEngine.Logger.Debugf("breakeven spending: try=%s surplus=%s", mid.StringFixed(2), projection.Surplus.StringFixed(2))
		if meetsGoal(req, projection) {
			lo = mid
		} else {
			hi = mid
		}
	}

	optimal := lo.RoundFloor(2)
	projection, err := evaluate(optimal)
	if err != nil {
		return nil, wrap("optimize_spending", err)
	}
	return &OptimizationResult{
		Success:         true,
		Iterations:      iterations,
		ConvergenceInfo: convergenceInfo(iterations, req.MaxIterations, hi.Sub(lo), req.Tolerance),
		OptimalSpending: &optimal,
		Projection:      projection,
	}, nil
}

func (s *Solver) project(profile domain.FinancialProfile, t transform.ProfileTransform) (*domain.ProjectionResult, error) {
	modified, err := transform.ApplyTransforms(profile, []transform.ProfileTransform{t})
	if err != nil {
		return nil, err
	}
	return s.CalcEngine.ProjectCoastFire(modified)
}

// meetsGoal reports whether a projection satisfies the request's goal
func meetsGoal(req OptimizationRequest, p *domain.ProjectionResult) bool {
	switch req.Goal {
	case GoalCoastByAge:
		if p.AlreadyCoasting {
			return true
		}
		return p.Timeline.Achievable && req.Constraints.TargetCoastAge != nil && p.Timeline.Age <= *req.Constraints.TargetCoastAge
	default:
		return !p.Surplus.IsNegative()
	}
}

func convergenceInfo(iterations, maxIterations int, width, tolerance decimal.Decimal) string {
	if width.LessThan(tolerance) {
		return fmt.Sprintf("Bisection converged in %d iterations", iterations)
	}
	return fmt.Sprintf("Max iterations (%d) reached", maxIterations)
}

func wrap(operation string, err error) error {
	return &BreakEvenError{
		Operation: operation,
		Message:   "failed to calculate scenario",
		Cause:     err,
	}
}
