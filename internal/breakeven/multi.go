package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/output"
)

// OptimizeAllTargets solves every target for one goal and turns the
// successful ones into recommendations
func (s *Solver) OptimizeAllTargets(
	ctx context.Context,
	profile domain.FinancialProfile,
	constraints Constraints,
	goal OptimizationGoal,
) (*MultiDimensionalResult, error) {
	targets := []OptimizationTarget{
		OptimizeContributions,
		OptimizeRetirementAge,
		OptimizeSpending,
	}

	var results []OptimizationResult
	for _, target := range targets {
		req := OptimizationRequest{
			Profile:       profile,
			Target:        target,
			Goal:          goal,
			Constraints:   constraints,
			MaxIterations: s.Options.MaxIterations,
			Tolerance:     s.Options.Tolerance,
		}

		result, err := s.Optimize(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, err
		}
		results = append(results, *result)
	}

	mdResult := &MultiDimensionalResult{
		Goal:    goal,
		Results: results,
	}
	mdResult.Recommendations = generateRecommendations(mdResult)

	if len(mdResult.Recommendations) == 0 {
		return nil, &BreakEvenError{
			Operation: "optimize_all_targets",
			Message:   "no target can meet the goal within its bounds",
		}
	}
	return mdResult, nil
}

// generateRecommendations describes each successful result as one action
func generateRecommendations(result *MultiDimensionalResult) []string {
	var recommendations []string

	if len(result.Results) > 0 && result.Results[0].AlreadyMet {
		recommendations = append(recommendations, "Your plan already meets the goal; the values below show how much room you have")
	}

	for _, res := range result.Results {
		if !res.Success {
			continue
		}
		switch {
		case res.OptimalContribution != nil:
			recommendations = append(recommendations, fmt.Sprintf("Contribute at least %s/month (currently %s)",
				output.FormatCurrency(*res.OptimalContribution), output.FormatCurrency(res.Request.Profile.MonthlyContributions)))
		case res.OptimalRetirementAge != nil:
			recommendations = append(recommendations, fmt.Sprintf("Retire at %d or later (currently %d)",
				*res.OptimalRetirementAge, res.Request.Profile.RetirementAge))
		case res.OptimalSpending != nil:
			recommendations = append(recommendations, fmt.Sprintf("Keep retirement spending at or below %s/year (currently %s)",
				output.FormatCurrency(*res.OptimalSpending), output.FormatCurrency(res.Request.Profile.AnnualSpending)))
		}
	}
	return recommendations
}
