package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/firecalc/internal/breakeven"
)

func newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the break-even contribution, retirement age or spending level",
		Long: `Solve for the value at which a profile just meets a goal.

Goals:
  fund_retirement  projected withdrawals cover retirement spending
  coast_by_age     Coast FIRE is reached no later than --coast-age

Examples:
  firecalc optimize --config plan.yaml
  firecalc optimize --config plan.yaml --target contributions --goal coast_by_age --coast-age 45
  firecalc optimize --input current_age=30,current_assets=50000 --target spending --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, _, err := loadBaseProfile(cmd)
			if err != nil {
				return err
			}

			targetFlag, _ := cmd.Flags().GetString("target")
			target, ok := breakeven.ParseTarget(strings.ToLower(targetFlag))
			if !ok {
				return fmt.Errorf("unknown target %q (contributions, retirement_age, spending, all)", targetFlag)
			}
			goalFlag, _ := cmd.Flags().GetString("goal")
			goal := breakeven.OptimizationGoal(strings.ToLower(goalFlag))

			var constraints breakeven.Constraints
			if cmd.Flags().Changed("coast-age") {
				age, _ := cmd.Flags().GetInt("coast-age")
				constraints.TargetCoastAge = &age
			}

			engine, err := newEngine()
			if err != nil {
				return err
			}
			solver := breakeven.NewDefaultSolver(engine)
			format, _ := cmd.Flags().GetString("format")
			jsonOut := strings.ToLower(format) == "json"
			if !jsonOut && strings.ToLower(format) != "table" {
				return fmt.Errorf("unknown format %q (table, json)", format)
			}

			var out string
			if target == breakeven.OptimizeAll {
				result, err := solver.OptimizeAllTargets(cmd.Context(), profile, constraints, goal)
				if err != nil {
					return err
				}
				if jsonOut {
					out, err = (&breakeven.JSONFormatter{Pretty: true}).FormatMultiDimensional(result)
				} else {
					out = (&breakeven.TableFormatter{}).FormatMultiDimensional(result)
				}
				if err != nil {
					return err
				}
			} else {
				result, err := solver.Optimize(cmd.Context(), breakeven.OptimizationRequest{
					Profile:     profile,
					Target:      target,
					Goal:        goal,
					Constraints: constraints,
				})
				if err != nil {
					return err
				}
				if jsonOut {
					out, err = (&breakeven.JSONFormatter{Pretty: true}).Format(result)
				} else {
					out = (&breakeven.TableFormatter{}).Format(result)
				}
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
			return nil
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().String("target", "all", "What to solve for (contributions, retirement_age, spending, all)")
	cmd.Flags().String("goal", string(breakeven.GoalFundRetirement), "Goal to meet (fund_retirement, coast_by_age)")
	cmd.Flags().Int("coast-age", 0, "Age by which to reach Coast FIRE (coast_by_age goal)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}
