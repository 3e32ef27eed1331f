package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/output"
)

func newSensitivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep one assumption and watch the Coast FIRE number move",
		Long: `Perform sensitivity analysis to test how robust a Coast FIRE plan is to its assumptions.

Examples:
  # Built-in sweep
  firecalc sensitivity --config plan.yaml --parameter growth_rate

  # Custom range
  firecalc sensitivity --config plan.yaml --parameter inflation_rate --min 2 --max 6 --steps 9

  # Every built-in sweep
  firecalc sensitivity --config plan.yaml --parameter-set common --output csv`,
		RunE: runSensitivityAnalysis,
	}
	addProfileFlags(cmd)
	cmd.Flags().StringSlice("parameter", []string{}, "Parameter to analyze (growth_rate, inflation_rate, withdrawal_rate, investment_fees, monthly_contributions, retirement_age)")
	cmd.Flags().String("min", "", "Override the sweep minimum")
	cmd.Flags().String("max", "", "Override the sweep maximum")
	cmd.Flags().Int("steps", 0, "Override the number of steps")
	cmd.Flags().String("output", "console", "Output format (console, csv, json)")
	cmd.Flags().String("parameter-set", "", "Use a predefined parameter set (common)")
	return cmd
}

func runSensitivityAnalysis(cmd *cobra.Command, args []string) error {
	profile, _, err := loadBaseProfile(cmd)
	if err != nil {
		return err
	}

	params, err := resolveSensitivityParameters(cmd)
	if err != nil {
		return err
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}
	analyzer := calculation.NewSensitivityAnalyzer(engine)
	format, _ := cmd.Flags().GetString("output")
	formatter := output.NewSensitivityFormatter(format)

	for i, param := range params {
		analysis, err := analyzer.AnalyzeParameter(profile, param)
		if err != nil {
			return fmt.Errorf("sensitivity analysis for %s failed: %w", param.Name, err)
		}
		text, err := formatter.FormatSensitivityAnalysis(analysis)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
	}
	return nil
}

// resolveSensitivityParameters turns the flags into sweeps. --min/--max/--steps
// only apply when exactly one parameter is named.
func resolveSensitivityParameters(cmd *cobra.Command) ([]domain.SensitivityParameter, error) {
	common := domain.GetCommonSensitivityParameters()
	names, _ := cmd.Flags().GetStringSlice("parameter")
	set, _ := cmd.Flags().GetString("parameter-set")
	minRaw, _ := cmd.Flags().GetString("min")
	maxRaw, _ := cmd.Flags().GetString("max")
	steps, _ := cmd.Flags().GetInt("steps")

	if set != "" {
		if strings.ToLower(set) != "common" {
			return nil, fmt.Errorf("unknown parameter set %q (available: common)", set)
		}
		all := make([]string, 0, len(common))
		for name := range common {
			all = append(all, name)
		}
		sort.Strings(all)
		params := make([]domain.SensitivityParameter, 0, len(all))
		for _, name := range all {
			params = append(params, common[name])
		}
		return params, nil
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("--parameter or --parameter-set is required")
	}

	params := make([]domain.SensitivityParameter, 0, len(names))
	for _, name := range names {
		param, ok := common[strings.TrimSpace(name)]
		if !ok {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
		params = append(params, param)
	}

	if len(params) == 1 {
		p := &params[0]
		if minRaw != "" {
			v, ok := config.ParseNumber(minRaw)
			if !ok {
				return nil, fmt.Errorf("invalid --min %q", minRaw)
			}
			p.MinValue = v
		}
		if maxRaw != "" {
			v, ok := config.ParseNumber(maxRaw)
			if !ok {
				return nil, fmt.Errorf("invalid --max %q", maxRaw)
			}
			p.MaxValue = v
		}
		if steps > 0 {
			p.Steps = steps
		}
		if p.MaxValue.LessThan(p.MinValue) {
			return nil, fmt.Errorf("--max must not be below --min")
		}
	}
	return params, nil
}
