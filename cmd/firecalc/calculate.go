package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/output"
	"github.com/rgehrsitz/firecalc/internal/transform"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [plan-file]",
		Short: "Run every calculation a plan file contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			result, err := engine.RunPlan(cmd.Context(), plan)
			if err != nil {
				return err
			}
			return emit(cmd, result)
		},
	}
	addResultFlags(cmd)
	return cmd
}

func newCoastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coast",
		Short: "Project FIRE and Coast FIRE numbers",
		Long: `Project the FIRE number, Coast FIRE number and three growth paths.

Examples:
  firecalc coast --input current_age=30,retirement_age=65,annual_spending=60000,current_assets=100000
  firecalc coast --config plan.yaml --what-if postpone_retirement:years=3 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, name, err := loadProfile(cmd)
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			projection, err := engine.ProjectCoastFire(profile)
			if err != nil {
				return err
			}
			return emit(cmd, &domain.PlanResult{Name: name, Projection: projection})
		},
	}
	addProfileFlags(cmd)
	addResultFlags(cmd)
	cmd.Flags().StringArray("what-if", nil, "Transform to apply before projecting, e.g. postpone_retirement:years=3 (repeatable)")
	return cmd
}

func newFreedomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freedom",
		Short: "Calculate the Freedom Number and time to freedom",
		Long: `Solve the gross monthly income that covers expenses after tax and reinvestment,
then measure progress from passive income and project three savings scenarios.

Examples:
  firecalc freedom --input monthly_expenses=5000,current_passive_income=1200,monthly_savings=1500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, name, err := loadFreedomProfile(cmd)
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			result, err := engine.CalculateFreedom(profile)
			if err != nil {
				return err
			}
			return emit(cmd, &domain.PlanResult{Name: name, Freedom: result})
		},
	}
	addProfileFlags(cmd)
	addResultFlags(cmd)
	return cmd
}

func newIncomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Solve the gross monthly income needed for a net monthly amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("net")
			net, ok := config.ParseNumber(raw)
			if !ok {
				return fmt.Errorf("invalid --net value %q", raw)
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			s, err := engine.SolveGrossIncome(net)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "GROSS INCOME SOLVER")
			fmt.Fprintln(out, "===================")
			fmt.Fprintf(out, "Net monthly:         %s\n", output.FormatCurrency(s.NetMonthly))
			fmt.Fprintf(out, "Gross monthly:       %s\n", output.FormatCurrency(s.GrossMonthly))
			fmt.Fprintf(out, "Effective tax rate:  %s\n", output.FormatRate(s.TaxRate))
			fmt.Fprintf(out, "Tax:                 %s\n", output.FormatCurrency(s.TaxAmount))
			fmt.Fprintf(out, "Reinvestment:        %s\n", output.FormatCurrency(s.ReinvestmentAmount))
			fmt.Fprintf(out, "Solver:              %s\n", s.ConvergenceInfo)
			return nil
		},
	}
	cmd.Flags().String("net", "5000", "Net monthly income to solve for")
	return cmd
}

func newTaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Estimate tax on an annual gross income",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("gross")
			gross, ok := config.ParseNumber(raw)
			if !ok {
				return fmt.Errorf("invalid --gross value %q", raw)
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}
			b := engine.EstimateTax(gross)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "TAX ESTIMATE (%s)\n", engine.Rules.TaxTable.Name)
			fmt.Fprintln(out, "============")
			fmt.Fprintf(out, "Gross income:        %s\n", output.FormatCurrencyCents(b.GrossIncome))
			fmt.Fprintf(out, "Federal income tax:  %s\n", output.FormatCurrencyCents(b.IncomeTax))
			fmt.Fprintf(out, "Self-employment tax: %s\n", output.FormatCurrencyCents(b.SelfEmploymentTax))
			fmt.Fprintf(out, "State tax:           %s\n", output.FormatCurrencyCents(b.StateTax))
			fmt.Fprintf(out, "Total tax:           %s\n", output.FormatCurrencyCents(b.TotalTax))
			fmt.Fprintf(out, "Effective rate:      %s\n", output.FormatRate(b.EffectiveRate))
			return nil
		},
	}
	cmd.Flags().String("gross", "100000", "Annual gross income")
	return cmd
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan file %s is valid\n", args[0])
			return nil
		},
	}
	return cmd
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [plan-file]",
		Short: "Write a starter plan file with default values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if fileExists(args[0]) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", args[0])
			}
			profile := config.DefaultProfile()
			freedom := config.DefaultFreedomProfile()
			plan := &domain.PlanInput{Name: "My plan", Profile: &profile, Freedom: &freedom}
			if err := config.SavePlan(plan, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	return cmd
}

// loadProfile resolves the Coast-FIRE profile from --config or --input and
// applies any --what-if transforms.
func loadProfile(cmd *cobra.Command) (domain.FinancialProfile, string, error) {
	plan, err := loadPlanFlag(cmd)
	if err != nil {
		return domain.FinancialProfile{}, "", err
	}
	var profile domain.FinancialProfile
	name := "Coast FIRE"
	switch {
	case plan != nil && plan.Profile != nil:
		profile = *plan.Profile
		name = plan.Name
	case plan != nil:
		return domain.FinancialProfile{}, "", fmt.Errorf("plan %q has no profile section", plan.Name)
	default:
		inputs, _ := cmd.Flags().GetStringToString("input")
		profile = config.NormalizeProfile(inputs)
	}

	specs, _ := cmd.Flags().GetStringArray("what-if")
	if len(specs) > 0 {
		transforms, err := transform.NewTransformRegistry().ParseTransformSpecs(specs)
		if err != nil {
			return domain.FinancialProfile{}, "", err
		}
		profile, err = transform.ApplyTransforms(profile, transforms)
		if err != nil {
			return domain.FinancialProfile{}, "", err
		}
	}
	return profile, name, nil
}

func loadFreedomProfile(cmd *cobra.Command) (domain.FreedomProfile, string, error) {
	plan, err := loadPlanFlag(cmd)
	if err != nil {
		return domain.FreedomProfile{}, "", err
	}
	switch {
	case plan != nil && plan.Freedom != nil:
		return *plan.Freedom, plan.Name, nil
	case plan != nil:
		return domain.FreedomProfile{}, "", fmt.Errorf("plan %q has no freedom section", plan.Name)
	}
	inputs, _ := cmd.Flags().GetStringToString("input")
	return config.NormalizeFreedom(inputs), "Freedom Number", nil
}

func loadPlanFlag(cmd *cobra.Command) (*domain.PlanInput, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return nil, nil
	}
	return config.NewInputParser().LoadFromFile(path)
}

// emit renders a result with --format, or writes it to a timestamped file with --save
func emit(cmd *cobra.Command, result *domain.PlanResult) error {
	format, _ := cmd.Flags().GetString("format")
	f, ok := output.GetFormatterByName(format)
	if !ok {
		return fmt.Errorf("unknown format %q (available: %v)", format, output.AvailableFormatterNames())
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := output.WriteFormatted(f, result, extensionFor(f.Name()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func extensionFor(formatter string) string {
	switch formatter {
	case "json", "csv":
		return formatter
	default:
		return "txt"
	}
}

func addResultFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "console", "Output format (console, verbose, json, csv)")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
}

func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Plan YAML file")
	cmd.Flags().StringToString("input", map[string]string{}, "Form fields as key=value pairs (used when --config is absent)")
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}
