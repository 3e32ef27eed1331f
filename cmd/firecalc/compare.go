package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/firecalc/internal/compare"
	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/transform"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a profile against what-if templates",
		Long: `Compare a base Coast FIRE profile against alternative assumptions.

Examples:
  firecalc compare --config plan.yaml --with retire_later,contribute_more
  firecalc compare --input current_age=30 --what-if set_fees:percent=0 --format csv
  firecalc compare --list-templates`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list-templates"); list {
				fmt.Fprint(cmd.OutOrStdout(), templateHelp(transform.CreateBuiltInTemplates()))
				return nil
			}

			// --what-if feeds the comparison, not the base profile
			profile, name, err := loadBaseProfile(cmd)
			if err != nil {
				return err
			}
			engine, err := newEngine()
			if err != nil {
				return err
			}

			with, _ := cmd.Flags().GetString("with")
			whatIfs, _ := cmd.Flags().GetStringArray("what-if")
			configPath, _ := cmd.Flags().GetString("config")

			compSet, err := compare.NewCompareEngine(engine).Compare(cmd.Context(), profile, compare.CompareOptions{
				BaseScenarioName: name,
				Templates:        transform.ParseTemplateList(with),
				WhatIfs:          whatIfs,
			})
			if err != nil {
				return err
			}
			compSet.ConfigPath = configPath

			format, _ := cmd.Flags().GetString("format")
			var out string
			switch strings.ToLower(format) {
			case "table", "console", "":
				out = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			default:
				return fmt.Errorf("unknown format %q (table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().String("with", "", "Comma-separated templates to compare (default: conservative_growth,aggressive_growth)")
	cmd.Flags().StringArray("what-if", nil, "Ad-hoc transform applied as one extra scenario (repeatable)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	cmd.Flags().Bool("list-templates", false, "List available templates and transforms")
	return cmd
}

// loadBaseProfile is loadProfile without what-if transforms
func loadBaseProfile(cmd *cobra.Command) (domain.FinancialProfile, string, error) {
	plan, err := loadPlanFlag(cmd)
	if err != nil {
		return domain.FinancialProfile{}, "", err
	}
	if plan != nil {
		if plan.Profile == nil {
			return domain.FinancialProfile{}, "", fmt.Errorf("plan %q has no profile section", plan.Name)
		}
		return *plan.Profile, plan.Name, nil
	}
	inputs, _ := cmd.Flags().GetStringToString("input")
	return config.NormalizeProfile(inputs), "base", nil
}

func templateHelp(registry *transform.TemplateRegistry) string {
	var sb strings.Builder
	sb.WriteString("AVAILABLE TEMPLATES\n")
	sb.WriteString("===================\n")
	for _, name := range registry.List() {
		t, _ := registry.Get(name)
		sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
	}
	sb.WriteString("\nTRANSFORMS (for --what-if name:key=value)\n")
	for _, name := range transform.NewTransformRegistry().List() {
		sb.WriteString("  " + name + "\n")
	}
	return sb.String()
}
