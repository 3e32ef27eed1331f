package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityFormatter defines a formatter for sensitivity analysis
type SensitivityFormatter interface {
	FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error)
	Name() string
}

// SensitivityConsoleFormatter formats sensitivity analysis output for console
type SensitivityConsoleFormatter struct{}

func (scf SensitivityConsoleFormatter) Name() string { return "console" }

func (scf SensitivityConsoleFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	param := analysis.Parameter
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "SENSITIVITY ANALYSIS: %s\n", strings.ToUpper(strings.ReplaceAll(param.Name, "_", " ")))
	fmt.Fprintf(&buf, "=================================================================\n")
	fmt.Fprintf(&buf, "Base Case: %s = %s\n", param.Name, formatParamValue(analysis.BaseValue, param.Unit))
	fmt.Fprintf(&buf, "Range: %s to %s (%d steps)\n", formatParamValue(param.MinValue, param.Unit), formatParamValue(param.MaxValue, param.Unit), param.Steps)
	if param.Description != "" {
		fmt.Fprintf(&buf, "Description: %s\n", param.Description)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-12s %14s %14s %14s %14s %10s\n", "VALUE", "FIRE", "COAST FIRE", "GAP", "SURPLUS", "YEARS")
	fmt.Fprintln(&buf, strings.Repeat("-", 83))
	for _, pt := range analysis.Points {
		years := strconv.Itoa(pt.Timeline.Years)
		switch {
		case pt.AlreadyCoasting:
			years = "coasting"
		case !pt.Timeline.Achievable:
			years = years + "+"
		}
		marker := ""
		if pt.Value.Equal(analysis.BaseValue) {
			marker = " ← base"
		}
		fmt.Fprintf(&buf, "%-12s %14s %14s %14s %14s %10s%s\n",
			formatParamValue(pt.Value, param.Unit),
			FormatCompact(pt.FireNumber),
			FormatCompact(pt.CoastFireNumber),
			FormatCompact(pt.Gap),
			FormatCompact(pt.Surplus),
			years, marker)
	}
	fmt.Fprintln(&buf)

	for _, s := range analysis.Skipped {
		fmt.Fprintf(&buf, "skipped: %s\n", s)
	}
	if len(analysis.Skipped) > 0 {
		fmt.Fprintln(&buf)
	}

	fmt.Fprintf(&buf, "Coast FIRE range: %s (%s of base)\n", FormatCurrency(analysis.Summary.CoastFireRange), FormatPercentage(analysis.Summary.CoastFireSwing))
	fmt.Fprintf(&buf, "Risk level: %s\n", analysis.Summary.RiskLevel)
	fmt.Fprintf(&buf, "• %s\n", analysis.Summary.Recommendation)
	return buf.String(), nil
}

// SensitivityCSVFormatter formats sensitivity analysis output as CSV
type SensitivityCSVFormatter struct{}

func (scf SensitivityCSVFormatter) Name() string { return "csv" }

func (scf SensitivityCSVFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	rows := [][]string{{"parameter_name", "parameter_value", "fire_number", "coast_fire_number", "gap", "surplus", "timeline_years", "achievable", "already_coasting"}}
	for _, pt := range analysis.Points {
		rows = append(rows, []string{
			analysis.Parameter.Name,
			pt.Value.String(),
			pt.FireNumber.StringFixed(2),
			pt.CoastFireNumber.StringFixed(2),
			pt.Gap.StringFixed(2),
			pt.Surplus.StringFixed(2),
			strconv.Itoa(pt.Timeline.Years),
			strconv.FormatBool(pt.Timeline.Achievable),
			strconv.FormatBool(pt.AlreadyCoasting),
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SensitivityJSONFormatter formats sensitivity analysis output as JSON
type SensitivityJSONFormatter struct{}

func (sjf SensitivityJSONFormatter) Name() string { return "json" }

func (sjf SensitivityJSONFormatter) FormatSensitivityAnalysis(analysis *domain.SensitivityAnalysis) (string, error) {
	if analysis == nil {
		return "", fmt.Errorf("no analysis to format")
	}
	data, err := marshal(analysis, true)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewSensitivityFormatter creates a sensitivity formatter based on the format name
func NewSensitivityFormatter(format string) SensitivityFormatter {
	switch NormalizeFormatName(format) {
	case "csv":
		return SensitivityCSVFormatter{}
	case "json":
		return SensitivityJSONFormatter{}
	default:
		return SensitivityConsoleFormatter{}
	}
}

func formatParamValue(v decimal.Decimal, unit string) string {
	switch unit {
	case "percent":
		return v.StringFixed(2) + "%"
	case "dollars":
		return FormatCurrency(v)
	default:
		return v.StringFixed(0)
	}
}
