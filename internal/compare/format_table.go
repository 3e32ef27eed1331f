package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/firecalc/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("COAST FIRE SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 25
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Coast FIRE",
		numWidth, "Projected",
		numWidth, "Surplus",
		numWidth, "To Coast"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(" " + alt.Description)
			}
			sb.WriteString("\n")

			sb.WriteString(fmt.Sprintf("  Projected Assets: %s (%s%%)\n",
				tf.signedMoney(alt.ProjectedDiffFromBase),
				alt.ProjectedPctFromBase.StringFixed(1)))

			// Lower coast number is better
			if !alt.CoastDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Coast FIRE:       %s\n", tf.signedMoney(alt.CoastDiffFromBase)))
			}
			if !alt.SurplusDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Annual Surplus:   %s\n", tf.signedMoney(alt.SurplusDiffFromBase)))
			}
			if alt.YearsToCoastDiff != 0 {
				sign := "+"
				if alt.YearsToCoastDiff < 0 {
					sign = ""
				}
				sb.WriteString(fmt.Sprintf("  Years to Coast:   %s%d years\n", sign, alt.YearsToCoastDiff))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	coast := fmt.Sprintf("%d years", result.YearsToCoast)
	switch {
	case result.AlreadyCoasting:
		coast = "coasting"
	case !result.CoastAchievable:
		coast = "not reached"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.FormatCompact(result.CoastFireNumber),
		numWidth, output.FormatCompact(result.ProjectedAssets),
		numWidth, output.FormatCompact(result.Surplus),
		numWidth, coast)
}

func (tf *TableFormatter) signedMoney(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + output.FormatCompact(d)
	}
	return output.FormatCompact(d)
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.ProjectedDiffFromBase.IsZero() {
			change = tf.signedMoney(alt.ProjectedDiffFromBase)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
