package breakeven

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/firecalc/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats optimization results as a console table
type TableFormatter struct{}

// Format generates a formatted table for optimization result
func (tf *TableFormatter) Format(result *OptimizationResult) string {
	var sb strings.Builder

	sb.WriteString("BREAK-EVEN OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Optimization Target: %s\n", result.Request.Target))
	sb.WriteString(fmt.Sprintf("Optimization Goal:   %s\n", tf.describeGoal(result.Request)))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	if !result.Success {
		return sb.String()
	}

	sb.WriteString("OPTIMAL PARAMETERS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	profile := result.Request.Profile
	if result.OptimalContribution != nil {
		sb.WriteString(fmt.Sprintf("Monthly Contribution: %s (currently %s)\n",
			output.FormatCurrencyCents(*result.OptimalContribution), output.FormatCurrency(profile.MonthlyContributions)))
	}
	if result.OptimalRetirementAge != nil {
		sb.WriteString(fmt.Sprintf("Retirement Age:       %d (currently %d)\n", *result.OptimalRetirementAge, profile.RetirementAge))
	}
	if result.OptimalSpending != nil {
		sb.WriteString(fmt.Sprintf("Annual Spending:      %s (currently %s)\n",
			output.FormatCurrencyCents(*result.OptimalSpending), output.FormatCurrency(profile.AnnualSpending)))
	}
	sb.WriteString("\n")

	if p := result.Projection; p != nil {
		sb.WriteString("PROJECTED RESULTS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("FIRE Number:          %s\n", output.FormatCurrency(p.FireNumber)))
		sb.WriteString(fmt.Sprintf("Coast FIRE Number:    %s\n", output.FormatCurrency(p.CoastFireNumber)))
		sb.WriteString(fmt.Sprintf("Projected Assets:     %s\n", output.FormatCurrency(p.CurrentAssetsProjected)))
		sb.WriteString(fmt.Sprintf("Surplus:              %s/year\n", output.FormatCurrency(p.Surplus)))
		sb.WriteString("\n")
	}

	if result.BaseProjection != nil && !result.SurplusDiffFromBase.IsZero() {
		sb.WriteString("COMPARISON TO BASE PROFILE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		sb.WriteString(fmt.Sprintf("Surplus Change:       %s%s/year\n",
			tf.deltaSymbol(result.SurplusDiffFromBase), output.FormatCurrency(result.SurplusDiffFromBase)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatMultiDimensional formats results from multiple optimizations
func (tf *TableFormatter) FormatMultiDimensional(result *MultiDimensionalResult) string {
	var sb strings.Builder

	sb.WriteString("MULTI-DIMENSIONAL OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("GOAL: %s\n", result.Goal))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%-24s %18s %14s %14s\n", "Target", "Break-even", "Surplus", "Coast FIRE"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		value := "not reachable"
		switch {
		case !res.Success:
		case res.OptimalContribution != nil:
			value = output.FormatCurrency(*res.OptimalContribution) + "/mo"
		case res.OptimalRetirementAge != nil:
			value = fmt.Sprintf("age %d", *res.OptimalRetirementAge)
		case res.OptimalSpending != nil:
			value = output.FormatCurrency(*res.OptimalSpending) + "/yr"
		}
		surplus, coast := "-", "-"
		if res.Projection != nil {
			surplus = output.FormatCompact(res.Projection.Surplus)
			coast = output.FormatCompact(res.Projection.CoastFireNumber)
		}
		sb.WriteString(fmt.Sprintf("%-24s %18s %14s %14s\n", tf.truncate(string(res.Request.Target), 24), value, surplus, coast))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *OptimizationResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiDimensional formats multi-dimensional results as JSON
func (jf *JSONFormatter) FormatMultiDimensional(result *MultiDimensionalResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v interface{}) (string, error) {
	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (tf *TableFormatter) describeGoal(req OptimizationRequest) string {
	if req.Goal == GoalCoastByAge && req.Constraints.TargetCoastAge != nil {
		return fmt.Sprintf("%s (age %d)", req.Goal, *req.Constraints.TargetCoastAge)
	}
	return string(req.Goal)
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Solved"
	}
	return "⚠ Not reachable within bounds"
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
