package calculation

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// SensitivityAnalyzer performs parameter sweep analysis
type SensitivityAnalyzer struct {
	engine *Engine
}

// NewSensitivityAnalyzer creates a new sensitivity analyzer. A nil engine
// gets a default one.
func NewSensitivityAnalyzer(engine *Engine) *SensitivityAnalyzer {
	if engine == nil {
		engine = NewEngine()
	}
	return &SensitivityAnalyzer{engine: engine}
}

// AnalyzeParameter sweeps one profile field across the parameter's range and
// reruns the Coast-FIRE projection at each value. Values that make the profile
// invalid (for example a retirement age below the current age) are recorded in
// Skipped instead of failing the sweep.
func (sa *SensitivityAnalyzer) AnalyzeParameter(profile domain.FinancialProfile, param domain.SensitivityParameter) (*domain.SensitivityAnalysis, error) {
	baseValue, err := parameterValue(profile, param.Name)
	if err != nil {
		return nil, err
	}

	base, err := sa.engine.ProjectCoastFire(profile)
	if err != nil {
		return nil, fmt.Errorf("base projection failed: %w", err)
	}

	analysis := &domain.SensitivityAnalysis{
		Parameter: param,
		BaseValue: baseValue,
	}

	for _, value := range generateParameterValues(param) {
		modified, err := withParameter(profile, param.Name, value)
		if err != nil {
			return nil, err
		}

		result, err := sa.engine.ProjectCoastFire(modified)
		if err != nil {
			if domain.IsValidationError(err) {
				analysis.Skipped = append(analysis.Skipped, fmt.Sprintf("%s=%s: %v", param.Name, value.String(), err))
				continue
			}
			return nil, fmt.Errorf("failed to project %s=%s: %w", param.Name, value.String(), err)
		}

		analysis.Points = append(analysis.Points, domain.SensitivityPoint{
			Value:           value,
			FireNumber:      result.FireNumber,
			CoastFireNumber: result.CoastFireNumber,
			Gap:             result.Gap,
			Surplus:         result.Surplus,
			Timeline:        result.Timeline,
			AlreadyCoasting: result.AlreadyCoasting,
		})
	}

	analysis.Summary = summarizeSensitivity(analysis.Points, base.CoastFireNumber, param)
	return analysis, nil
}

// generateParameterValues generates evenly spaced values for a parameter sweep
func generateParameterValues(param domain.SensitivityParameter) []decimal.Decimal {
	if param.Steps <= 1 {
		return []decimal.Decimal{param.MinValue}
	}

	values := make([]decimal.Decimal, 0, param.Steps)
	stepSize := param.MaxValue.Sub(param.MinValue).Div(decimal.NewFromInt(int64(param.Steps - 1)))
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue.Add(stepSize.Mul(decimal.NewFromInt(int64(i)))).Round(4))
	}
	return values
}

func parameterValue(profile domain.FinancialProfile, name string) (decimal.Decimal, error) {
	switch name {
	case "growth_rate":
		return profile.GrowthRatePercent, nil
	case "inflation_rate":
		return profile.InflationRatePercent, nil
	case "withdrawal_rate":
		return profile.WithdrawalRatePercent, nil
	case "investment_fees":
		return profile.InvestmentFeesPercent, nil
	case "monthly_contributions":
		return profile.MonthlyContributions, nil
	case "retirement_age":
		return decimal.NewFromInt(int64(profile.RetirementAge)), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown sensitivity parameter %q", name)
	}
}

// withParameter returns a copy of profile with one field replaced
func withParameter(profile domain.FinancialProfile, name string, value decimal.Decimal) (domain.FinancialProfile, error) {
	switch name {
	case "growth_rate":
		profile.GrowthRatePercent = value
	case "inflation_rate":
		profile.InflationRatePercent = value
	case "withdrawal_rate":
		profile.WithdrawalRatePercent = value
	case "investment_fees":
		profile.InvestmentFeesPercent = value
	case "monthly_contributions":
		profile.MonthlyContributions = value
	case "retirement_age":
		profile.RetirementAge = int(value.Round(0).IntPart())
	default:
		return profile, fmt.Errorf("unknown sensitivity parameter %q", name)
	}
	return profile, nil
}

// summarizeSensitivity rates how far the Coast FIRE number moves across the sweep
func summarizeSensitivity(points []domain.SensitivityPoint, baseCoast decimal.Decimal, param domain.SensitivityParameter) domain.SensitivitySummary {
	if len(points) == 0 {
		return domain.SensitivitySummary{
			RiskLevel:      "UNKNOWN",
			Recommendation: fmt.Sprintf("No valid projections for %s in the requested range", param.Name),
		}
	}

	lo, hi := points[0].CoastFireNumber, points[0].CoastFireNumber
	for _, pt := range points[1:] {
		lo = decimal.Min(lo, pt.CoastFireNumber)
		hi = decimal.Max(hi, pt.CoastFireNumber)
	}
	spread := hi.Sub(lo)

	swing := decimal.Zero
	if baseCoast.IsPositive() {
		swing = spread.Div(baseCoast).Mul(hundred).Round(2)
	}

	summary := domain.SensitivitySummary{
		CoastFireRange: spread,
		CoastFireSwing: swing,
	}
	switch {
	case swing.GreaterThan(decimal.NewFromInt(50)):
		summary.RiskLevel = "HIGH"
		summary.Recommendation = fmt.Sprintf("Coast FIRE number is highly sensitive to %s; plan with conservative assumptions", param.Name)
	case swing.GreaterThan(decimal.NewFromInt(20)):
		summary.RiskLevel = "MEDIUM"
		summary.Recommendation = fmt.Sprintf("Moderate sensitivity to %s; revisit the assumption yearly", param.Name)
	default:
		summary.RiskLevel = "LOW"
		summary.Recommendation = fmt.Sprintf("Low sensitivity to %s; plan appears robust", param.Name)
	}
	return summary
}
