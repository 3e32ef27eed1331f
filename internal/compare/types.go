package compare

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario with its key Coast-FIRE metrics
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Description  string                   `json:"description"`
	Profile      domain.FinancialProfile  `json:"profile"`
	Projection   *domain.ProjectionResult `json:"-"`

	// Key Metrics
	FireNumber      decimal.Decimal `json:"fireNumber"`
	CoastFireNumber decimal.Decimal `json:"coastFireNumber"`
	ProjectedAssets decimal.Decimal `json:"projectedAssets"`
	Gap             decimal.Decimal `json:"gap"`
	Surplus         decimal.Decimal `json:"surplus"`
	YearsToCoast    int             `json:"yearsToCoast"`
	CoastAchievable bool            `json:"coastAchievable"`
	AlreadyCoasting bool            `json:"alreadyCoasting"`

	// Comparison to Base
	CoastDiffFromBase     decimal.Decimal `json:"coastDiffFromBase"`
	ProjectedDiffFromBase decimal.Decimal `json:"projectedDiffFromBase"`
	ProjectedPctFromBase  decimal.Decimal `json:"projectedPctFromBase"`
	SurplusDiffFromBase   decimal.Decimal `json:"surplusDiffFromBase"`
	YearsToCoastDiff      int             `json:"yearsToCoastDiff"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from projections
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a projection
func (mc *MetricsCalculator) CalculateMetrics(name string, projection *domain.ProjectionResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:    name,
		Profile:         projection.Profile,
		Projection:      projection,
		FireNumber:      projection.FireNumber,
		CoastFireNumber: projection.CoastFireNumber,
		ProjectedAssets: projection.CurrentAssetsProjected,
		Gap:             projection.Gap,
		Surplus:         projection.Surplus,
		YearsToCoast:    projection.Timeline.Years,
		CoastAchievable: projection.Timeline.Achievable,
		AlreadyCoasting: projection.AlreadyCoasting,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.CoastDiffFromBase = scenario.CoastFireNumber.Sub(base.CoastFireNumber)
	scenario.ProjectedDiffFromBase = scenario.ProjectedAssets.Sub(base.ProjectedAssets)
	if !base.ProjectedAssets.IsZero() {
		scenario.ProjectedPctFromBase = scenario.ProjectedDiffFromBase.
			Div(base.ProjectedAssets).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	scenario.SurplusDiffFromBase = scenario.Surplus.Sub(base.Surplus)
	scenario.YearsToCoastDiff = scenario.YearsToCoast - base.YearsToCoast
	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	// Largest retirement surplus
	best := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Surplus.GreaterThan(best.Surplus) {
			best = alt
		}
	}
	if best != base {
		diff := best.Surplus.Sub(base.Surplus)
		recommendations = append(recommendations,
			"Best Surplus: "+best.ScenarioName+" adds $"+diff.StringFixed(0)+
				" per year of retirement withdrawals over the base scenario")
	}

	// Lowest Coast FIRE number
	lowest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.CoastFireNumber.LessThan(lowest.CoastFireNumber) {
			lowest = alt
		}
	}
	if lowest != base {
		diff := base.CoastFireNumber.Sub(lowest.CoastFireNumber)
		recommendations = append(recommendations,
			"Easiest Target: "+lowest.ScenarioName+" lowers the Coast FIRE number by $"+diff.StringFixed(0))
	}

	// Fastest to coast, only among scenarios that can get there
	fastest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if !alt.CoastAchievable {
			continue
		}
		if !fastest.CoastAchievable || alt.YearsToCoast < fastest.YearsToCoast {
			fastest = alt
		}
	}
	if fastest != base && fastest.CoastAchievable {
		recommendations = append(recommendations,
			"Fastest Coast: "+fastest.ScenarioName+" reaches Coast FIRE in "+
				fmt.Sprintf("%d years", fastest.YearsToCoast))
	}

	return recommendations
}
