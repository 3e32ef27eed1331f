package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() domain.FinancialProfile {
	return domain.FinancialProfile{
		CurrentAge:            30,
		RetirementAge:         65,
		AnnualSpending:        decimal.NewFromInt(60000),
		CurrentAssets:         decimal.NewFromInt(100000),
		MonthlyContributions:  decimal.NewFromInt(1000),
		GrowthRatePercent:     decimal.NewFromInt(7),
		InflationRatePercent:  decimal.NewFromInt(3),
		WithdrawalRatePercent: decimal.NewFromInt(4),
		InvestmentFeesPercent: decimal.NewFromFloat(0.5),
	}
}

func TestCompare_DefaultTemplates(t *testing.T) {
	ce := NewCompareEngine(calculation.NewEngine())

	compSet, err := ce.Compare(context.Background(), sampleProfile(), CompareOptions{})
	require.NoError(t, err)

	assert.Equal(t, "base", compSet.BaseScenarioName)
	require.Len(t, compSet.AlternativeResults, 2)
	assert.Equal(t, "conservative_growth", compSet.AlternativeResults[0].ScenarioName)
	assert.Equal(t, "aggressive_growth", compSet.AlternativeResults[1].ScenarioName)
	assert.Equal(t, "Assume 10% nominal growth", compSet.AlternativeResults[1].Description)

	base := compSet.BaseResult
	assert.True(t, base.FireNumber.Equal(decimal.NewFromInt(1500000)))

	conservative := compSet.AlternativeResults[0]
	aggressive := compSet.AlternativeResults[1]

	// FIRE number does not depend on growth
	assert.True(t, conservative.FireNumber.Equal(base.FireNumber))
	assert.True(t, aggressive.FireNumber.Equal(base.FireNumber))

	assert.True(t, conservative.CoastFireNumber.GreaterThan(base.CoastFireNumber))
	assert.True(t, aggressive.CoastFireNumber.LessThan(base.CoastFireNumber))
	assert.True(t, aggressive.ProjectedDiffFromBase.IsPositive())
	assert.True(t, conservative.ProjectedDiffFromBase.IsNegative())
	assert.True(t, aggressive.ProjectedPctFromBase.IsPositive())
	assert.Less(t, aggressive.YearsToCoastDiff, 0)

	assert.True(t, aggressive.CoastDiffFromBase.Equal(aggressive.CoastFireNumber.Sub(base.CoastFireNumber)))
	assert.True(t, aggressive.SurplusDiffFromBase.Equal(aggressive.Surplus.Sub(base.Surplus)))
}

func TestCompare_Recommendations(t *testing.T) {
	ce := NewCompareEngine(nil)

	compSet, err := ce.Compare(context.Background(), sampleProfile(), CompareOptions{
		Templates: []string{"conservative_growth", "aggressive_growth"},
	})
	require.NoError(t, err)

	require.Len(t, compSet.Recommendations, 3)
	assert.Contains(t, compSet.Recommendations[0], "Best Surplus: aggressive_growth")
	assert.Contains(t, compSet.Recommendations[1], "Easiest Target: aggressive_growth")
	assert.Contains(t, compSet.Recommendations[2], "Fastest Coast: aggressive_growth")
}

func TestCompare_WhatIfs(t *testing.T) {
	ce := NewCompareEngine(nil)

	compSet, err := ce.Compare(context.Background(), sampleProfile(), CompareOptions{
		BaseScenarioName: "today",
		WhatIfs:          []string{"postpone_retirement:years=5", "set_fees:percent=0"},
	})
	require.NoError(t, err)

	require.Len(t, compSet.AlternativeResults, 1)
	alt := compSet.AlternativeResults[0]
	assert.Equal(t, "what_if", alt.ScenarioName)
	assert.Equal(t, "Postpone retirement by 5 years; Pay 0% in annual fees", alt.Description)
	assert.Equal(t, 70, alt.Profile.RetirementAge)
	assert.Equal(t, "today", compSet.BaseScenarioName)
}

func TestCompare_Errors(t *testing.T) {
	ce := NewCompareEngine(nil)
	ctx := context.Background()

	_, err := ce.Compare(ctx, sampleProfile(), CompareOptions{Templates: []string{"nope"}})
	assert.EqualError(t, err, "template nope not found")

	_, err = ce.Compare(ctx, sampleProfile(), CompareOptions{WhatIfs: []string{"bogus"}})
	assert.Error(t, err)

	invalid := sampleProfile()
	invalid.RetirementAge = 20
	_, err = ce.Compare(ctx, invalid, CompareOptions{Templates: []string{"lower_fees"}})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = ce.Compare(cancelled, sampleProfile(), CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareProfiles(t *testing.T) {
	ce := NewCompareEngine(nil)

	richer := sampleProfile()
	richer.CurrentAssets = decimal.NewFromInt(500000)

	compSet, err := ce.CompareProfiles(context.Background(),
		NamedProfile{Name: "me", Profile: sampleProfile()},
		[]NamedProfile{{Name: "richer", Profile: richer}},
	)
	require.NoError(t, err)

	alt := compSet.AlternativeResults[0]
	assert.True(t, alt.AlreadyCoasting)
	assert.Equal(t, 0, alt.YearsToCoast)
	assert.True(t, alt.CoastDiffFromBase.IsZero())
	assert.True(t, alt.ProjectedDiffFromBase.IsPositive())
}

func TestGenerateRecommendations_NoAlternatives(t *testing.T) {
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: &ComparisonResult{}}))
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
}

func TestGenerateRecommendations_SkipsUnreachable(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{ScenarioName: "base", YearsToCoast: 100, CoastAchievable: false},
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "never", YearsToCoast: 100, CoastAchievable: false},
			{ScenarioName: "soon", YearsToCoast: 12, CoastAchievable: true},
		},
	}
	recs := GenerateRecommendations(compSet)
	require.Len(t, recs, 1)
	assert.Equal(t, "Fastest Coast: soon reaches Coast FIRE in 12 years", recs[0])
}
