package calculation

import (
	"testing"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseProfile() domain.FinancialProfile {
	return domain.FinancialProfile{
		CurrentAge:            30,
		RetirementAge:         65,
		AnnualSpending:        decimal.NewFromInt(60000),
		CurrentAssets:         decimal.NewFromInt(100000),
		MonthlyContributions:  decimal.NewFromInt(1000),
		GrowthRatePercent:     decimal.NewFromInt(7),
		InflationRatePercent:  decimal.NewFromInt(3),
		WithdrawalRatePercent: decimal.NewFromInt(4),
		InvestmentFeesPercent: decimal.RequireFromString("0.5"),
	}
}

// lateStarterProfile is 35 retiring at 61 with $75k and no contributions
func lateStarterProfile() domain.FinancialProfile {
	return domain.FinancialProfile{
		CurrentAge:            35,
		RetirementAge:         61,
		AnnualSpending:        decimal.NewFromInt(60000),
		CurrentAssets:         decimal.NewFromInt(75000),
		MonthlyContributions:  decimal.Zero,
		RetirementIncome:      decimal.Zero,
		GrowthRatePercent:     decimal.NewFromInt(10),
		InflationRatePercent:  decimal.NewFromInt(3),
		WithdrawalRatePercent: decimal.NewFromInt(4),
		InvestmentFeesPercent: decimal.RequireFromString("0.5"),
	}
}

func TestProjectCoastFire_LateStarter(t *testing.T) {
	result, err := NewCoastFireProjector().ProjectCoastFire(lateStarterProfile())
	require.NoError(t, err)

	assert.True(t, result.RealReturnRate.Equal(decimal.RequireFromString("0.065")), "real return %s", result.RealReturnRate)
	assert.True(t, result.FireNumber.Equal(decimal.NewFromInt(1500000)), "fire number %s", result.FireNumber)
	assert.Equal(t, 26, result.YearsToRetirement)

	// 1,500,000 / 1.065^26
	assert.InDelta(t, 291743.6, result.CoastFireNumber.InexactFloat64(), 5)
	assert.False(t, result.AlreadyCoasting)
	assert.True(t, result.Gap.Equal(result.CoastFireNumber.Sub(decimal.NewFromInt(75000))))

	// 75k at 6.5% crosses the coast number in year 22
	assert.True(t, result.Timeline.Achievable)
	assert.Equal(t, 22, result.Timeline.Years)
	assert.Equal(t, 57, result.Timeline.Age)

	assert.True(t, result.RequiredWithdrawal.Equal(decimal.NewFromInt(60000)))
	assert.True(t, result.Surplus.IsNegative(), "75k with no contributions should leave a shortfall, got %s", result.Surplus)
	assert.True(t, result.Surplus.Equal(result.AvailableWithdrawal.Sub(result.RequiredWithdrawal)))
	assert.NotEmpty(t, result.Summary)
}

func TestProjectCoastFire_CoastIdentity(t *testing.T) {
	profiles := map[string]domain.FinancialProfile{
		"base":         baseProfile(),
		"late starter": lateStarterProfile(),
	}
	negative := baseProfile()
	negative.GrowthRatePercent = decimal.NewFromInt(2)
	profiles["negative real return"] = negative

	for name, profile := range profiles {
		t.Run(name, func(t *testing.T) {
			result, err := NewCoastFireProjector().ProjectCoastFire(profile)
			require.NoError(t, err)

			grown := result.CoastFireNumber
			for y := 0; y < result.YearsToRetirement; y++ {
				grown = grown.Mul(one.Add(result.RealReturnRate))
			}
			diff := grown.Sub(result.FireNumber).Abs()
			assert.True(t, diff.LessThan(decimal.NewFromInt(1)), "coast number compounds to %s, fire number %s", grown, result.FireNumber)
		})
	}
}

func TestProjectCoastFire_AlreadyCoastingBoundary(t *testing.T) {
	projector := NewCoastFireProjector()
	first, err := projector.ProjectCoastFire(baseProfile())
	require.NoError(t, err)

	atBoundary := baseProfile()
	atBoundary.CurrentAssets = first.CoastFireNumber
	result, err := projector.ProjectCoastFire(atBoundary)
	require.NoError(t, err)
	assert.True(t, result.AlreadyCoasting)
	assert.True(t, result.Gap.IsZero())
	assert.Equal(t, domain.Timeline{Years: 0, Age: 30, Achievable: true}, result.Timeline)

	justBelow := baseProfile()
	justBelow.CurrentAssets = first.CoastFireNumber.Sub(decimal.RequireFromString("0.01"))
	result, err = projector.ProjectCoastFire(justBelow)
	require.NoError(t, err)
	assert.False(t, result.AlreadyCoasting)
	assert.True(t, result.Gap.Equal(decimal.RequireFromString("0.01")), "gap %s", result.Gap)
}

func TestProjectCoastFire_GapNeverNegative(t *testing.T) {
	projector := NewCoastFireProjector()
	for _, assets := range []int64{0, 1000, 100000, 500000, 5000000} {
		profile := baseProfile()
		profile.CurrentAssets = decimal.NewFromInt(assets)
		result, err := projector.ProjectCoastFire(profile)
		require.NoError(t, err)

		assert.False(t, result.Gap.IsNegative(), "assets %d", assets)
		expected := decimal.Max(decimal.Zero, result.CoastFireNumber.Sub(profile.CurrentAssets))
		assert.True(t, result.Gap.Equal(expected), "assets %d: gap %s expected %s", assets, result.Gap, expected)
		assert.Equal(t, profile.CurrentAssets.GreaterThanOrEqual(result.CoastFireNumber), result.AlreadyCoasting)
	}
}

func TestProjectCoastFire_RetirementIncomeCoversSpending(t *testing.T) {
	profile := baseProfile()
	profile.RetirementIncome = decimal.NewFromInt(80000)

	result, err := NewCoastFireProjector().ProjectCoastFire(profile)
	require.NoError(t, err)
	assert.True(t, result.FireNumber.IsZero())
	assert.True(t, result.CoastFireNumber.IsZero())
	assert.True(t, result.AlreadyCoasting)
	assert.True(t, result.RequiredWithdrawal.IsZero())
	assert.True(t, result.Surplus.Equal(result.AvailableWithdrawal))
}

func TestProjectCoastFire_NotAchievable(t *testing.T) {
	profile := baseProfile()
	profile.CurrentAssets = decimal.NewFromInt(1000)
	profile.MonthlyContributions = decimal.Zero
	profile.GrowthRatePercent = decimal.NewFromInt(2)

	logger := &recordingLogger{}
	projector := NewCoastFireProjector()
	projector.Logger = logger

	result, err := projector.ProjectCoastFire(profile)
	require.NoError(t, err)
	assert.False(t, result.Timeline.Achievable)
	assert.Equal(t, 100, result.Timeline.Years)
	assert.True(t, logger.contains("WARN", "not reachable"))
	assert.Contains(t, result.Summary, "don't close the gap")
}

func TestProjectCoastFire_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.FinancialProfile)
		field  string
	}{
		{"equal ages", func(p *domain.FinancialProfile) { p.RetirementAge = p.CurrentAge }, "retirement_age"},
		{"retirement before current", func(p *domain.FinancialProfile) { p.CurrentAge = 70 }, "retirement_age"},
		{"retirement at 100", func(p *domain.FinancialProfile) { p.RetirementAge = 100 }, "retirement_age"},
		{"negative age", func(p *domain.FinancialProfile) { p.CurrentAge = -1 }, "current_age"},
		{"negative assets", func(p *domain.FinancialProfile) { p.CurrentAssets = decimal.NewFromInt(-1) }, "current_assets"},
		{"zero withdrawal rate", func(p *domain.FinancialProfile) { p.WithdrawalRatePercent = decimal.Zero }, "withdrawal_rate_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile()
			tt.modify(&profile)

			_, err := NewCoastFireProjector().ProjectCoastFire(profile)
			require.Error(t, err)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestProjectCoastFire_GrowthPaths(t *testing.T) {
	result, err := NewCoastFireProjector().ProjectCoastFire(baseProfile())
	require.NoError(t, err)

	paths := result.Paths
	assert.Equal(t, domain.PathAggressive, paths.Aggressive.Name)
	assert.Equal(t, domain.PathModerate, paths.Moderate.Name)
	assert.Equal(t, domain.PathConservative, paths.Conservative.Name)

	assert.True(t, paths.Aggressive.ProjectedAssets.GreaterThan(paths.Moderate.ProjectedAssets))
	assert.True(t, paths.Moderate.ProjectedAssets.GreaterThan(paths.Conservative.ProjectedAssets))

	// the moderate path uses the profile's own rate, so it matches the headline projection
	assert.True(t, paths.Moderate.ProjectedAssets.Equal(result.CurrentAssetsProjected),
		"moderate %s vs projected %s", paths.Moderate.ProjectedAssets, result.CurrentAssetsProjected)

	for _, path := range paths.All() {
		require.Len(t, path.Milestones, 5, path.Name)
		last := path.Milestones[4]
		assert.Equal(t, "Retirement", last.Label)
		assert.Equal(t, 65, last.Age)
		assert.True(t, last.Amount.Equal(path.ProjectedAssets))

		prevYear := 0
		for _, m := range path.Milestones[:4] {
			if !m.Reached {
				continue
			}
			assert.GreaterOrEqual(t, m.Year, prevYear, "%s milestones out of order", path.Name)
			prevYear = m.Year
		}
	}
}

func TestProjectCoastFire_Deterministic(t *testing.T) {
	projector := NewCoastFireProjector()
	a, err := projector.ProjectCoastFire(baseProfile())
	require.NoError(t, err)
	b, err := projector.ProjectCoastFire(baseProfile())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
