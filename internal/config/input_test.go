package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

const validPlanYAML = `
name: "Sample"
profile:
  current_age: 30
  retirement_age: 65
  annual_spending: 60000
  current_assets: 100000
  monthly_contributions: 1000
  retirement_income: 0
  growth_rate_percent: 7
  inflation_rate_percent: 3
  withdrawal_rate_percent: 4
  investment_fees_percent: 0.5
freedom:
  monthly_expenses: 5000
  current_passive_income: 1200
  monthly_savings: 1500
  expected_return_percent: 7
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	plan, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, plan, "Should return nil plan")
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	plan, err := NewInputParser().LoadFromFile(path)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile_ValidYAML(t *testing.T) {
	path := writeFile(t, "valid.yaml", validPlanYAML)

	plan, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	want := &domain.PlanInput{
		Name: "Sample",
		Profile: &domain.FinancialProfile{
			CurrentAge:            30,
			RetirementAge:         65,
			AnnualSpending:        decimal.NewFromInt(60000),
			CurrentAssets:         decimal.NewFromInt(100000),
			MonthlyContributions:  decimal.NewFromInt(1000),
			RetirementIncome:      decimal.Zero,
			GrowthRatePercent:     decimal.NewFromInt(7),
			InflationRatePercent:  decimal.NewFromInt(3),
			WithdrawalRatePercent: decimal.NewFromInt(4),
			InvestmentFeesPercent: decimal.RequireFromString("0.5"),
		},
		Freedom: &domain.FreedomProfile{
			MonthlyExpenses:       decimal.NewFromInt(5000),
			CurrentPassiveIncome:  decimal.NewFromInt(1200),
			MonthlySavings:        decimal.NewFromInt(1500),
			ExpectedReturnPercent: decimal.NewFromInt(7),
		},
	}
	if diff := cmp.Diff(want, plan, decimalComparer); diff != "" {
		t.Errorf("LoadFromFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestInputParser_ParsePlan_Errors(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"empty document", "", "document is empty"},
		{"unknown field", "name: x\nprofile:\n  current_agee: 30\n", "failed to parse YAML"},
		{"no sections", "name: nothing\n", "profile or a freedom section"},
		{"bad ages", "profile:\n  current_age: 70\n  retirement_age: 65\n  withdrawal_rate_percent: 4\n", "profile validation failed"},
		{"negative expenses", "freedom:\n  monthly_expenses: -5\n", "freedom validation failed"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := parser.ParsePlan([]byte(tt.yaml))
			require.Error(t, err)
			assert.Nil(t, plan)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestInputParser_ParsePlan_FreedomOnly(t *testing.T) {
	plan, err := NewInputParser().ParsePlan([]byte("freedom:\n  monthly_expenses: 4000\n"))
	require.NoError(t, err)
	assert.Nil(t, plan.Profile)
	require.NotNil(t, plan.Freedom)
	assert.True(t, plan.Freedom.MonthlyExpenses.Equal(decimal.NewFromInt(4000)))
}

func TestSavePlan_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	original, err := parser.ParsePlan([]byte(validPlanYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SavePlan(original, path))

	reloaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(original, reloaded, decimalComparer); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInputParser_ParseRules(t *testing.T) {
	parser := NewInputParser()

	rules, err := parser.ParseRules([]byte("reinvestment_buffer: 0.15\nhorizon_months: 60\n"))
	require.NoError(t, err)
	assert.True(t, rules.ReinvestmentBuffer.Equal(decimal.RequireFromString("0.15")))
	assert.Equal(t, 60, rules.HorizonMonths)

	want := domain.DefaultPlanningRules()
	want.ReinvestmentBuffer = rules.ReinvestmentBuffer
	want.HorizonMonths = 60
	want.Metadata = rules.Metadata
	if diff := cmp.Diff(want, rules, decimalComparer); diff != "" {
		t.Errorf("omitted rule fields should keep defaults (-want +got):\n%s", diff)
	}

	_, err = parser.ParseRules([]byte("reinvestment_buffer: 1.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rules validation failed")

	_, err = parser.ParseRules([]byte("no_such_rule: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rules YAML")
}

func TestInputParser_LoadRules(t *testing.T) {
	path := writeFile(t, "rules.yaml", `
metadata:
  version: "test"
  description: "custom multiplier"
annuity_multiplier: 30
`)
	rules, err := NewInputParser().LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "test", rules.Metadata.Version)
	assert.True(t, rules.AnnuityMultiplier.Equal(decimal.NewFromInt(30)))
	assert.Len(t, rules.TaxTable.Brackets, 7)

	_, err = NewInputParser().LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInputParser_ParseRules_ExplicitZeroSurvives(t *testing.T) {
	rules, err := NewInputParser().ParseRules([]byte("reinvestment_buffer: 0\nconservative_rate_percent: 0\nhorizon_months: 0\n"))
	require.NoError(t, err)

	assert.True(t, rules.ReinvestmentBuffer.IsZero(), "buffer = %s", rules.ReinvestmentBuffer)
	assert.True(t, rules.ConservativeRatePercent.IsZero(), "conservative = %s", rules.ConservativeRatePercent)
	assert.Equal(t, 0, rules.HorizonMonths)
	assert.True(t, rules.SeedTaxRate.Equal(decimal.RequireFromString("0.25")), "omitted keys keep defaults")
}

func TestRulesPreset(t *testing.T) {
	standard, err := RulesPreset("")
	require.NoError(t, err)
	assert.True(t, standard.ReinvestmentBuffer.Equal(decimal.RequireFromString("0.08")))

	pricing, err := RulesPreset("service-pricing")
	require.NoError(t, err)
	assert.True(t, pricing.ReinvestmentBuffer.Equal(decimal.RequireFromString("0.15")))

	_, err = RulesPreset("premium")
	assert.Error(t, err)
}

func TestInputParser_LoadRulesOver(t *testing.T) {
	base, err := RulesPreset("service-pricing")
	require.NoError(t, err)
	path := writeFile(t, "rules.yaml", "horizon_months: 24\n")

	rules, err := NewInputParser().LoadRulesOver(path, base)
	require.NoError(t, err)
	assert.Equal(t, 24, rules.HorizonMonths)
	assert.True(t, rules.ReinvestmentBuffer.Equal(decimal.RequireFromString("0.15")), "preset values the file omits must survive")
}
