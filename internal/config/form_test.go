package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"60000", "60000", true},
		{"$60,000", "60000", true},
		{" 4.5% ", "4.5", true},
		{"1_000", "1000", true},
		{"-250", "-250", true},
		{"", "0", false},
		{"$", "0", false},
		{"abc", "0", false},
		{"1.2.3", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseNumber(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ParseNumber(%q) = %s, want %s", tt.raw, got, tt.want)
		})
	}
}

func TestNormalizeProfile_Defaults(t *testing.T) {
	got := NormalizeProfile(map[string]string{})
	if diff := cmp.Diff(DefaultProfile(), got, decimalComparer); diff != "" {
		t.Errorf("blank form should resolve to defaults (-want +got):\n%s", diff)
	}
}

func TestNormalizeProfile(t *testing.T) {
	got := NormalizeProfile(map[string]string{
		"current_age":          "40",
		"retirementAge":        "60",
		"annual_spending":      "$80,000",
		"current_assets":       "-5000",
		"growth_rate":          "8%",
		"inflation_rate":       "not a number",
		"monthlyContributions": "2,500",
		"investment_fees":      "",
	})

	want := DefaultProfile()
	want.CurrentAge = 40
	want.RetirementAge = 60
	want.AnnualSpending = decimal.NewFromInt(80000)
	want.CurrentAssets = decimal.Zero
	want.GrowthRatePercent = decimal.NewFromInt(8)
	want.MonthlyContributions = decimal.NewFromInt(2500)

	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("NormalizeProfile() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeProfile_KeepsOrderingForValidate(t *testing.T) {
	p := NormalizeProfile(map[string]string{"current_age": "70", "retirement_age": "65"})
	assert.Equal(t, 70, p.CurrentAge)
	assert.Equal(t, 65, p.RetirementAge)
	assert.True(t, domain.IsValidationError(p.Validate()))
}

func TestNormalizeFreedom(t *testing.T) {
	got := NormalizeFreedom(map[string]string{
		"monthly_expenses":     "$6,000",
		"currentPassiveIncome": "1500",
		"monthly_savings":      "-10",
	})

	want := domain.FreedomProfile{
		MonthlyExpenses:       decimal.NewFromInt(6000),
		CurrentPassiveIncome:  decimal.NewFromInt(1500),
		MonthlySavings:        decimal.Zero,
		ExpectedReturnPercent: decimal.NewFromInt(7),
	}
	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("NormalizeFreedom() mismatch (-want +got):\n%s", diff)
	}
}

func TestMoneyInput(t *testing.T) {
	def := decimal.NewFromInt(5000)
	assert.True(t, MoneyInput(map[string]string{FieldMonthlyNet: "$4,200"}, FieldMonthlyNet, def).Equal(decimal.NewFromInt(4200)))
	assert.True(t, MoneyInput(map[string]string{"monthlyNet": "4200"}, FieldMonthlyNet, def).Equal(decimal.NewFromInt(4200)))
	assert.True(t, MoneyInput(map[string]string{}, FieldMonthlyNet, def).Equal(def))
	assert.True(t, MoneyInput(map[string]string{FieldMonthlyNet: "-1"}, FieldMonthlyNet, def).IsZero())
}

func TestCamelCase(t *testing.T) {
	assert.Equal(t, "currentPassiveIncome", camelCase("current_passive_income"))
	assert.Equal(t, "name", camelCase("name"))
}

func TestNormalizeProfile_HugeAgesStayInvalid(t *testing.T) {
	tests := []struct {
		name   string
		inputs map[string]string
	}{
		{"beyond uint64", map[string]string{"current_age": "18446744073709551656", "retirement_age": "61"}},
		{"beyond int32", map[string]string{"current_age": "30", "retirement_age": "4294967361"}},
		{"huge negative", map[string]string{"current_age": "-18446744073709551656", "retirement_age": "61"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizeProfile(tt.inputs)
			assert.True(t, domain.IsValidationError(p.Validate()), "expected rejection, got ages %d/%d", p.CurrentAge, p.RetirementAge)
		})
	}
}
