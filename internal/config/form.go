package config

import (
	"math"
	"strings"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Form field keys. Each field also accepts its camelCase spelling.
const (
	FieldCurrentAge           = "current_age"
	FieldRetirementAge        = "retirement_age"
	FieldAnnualSpending       = "annual_spending"
	FieldCurrentAssets        = "current_assets"
	FieldMonthlyContributions = "monthly_contributions"
	FieldRetirementIncome     = "retirement_income"
	FieldGrowthRate           = "growth_rate"
	FieldInflationRate        = "inflation_rate"
	FieldWithdrawalRate       = "withdrawal_rate"
	FieldInvestmentFees       = "investment_fees"
	FieldMonthlyExpenses      = "monthly_expenses"
	FieldCurrentPassiveIncome = "current_passive_income"
	FieldMonthlySavings       = "monthly_savings"
	FieldExpectedReturn       = "expected_return"
	FieldMonthlyNet           = "monthly_net"
	FieldAnnualGross          = "annual_gross"
)

var (
	maxIntField = decimal.NewFromInt(math.MaxInt32)
	minIntField = decimal.NewFromInt(math.MinInt32)
)

// DefaultProfile returns the values a blank Coast-FIRE form resolves to
func DefaultProfile() domain.FinancialProfile {
	return domain.FinancialProfile{
		CurrentAge:            35,
		RetirementAge:         65,
		AnnualSpending:        decimal.NewFromInt(60000),
		CurrentAssets:         decimal.Zero,
		MonthlyContributions:  decimal.Zero,
		RetirementIncome:      decimal.Zero,
		GrowthRatePercent:     decimal.NewFromInt(10),
		InflationRatePercent:  decimal.NewFromInt(3),
		WithdrawalRatePercent: decimal.NewFromInt(4),
		InvestmentFeesPercent: decimal.RequireFromString("0.5"),
	}
}

// DefaultFreedomProfile returns the values a blank Freedom Number form resolves to
func DefaultFreedomProfile() domain.FreedomProfile {
	return domain.FreedomProfile{
		MonthlyExpenses:       decimal.NewFromInt(5000),
		CurrentPassiveIncome:  decimal.Zero,
		MonthlySavings:        decimal.Zero,
		ExpectedReturnPercent: decimal.NewFromInt(7),
	}
}

// NormalizeProfile turns string form fields into a FinancialProfile. Blank or
// unparseable fields take their default, negative amounts become zero. It
// never fails; ordering rules are left to FinancialProfile.Validate.
func NormalizeProfile(inputs map[string]string) domain.FinancialProfile {
	d := DefaultProfile()
	return domain.FinancialProfile{
		CurrentAge:            intField(inputs, FieldCurrentAge, d.CurrentAge),
		RetirementAge:         intField(inputs, FieldRetirementAge, d.RetirementAge),
		AnnualSpending:        moneyField(inputs, FieldAnnualSpending, d.AnnualSpending),
		CurrentAssets:         moneyField(inputs, FieldCurrentAssets, d.CurrentAssets),
		MonthlyContributions:  moneyField(inputs, FieldMonthlyContributions, d.MonthlyContributions),
		RetirementIncome:      moneyField(inputs, FieldRetirementIncome, d.RetirementIncome),
		GrowthRatePercent:     decimalField(inputs, FieldGrowthRate, d.GrowthRatePercent),
		InflationRatePercent:  decimalField(inputs, FieldInflationRate, d.InflationRatePercent),
		WithdrawalRatePercent: decimalField(inputs, FieldWithdrawalRate, d.WithdrawalRatePercent),
		InvestmentFeesPercent: decimalField(inputs, FieldInvestmentFees, d.InvestmentFeesPercent),
	}
}

// NormalizeFreedom turns string form fields into a FreedomProfile
func NormalizeFreedom(inputs map[string]string) domain.FreedomProfile {
	d := DefaultFreedomProfile()
	return domain.FreedomProfile{
		MonthlyExpenses:       moneyField(inputs, FieldMonthlyExpenses, d.MonthlyExpenses),
		CurrentPassiveIncome:  moneyField(inputs, FieldCurrentPassiveIncome, d.CurrentPassiveIncome),
		MonthlySavings:        moneyField(inputs, FieldMonthlySavings, d.MonthlySavings),
		ExpectedReturnPercent: decimalField(inputs, FieldExpectedReturn, d.ExpectedReturnPercent),
	}
}

// MoneyInput reads a single amount field, used by the income and tax tools
func MoneyInput(inputs map[string]string, key string, def decimal.Decimal) decimal.Decimal {
	return moneyField(inputs, key, def)
}

// ParseNumber strips currency and percent decoration and parses the rest.
// "$60,000" and " 4.5% " both parse; anything else reports ok=false.
func ParseNumber(raw string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '$', ',', '%', ' ', '\t', '\n', '\r', '_':
			return -1
		}
		return r
	}, raw)
	if cleaned == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}

// lookup finds a field by its snake_case key or the camelCase alias
func lookup(inputs map[string]string, key string) (string, bool) {
	if v, ok := inputs[key]; ok {
		return v, true
	}
	v, ok := inputs[camelCase(key)]
	return v, ok
}

func camelCase(key string) string {
	parts := strings.Split(key, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func decimalField(inputs map[string]string, key string, def decimal.Decimal) decimal.Decimal {
	raw, ok := lookup(inputs, key)
	if !ok {
		return def
	}
	v, ok := ParseNumber(raw)
	if !ok {
		return def
	}
	return v
}

func moneyField(inputs map[string]string, key string, def decimal.Decimal) decimal.Decimal {
	v := decimalField(inputs, key, def)
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

func intField(inputs map[string]string, key string, def int) int {
	raw, ok := lookup(inputs, key)
	if !ok {
		return def
	}
	v, ok := ParseNumber(raw)
	if !ok {
		return def
	}
	// Out-of-range values clamp so Validate still sees them as out of bounds.
	switch {
	case v.GreaterThan(maxIntField):
		return math.MaxInt32
	case v.LessThan(minIntField):
		return math.MinInt32
	}
	return int(v.IntPart())
}
