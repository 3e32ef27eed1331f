package transform

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// SetGrowthRate replaces the nominal growth assumption (percent)
type SetGrowthRate struct {
	Percent decimal.Decimal
}

func (sg *SetGrowthRate) Name() string {
	return "set_growth_rate"
}

func (sg *SetGrowthRate) Description() string {
	return fmt.Sprintf("Assume %s%% nominal growth", sg.Percent.String())
}

func (sg *SetGrowthRate) Validate(base domain.FinancialProfile) error {
	if sg.Percent.LessThan(decimal.NewFromInt(-50)) || sg.Percent.GreaterThan(decimal.NewFromInt(50)) {
		return NewTransformError(sg.Name(), "validate", "growth rate must be between -50% and 50%", nil)
	}
	return nil
}

func (sg *SetGrowthRate) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.GrowthRatePercent = sg.Percent
	return base, nil
}

// ModifyInflation adds a delta (percentage points) to the inflation assumption
type ModifyInflation struct {
	DeltaPercent decimal.Decimal
}

func (mi *ModifyInflation) Name() string {
	return "modify_inflation"
}

func (mi *ModifyInflation) Description() string {
	return fmt.Sprintf("Change inflation by %s percentage points", mi.DeltaPercent.String())
}

func (mi *ModifyInflation) Validate(base domain.FinancialProfile) error {
	if mi.DeltaPercent.IsZero() {
		return NewTransformError(mi.Name(), "validate", "delta cannot be zero", nil)
	}
	return nil
}

func (mi *ModifyInflation) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.InflationRatePercent = base.InflationRatePercent.Add(mi.DeltaPercent)
	return base, nil
}

// SetInvestmentFees replaces the annual fee drag (percent)
type SetInvestmentFees struct {
	Percent decimal.Decimal
}

func (sf *SetInvestmentFees) Name() string {
	return "set_fees"
}

func (sf *SetInvestmentFees) Description() string {
	return fmt.Sprintf("Pay %s%% in annual fees", sf.Percent.String())
}

func (sf *SetInvestmentFees) Validate(base domain.FinancialProfile) error {
	if sf.Percent.IsNegative() {
		return NewTransformError(sf.Name(), "validate", "fees cannot be negative", nil)
	}
	return nil
}

func (sf *SetInvestmentFees) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.InvestmentFeesPercent = sf.Percent
	return base, nil
}

// SetWithdrawalRate replaces the safe withdrawal rate (percent)
type SetWithdrawalRate struct {
	Percent decimal.Decimal
}

func (sw *SetWithdrawalRate) Name() string {
	return "set_withdrawal_rate"
}

func (sw *SetWithdrawalRate) Description() string {
	return fmt.Sprintf("Withdraw %s%% per year in retirement", sw.Percent.String())
}

func (sw *SetWithdrawalRate) Validate(base domain.FinancialProfile) error {
	if !sw.Percent.IsPositive() {
		return NewTransformError(sw.Name(), "validate", "withdrawal rate must be positive", nil)
	}
	return nil
}

func (sw *SetWithdrawalRate) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.WithdrawalRatePercent = sw.Percent
	return base, nil
}
