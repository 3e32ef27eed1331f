package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket is one step of a progressive schedule. A nil UpperLimit marks
// the terminal bracket, which has no ceiling.
type TaxBracket struct {
	UpperLimit *decimal.Decimal `yaml:"upper_limit,omitempty" json:"upperLimit,omitempty"`
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
}

// Unbounded reports whether this is the terminal bracket
func (b TaxBracket) Unbounded() bool {
	return b.UpperLimit == nil
}

// TaxTable is a versioned, immutable tax schedule plus the flat surcharges
// used by the effective-rate estimate.
type TaxTable struct {
	Year                 int             `yaml:"year" json:"year"`
	Name                 string          `yaml:"name" json:"name"`
	Brackets             []TaxBracket    `yaml:"brackets" json:"brackets"`
	SSWageBase           decimal.Decimal `yaml:"ss_wage_base" json:"ssWageBase"`
	SelfEmploymentRate   decimal.Decimal `yaml:"self_employment_rate" json:"selfEmploymentRate"`
	SelfEmploymentFactor decimal.Decimal `yaml:"self_employment_factor" json:"selfEmploymentFactor"` // share of net earnings subject to SE tax
	StateRate            decimal.Decimal `yaml:"state_rate" json:"stateRate"`
}

func limit(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// TaxTable2024Single returns the 2024 U.S. federal single-filer schedule with
// the self-employment and flat state surcharges the planner applies.
func TaxTable2024Single() TaxTable {
	return TaxTable{
		Year: 2024,
		Name: "us-federal-2024-single",
		Brackets: []TaxBracket{
			{UpperLimit: limit(11600), Rate: decimal.RequireFromString("0.10")},
			{UpperLimit: limit(47150), Rate: decimal.RequireFromString("0.12")},
			{UpperLimit: limit(100525), Rate: decimal.RequireFromString("0.22")},
			{UpperLimit: limit(191950), Rate: decimal.RequireFromString("0.24")},
			{UpperLimit: limit(243725), Rate: decimal.RequireFromString("0.32")},
			{UpperLimit: limit(609350), Rate: decimal.RequireFromString("0.35")},
			{Rate: decimal.RequireFromString("0.37")},
		},
		SSWageBase:           decimal.NewFromInt(168600),
		SelfEmploymentRate:   decimal.RequireFromString("0.153"),
		SelfEmploymentFactor: decimal.RequireFromString("0.9235"),
		StateRate:            decimal.RequireFromString("0.05"),
	}
}

// Validate checks bracket ordering and rate ranges
func (t TaxTable) Validate() error {
	if len(t.Brackets) == 0 {
		return fmt.Errorf("tax table %q has no brackets", t.Name)
	}
	prev := decimal.Zero
	for i, b := range t.Brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate must be in [0, 1)", i)
		}
		last := i == len(t.Brackets)-1
		if b.Unbounded() {
			if !last {
				return fmt.Errorf("bracket %d: only the last bracket may omit upper_limit", i)
			}
			continue
		}
		if last {
			return fmt.Errorf("bracket %d: last bracket must omit upper_limit", i)
		}
		if b.UpperLimit.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket %d: upper_limit must be strictly increasing", i)
		}
		prev = *b.UpperLimit
	}
	if t.SSWageBase.IsNegative() {
		return fmt.Errorf("ss_wage_base cannot be negative")
	}
	if t.SelfEmploymentRate.IsNegative() || t.SelfEmploymentFactor.IsNegative() || t.StateRate.IsNegative() {
		return fmt.Errorf("surcharge rates cannot be negative")
	}
	return nil
}

// TaxBreakdown itemizes the effective-rate estimate for one gross income
type TaxBreakdown struct {
	GrossIncome       decimal.Decimal `json:"grossIncome"`
	IncomeTax         decimal.Decimal `json:"incomeTax"`
	SelfEmploymentTax decimal.Decimal `json:"selfEmploymentTax"`
	StateTax          decimal.Decimal `json:"stateTax"`
	TotalTax          decimal.Decimal `json:"totalTax"`
	EffectiveRate     decimal.Decimal `json:"effectiveRate"`
}
