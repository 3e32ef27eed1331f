package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeSolution is the gross monthly income needed to keep a given net
// amount after tax and reinvestment. Amounts are monthly, rounded to whole
// currency units; TaxRate is the effective rate at the solved gross.
type IncomeSolution struct {
	NetMonthly         decimal.Decimal `json:"netMonthly"`
	GrossMonthly       decimal.Decimal `json:"grossMonthly"`
	TaxRate            decimal.Decimal `json:"taxRate"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	ReinvestmentAmount decimal.Decimal `json:"reinvestmentAmount"`

	Iterations      int    `json:"iterations"`
	Converged       bool   `json:"converged"`
	ConvergenceInfo string `json:"convergenceInfo"`
}

// TimeToFreedom is the month count for savings to reach the freedom target
type TimeToFreedom struct {
	Months          int  `json:"months"`
	Years           int  `json:"years"`
	RemainingMonths int  `json:"remainingMonths"`
	Achievable      bool `json:"achievable"`
}

// FreedomScenario is one rate assumption of the three-way comparison
type FreedomScenario struct {
	Name           string          `json:"name"`
	RatePercent    decimal.Decimal `json:"ratePercent"`
	Timeline       *TimeToFreedom  `json:"timeline"` // nil when no timeline is defined
	ValueAtHorizon decimal.Decimal `json:"valueAtHorizon"`
	HorizonMonths  int             `json:"horizonMonths"`
}

// Band is a presentational progress bucket
type Band struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	MinPercent  int    `json:"minPercent"`
}

// FreedomResult is the output of the Freedom Number tool
type FreedomResult struct {
	Profile         FreedomProfile    `json:"profile"`
	Income          IncomeSolution    `json:"income"`
	FreedomNumber   decimal.Decimal   `json:"freedomNumber"` // gross monthly income needed
	ProgressPercent decimal.Decimal   `json:"progressPercent"`
	Gap             decimal.Decimal   `json:"gap"` // monthly
	TargetAmount    decimal.Decimal   `json:"targetAmount"`
	Scenarios       []FreedomScenario `json:"scenarios"`
	Band            Band              `json:"band"`
	Narrative       string            `json:"narrative"`
}

// Scenario returns the named scenario, if present
func (r *FreedomResult) Scenario(name string) (FreedomScenario, bool) {
	for _, s := range r.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return FreedomScenario{}, false
}
