package calculation

import "github.com/shopspring/decimal"

// Logger is the logging surface the calculators write diagnostics to.
// cmd wires a zap-backed implementation; tests use a recording one.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Debugf(string, ...interface{}) {}
func (NopLogger) Infof(string, ...interface{})  {}
func (NopLogger) Warnf(string, ...interface{})  {}
func (NopLogger) Errorf(string, ...interface{}) {}

// workingScale bounds the digits carried by iterative balances. Every
// compounding step rounds to it so results are identical across platforms.
const workingScale = 12

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

func orNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}

// percentToFraction converts 7 (percent) to 0.07
func percentToFraction(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// monthlyRate converts an annual percentage to a per-month fraction
func monthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	return annualPercent.Div(hundred).Div(twelve).Round(workingScale)
}
