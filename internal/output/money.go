package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer  = message.NewPrinter(language.English)
	million  = decimal.NewFromInt(1000000)
	thousand = decimal.NewFromInt(1000)
)

// FormatCurrency formats whole currency units with thousands separators: $1,234,567
func FormatCurrency(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

// FormatCurrencyCents formats an amount with cents: $1,234.56
func FormatCurrencyCents(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	amount = amount.Round(2)
	whole := amount.Truncate(0)
	cents := amount.Sub(whole).Mul(decimal.NewFromInt(100)).IntPart()
	return printer.Sprintf("%s$%d.%02d", sign, whole.IntPart(), cents)
}

// FormatCompact abbreviates large amounts for cards and summaries:
// $1.50M, $292K, $950
func FormatCompact(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + FormatCompact(amount.Neg())
	}
	// Pick the band from the rounded figure so 999,999 reads $1.00M, not $1000K.
	thousands := amount.Div(thousand).Round(0)
	switch {
	case thousands.GreaterThanOrEqual(thousand):
		return "$" + amount.Div(million).StringFixed(2) + "M"
	case amount.Round(0).GreaterThanOrEqual(thousand):
		return "$" + thousands.String() + "K"
	default:
		return FormatCurrency(amount)
	}
}

// FormatPercentage formats a value that is already a percentage: 7.00%
func FormatPercentage(percent decimal.Decimal) string {
	return percent.StringFixed(2) + "%"
}

// FormatRate formats a fraction as a percentage: 0.3672 -> 36.72%
func FormatRate(fraction decimal.Decimal) string {
	return FormatPercentage(fraction.Mul(decimal.NewFromInt(100)))
}
