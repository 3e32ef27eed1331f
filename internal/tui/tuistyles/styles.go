package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/firecalc/internal/output"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#5A9BD5")
	ColorAccent    = lipgloss.Color("#F4A261")
	ColorSuccess   = lipgloss.Color("#2A9D8F")
	ColorDanger    = lipgloss.Color("#E76F51")
	ColorInfo      = lipgloss.Color("#8ECAE6")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#7A7A7A")
	ColorBorder     = lipgloss.Color("#444444")

	// One per growth path, in aggressive/moderate/conservative order
	ColorPathAggressive   = lipgloss.Color("#E9C46A")
	ColorPathModerate     = lipgloss.Color("#2A9D8F")
	ColorPathConservative = lipgloss.Color("#5A9BD5")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	StatusKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)

	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	FieldLabelStyle        = lipgloss.NewStyle().Foreground(ColorMuted).Width(24)
	FocusedFieldLabelStyle = FieldLabelStyle.Foreground(ColorAccent).Bold(true)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo).Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	TableCellStyle   = lipgloss.NewStyle().Foreground(ColorForeground)
)

// MetricTrendStyle returns the positive or negative metric style
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the trend direction
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// PathColor maps a growth path name to its chart color
func PathColor(name string) lipgloss.Color {
	switch name {
	case "aggressive":
		return ColorPathAggressive
	case "conservative":
		return ColorPathConservative
	default:
		return ColorPathModerate
	}
}

// FormatCurrency renders whole dollars for cards
func FormatCurrency(amount decimal.Decimal) string {
	return output.FormatCurrency(amount)
}
