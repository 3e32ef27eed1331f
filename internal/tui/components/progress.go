package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/firecalc/internal/tui/tuistyles"
)

// ProgressBar draws a percentage, such as progress toward the Freedom Number
type ProgressBar struct {
	Percent decimal.Decimal
	Width   int
	Label   string
}

// NewProgressBar creates a bar for a 0-100 percentage. Values outside the
// range are clamped when drawn.
func NewProgressBar(percent decimal.Decimal) *ProgressBar {
	return &ProgressBar{Percent: percent, Width: 40}
}

// WithLabel sets the text above the bar
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width in cells
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Filled returns how many of Width cells are drawn solid
func (p *ProgressBar) Filled() int {
	pct := decimal.Min(decimal.NewFromInt(100), decimal.Max(decimal.Zero, p.Percent))
	return int(pct.Mul(decimal.NewFromInt(int64(p.Width))).Div(decimal.NewFromInt(100)).IntPart())
}

// Render returns the styled bar
func (p *ProgressBar) Render() string {
	var sb strings.Builder
	if p.Label != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground).Render(p.Label))
		sb.WriteString("\n")
	}

	filled := p.Filled()
	sb.WriteString("[")
	sb.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess).Render(strings.Repeat("█", filled)))
	sb.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorBorder).Render(strings.Repeat("░", p.Width-filled)))
	sb.WriteString("] ")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(p.Percent.StringFixed(1) + "%"))
	return sb.String()
}
