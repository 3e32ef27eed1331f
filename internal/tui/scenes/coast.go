package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/output"
	"github.com/rgehrsitz/firecalc/internal/tui/components"
	"github.com/rgehrsitz/firecalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/firecalc/internal/tui/tuistyles"
)

var (
	calculateKey = key.NewBinding(key.WithKeys("enter"))
	resetKey     = key.NewBinding(key.WithKeys("ctrl+r"))
)

// CoastFields lists the Coast-FIRE form in display order
func CoastFields() []FieldDef {
	d := config.DefaultProfile()
	return []FieldDef{
		{config.FieldCurrentAge, "Current age", fmt.Sprint(d.CurrentAge)},
		{config.FieldRetirementAge, "Retirement age", fmt.Sprint(d.RetirementAge)},
		{config.FieldAnnualSpending, "Annual spending ($)", d.AnnualSpending.String()},
		{config.FieldCurrentAssets, "Current assets ($)", d.CurrentAssets.String()},
		{config.FieldMonthlyContributions, "Monthly contributions ($)", d.MonthlyContributions.String()},
		{config.FieldRetirementIncome, "Retirement income ($/yr)", d.RetirementIncome.String()},
		{config.FieldGrowthRate, "Growth rate (%)", d.GrowthRatePercent.String()},
		{config.FieldInflationRate, "Inflation (%)", d.InflationRatePercent.String()},
		{config.FieldWithdrawalRate, "Withdrawal rate (%)", d.WithdrawalRatePercent.String()},
		{config.FieldInvestmentFees, "Investment fees (%)", d.InvestmentFeesPercent.String()},
	}
}

// ProfileValues renders a profile as form text
func ProfileValues(p domain.FinancialProfile) map[string]string {
	return map[string]string{
		config.FieldCurrentAge:           fmt.Sprint(p.CurrentAge),
		config.FieldRetirementAge:        fmt.Sprint(p.RetirementAge),
		config.FieldAnnualSpending:       p.AnnualSpending.String(),
		config.FieldCurrentAssets:        p.CurrentAssets.String(),
		config.FieldMonthlyContributions: p.MonthlyContributions.String(),
		config.FieldRetirementIncome:     p.RetirementIncome.String(),
		config.FieldGrowthRate:           p.GrowthRatePercent.String(),
		config.FieldInflationRate:        p.InflationRatePercent.String(),
		config.FieldWithdrawalRate:       p.WithdrawalRatePercent.String(),
		config.FieldInvestmentFees:       p.InvestmentFeesPercent.String(),
	}
}

// CoastModel is the Coast-FIRE calculator scene: a form on the left and the
// latest projection on the right.
type CoastModel struct {
	form   *Form
	engine *calculation.Engine
	result *domain.ProjectionResult
	err    error
	width  int
	height int
}

// NewCoastModel creates the scene. A nil engine gets the defaults.
func NewCoastModel(engine *calculation.Engine) *CoastModel {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &CoastModel{form: NewForm(CoastFields()), engine: engine}
}

// Form exposes the input form
func (m *CoastModel) Form() *Form { return m.form }

// Result returns the last successful projection
func (m *CoastModel) Result() *domain.ProjectionResult { return m.result }

// Err returns the last calculation error
func (m *CoastModel) Err() error { return m.err }

// SetSize updates the scene dimensions
func (m *CoastModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Calculate returns a command that projects the current form values
func (m *CoastModel) Calculate() tea.Cmd {
	values := m.form.Values()
	engine := m.engine
	return func() tea.Msg {
		result, err := engine.ProjectCoastFire(config.NormalizeProfile(values))
		return tuimsg.CoastCalculatedMsg{Result: result, Err: err}
	}
}

// Update handles messages for the scene
func (m *CoastModel) Update(msg tea.Msg) (*CoastModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tuimsg.CoastCalculatedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.result = msg.Result
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, calculateKey):
			return m, m.Calculate()
		case key.Matches(msg, resetKey):
			m.form.Reset()
			return m, m.Calculate()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// View renders the scene
func (m *CoastModel) View() string {
	left := tuistyles.ActiveBorderStyle.Render(
		tuistyles.SectionTitleStyle.Render("Your numbers") + "\n\n" + m.form.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.renderResult())
}

func (m *CoastModel) renderResult() string {
	var sb strings.Builder
	if m.err != nil {
		sb.WriteString(tuistyles.ErrorStyle.Render(m.err.Error()))
		sb.WriteString("\n\n")
	}
	r := m.result
	if r == nil {
		sb.WriteString(tuistyles.InfoStyle.Render("Press enter to calculate"))
		return sb.String()
	}

	coast := components.NewMetricCard("Coast FIRE number", output.FormatCurrency(r.CoastFireNumber))
	if r.AlreadyCoasting {
		coast.WithTrend(true, "already coasting")
	} else {
		coast.WithTrend(false, output.FormatCompact(r.Gap)+" to go")
	}

	timeline := "not reachable"
	switch {
	case r.AlreadyCoasting:
		timeline = "now"
	case r.Timeline.Achievable:
		timeline = fmt.Sprintf("%d years (age %d)", r.Timeline.Years, r.Timeline.Age)
	}

	surplus := components.NewMetricCard("Annual surplus", output.FormatCurrency(r.Surplus)).
		WithTrend(!r.Surplus.IsNegative(), output.FormatCompact(r.AvailableWithdrawal)+"/yr available")

	sb.WriteString(components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("FIRE number", output.FormatCurrency(r.FireNumber)),
		coast,
		components.NewMetricCard("Projected at retirement", output.FormatCurrency(r.CurrentAssetsProjected)).
			WithDescription(fmt.Sprintf("real return %s", output.FormatRate(r.RealReturnRate))),
		components.NewMetricCard("Time to coast", timeline),
		surplus,
	}, 3))
	sb.WriteString("\n")
	sb.WriteString(renderPaths(r.Paths))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().Width(72).Render(r.Summary))
	return sb.String()
}

func renderPaths(paths domain.GrowthPaths) string {
	var sb strings.Builder
	sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-14s %8s %14s   %s", "PATH", "RATE", "AT RETIREMENT", "MILESTONES")))
	for _, p := range paths.All() {
		var reached []string
		for _, ms := range p.Milestones {
			if ms.Reached && ms.Label != "Retirement" {
				reached = append(reached, fmt.Sprintf("%d%%@%d", ms.Percent, ms.Age))
			}
		}
		line := fmt.Sprintf("%-14s %8s %14s   %s",
			p.Name, output.FormatPercentage(p.NominalRatePercent), output.FormatCompact(p.ProjectedAssets), strings.Join(reached, " "))
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(tuistyles.PathColor(p.Name)).Render(line))
	}
	return sb.String()
}
