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
	"github.com/rgehrsitz/firecalc/internal/interpret"
	"github.com/rgehrsitz/firecalc/internal/output"
	"github.com/rgehrsitz/firecalc/internal/tui/components"
	"github.com/rgehrsitz/firecalc/internal/tui/tuimsg"
	"github.com/rgehrsitz/firecalc/internal/tui/tuistyles"
)

// FreedomFields lists the Freedom Number form in display order
func FreedomFields() []FieldDef {
	d := config.DefaultFreedomProfile()
	return []FieldDef{
		{config.FieldMonthlyExpenses, "Monthly expenses ($)", d.MonthlyExpenses.String()},
		{config.FieldCurrentPassiveIncome, "Passive income ($/mo)", d.CurrentPassiveIncome.String()},
		{config.FieldMonthlySavings, "Monthly savings ($)", d.MonthlySavings.String()},
		{config.FieldExpectedReturn, "Expected return (%)", d.ExpectedReturnPercent.String()},
	}
}

// FreedomValues renders a freedom profile as form text
func FreedomValues(p domain.FreedomProfile) map[string]string {
	return map[string]string{
		config.FieldMonthlyExpenses:      p.MonthlyExpenses.String(),
		config.FieldCurrentPassiveIncome: p.CurrentPassiveIncome.String(),
		config.FieldMonthlySavings:       p.MonthlySavings.String(),
		config.FieldExpectedReturn:       p.ExpectedReturnPercent.String(),
	}
}

// FreedomModel is the Freedom Number scene
type FreedomModel struct {
	form   *Form
	engine *calculation.Engine
	result *domain.FreedomResult
	err    error
	width  int
	height int
}

// NewFreedomModel creates the scene. A nil engine gets the defaults.
func NewFreedomModel(engine *calculation.Engine) *FreedomModel {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return &FreedomModel{form: NewForm(FreedomFields()), engine: engine}
}

// Form exposes the input form
func (m *FreedomModel) Form() *Form { return m.form }

// Result returns the last successful calculation
func (m *FreedomModel) Result() *domain.FreedomResult { return m.result }

// Err returns the last calculation error
func (m *FreedomModel) Err() error { return m.err }

// SetSize updates the scene dimensions
func (m *FreedomModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Calculate returns a command that runs the current form values
func (m *FreedomModel) Calculate() tea.Cmd {
	values := m.form.Values()
	engine := m.engine
	return func() tea.Msg {
		result, err := engine.CalculateFreedom(config.NormalizeFreedom(values))
		return tuimsg.FreedomCalculatedMsg{Result: result, Err: err}
	}
}

// Update handles messages for the scene
func (m *FreedomModel) Update(msg tea.Msg) (*FreedomModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tuimsg.FreedomCalculatedMsg:
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
func (m *FreedomModel) View() string {
	left := tuistyles.ActiveBorderStyle.Render(
		tuistyles.SectionTitleStyle.Render("Your month") + "\n\n" + m.form.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.renderResult())
}

func (m *FreedomModel) renderResult() string {
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

	sb.WriteString(components.MetricGrid([]*components.MetricCard{
		components.NewMetricCard("Freedom Number", output.FormatCurrency(r.FreedomNumber)+"/mo").
			WithDescription(fmt.Sprintf("tax %s, reinvest %s", output.FormatCurrency(r.Income.TaxAmount), output.FormatCurrency(r.Income.ReinvestmentAmount))),
		components.NewMetricCard("Monthly gap", output.FormatCurrency(r.Gap)).
			WithTrend(r.Gap.IsZero(), r.Band.Label),
		components.NewMetricCard("Target portfolio", output.FormatCompact(r.TargetAmount)),
	}, 3))
	sb.WriteString("\n")
	sb.WriteString(components.NewProgressBar(r.ProgressPercent).WithLabel("Progress to freedom").Render())
	sb.WriteString("\n\n")
	sb.WriteString(renderScenarios(r.Scenarios))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().Width(72).Render(r.Narrative))
	return sb.String()
}

func renderScenarios(scenarios []domain.FreedomScenario) string {
	var sb strings.Builder
	horizon := 0
	if len(scenarios) > 0 {
		horizon = scenarios[0].HorizonMonths
	}
	sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-14s %8s %20s %14s", "SCENARIO", "RETURN", "TIME TO FREEDOM", fmt.Sprintf("%d-MO VALUE", horizon))))
	for _, s := range scenarios {
		timeline := "n/a"
		if s.Timeline != nil {
			if s.Timeline.Achievable {
				timeline = interpret.DescribeDuration(s.Timeline.Years, s.Timeline.RemainingMonths)
			} else {
				timeline = fmt.Sprintf("over %d years", s.Timeline.Years)
			}
		}
		line := fmt.Sprintf("%-14s %8s %20s %14s", s.Name, output.FormatPercentage(s.RatePercent), timeline, output.FormatCompact(s.ValueAtHorizon))
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(tuistyles.PathColor(s.Name)).Render(line))
	}
	return sb.String()
}
