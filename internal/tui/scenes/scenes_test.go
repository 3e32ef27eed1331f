package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/tui/tuimsg"
)

func typeText(f *Form, s string) *Form {
	for _, r := range s {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return f
}

func TestForm_FocusCycles(t *testing.T) {
	f := NewForm([]FieldDef{{Key: "a"}, {Key: "b"}, {Key: "c"}})
	assert.Equal(t, "a", f.Focused())

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "b", f.Focused())
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "c", f.Focused())
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "a", f.Focused(), "focus wraps forward")
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "c", f.Focused(), "focus wraps backward")
}

func TestForm_ValuesAndReset(t *testing.T) {
	f := NewForm([]FieldDef{{Key: "a"}, {Key: "b"}})
	f = typeText(f, "42")
	f.SetValues(map[string]string{"b": "7", "zzz": "ignored"})

	assert.Equal(t, map[string]string{"a": "42", "b": "7"}, f.Values())

	f.Reset()
	assert.Equal(t, map[string]string{"a": "", "b": ""}, f.Values())
}

func TestCoastModel_CalculateDefaults(t *testing.T) {
	m := NewCoastModel(nil)
	msg := m.Calculate()()

	calculated, ok := msg.(tuimsg.CoastCalculatedMsg)
	require.True(t, ok)
	require.NoError(t, calculated.Err)

	m, _ = m.Update(calculated)
	require.NotNil(t, m.Result())
	assert.Equal(t, config.DefaultProfile().CurrentAge, m.Result().Profile.CurrentAge)
	assert.True(t, m.Result().FireNumber.Equal(decimal.NewFromInt(1500000)))
	assert.Contains(t, m.View(), "Coast FIRE number")
}

func TestCoastModel_TypedValues(t *testing.T) {
	m := NewCoastModel(nil)
	m.form = typeText(m.form, "40")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	require.NoError(t, m.Err())
	assert.Equal(t, 40, m.Result().Profile.CurrentAge)
	assert.Equal(t, 25, m.Result().YearsToRetirement)
}

func TestCoastModel_ValidationErrorKeepsLastResult(t *testing.T) {
	m := NewCoastModel(nil)
	m, _ = m.Update(m.Calculate()())
	previous := m.Result()

	m.form.SetValues(map[string]string{config.FieldRetirementAge: "30"})
	m, _ = m.Update(m.Calculate()())

	require.Error(t, m.Err())
	assert.True(t, domain.IsValidationError(m.Err()))
	assert.Same(t, previous, m.Result())
	assert.Contains(t, m.View(), "retirement age must be greater than current age")
}

func TestCoastModel_ResetClearsForm(t *testing.T) {
	m := NewCoastModel(nil)
	m.form = typeText(m.form, "50")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	assert.Empty(t, m.Form().Values()[config.FieldCurrentAge])
}

func TestProfileValuesRoundTrip(t *testing.T) {
	p := config.DefaultProfile()
	p.CurrentAssets = decimal.NewFromInt(123456)
	got := config.NormalizeProfile(ProfileValues(p))
	assert.Equal(t, p.CurrentAge, got.CurrentAge)
	assert.True(t, p.CurrentAssets.Equal(got.CurrentAssets))
	assert.True(t, p.InvestmentFeesPercent.Equal(got.InvestmentFeesPercent))
}

func TestFreedomModel_Calculate(t *testing.T) {
	m := NewFreedomModel(nil)
	m.form.SetValues(FreedomValues(domain.FreedomProfile{
		MonthlyExpenses:       decimal.NewFromInt(5000),
		CurrentPassiveIncome:  decimal.NewFromInt(2000),
		MonthlySavings:        decimal.NewFromInt(1500),
		ExpectedReturnPercent: decimal.NewFromInt(7),
	}))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())

	require.NoError(t, m.Err())
	r := m.Result()
	require.NotNil(t, r)
	assert.True(t, r.FreedomNumber.GreaterThan(decimal.NewFromInt(5000)))
	assert.Len(t, r.Scenarios, 3)

	view := m.View()
	assert.Contains(t, view, "Freedom Number")
	assert.Contains(t, view, "Progress to freedom")
	assert.Contains(t, view, "120-MO VALUE")
}
