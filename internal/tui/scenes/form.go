package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/firecalc/internal/tui/tuistyles"
)

// FieldDef describes one form input
type FieldDef struct {
	Key         string
	Label       string
	Placeholder string
}

type field struct {
	def   FieldDef
	input textinput.Model
}

// Form is a vertical list of text inputs with a single focused field
type Form struct {
	fields []field
	focus  int
}

var (
	nextField = key.NewBinding(key.WithKeys("tab", "down"))
	prevField = key.NewBinding(key.WithKeys("shift+tab", "up"))
)

// NewForm creates a form with the first field focused
func NewForm(defs []FieldDef) *Form {
	f := &Form{fields: make([]field, len(defs))}
	for i, def := range defs {
		ti := textinput.New()
		ti.Placeholder = def.Placeholder
		ti.CharLimit = 16
		ti.Width = 16
		f.fields[i] = field{def: def, input: ti}
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// Values returns the raw text of every field keyed by FieldDef.Key
func (f *Form) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		values[fl.def.Key] = strings.TrimSpace(fl.input.Value())
	}
	return values
}

// SetValues fills fields by key. Unknown keys are ignored.
func (f *Form) SetValues(values map[string]string) {
	for i := range f.fields {
		if v, ok := values[f.fields[i].def.Key]; ok {
			f.fields[i].input.SetValue(v)
		}
	}
}

// Reset clears every field so placeholders (the defaults) apply again
func (f *Form) Reset() {
	for i := range f.fields {
		f.fields[i].input.SetValue("")
	}
}

// Focused returns the key of the focused field
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].def.Key
}

// Focus moves the cursor to a field; used when a scene becomes active
func (f *Form) Focus() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.fields[f.focus].input.Focus()
}

// Blur removes the cursor from every field
func (f *Form) Blur() {
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
}

// Update moves focus on tab/arrows and forwards everything else to the focused input
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, nextField):
			return f, f.move(1)
		case key.Matches(km, prevField):
			return f, f.move(-1)
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f *Form) move(delta int) tea.Cmd {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	return f.fields[f.focus].input.Focus()
}

// View renders label/input rows
func (f *Form) View() string {
	var sb strings.Builder
	for i, fl := range f.fields {
		label := tuistyles.FieldLabelStyle
		if i == f.focus {
			label = tuistyles.FocusedFieldLabelStyle
		}
		sb.WriteString(label.Render(fl.def.Label))
		sb.WriteString(fl.input.View())
		if i < len(f.fields)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
