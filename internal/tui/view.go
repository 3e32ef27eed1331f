package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/firecalc/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	if m.err != nil {
		content = m.renderError()
	} else {
		switch m.currentScene {
		case SceneCoast:
			content = m.coastModel.View()
		case SceneFreedom:
			content = m.freedomModel.View()
		default:
			content = "Unknown scene"
		}
	}

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		"",
		content,
		m.renderStatusBar(),
	))
}

// renderTitleBar renders the application title and active tab
func (m Model) renderTitleBar() string {
	tabs := make([]string, 0, 2)
	for _, s := range []Scene{SceneCoast, SceneFreedom} {
		style := tuistyles.SubtitleStyle
		if s == m.currentScene {
			style = tuistyles.StatusKeyStyle
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		tuistyles.TitleStyle.Render("firecalc"), "  ", strings.Join(tabs, " | "))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("tab", "next field"),
		formatShortcut("enter", "calculate"),
		formatShortcut("ctrl+r", "reset"),
		formatShortcut("ctrl+t", "switch tool"),
		formatShortcut("esc", "quit"),
	}
	return tuistyles.StatusBarStyle.Width(m.width).Render(strings.Join(shortcuts, " • "))
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

// renderError renders the error view
func (m Model) renderError() string {
	return tuistyles.ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
		tuistyles.SubtitleStyle.Render("Press any key to continue")
}
