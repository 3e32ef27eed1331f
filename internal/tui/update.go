package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/firecalc/internal/tui/scenes"
	"github.com/rgehrsitz/firecalc/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.coastModel.SetSize(msg.Width, msg.Height)
		m.freedomModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		return m.navigate(msg.Scene)

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case PlanLoadedMsg:
		m.err = nil
		if msg.Plan.Profile != nil {
			m.coastModel.Form().SetValues(scenes.ProfileValues(*msg.Plan.Profile))
		}
		if msg.Plan.Freedom != nil {
			m.freedomModel.Form().SetValues(scenes.FreedomValues(*msg.Plan.Freedom))
			if msg.Plan.Profile == nil {
				m.currentScene = SceneFreedom
			}
		}
		return m, tea.Batch(m.coastModel.Calculate(), m.freedomModel.Calculate())

	// Results are routed to their scene whichever one is showing
	case tuimsg.CoastCalculatedMsg:
		var cmd tea.Cmd
		m.coastModel, cmd = m.coastModel.Update(msg)
		return m, cmd

	case tuimsg.FreedomCalculatedMsg:
		var cmd tea.Cmd
		m.freedomModel, cmd = m.freedomModel.Update(msg)
		return m, cmd
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes global shortcuts. Letters go to the focused input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+t":
		if m.currentScene == SceneCoast {
			return m.navigate(SceneFreedom)
		}
		return m.navigate(SceneCoast)
	}

	if m.err != nil {
		// Any key dismisses a load error
		m.err = nil
		return m, nil
	}
	return m.updateCurrentScene(msg)
}

func (m Model) navigate(scene Scene) (tea.Model, tea.Cmd) {
	m.currentScene = scene
	if scene == SceneCoast {
		m.freedomModel.Form().Blur()
		return m, m.coastModel.Form().Focus()
	}
	m.coastModel.Form().Blur()
	return m, m.freedomModel.Form().Focus()
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneCoast:
		m.coastModel, cmd = m.coastModel.Update(msg)
	case SceneFreedom:
		m.freedomModel, cmd = m.freedomModel.Update(msg)
	}
	return m, cmd
}
