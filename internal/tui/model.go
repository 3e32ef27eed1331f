package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/rgehrsitz/firecalc/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	width  int
	height int

	planPath string

	coastModel   *scenes.CoastModel
	freedomModel *scenes.FreedomModel

	err error
}

// NewModel creates the application model. planPath may be empty; when set
// the plan is loaded on Init and prefills both forms.
func NewModel(engine *calculation.Engine, planPath string) Model {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	return Model{
		currentScene: SceneCoast,
		planPath:     planPath,
		coastModel:   scenes.NewCoastModel(engine),
		freedomModel: scenes.NewFreedomModel(engine),
		width:        80,
		height:       24,
	}
}

// Init loads the plan if one was given, otherwise calculates the defaults
func (m Model) Init() tea.Cmd {
	if m.planPath != "" {
		return loadPlanCmd(m.planPath)
	}
	return tea.Batch(m.coastModel.Calculate(), m.freedomModel.Calculate())
}

// loadPlanCmd returns a command that loads a plan file
func loadPlanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		plan, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return PlanLoadedMsg{Plan: plan}
	}
}

// CurrentScene returns the active scene
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

func (s Scene) String() string {
	switch s {
	case SceneCoast:
		return "Coast FIRE"
	case SceneFreedom:
		return "Freedom Number"
	default:
		return "Unknown"
	}
}
