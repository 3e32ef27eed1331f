package tui

import "github.com/rgehrsitz/firecalc/internal/domain"

// Scene represents the screens of the TUI
type Scene int

const (
	SceneCoast Scene = iota
	SceneFreedom
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// PlanLoadedMsg prefills the forms from a plan file
type PlanLoadedMsg struct {
	Plan *domain.PlanInput
}
