package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/tui"
)

func main() {
	// Optional plan file prefills the forms
	planPath := ""
	if len(os.Args) > 1 {
		planPath = os.Args[1]
		if _, err := os.Stat(planPath); os.IsNotExist(err) {
			fmt.Printf("Error: plan file not found: %s\n", planPath)
			os.Exit(1)
		}
	}

	model := tui.NewModel(calculation.NewEngine(), planPath)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
