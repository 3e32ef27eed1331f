package tuimsg

import (
	"github.com/rgehrsitz/firecalc/internal/domain"
)

// CoastCalculatedMsg carries a finished Coast-FIRE projection
type CoastCalculatedMsg struct {
	Result *domain.ProjectionResult
	Err    error
}

// FreedomCalculatedMsg carries a finished Freedom Number calculation
type FreedomCalculatedMsg struct {
	Result *domain.FreedomResult
	Err    error
}
