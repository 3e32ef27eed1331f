package transform

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
)

// ProfileTransform defines the interface for all profile transformations.
// Transforms are composable what-if edits used by scenario comparison and the
// CLI's --what-if flag.
type ProfileTransform interface {
	// Apply returns a modified copy of base. The input is never mutated.
	Apply(base domain.FinancialProfile) (domain.FinancialProfile, error)

	// Name returns a short identifier for this transform (e.g., "postpone_retirement").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform parameters are valid without applying it.
	Validate(base domain.FinancialProfile) error
}

// ApplyTransforms applies a sequence of transforms to a base profile, each
// receiving the output of the previous one. The result is validated as a
// whole so a chain cannot produce an impossible profile.
func ApplyTransforms(base domain.FinancialProfile, transforms []ProfileTransform) (domain.FinancialProfile, error) {
	current := base
	for i, transform := range transforms {
		if transform == nil {
			return base, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return base, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return base, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
		current = next
	}

	if err := current.Validate(); err != nil {
		return base, fmt.Errorf("transformed profile is invalid: %w", err)
	}
	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
