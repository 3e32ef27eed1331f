package transform

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
)

// PostponeRetirement shifts the retirement age by a number of years.
// Negative values retire earlier.
type PostponeRetirement struct {
	Years int
}

func (pt *PostponeRetirement) Name() string {
	return "postpone_retirement"
}

func (pt *PostponeRetirement) Description() string {
	if pt.Years < 0 {
		return fmt.Sprintf("Retire %d years earlier", -pt.Years)
	}
	return fmt.Sprintf("Postpone retirement by %d years", pt.Years)
}

func (pt *PostponeRetirement) Validate(base domain.FinancialProfile) error {
	if pt.Years == 0 {
		return NewTransformError(pt.Name(), "validate", "years cannot be zero", nil)
	}
	target := base.RetirementAge + pt.Years
	if target <= base.CurrentAge || target >= domain.MaxAge {
		return NewTransformError(pt.Name(), "validate",
			fmt.Sprintf("retirement age %d must be between current age %d and %d", target, base.CurrentAge, domain.MaxAge), nil)
	}
	return nil
}

func (pt *PostponeRetirement) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.RetirementAge += pt.Years
	return base, nil
}

// SetRetirementAge replaces the retirement age outright
type SetRetirementAge struct {
	Age int
}

func (sr *SetRetirementAge) Name() string {
	return "set_retirement_age"
}

func (sr *SetRetirementAge) Description() string {
	return fmt.Sprintf("Retire at age %d", sr.Age)
}

func (sr *SetRetirementAge) Validate(base domain.FinancialProfile) error {
	if sr.Age <= base.CurrentAge || sr.Age >= domain.MaxAge {
		return NewTransformError(sr.Name(), "validate",
			fmt.Sprintf("retirement age %d must be between current age %d and %d", sr.Age, base.CurrentAge, domain.MaxAge), nil)
	}
	return nil
}

func (sr *SetRetirementAge) Apply(base domain.FinancialProfile) (domain.FinancialProfile, error) {
	base.RetirementAge = sr.Age
	return base, nil
}
