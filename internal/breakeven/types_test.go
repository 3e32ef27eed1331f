package breakeven

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultConstraints(t *testing.T) {
	c := DefaultConstraints(baseProfile())

	if c.MinContribution == nil || !c.MinContribution.IsZero() {
		t.Errorf("Expected MinContribution 0, got %v", c.MinContribution)
	}
	if c.MaxContribution == nil || !c.MaxContribution.Equal(decimal.NewFromInt(20000)) {
		t.Errorf("Expected MaxContribution 20000, got %v", c.MaxContribution)
	}
	if c.MinRetirementAge == nil || *c.MinRetirementAge != 31 {
		t.Errorf("Expected MinRetirementAge 31, got %v", c.MinRetirementAge)
	}
	if c.MaxRetirementAge == nil || *c.MaxRetirementAge != 99 {
		t.Errorf("Expected MaxRetirementAge 99, got %v", c.MaxRetirementAge)
	}
	if c.MaxSpending == nil || !c.MaxSpending.Equal(decimal.NewFromInt(180000)) {
		t.Errorf("Expected MaxSpending 180000, got %v", c.MaxSpending)
	}
}

func TestConstraints_Validate(t *testing.T) {
	lowAge, highAge := 70, 60
	tooOld := 100
	minC, maxC := decimal.NewFromInt(500), decimal.NewFromInt(100)
	negative := decimal.NewFromInt(-1)
	minS, maxS := decimal.NewFromInt(90000), decimal.NewFromInt(10000)

	tests := []struct {
		name        string
		constraints Constraints
		goal        OptimizationGoal
	}{
		{"contribution range inverted", Constraints{MinContribution: &minC, MaxContribution: &maxC}, GoalFundRetirement},
		{"negative contribution", Constraints{MinContribution: &negative}, GoalFundRetirement},
		{"age range inverted", Constraints{MinRetirementAge: &lowAge, MaxRetirementAge: &highAge}, GoalFundRetirement},
		{"age too high", Constraints{MaxRetirementAge: &tooOld}, GoalFundRetirement},
		{"spending range inverted", Constraints{MinSpending: &minS, MaxSpending: &maxS}, GoalFundRetirement},
		{"coast goal without age", Constraints{}, GoalCoastByAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constraints.Validate(tt.goal)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if _, ok := err.(*BreakEvenError); !ok {
				t.Errorf("Expected BreakEvenError, got %T", err)
			}
		})
	}

	defaults := DefaultConstraints(baseProfile())
	if err := defaults.Validate(GoalFundRetirement); err != nil {
		t.Errorf("Expected default constraints to be valid, got %v", err)
	}
}

func TestParseTarget(t *testing.T) {
	tests := map[string]OptimizationTarget{
		"contributions":  OptimizeContributions,
		"retirement_age": OptimizeRetirementAge,
		"age":            OptimizeRetirementAge,
		"spending":       OptimizeSpending,
		"all":            OptimizeAll,
	}
	for in, want := range tests {
		got, ok := ParseTarget(in)
		if !ok || got != want {
			t.Errorf("ParseTarget(%q) = %q, %v; expected %q", in, got, ok, want)
		}
	}
	if _, ok := ParseTarget("tsp_rate"); ok {
		t.Error("Expected unknown target to be rejected")
	}
}

func TestBreakEvenError(t *testing.T) {
	err := &BreakEvenError{Operation: "optimize", Message: "bad"}
	if err.Error() != "optimize: bad" {
		t.Errorf("Unexpected error text %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("Expected nil cause")
	}
}
