package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan and rules files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON, which is valid YAML) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParsePlan(data)
}

// ParsePlan decodes and validates a plan document. Unknown keys are rejected
// so a misspelled field does not silently fall back to zero.
func (ip *InputParser) ParsePlan(data []byte) (*domain.PlanInput, error) {
	var plan domain.PlanInput
	if err := decodeStrict(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates a loaded plan
func (ip *InputParser) ValidatePlan(plan *domain.PlanInput) error {
	if plan.Profile == nil && plan.Freedom == nil {
		return fmt.Errorf("plan must contain a profile or a freedom section")
	}
	if plan.Profile != nil {
		if err := plan.Profile.Validate(); err != nil {
			return fmt.Errorf("profile validation failed: %w", err)
		}
	}
	if plan.Freedom != nil {
		if err := plan.Freedom.Validate(); err != nil {
			return fmt.Errorf("freedom validation failed: %w", err)
		}
	}
	return nil
}

// LoadRules loads planning rules from a YAML file. Fields the file leaves out
// keep their default values.
func (ip *InputParser) LoadRules(filename string) (domain.PlanningRules, error) {
	return ip.LoadRulesOver(filename, domain.DefaultPlanningRules())
}

// LoadRulesOver loads a rules file on top of base, e.g. a named preset
func (ip *InputParser) LoadRulesOver(filename string, base domain.PlanningRules) (domain.PlanningRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.PlanningRules{}, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}
	return ip.ParseRulesOver(data, base)
}

// ParseRules decodes a rules document over DefaultPlanningRules, so omitted
// keys keep their default and an explicit 0 stays 0, then validates it.
func (ip *InputParser) ParseRules(data []byte) (domain.PlanningRules, error) {
	return ip.ParseRulesOver(data, domain.DefaultPlanningRules())
}

// ParseRulesOver is ParseRules with a caller-supplied starting point
func (ip *InputParser) ParseRulesOver(data []byte, base domain.PlanningRules) (domain.PlanningRules, error) {
	rules := base
	if err := decodeStrict(data, &rules); err != nil {
		return domain.PlanningRules{}, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	rules = rules.WithDefaults()
	if err := rules.Validate(); err != nil {
		return domain.PlanningRules{}, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

// RulesPreset returns the named built-in rules. "" and "default" are the
// standard rules; "service-pricing" reserves 15% of gross for reinvestment.
func RulesPreset(name string) (domain.PlanningRules, error) {
	switch name {
	case "", "default":
		return domain.DefaultPlanningRules(), nil
	case "service-pricing":
		return domain.ServicePricingRules(), nil
	}
	return domain.PlanningRules{}, fmt.Errorf("unknown rules preset %q (available: default, service-pricing)", name)
}

// SavePlan writes a plan back out as YAML
func SavePlan(plan *domain.PlanInput, filename string) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

func decodeStrict(data []byte, out interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("document is empty")
		}
		return err
	}
	return nil
}
