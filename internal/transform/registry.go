package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ProfileTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("postpone_retirement", createPostponeRetirement)
	registry.Register("set_retirement_age", createSetRetirementAge)
	registry.Register("set_growth_rate", createSetGrowthRate)
	registry.Register("modify_inflation", createModifyInflation)
	registry.Register("set_fees", createSetInvestmentFees)
	registry.Register("set_withdrawal_rate", createSetWithdrawalRate)
	registry.Register("adjust_contributions", createAdjustContributions)
	registry.Register("set_contributions", createSetContributions)
	registry.Register("set_spending", createSetSpending)
	registry.Register("scale_spending", createScaleSpending)
	registry.Register("add_retirement_income", createAddRetirementIncome)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ProfileTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the names of all registered transforms in sorted order.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "postpone_retirement:years=3"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ProfileTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// ParseTransformSpecs parses each spec in order
func (r *TransformRegistry) ParseTransformSpecs(specs []string) ([]ProfileTransform, error) {
	transforms := make([]ProfileTransform, 0, len(specs))
	for _, spec := range specs {
		t, err := r.ParseTransformSpec(spec)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func requireInt(params map[string]string, transform, key string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func requireDecimal(params map[string]string, transform, key string) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// Factory functions for each transform

func createPostponeRetirement(params map[string]string) (ProfileTransform, error) {
	years, err := requireInt(params, "postpone_retirement", "years")
	if err != nil {
		return nil, err
	}
	return &PostponeRetirement{Years: years}, nil
}

func createSetRetirementAge(params map[string]string) (ProfileTransform, error) {
	age, err := requireInt(params, "set_retirement_age", "age")
	if err != nil {
		return nil, err
	}
	return &SetRetirementAge{Age: age}, nil
}

func createSetGrowthRate(params map[string]string) (ProfileTransform, error) {
	pct, err := requireDecimal(params, "set_growth_rate", "percent")
	if err != nil {
		return nil, err
	}
	return &SetGrowthRate{Percent: pct}, nil
}

func createModifyInflation(params map[string]string) (ProfileTransform, error) {
	delta, err := requireDecimal(params, "modify_inflation", "delta")
	if err != nil {
		return nil, err
	}
	return &ModifyInflation{DeltaPercent: delta}, nil
}

func createSetInvestmentFees(params map[string]string) (ProfileTransform, error) {
	pct, err := requireDecimal(params, "set_fees", "percent")
	if err != nil {
		return nil, err
	}
	return &SetInvestmentFees{Percent: pct}, nil
}

func createSetWithdrawalRate(params map[string]string) (ProfileTransform, error) {
	pct, err := requireDecimal(params, "set_withdrawal_rate", "percent")
	if err != nil {
		return nil, err
	}
	return &SetWithdrawalRate{Percent: pct}, nil
}

func createAdjustContributions(params map[string]string) (ProfileTransform, error) {
	delta, err := requireDecimal(params, "adjust_contributions", "monthly")
	if err != nil {
		return nil, err
	}
	return &AdjustContributions{MonthlyDelta: delta}, nil
}

func createSetContributions(params map[string]string) (ProfileTransform, error) {
	monthly, err := requireDecimal(params, "set_contributions", "monthly")
	if err != nil {
		return nil, err
	}
	return &SetContributions{Monthly: monthly}, nil
}

func createSetSpending(params map[string]string) (ProfileTransform, error) {
	annual, err := requireDecimal(params, "set_spending", "annual")
	if err != nil {
		return nil, err
	}
	return &SetSpending{Annual: annual}, nil
}

func createScaleSpending(params map[string]string) (ProfileTransform, error) {
	factor, err := requireDecimal(params, "scale_spending", "factor")
	if err != nil {
		return nil, err
	}
	return &ScaleSpending{Factor: factor}, nil
}

func createAddRetirementIncome(params map[string]string) (ProfileTransform, error) {
	annual, err := requireDecimal(params, "add_retirement_income", "annual")
	if err != nil {
		return nil, err
	}
	return &AddRetirementIncome{Annual: annual}, nil
}
