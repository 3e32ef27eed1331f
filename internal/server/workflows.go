package server

import (
	"sort"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/config"
	"github.com/shopspring/decimal"
)

// WorkflowFunc runs one calculator over normalized form inputs
type WorkflowFunc func(engine *calculation.Engine, inputs map[string]string) (interface{}, error)

var registry = map[string]WorkflowFunc{
	"early_retirement_calculator": runCoastFire,
	"coast_fire":                  runCoastFire,
	"freedom_number_calculator":   runFreedom,
	"gross_income_solver":         runIncomeSolver,
	"effective_tax_rate":          runTaxEstimate,
}

// Lookup returns the workflow registered under id
func Lookup(id string) (WorkflowFunc, bool) {
	w, ok := registry[id]
	return w, ok
}

// WorkflowIDs returns every registered workflow id, sorted
func WorkflowIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func runCoastFire(engine *calculation.Engine, inputs map[string]string) (interface{}, error) {
	return engine.ProjectCoastFire(config.NormalizeProfile(inputs))
}

func runFreedom(engine *calculation.Engine, inputs map[string]string) (interface{}, error) {
	return engine.CalculateFreedom(config.NormalizeFreedom(inputs))
}

func runIncomeSolver(engine *calculation.Engine, inputs map[string]string) (interface{}, error) {
	net := config.MoneyInput(inputs, config.FieldMonthlyNet, config.DefaultFreedomProfile().MonthlyExpenses)
	return engine.SolveGrossIncome(net)
}

func runTaxEstimate(engine *calculation.Engine, inputs map[string]string) (interface{}, error) {
	gross := config.MoneyInput(inputs, config.FieldAnnualGross, decimal.NewFromInt(100000))
	return engine.EstimateTax(gross), nil
}
