package transform

import (
	"sort"
	"strings"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TemplateRegistry manages built-in what-if templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ProfileTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with the common what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "conservative_growth",
		Description: "Assume 4% nominal growth",
		Transforms:  []ProfileTransform{&SetGrowthRate{Percent: decimal.NewFromInt(4)}},
	})
	registry.Register(Template{
		Name:        "aggressive_growth",
		Description: "Assume 10% nominal growth",
		Transforms:  []ProfileTransform{&SetGrowthRate{Percent: decimal.NewFromInt(10)}},
	})
	registry.Register(Template{
		Name:        "retire_later",
		Description: "Retire 5 years later",
		Transforms:  []ProfileTransform{&PostponeRetirement{Years: 5}},
	})
	registry.Register(Template{
		Name:        "retire_earlier",
		Description: "Retire 5 years earlier",
		Transforms:  []ProfileTransform{&PostponeRetirement{Years: -5}},
	})
	registry.Register(Template{
		Name:        "contribute_more",
		Description: "Contribute $500 more per month",
		Transforms:  []ProfileTransform{&AdjustContributions{MonthlyDelta: decimal.NewFromInt(500)}},
	})
	registry.Register(Template{
		Name:        "lower_fees",
		Description: "Move to zero-fee index funds",
		Transforms:  []ProfileTransform{&SetInvestmentFees{Percent: decimal.Zero}},
	})
	registry.Register(Template{
		Name:        "spend_less",
		Description: "Spend 10% less in retirement",
		Transforms:  []ProfileTransform{&ScaleSpending{Factor: decimal.NewFromFloat(0.9)}},
	})
	registry.Register(Template{
		Name:        "higher_inflation",
		Description: "Inflation runs one point hotter",
		Transforms:  []ProfileTransform{&ModifyInflation{DeltaPercent: decimal.NewFromInt(1)}},
	})

	// Combination
	registry.Register(Template{
		Name:        "lean",
		Description: "Spend 10% less and contribute $500 more per month",
		Transforms: []ProfileTransform{
			&ScaleSpending{Factor: decimal.NewFromFloat(0.9)},
			&AdjustContributions{MonthlyDelta: decimal.NewFromInt(500)},
		},
	})

	return registry
}

// ApplyTemplate applies a template to a base profile
func ApplyTemplate(base domain.FinancialProfile, template Template) (domain.FinancialProfile, error) {
	if len(template.Transforms) == 0 {
		return base, nil
	}
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}
