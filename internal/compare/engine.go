package compare

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/firecalc/internal/calculation"
	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/transform"
)

// DefaultTemplates are compared when the caller names none
var DefaultTemplates = []string{"conservative_growth", "aggressive_growth"}

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
	TransformRegistry *transform.TransformRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
		TransformRegistry: transform.NewTransformRegistry(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Label for the unmodified profile
	Templates        []string // List of template names to apply
	WhatIfs          []string // Ad-hoc transform specs ("name:k=v"), combined into one scenario
}

// NamedProfile pairs a profile with a display name
type NamedProfile struct {
	Name    string
	Profile domain.FinancialProfile
}

// Compare projects the base profile and one alternative per template
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base domain.FinancialProfile,
	options CompareOptions,
) (*ComparisonSet, error) {
	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = "base"
	}
	templates := options.Templates
	if len(templates) == 0 && len(options.WhatIfs) == 0 {
		templates = DefaultTemplates
	}

	alternatives := make([]NamedProfile, 0, len(templates)+1)
	descriptions := make(map[string]string, len(templates)+1)
	for _, templateName := range templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found", templateName)
		}

		modified, err := transform.ApplyTemplate(base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}
		alternatives = append(alternatives, NamedProfile{Name: template.Name, Profile: modified})
		descriptions[template.Name] = template.Description
	}

	if len(options.WhatIfs) > 0 {
		transforms, err := ce.TransformRegistry.ParseTransformSpecs(options.WhatIfs)
		if err != nil {
			return nil, err
		}
		modified, err := transform.ApplyTransforms(base, transforms)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(transforms))
		for i, t := range transforms {
			parts[i] = t.Description()
		}
		alternatives = append(alternatives, NamedProfile{Name: "what_if", Profile: modified})
		descriptions["what_if"] = strings.Join(parts, "; ")
	}

	compSet, err := ce.CompareProfiles(ctx, NamedProfile{Name: baseName, Profile: base}, alternatives)
	if err != nil {
		return nil, err
	}
	for i := range compSet.AlternativeResults {
		compSet.AlternativeResults[i].Description = descriptions[compSet.AlternativeResults[i].ScenarioName]
	}
	return compSet, nil
}

// CompareProfiles compares explicit profiles (not using templates)
func (ce *CompareEngine) CompareProfiles(
	ctx context.Context,
	base NamedProfile,
	alternatives []NamedProfile,
) (*ComparisonSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	baseProjection, err := ce.CalcEngine.ProjectCoastFire(base.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	baseResult := ce.MetricsCalculator.CalculateMetrics(base.Name, baseProjection)
	baseResult.Description = "Profile as entered"

	results := make([]ComparisonResult, 0, len(alternatives))
	for _, alt := range alternatives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		projection, err := ce.CalcEngine.ProjectCoastFire(alt.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", alt.Name, err)
		}
		altResult := ce.MetricsCalculator.CalculateMetrics(alt.Name, projection)
		results = append(results, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	ce.CalcEngine.Logger.Debugf("compared %s against %d alternatives", base.Name, len(results))
	return compSet, nil
}
