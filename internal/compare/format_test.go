package compare

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func sampleComparisonSet() *ComparisonSet {
	return &ComparisonSet{
		BaseScenarioName: "Base Scenario",
		ConfigPath:       "/path/to/plan.yaml",
		BaseResult: &ComparisonResult{
			ScenarioName:    "Base Scenario",
			FireNumber:      decimal.NewFromInt(1500000),
			CoastFireNumber: decimal.NewFromInt(450000),
			ProjectedAssets: decimal.NewFromInt(1200000),
			Surplus:         decimal.NewFromInt(-12000),
			YearsToCoast:    17,
			CoastAchievable: true,
		},
		AlternativeResults: []ComparisonResult{
			{
				ScenarioName:          "aggressive_growth",
				Description:           "Assume 10% nominal growth",
				FireNumber:            decimal.NewFromInt(1500000),
				CoastFireNumber:       decimal.NewFromInt(165000),
				ProjectedAssets:       decimal.NewFromInt(2500000),
				Surplus:               decimal.NewFromInt(40000),
				YearsToCoast:          4,
				CoastAchievable:       true,
				CoastDiffFromBase:     decimal.NewFromInt(-285000),
				ProjectedDiffFromBase: decimal.NewFromInt(1300000),
				ProjectedPctFromBase:  decimal.NewFromFloat(108.33),
				SurplusDiffFromBase:   decimal.NewFromInt(52000),
				YearsToCoastDiff:      -13,
			},
		},
		Recommendations: []string{
			"Fastest Coast: aggressive_growth reaches Coast FIRE in 4 years",
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	result := (&TableFormatter{}).Format(sampleComparisonSet())

	for _, want := range []string{
		"COAST FIRE SCENARIO COMPARISON",
		"Base Scenario: Base Scenario",
		"Configuration: /path/to/plan.yaml",
		"Base Scenario (base)",
		"aggressive_growth",
		"17 years",
		"COMPARISON TO BASE",
		"Years to Coast:   -13 years",
		"Projected Assets: +$1.30M (108.3%)",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	compSet := sampleComparisonSet()
	compSet.AlternativeResults = nil
	compSet.Recommendations = nil

	result := (&TableFormatter{}).Format(compSet)
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("Expected no comparison section without alternatives")
	}
	if strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("Expected no recommendations section")
	}
}

func TestTableFormatter_RowStates(t *testing.T) {
	tf := &TableFormatter{}

	row := tf.formatRow(&ComparisonResult{ScenarioName: "x", AlreadyCoasting: true, CoastAchievable: true}, 25, 13, false)
	if !strings.Contains(row, "coasting") {
		t.Errorf("Expected coasting marker, got %q", row)
	}
	row = tf.formatRow(&ComparisonResult{ScenarioName: "x", YearsToCoast: 100}, 25, 13, false)
	if !strings.Contains(row, "not reached") {
		t.Errorf("Expected not reached marker, got %q", row)
	}
	if got := tf.truncate("a_really_long_scenario_name_that_overflows", 10); got != "a_reall..." {
		t.Errorf("unexpected truncation %q", got)
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	got := (&TableFormatter{}).FormatCompact(sampleComparisonSet())
	if got != "Base: Base Scenario | aggressive_growth: +$1.30M" {
		t.Errorf("unexpected compact output %q", got)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleComparisonSet())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Scenario,Type,FIRE Number") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "aggressive_growth,alternative,1500000.00,165000.00") {
		t.Errorf("unexpected row %q", lines[2])
	}
	if !strings.HasSuffix(lines[2], ",-13") {
		t.Errorf("Expected years diff at end of row, got %q", lines[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(sampleComparisonSet())
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}

		var decoded map[string]interface{}
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded["baseScenarioName"] != "Base Scenario" {
			t.Errorf("unexpected base name %v", decoded["baseScenarioName"])
		}
		if pretty != strings.Contains(out, "\n  ") {
			t.Errorf("pretty=%v mismatch in output", pretty)
		}
	}
}

func TestJSONFormatter_Empty(t *testing.T) {
	if _, err := (&JSONFormatter{}).Format(nil); err == nil {
		t.Error("Expected error for nil comparison set")
	}
	if _, err := (&JSONFormatter{}).Format(&ComparisonSet{BaseScenarioName: "x"}); err == nil {
		t.Error("Expected error when the base result is missing")
	}
}
