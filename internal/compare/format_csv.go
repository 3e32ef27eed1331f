package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"FIRE Number",
		"Coast FIRE Number",
		"Projected Assets",
		"Gap",
		"Surplus",
		"Years To Coast",
		"Coast Achievable",
		"Coast Diff from Base",
		"Projected Diff from Base",
		"Projected % Change",
		"Surplus Diff from Base",
		"Years To Coast Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.FireNumber.StringFixed(2),
		result.CoastFireNumber.StringFixed(2),
		result.ProjectedAssets.StringFixed(2),
		result.Gap.StringFixed(2),
		result.Surplus.StringFixed(2),
		strconv.Itoa(result.YearsToCoast),
		strconv.FormatBool(result.CoastAchievable),
		result.CoastDiffFromBase.StringFixed(2),
		result.ProjectedDiffFromBase.StringFixed(2),
		result.ProjectedPctFromBase.StringFixed(2),
		result.SurplusDiffFromBase.StringFixed(2),
		strconv.Itoa(result.YearsToCoastDiff),
	}
}
