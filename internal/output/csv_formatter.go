package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/firecalc/internal/domain"
)

// CSVFormatter writes one section,metric,value row per reported number
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"section", "metric", "value"}); err != nil {
		return nil, err
	}

	var rows [][]string
	if p := result.Projection; p != nil {
		rows = append(rows,
			[]string{"coast", "fire_number", p.FireNumber.StringFixed(2)},
			[]string{"coast", "coast_fire_number", p.CoastFireNumber.StringFixed(2)},
			[]string{"coast", "current_assets_projected", p.CurrentAssetsProjected.StringFixed(2)},
			[]string{"coast", "gap", p.Gap.StringFixed(2)},
			[]string{"coast", "already_coasting", strconv.FormatBool(p.AlreadyCoasting)},
			[]string{"coast", "timeline_years", strconv.Itoa(p.Timeline.Years)},
			[]string{"coast", "timeline_achievable", strconv.FormatBool(p.Timeline.Achievable)},
			[]string{"coast", "required_withdrawal", p.RequiredWithdrawal.StringFixed(2)},
			[]string{"coast", "available_withdrawal", p.AvailableWithdrawal.StringFixed(2)},
			[]string{"coast", "surplus", p.Surplus.StringFixed(2)},
		)
		for _, path := range p.Paths.All() {
			rows = append(rows, []string{"path_" + path.Name, "projected_assets", path.ProjectedAssets.StringFixed(2)})
		}
	}
	if f := result.Freedom; f != nil {
		rows = append(rows,
			[]string{"freedom", "freedom_number", f.FreedomNumber.StringFixed(0)},
			[]string{"freedom", "tax_rate", f.Income.TaxRate.StringFixed(6)},
			[]string{"freedom", "tax_amount", f.Income.TaxAmount.StringFixed(0)},
			[]string{"freedom", "reinvestment_amount", f.Income.ReinvestmentAmount.StringFixed(0)},
			[]string{"freedom", "progress_percent", f.ProgressPercent.StringFixed(2)},
			[]string{"freedom", "gap", f.Gap.StringFixed(0)},
			[]string{"freedom", "band", f.Band.Key},
		)
		for _, s := range f.Scenarios {
			months := ""
			if s.Timeline != nil {
				months = strconv.Itoa(s.Timeline.Months)
			}
			rows = append(rows,
				[]string{"scenario_" + s.Name, "months_to_freedom", months},
				[]string{"scenario_" + s.Name, "value_at_horizon", s.ValueAtHorizon.StringFixed(2)},
			)
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
