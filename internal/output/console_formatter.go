package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/firecalc/internal/domain"
)

// DefaultAssumptions are printed under every console report
var DefaultAssumptions = []string{
	"Real return = growth - inflation - fees, compounded annually",
	"Contributions are added at the end of each year until retirement",
	"Tax estimate: 2024 single-filer brackets, self-employment tax and a flat 5% state rate",
	"Freedom Number target uses a 25x annual multiplier (4% rule)",
}

// ConsoleFormatter renders a human-readable report. Verbose adds milestone
// tables and the solver diagnostics.
type ConsoleFormatter struct {
	Verbose bool
}

func (c ConsoleFormatter) Name() string {
	if c.Verbose {
		return "verbose"
	}
	return "console"
}

func (c ConsoleFormatter) Format(result *domain.PlanResult) ([]byte, error) {
	if result == nil || (result.Projection == nil && result.Freedom == nil) {
		return nil, fmt.Errorf("nothing to format")
	}
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================")
	if result.Name != "" {
		fmt.Fprintf(&buf, "FIRE PLAN: %s\n", strings.ToUpper(result.Name))
	} else {
		fmt.Fprintln(&buf, "FIRE PLAN")
	}
	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf)

	if result.Projection != nil {
		c.writeProjection(&buf, result.Projection)
	}
	if result.Freedom != nil {
		c.writeFreedom(&buf, result.Freedom)
	}

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) writeProjection(buf *bytes.Buffer, p *domain.ProjectionResult) {
	fmt.Fprintln(buf, "COAST FIRE PROJECTION")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "Age %d → %d (%d years), real return %s\n",
		p.Profile.CurrentAge, p.Profile.RetirementAge, p.YearsToRetirement, FormatRate(p.RealReturnRate))
	fmt.Fprintf(buf, "FIRE Number:             %s\n", FormatCurrency(p.FireNumber))
	fmt.Fprintf(buf, "Coast FIRE Number:       %s\n", FormatCurrency(p.CoastFireNumber))
	fmt.Fprintf(buf, "Current Assets:          %s\n", FormatCurrency(p.Profile.CurrentAssets))
	fmt.Fprintf(buf, "Gap to Coast:            %s\n", FormatCurrency(p.Gap))
	fmt.Fprintf(buf, "Assets at Retirement:    %s\n", FormatCurrency(p.CurrentAssetsProjected))
	switch {
	case p.AlreadyCoasting:
		fmt.Fprintln(buf, "Status:                  ✅ Already coasting")
	case p.Timeline.Achievable:
		fmt.Fprintf(buf, "Status:                  Coast FIRE in %d years (age %d)\n", p.Timeline.Years, p.Timeline.Age)
	default:
		fmt.Fprintf(buf, "Status:                  ⚠️  Not reachable within %d years\n", p.Timeline.Years)
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Required Withdrawal:     %s/yr\n", FormatCurrency(p.RequiredWithdrawal))
	fmt.Fprintf(buf, "Available Withdrawal:    %s/yr\n", FormatCurrency(p.AvailableWithdrawal))
	fmt.Fprintf(buf, "Surplus / (Shortfall):   %s/yr\n", FormatCurrency(p.Surplus))
	fmt.Fprintln(buf)

	fmt.Fprintf(buf, "%-14s %8s %16s\n", "PATH", "RATE", "AT RETIREMENT")
	for _, path := range p.Paths.All() {
		fmt.Fprintf(buf, "%-14s %8s %16s\n", path.Name, FormatPercentage(path.NominalRatePercent), FormatCompact(path.ProjectedAssets))
	}
	fmt.Fprintln(buf)

	if c.Verbose {
		for _, path := range p.Paths.All() {
			fmt.Fprintf(buf, "Milestones (%s):\n", path.Name)
			for _, m := range path.Milestones {
				if m.Reached {
					fmt.Fprintf(buf, "  %-22s %10s  year %2d, age %d\n", m.Label, FormatCompact(m.Amount), m.Year, m.Age)
				} else {
					fmt.Fprintf(buf, "  %-22s %10s  not reached\n", m.Label, FormatCompact(m.Amount))
				}
			}
		}
		fmt.Fprintln(buf)
	}

	if p.Summary != "" {
		fmt.Fprintln(buf, p.Summary)
		fmt.Fprintln(buf)
	}
}

func (c ConsoleFormatter) writeFreedom(buf *bytes.Buffer, f *domain.FreedomResult) {
	fmt.Fprintln(buf, "FREEDOM NUMBER")
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "Monthly Expenses (net):  %s\n", FormatCurrency(f.Profile.MonthlyExpenses))
	fmt.Fprintf(buf, "Freedom Number (gross):  %s/month\n", FormatCurrency(f.FreedomNumber))
	fmt.Fprintf(buf, "  Estimated Tax:         %s/month (%s)\n", FormatCurrency(f.Income.TaxAmount), FormatRate(f.Income.TaxRate))
	fmt.Fprintf(buf, "  Reinvestment:          %s/month\n", FormatCurrency(f.Income.ReinvestmentAmount))
	fmt.Fprintf(buf, "Passive Income:          %s/month\n", FormatCurrency(f.Profile.CurrentPassiveIncome))
	fmt.Fprintf(buf, "Progress:                %s (%s)\n", FormatPercentage(f.ProgressPercent), f.Band.Label)
	fmt.Fprintf(buf, "Monthly Gap:             %s\n", FormatCurrency(f.Gap))
	fmt.Fprintln(buf)

	horizon := "VALUE"
	if len(f.Scenarios) > 0 && f.Scenarios[0].HorizonMonths > 0 {
		horizon = fmt.Sprintf("%d-MO VALUE", f.Scenarios[0].HorizonMonths)
	}
	fmt.Fprintf(buf, "%-14s %8s %20s %16s\n", "SCENARIO", "RATE", "TIME TO FREEDOM", horizon)
	for _, s := range f.Scenarios {
		fmt.Fprintf(buf, "%-14s %8s %20s %16s\n", s.Name, FormatPercentage(s.RatePercent), describeTimeToFreedom(s.Timeline), FormatCompact(s.ValueAtHorizon))
	}
	fmt.Fprintln(buf)

	if c.Verbose {
		fmt.Fprintf(buf, "Solver: %s\n", f.Income.ConvergenceInfo)
		fmt.Fprintf(buf, "Savings target: %s\n", FormatCurrency(f.TargetAmount))
		fmt.Fprintln(buf)
	}
	if f.Narrative != "" {
		fmt.Fprintln(buf, f.Narrative)
		fmt.Fprintln(buf)
	}
}

func describeTimeToFreedom(t *domain.TimeToFreedom) string {
	switch {
	case t == nil:
		return "n/a"
	case !t.Achievable:
		return fmt.Sprintf("%d+ years", t.Years)
	default:
		return fmt.Sprintf("%dy %dm", t.Years, t.RemainingMonths)
	}
}
