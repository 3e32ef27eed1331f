package interpret

import (
	"fmt"

	"github.com/rgehrsitz/firecalc/internal/domain"
	"github.com/rgehrsitz/firecalc/internal/output"
)

// Narrate builds the paragraph shown under a Freedom Number result
func Narrate(r *domain.FreedomResult) string {
	if r == nil {
		return ""
	}
	freedom := output.FormatCurrency(r.FreedomNumber)
	passive := output.FormatCurrency(r.Profile.CurrentPassiveIncome)
	gap := output.FormatCurrency(r.Gap)
	progress := r.ProgressPercent.StringFixed(0)

	var text string
	switch BandFor(r.ProgressPercent).Key {
	case BandFree:
		text = fmt.Sprintf("Your %s/month of passive income already meets your Freedom Number of %s/month. Work is optional.", passive, freedom)
	case BandAlmostThere:
		text = fmt.Sprintf("You're %s%% of the way to %s/month. Closing the last %s/month gap is within reach.", progress, freedom, gap)
	case BandHalfway:
		text = fmt.Sprintf("At %s/month you cover %s%% of your %s/month Freedom Number. The remaining %s/month is the next milestone.", passive, progress, freedom, gap)
	case BandMomentum:
		text = fmt.Sprintf("You've built %s/month toward %s/month (%s%%). Growing passive income by %s/month gets you there.", passive, freedom, progress, gap)
	default:
		text = fmt.Sprintf("Your Freedom Number is %s/month gross, enough to keep %s/month after tax and reinvestment. You need %s/month more in passive income.",
			freedom, output.FormatCurrency(r.Profile.MonthlyExpenses), gap)
	}

	if s, ok := r.Scenario(domain.PathModerate); ok && s.Timeline != nil {
		if s.Timeline.Achievable {
			text += fmt.Sprintf(" Saving %s/month at %s%% closes the gap in %s.",
				output.FormatCurrency(r.Profile.MonthlySavings), s.RatePercent.String(), DescribeDuration(s.Timeline.Years, s.Timeline.RemainingMonths))
		} else {
			text += fmt.Sprintf(" At %s/month the gap is not closed within %d years.", output.FormatCurrency(r.Profile.MonthlySavings), s.Timeline.Years)
		}
	}
	return text
}

// DescribeDuration renders a years + months pair: "12 years, 3 months"
func DescribeDuration(years, months int) string {
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("1 %s", unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	switch {
	case years == 0:
		return plural(months, "month")
	case months == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + ", " + plural(months, "month")
	}
}

// DescribeCoast builds the status line for a Coast-FIRE projection
func DescribeCoast(r *domain.ProjectionResult) string {
	if r == nil {
		return ""
	}

	var text string
	switch {
	case r.AlreadyCoasting:
		text = fmt.Sprintf("You've reached Coast FIRE. %s today grows to your %s FIRE number by age %d without another contribution.",
			output.FormatCompact(r.Profile.CurrentAssets), output.FormatCompact(r.FireNumber), r.Profile.RetirementAge)
	case r.Timeline.Achievable:
		text = fmt.Sprintf("You're %s short of your %s Coast FIRE number. At your current contributions you reach it in %d years, at age %d.",
			output.FormatCompact(r.Gap), output.FormatCompact(r.CoastFireNumber), r.Timeline.Years, r.Timeline.Age)
	default:
		text = fmt.Sprintf("You're %s short of your %s Coast FIRE number, and current contributions don't close the gap within %d years.",
			output.FormatCompact(r.Gap), output.FormatCompact(r.CoastFireNumber), r.Timeline.Years)
	}

	if r.Surplus.IsNegative() {
		text += fmt.Sprintf(" Projected withdrawals fall %s/year short of spending.", output.FormatCompact(r.Surplus.Neg()))
	} else {
		text += fmt.Sprintf(" Projected withdrawals cover spending with %s/year to spare.", output.FormatCompact(r.Surplus))
	}
	return text
}
