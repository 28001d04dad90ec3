package reporting

import (
	"strconv"
	"time"

	"github.com/salesops/sales-portal/internal/domain"
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ResolveRange computes the inclusive [start, end] range and chart bucket
// labels for a reporting period, relative to ref's calendar day and location.
//
//   - daily: ref's day, no buckets
//   - weekly: the Sunday of ref's week through the following Saturday,
//     one bucket per weekday
//   - monthly: first through last day of ref's month, one bucket per day
//
// Unrecognized periods resolve as daily.
func ResolveRange(period domain.Period, ref time.Time) domain.ReportRange {
	switch period {
	case domain.PeriodWeekly:
		start := startOfDay(ref.AddDate(0, 0, -int(ref.Weekday())))
		labels := make([]string, len(weekdayLabels))
		copy(labels, weekdayLabels)
		return domain.ReportRange{
			Period: domain.PeriodWeekly,
			Start:  start,
			End:    endOfDay(start.AddDate(0, 0, 6)),
			Labels: labels,
		}

	case domain.PeriodMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		// day 0 of the next month is the last day of ref's month
		last := time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, ref.Location())
		labels := make([]string, last.Day())
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		return domain.ReportRange{
			Period: domain.PeriodMonthly,
			Start:  start,
			End:    endOfDay(last),
			Labels: labels,
		}

	default:
		start := startOfDay(ref)
		return domain.ReportRange{
			Period: domain.PeriodDaily,
			Start:  start,
			End:    endOfDay(start),
		}
	}
}

// ParsePeriod maps a query-string value onto a known period, defaulting to
// weekly (the dashboard's default view) when the value is empty and daily
// when it is unrecognized.
func ParsePeriod(s string) domain.Period {
	switch s {
	case "":
		return domain.PeriodWeekly
	case string(domain.PeriodDaily):
		return domain.PeriodDaily
	case string(domain.PeriodWeekly):
		return domain.PeriodWeekly
	case string(domain.PeriodMonthly):
		return domain.PeriodMonthly
	default:
		return domain.PeriodDaily
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
