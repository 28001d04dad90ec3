package domain

import "time"

// Period represents the reporting window requested by a client
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// ReportRange is the resolved inclusive time range for a reporting period,
// together with the ordered bucket labels used by the time-series chart.
// A daily range has no labels (single bucket, no chart).
type ReportRange struct {
	Period Period
	Start  time.Time
	End    time.Time
	Labels []string
}

// Contains reports whether t falls inside the range, inclusive on both ends
func (r ReportRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// BucketIndex returns the chart bucket for t, or -1 if the range has no
// buckets or t falls outside the range.
func (r ReportRange) BucketIndex(t time.Time) int {
	if len(r.Labels) == 0 || !r.Contains(t) {
		return -1
	}
	switch r.Period {
	case PeriodWeekly:
		return int(t.Weekday())
	case PeriodMonthly:
		return t.Day() - 1
	default:
		return -1
	}
}

// PerformerScore is one leaderboard entry: completed task count per assignee
type PerformerScore struct {
	Name        string `json:"name"`
	Achievement int64  `json:"achievement"`
}

// RevenueSummary holds the target vs. achieved revenue totals for a range
type RevenueSummary struct {
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
	Percent  float64 `json:"percent"`
}

// SeriesPoint is a single bucket of the sales chart
type SeriesPoint struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// DashboardSummary is the full dashboard response for a reporting period
type DashboardSummary struct {
	TotalTarget        float64          `json:"totalTarget"`
	TotalAchieved      float64          `json:"totalAchieved"`
	AchievementPercent float64          `json:"achievementPercent"`
	Series             []SeriesPoint    `json:"series"`
	TopPerformers      []PerformerScore `json:"topPerformers"`
}
