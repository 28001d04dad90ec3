package reporting

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/salesops/sales-portal/internal/domain"
	"github.com/salesops/sales-portal/internal/storage"
)

// DefaultPerformerLimit is the leaderboard size shown on the dashboard
const DefaultPerformerLimit = 10

// Reporter produces dashboard summaries from the record store
type Reporter interface {
	// Summarize computes the full dashboard summary for a period,
	// relative to ref (normally time.Now())
	Summarize(ctx context.Context, period domain.Period, ref time.Time) (*domain.DashboardSummary, error)
}

// reporter implements the Reporter interface
type reporter struct {
	storage storage.Storage
}

// NewReporter creates a new reporter
func NewReporter(storage storage.Storage) Reporter {
	return &reporter{
		storage: storage,
	}
}

// Summarize computes the dashboard summary for a period. Each call recomputes
// from the current record set; nothing is cached between requests.
func (r *reporter) Summarize(ctx context.Context, period domain.Period, ref time.Time) (*domain.DashboardSummary, error) {
	rng := ResolveRange(period, ref)

	tasks, err := r.storage.GetCompletedTasksInRange(ctx, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	leads, err := r.storage.GetLeadsByStatusInRange(ctx, domain.ActiveStatuses, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	revenue := Revenue(leads, rng)

	return &domain.DashboardSummary{
		TotalTarget:        revenue.Target,
		TotalAchieved:      revenue.Achieved,
		AchievementPercent: revenue.Percent,
		Series:             BuildSeries(leads, rng),
		TopPerformers:      TopPerformers(tasks, rng, DefaultPerformerLimit),
	}, nil
}

// TopPerformers counts completed tasks inside the range per assignee and
// returns the top entries sorted by count descending. Ties keep the order in
// which an assignee first appears in the input; no secondary key is applied.
func TopPerformers(tasks []*domain.Task, rng domain.ReportRange, limit int) []domain.PerformerScore {
	if limit <= 0 {
		limit = DefaultPerformerLimit
	}

	counts := make(map[string]int64)
	order := make([]string, 0)

	for _, t := range tasks {
		if t.Status != domain.TaskStatusCompleted || !rng.Contains(t.Date) {
			continue
		}
		if _, seen := counts[t.AssigneeEmail]; !seen {
			order = append(order, t.AssigneeEmail)
		}
		counts[t.AssigneeEmail]++
	}

	scores := make([]domain.PerformerScore, 0, len(order))
	for _, email := range order {
		scores = append(scores, domain.PerformerScore{
			Name:        email,
			Achievement: counts[email],
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Achievement > scores[j].Achievement
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

// Revenue sums lead budgets inside the range: active statuses count toward
// the target, the closed-won subset toward achieved. Percent is achieved over
// target rounded to two decimals, and 0 when the target is 0.
func Revenue(leads []*domain.Lead, rng domain.ReportRange) domain.RevenueSummary {
	var target, achieved float64

	for _, l := range leads {
		if !rng.Contains(l.CreatedAt) {
			continue
		}
		if l.IsActive() {
			target += l.Budget
		}
		if l.IsDone() {
			achieved += l.Budget
		}
	}

	var percent float64
	if target > 0 {
		percent = math.Round(achieved/target*10000) / 100
	}

	return domain.RevenueSummary{
		Target:   target,
		Achieved: achieved,
		Percent:  percent,
	}
}

// BuildSeries groups achieved revenue by chart bucket, producing one entry
// per range label in label order, zero-filled where no lead falls in a
// bucket. A daily range has no labels so the series is empty.
func BuildSeries(leads []*domain.Lead, rng domain.ReportRange) []domain.SeriesPoint {
	series := make([]domain.SeriesPoint, 0, len(rng.Labels))
	for _, label := range rng.Labels {
		series = append(series, domain.SeriesPoint{Label: label})
	}

	for _, l := range leads {
		if !l.IsDone() || !rng.Contains(l.CreatedAt) {
			continue
		}
		if i := rng.BucketIndex(l.CreatedAt); i >= 0 && i < len(series) {
			series[i].Amount += l.Budget
		}
	}

	return series
}
