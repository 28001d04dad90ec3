package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/salesops/sales-portal/internal/domain"
	"github.com/salesops/sales-portal/internal/storage"
)

// weekRef is a Wednesday; its week runs Sunday 2024-05-12 through
// Saturday 2024-05-18.
var weekRef = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2024, 5, d, 10, 0, 0, 0, time.UTC)
}

func completedTask(assignee string, date time.Time) *domain.Task {
	return &domain.Task{
		AssigneeEmail: assignee,
		Date:          date,
		Status:        domain.TaskStatusCompleted,
	}
}

func lead(status domain.LeadStatus, budget float64, createdAt time.Time) *domain.Lead {
	return &domain.Lead{
		Status:    status,
		Budget:    budget,
		CreatedAt: createdAt,
	}
}

func TestTopPerformersOrdering(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	tasks := []*domain.Task{
		completedTask("bob@acme.io", day(13)),
		completedTask("alice@acme.io", day(13)),
		completedTask("alice@acme.io", day(14)),
		completedTask("alice@acme.io", day(15)),
		completedTask("bob@acme.io", day(15)),
		completedTask("carol@acme.io", day(16)),
	}

	scores := TopPerformers(tasks, rng, 10)

	if len(scores) != 3 {
		t.Fatalf("len(scores) = %d, want 3", len(scores))
	}
	if scores[0].Name != "alice@acme.io" || scores[0].Achievement != 3 {
		t.Fatalf("scores[0] = %+v, want alice with 3", scores[0])
	}
	if scores[1].Name != "bob@acme.io" || scores[1].Achievement != 2 {
		t.Fatalf("scores[1] = %+v, want bob with 2", scores[1])
	}
	if scores[2].Name != "carol@acme.io" || scores[2].Achievement != 1 {
		t.Fatalf("scores[2] = %+v, want carol with 1", scores[2])
	}
}

func TestTopPerformersTieKeepsInputOrder(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	tasks := []*domain.Task{
		completedTask("zoe@acme.io", day(13)),
		completedTask("amy@acme.io", day(13)),
	}

	scores := TopPerformers(tasks, rng, 10)

	if len(scores) != 2 {
		t.Fatalf("len(scores) = %d, want 2", len(scores))
	}
	if scores[0].Name != "zoe@acme.io" || scores[1].Name != "amy@acme.io" {
		t.Fatalf("tie order changed: %+v", scores)
	}
}

func TestTopPerformersLimit(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	var tasks []*domain.Task
	for i := 0; i < 12; i++ {
		email := string(rune('a'+i)) + "@acme.io"
		// i+1 completions so every assignee has a distinct count
		for j := 0; j <= i; j++ {
			tasks = append(tasks, completedTask(email, day(13)))
		}
	}

	scores := TopPerformers(tasks, rng, 10)

	if len(scores) != 10 {
		t.Fatalf("len(scores) = %d, want 10", len(scores))
	}
	if scores[0].Achievement != 12 {
		t.Fatalf("top score = %d, want 12", scores[0].Achievement)
	}
	for i := 1; i < len(scores); i++ {
		if scores[i].Achievement > scores[i-1].Achievement {
			t.Fatalf("scores not descending at %d: %+v", i, scores)
		}
	}
}

func TestTopPerformersFiltersStatusAndRange(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	tasks := []*domain.Task{
		completedTask("alice@acme.io", day(13)),
		{AssigneeEmail: "alice@acme.io", Date: day(14), Status: domain.TaskStatusPending},
		{AssigneeEmail: "alice@acme.io", Date: day(14), Status: domain.TaskStatusInProgress},
		completedTask("alice@acme.io", day(25)), // next week
	}

	scores := TopPerformers(tasks, rng, 10)

	if len(scores) != 1 || scores[0].Achievement != 1 {
		t.Fatalf("scores = %+v, want alice with 1", scores)
	}
}

func TestRevenue(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	leads := []*domain.Lead{
		lead(domain.LeadStatusOpen, 100, day(13)),
		lead(domain.LeadStatusInterested, 100, day(14)),
		lead(domain.LeadStatusDone, 50, day(15)),
		lead(domain.LeadStatusClosed, 50, day(16)),
		lead(domain.LeadStatusNotInterested, 999, day(16)), // counts nowhere
		lead(domain.LeadStatusDone, 777, day(25)),          // next week
	}

	rev := Revenue(leads, rng)

	if rev.Target != 300 {
		t.Fatalf("Target = %v, want 300", rev.Target)
	}
	if rev.Achieved != 100 {
		t.Fatalf("Achieved = %v, want 100", rev.Achieved)
	}
	if rev.Percent != 33.33 {
		t.Fatalf("Percent = %v, want 33.33", rev.Percent)
	}
}

func TestRevenueZeroTarget(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	rev := Revenue(nil, rng)
	if rev.Target != 0 || rev.Achieved != 0 || rev.Percent != 0 {
		t.Fatalf("empty revenue = %+v, want zeros", rev)
	}

	rev = Revenue([]*domain.Lead{lead(domain.LeadStatusNotInterested, 500, day(13))}, rng)
	if rev.Percent != 0 {
		t.Fatalf("Percent = %v, want 0 when target is 0", rev.Percent)
	}
}

func TestRevenueDoneCountsTowardBoth(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	rev := Revenue([]*domain.Lead{lead(domain.LeadStatusDone, 200, day(13))}, rng)

	if rev.Target != 200 || rev.Achieved != 200 {
		t.Fatalf("revenue = %+v, want target and achieved both 200", rev)
	}
	if rev.Percent != 100 {
		t.Fatalf("Percent = %v, want 100", rev.Percent)
	}
}

func TestBuildSeriesWeekly(t *testing.T) {
	rng := ResolveRange(domain.PeriodWeekly, weekRef)

	leads := []*domain.Lead{
		lead(domain.LeadStatusDone, 100, day(13)),         // Monday
		lead(domain.LeadStatusClosed, 40, day(13)),        // Monday
		lead(domain.LeadStatusDone, 60, day(17)),          // Friday
		lead(domain.LeadStatusOpen, 500, day(14)),         // not done, excluded
		lead(domain.LeadStatusDone, 999, day(25)),         // next week
	}

	series := BuildSeries(leads, rng)

	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}
	if series[1].Label != "Mon" || series[1].Amount != 140 {
		t.Fatalf("Monday bucket = %+v, want 140", series[1])
	}
	if series[5].Label != "Fri" || series[5].Amount != 60 {
		t.Fatalf("Friday bucket = %+v, want 60", series[5])
	}
	for _, i := range []int{0, 2, 3, 4, 6} {
		if series[i].Amount != 0 {
			t.Fatalf("bucket %d = %v, want zero-filled", i, series[i].Amount)
		}
	}
}

func TestBuildSeriesSumMatchesAchieved(t *testing.T) {
	rng := ResolveRange(domain.PeriodMonthly, weekRef)

	leads := []*domain.Lead{
		lead(domain.LeadStatusDone, 120, day(1)),
		lead(domain.LeadStatusClosed, 80, day(15)),
		lead(domain.LeadStatusDone, 55, day(31)),
		lead(domain.LeadStatusOpen, 500, day(10)),
	}

	series := BuildSeries(leads, rng)
	rev := Revenue(leads, rng)

	var sum float64
	for _, p := range series {
		sum += p.Amount
	}
	if sum != rev.Achieved {
		t.Fatalf("series sum %v != achieved %v", sum, rev.Achieved)
	}
}

func TestBuildSeriesDailyIsEmpty(t *testing.T) {
	rng := ResolveRange(domain.PeriodDaily, weekRef)

	series := BuildSeries([]*domain.Lead{lead(domain.LeadStatusDone, 100, weekRef)}, rng)
	if len(series) != 0 {
		t.Fatalf("len(series) = %d, want 0 for daily", len(series))
	}
}

// stubStorage covers only the queries the reporter issues
type stubStorage struct {
	storage.Storage
	tasks []*domain.Task
	leads []*domain.Lead
}

func (s *stubStorage) GetCompletedTasksInRange(ctx context.Context, start, end time.Time) ([]*domain.Task, error) {
	return s.tasks, nil
}

func (s *stubStorage) GetLeadsByStatusInRange(ctx context.Context, statuses []domain.LeadStatus, start, end time.Time) ([]*domain.Lead, error) {
	return s.leads, nil
}

func TestSummarize(t *testing.T) {
	store := &stubStorage{
		tasks: []*domain.Task{
			completedTask("alice@acme.io", day(13)),
			completedTask("alice@acme.io", day(14)),
			completedTask("bob@acme.io", day(14)),
		},
		leads: []*domain.Lead{
			lead(domain.LeadStatusOpen, 300, day(13)),
			lead(domain.LeadStatusDone, 100, day(14)),
		},
	}

	reporter := NewReporter(store)
	summary, err := reporter.Summarize(context.Background(), domain.PeriodWeekly, weekRef)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if summary.TotalTarget != 400 {
		t.Fatalf("TotalTarget = %v, want 400", summary.TotalTarget)
	}
	if summary.TotalAchieved != 100 {
		t.Fatalf("TotalAchieved = %v, want 100", summary.TotalAchieved)
	}
	if summary.AchievementPercent != 25 {
		t.Fatalf("AchievementPercent = %v, want 25", summary.AchievementPercent)
	}
	if len(summary.Series) != 7 {
		t.Fatalf("len(Series) = %d, want 7", len(summary.Series))
	}
	if len(summary.TopPerformers) != 2 || summary.TopPerformers[0].Name != "alice@acme.io" {
		t.Fatalf("TopPerformers = %+v", summary.TopPerformers)
	}
}

func TestSummarizeIsRepeatable(t *testing.T) {
	store := &stubStorage{
		leads: []*domain.Lead{lead(domain.LeadStatusDone, 100, day(13))},
	}

	reporter := NewReporter(store)
	first, err := reporter.Summarize(context.Background(), domain.PeriodWeekly, weekRef)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	second, err := reporter.Summarize(context.Background(), domain.PeriodWeekly, weekRef)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if first.TotalAchieved != second.TotalAchieved || first.AchievementPercent != second.AchievementPercent {
		t.Fatalf("repeated summaries differ: %+v vs %+v", first, second)
	}
}
