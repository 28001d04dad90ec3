package reporting

import (
	"strconv"
	"testing"
	"time"

	"github.com/salesops/sales-portal/internal/domain"
)

func TestResolveRangeWeekly(t *testing.T) {
	// 2024-05-15 is a Wednesday
	ref := time.Date(2024, 5, 15, 12, 30, 0, 0, time.UTC)
	rng := ResolveRange(domain.PeriodWeekly, ref)

	wantStart := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	if !rng.Start.Equal(wantStart) {
		t.Fatalf("Start = %v, want %v", rng.Start, wantStart)
	}
	if rng.Start.Weekday() != time.Sunday {
		t.Fatalf("week does not start on Sunday: %v", rng.Start.Weekday())
	}
	if rng.End.Weekday() != time.Saturday {
		t.Fatalf("week does not end on Saturday: %v", rng.End.Weekday())
	}
	if len(rng.Labels) != 7 {
		t.Fatalf("len(Labels) = %d, want 7", len(rng.Labels))
	}
	if rng.Labels[0] != "Sun" || rng.Labels[6] != "Sat" {
		t.Fatalf("unexpected labels %v", rng.Labels)
	}
	if !rng.Contains(ref) {
		t.Fatal("range does not contain its reference time")
	}
	if rng.Contains(wantStart.Add(-time.Nanosecond)) {
		t.Fatal("range contains time before start")
	}
	if rng.Contains(rng.End.Add(time.Nanosecond)) {
		t.Fatal("range contains time after end")
	}
}

func TestResolveRangeWeeklyOnSunday(t *testing.T) {
	// A Sunday reference is its own week start
	ref := time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC)
	rng := ResolveRange(domain.PeriodWeekly, ref)

	wantStart := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)
	if !rng.Start.Equal(wantStart) {
		t.Fatalf("Start = %v, want %v", rng.Start, wantStart)
	}
}

func TestResolveRangeMonthly(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		wantDays int
	}{
		{"january", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 31},
		{"february leap year", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), 29},
		{"february non-leap", time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC), 28},
		{"april", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ResolveRange(domain.PeriodMonthly, tt.ref)

			if rng.Start.Day() != 1 {
				t.Fatalf("Start day = %d, want 1", rng.Start.Day())
			}
			if rng.End.Day() != tt.wantDays {
				t.Fatalf("End day = %d, want %d", rng.End.Day(), tt.wantDays)
			}
			if len(rng.Labels) != tt.wantDays {
				t.Fatalf("len(Labels) = %d, want %d", len(rng.Labels), tt.wantDays)
			}
			if rng.Labels[0] != "1" {
				t.Fatalf("first label = %q, want \"1\"", rng.Labels[0])
			}
			if last := rng.Labels[len(rng.Labels)-1]; last != strconv.Itoa(tt.wantDays) {
				t.Fatalf("last label = %q, want %q", last, strconv.Itoa(tt.wantDays))
			}
		})
	}
}

func TestResolveRangeDaily(t *testing.T) {
	ref := time.Date(2024, 5, 15, 17, 45, 0, 0, time.UTC)
	rng := ResolveRange(domain.PeriodDaily, ref)

	if rng.Start.Day() != 15 || rng.End.Day() != 15 {
		t.Fatalf("daily range spans days: %v to %v", rng.Start, rng.End)
	}
	if len(rng.Labels) != 0 {
		t.Fatalf("daily range has labels: %v", rng.Labels)
	}
	if !rng.Contains(ref) {
		t.Fatal("range does not contain its reference time")
	}
}

func TestResolveRangeStartBeforeEnd(t *testing.T) {
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	for _, period := range []domain.Period{domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly} {
		rng := ResolveRange(period, ref)
		if rng.Start.After(rng.End) {
			t.Fatalf("%s: Start %v after End %v", period, rng.Start, rng.End)
		}
	}
}

func TestResolveRangeUnknownPeriodIsDaily(t *testing.T) {
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	rng := ResolveRange(domain.Period("yearly"), ref)
	if rng.Period != domain.PeriodDaily {
		t.Fatalf("Period = %q, want %q", rng.Period, domain.PeriodDaily)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Period
	}{
		{"", domain.PeriodWeekly},
		{"daily", domain.PeriodDaily},
		{"weekly", domain.PeriodWeekly},
		{"monthly", domain.PeriodMonthly},
		{"yearly", domain.PeriodDaily},
		{"Weekly", domain.PeriodDaily},
	}

	for _, tt := range tests {
		if got := ParsePeriod(tt.in); got != tt.want {
			t.Errorf("ParsePeriod(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBucketIndex(t *testing.T) {
	ref := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	weekly := ResolveRange(domain.PeriodWeekly, ref)
	if got := weekly.BucketIndex(weekly.Start); got != 0 {
		t.Fatalf("weekly Sunday bucket = %d, want 0", got)
	}
	if got := weekly.BucketIndex(weekly.Start.AddDate(0, 0, 6)); got != 6 {
		t.Fatalf("weekly Saturday bucket = %d, want 6", got)
	}
	if got := weekly.BucketIndex(weekly.Start.AddDate(0, 0, -1)); got != -1 {
		t.Fatalf("out-of-range bucket = %d, want -1", got)
	}

	monthly := ResolveRange(domain.PeriodMonthly, ref)
	if got := monthly.BucketIndex(monthly.Start); got != 0 {
		t.Fatalf("monthly first-day bucket = %d, want 0", got)
	}
	if got := monthly.BucketIndex(monthly.End); got != len(monthly.Labels)-1 {
		t.Fatalf("monthly last-day bucket = %d, want %d", got, len(monthly.Labels)-1)
	}

	daily := ResolveRange(domain.PeriodDaily, ref)
	if got := daily.BucketIndex(ref); got != -1 {
		t.Fatalf("daily bucket = %d, want -1", got)
	}
}
