package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetDashboardSummary(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/reporting/summary" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		gotQuery = map[string]string{
			"period": r.URL.Query().Get("period"),
			"date":   r.URL.Query().Get("date"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"totalTarget": 400,
			"totalAchieved": 100,
			"achievementPercent": 25,
			"series": [{"label": "Sun", "amount": 0}, {"label": "Mon", "amount": 100}],
			"topPerformers": [{"name": "alice@acme.io", "achievement": 3}]
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	summary, err := c.GetDashboardSummary("weekly", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetDashboardSummary() error = %v", err)
	}

	if gotQuery["period"] != "weekly" || gotQuery["date"] != "2024-05-15" {
		t.Fatalf("query = %v", gotQuery)
	}
	if summary.TotalTarget != 400 || summary.AchievementPercent != 25 {
		t.Fatalf("summary = %+v", summary)
	}
	if len(summary.Series) != 2 || summary.Series[1].Amount != 100 {
		t.Fatalf("series = %+v", summary.Series)
	}
	if len(summary.TopPerformers) != 1 || summary.TopPerformers[0].Achievement != 3 {
		t.Fatalf("topPerformers = %+v", summary.TopPerformers)
	}
}

func TestGetDashboardSummaryOmitsEmptyParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Fatalf("query = %q, want empty", r.URL.RawQuery)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.GetDashboardSummary("", time.Time{}); err != nil {
		t.Fatalf("GetDashboardSummary() error = %v", err)
	}
}

func TestGetLeads(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/leads" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"data": [{"id": "l1", "clientName": "Acme Corp", "budget": 1500}]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	leads, err := c.GetLeads()
	if err != nil {
		t.Fatalf("GetLeads() error = %v", err)
	}
	if len(leads) != 1 || leads[0].ClientName != "Acme Corp" {
		t.Fatalf("leads = %+v", leads)
	}
}

func TestGetLeadsByAssigneeEscapesEmail(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.GetLeadsByAssignee("alice@acme.io"); err != nil {
		t.Fatalf("GetLeadsByAssignee() error = %v", err)
	}
	if gotPath != "/api/v1/leads/assigned/alice@acme.io" && gotPath != "/api/v1/leads/assigned/alice%40acme.io" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestCountEmployees(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/count/employees" {
			t.Fatalf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"count": 4}`))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	count, err := c.CountEmployees()
	if err != nil {
		t.Fatalf("CountEmployees() error = %v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}
}

func TestHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer server.Close()

	if err := NewClient(server.URL).HealthCheck(); err != nil {
		t.Fatalf("HealthCheck() error = %v", err)
	}
}

func TestHealthCheckUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "degraded"}`))
	}))
	defer server.Close()

	if err := NewClient(server.URL).HealthCheck(); err == nil {
		t.Fatal("expected error for unhealthy status")
	}
}

func TestErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"code": "INTERNAL_ERROR", "message": "boom"}}`))
	}))
	defer server.Close()

	if _, err := NewClient(server.URL).GetLeads(); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
