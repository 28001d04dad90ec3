package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/salesops/sales-portal/internal/domain"
	"github.com/salesops/sales-portal/internal/storage"
)

// recordingStorage captures batch saves; everything else is inherited from
// the embedded nil interface.
type recordingStorage struct {
	storage.Storage

	leads []*domain.Lead
	tasks []*domain.Task
	calls int
}

func (r *recordingStorage) SaveLeads(ctx context.Context, leads []*domain.Lead) error {
	r.leads = append(r.leads, leads...)
	r.calls++
	return nil
}

func (r *recordingStorage) SaveTasks(ctx context.Context, tasks []*domain.Task) error {
	r.tasks = append(r.tasks, tasks...)
	r.calls++
	return nil
}

func TestImportLeads(t *testing.T) {
	csv := strings.Join([]string{
		"clientName,clientCompany,email,mobile,projectName,status,budget,assignedTo,followUpDate",
		"Acme Corp,Acme,client@acme.io,5551234567,Website,Open,1500,alice@acme.io,2024-05-20",
		"Globex,Globex Inc,ceo@globex.io,5557654321,Portal,,2000,bob@acme.io,",
	}, "\n")

	store := &recordingStorage{}
	imp := NewImporter(store)

	var rows []int
	imported, err := imp.ImportLeads(context.Background(), strings.NewReader(csv), func(row, total int) {
		rows = append(rows, row)
	})
	if err != nil {
		t.Fatalf("ImportLeads() error = %v", err)
	}
	if imported != 2 {
		t.Fatalf("imported = %d, want 2", imported)
	}
	if len(rows) != 2 || rows[0] != 1 || rows[1] != 2 {
		t.Fatalf("progress rows = %v, want [1 2]", rows)
	}

	first := store.leads[0]
	if first.ClientName != "Acme Corp" || first.Budget != 1500 {
		t.Fatalf("first lead = %+v", first)
	}
	if first.ID == "" {
		t.Fatal("lead ID not assigned")
	}
	if first.FollowUpDate == nil || first.FollowUpDate.Format("2006-01-02") != "2024-05-20" {
		t.Fatalf("followUpDate = %v", first.FollowUpDate)
	}

	second := store.leads[1]
	if second.Status != domain.LeadStatusOpen {
		t.Fatalf("default status = %q, want Open", second.Status)
	}
	if second.FollowUpDate != nil {
		t.Fatalf("empty followUpDate parsed as %v", second.FollowUpDate)
	}
}

func TestImportLeadsMissingColumn(t *testing.T) {
	csv := "clientName,email\nAcme,client@acme.io"

	imp := NewImporter(&recordingStorage{})
	_, err := imp.ImportLeads(context.Background(), strings.NewReader(csv), nil)
	if err == nil || !strings.Contains(err.Error(), "assignedto") {
		t.Fatalf("error = %v, want missing column", err)
	}
}

func TestImportLeadsBadBudget(t *testing.T) {
	csv := strings.Join([]string{
		"clientName,email,assignedTo,budget",
		"Acme,client@acme.io,alice@acme.io,lots",
	}, "\n")

	imp := NewImporter(&recordingStorage{})
	_, err := imp.ImportLeads(context.Background(), strings.NewReader(csv), nil)
	if err == nil || !strings.Contains(err.Error(), "budget") {
		t.Fatalf("error = %v, want budget parse failure", err)
	}
}

func TestImportLeadsBatching(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("clientName,email,assignedTo\n")
	for i := 0; i < batchSize+5; i++ {
		sb.WriteString("Acme,client@acme.io,alice@acme.io\n")
	}

	store := &recordingStorage{}
	imp := NewImporter(store)

	imported, err := imp.ImportLeads(context.Background(), strings.NewReader(sb.String()), nil)
	if err != nil {
		t.Fatalf("ImportLeads() error = %v", err)
	}
	if imported != batchSize+5 {
		t.Fatalf("imported = %d, want %d", imported, batchSize+5)
	}
	if store.calls != 2 {
		t.Fatalf("save calls = %d, want 2", store.calls)
	}
}

func TestImportLeadsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	csv := "clientName,email,assignedTo\nAcme,client@acme.io,alice@acme.io"
	imp := NewImporter(&recordingStorage{})

	_, err := imp.ImportLeads(ctx, strings.NewReader(csv), nil)
	if err != context.Canceled {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestImportTasks(t *testing.T) {
	csv := strings.Join([]string{
		"client,assigneeEmail,type,date,status,note",
		"Acme,alice@acme.io,call,2024-05-13,Completed,first contact",
		"Globex,bob@acme.io,meeting,2024-05-14,,",
	}, "\n")

	store := &recordingStorage{}
	imp := NewImporter(store)

	imported, err := imp.ImportTasks(context.Background(), strings.NewReader(csv), nil)
	if err != nil {
		t.Fatalf("ImportTasks() error = %v", err)
	}
	if imported != 2 {
		t.Fatalf("imported = %d, want 2", imported)
	}

	first := store.tasks[0]
	if first.Status != domain.TaskStatusCompleted || first.Note != "first contact" {
		t.Fatalf("first task = %+v", first)
	}
	if !first.Date.Equal(time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date = %v", first.Date)
	}

	if store.tasks[1].Status != domain.TaskStatusPending {
		t.Fatalf("default status = %q, want Pending", store.tasks[1].Status)
	}
}

func TestImportTasksBadDate(t *testing.T) {
	csv := "client,assigneeEmail,date\nAcme,alice@acme.io,13/05/2024"

	imp := NewImporter(&recordingStorage{})
	_, err := imp.ImportTasks(context.Background(), strings.NewReader(csv), nil)
	if err == nil || !strings.Contains(err.Error(), "date") {
		t.Fatalf("error = %v, want date parse failure", err)
	}
}
