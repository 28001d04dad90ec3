package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salesops/sales-portal/internal/domain"
	"github.com/salesops/sales-portal/internal/storage"
)

const dateLayout = "2006-01-02"

// batchSize bounds how many records are written per storage call
const batchSize = 100

// ProgressCallback is invoked after each row is parsed. total is -1 when the
// input size is unknown.
type ProgressCallback func(row, total int)

// Importer loads leads and tasks from CSV files into storage
type Importer struct {
	storage storage.Storage
}

// NewImporter creates a new Importer
func NewImporter(store storage.Storage) *Importer {
	return &Importer{storage: store}
}

// ImportLeads reads lead records from r and saves them in batches.
// The first row must be a header; columns are matched by name.
// Returns the number of imported records.
func (i *Importer) ImportLeads(ctx context.Context, r io.Reader, onProgress ProgressCallback) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	cols := indexColumns(header)
	for _, required := range []string{"clientname", "email", "assignedto"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("missing required column: %s", required)
		}
	}

	imported := 0
	row := 0
	batch := make([]*domain.Lead, 0, batchSize)

	for {
		if err := ctx.Err(); err != nil {
			return imported, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", row+2, err)
		}
		row++

		lead, err := parseLead(cols, record)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", row+1, err)
		}
		batch = append(batch, lead)

		if onProgress != nil {
			onProgress(row, -1)
		}

		if len(batch) >= batchSize {
			if err := i.storage.SaveLeads(ctx, batch); err != nil {
				return imported, fmt.Errorf("failed to save leads: %w", err)
			}
			imported += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := i.storage.SaveLeads(ctx, batch); err != nil {
			return imported, fmt.Errorf("failed to save leads: %w", err)
		}
		imported += len(batch)
	}

	return imported, nil
}

// ImportTasks reads task records from r and saves them in batches.
// Returns the number of imported records.
func (i *Importer) ImportTasks(ctx context.Context, r io.Reader, onProgress ProgressCallback) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	cols := indexColumns(header)
	for _, required := range []string{"client", "assigneeemail", "date"} {
		if _, ok := cols[required]; !ok {
			return 0, fmt.Errorf("missing required column: %s", required)
		}
	}

	imported := 0
	row := 0
	batch := make([]*domain.Task, 0, batchSize)

	for {
		if err := ctx.Err(); err != nil {
			return imported, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", row+2, err)
		}
		row++

		task, err := parseTask(cols, record)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", row+1, err)
		}
		batch = append(batch, task)

		if onProgress != nil {
			onProgress(row, -1)
		}

		if len(batch) >= batchSize {
			if err := i.storage.SaveTasks(ctx, batch); err != nil {
				return imported, fmt.Errorf("failed to save tasks: %w", err)
			}
			imported += len(batch)
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := i.storage.SaveTasks(ctx, batch); err != nil {
			return imported, fmt.Errorf("failed to save tasks: %w", err)
		}
		imported += len(batch)
	}

	return imported, nil
}

func parseLead(cols map[string]int, record []string) (*domain.Lead, error) {
	now := time.Now()
	lead := &domain.Lead{
		ID:            uuid.New().String(),
		ClientName:    field(cols, record, "clientname"),
		ClientCompany: field(cols, record, "clientcompany"),
		Email:         field(cols, record, "email"),
		Mobile:        field(cols, record, "mobile"),
		ProjectName:   field(cols, record, "projectname"),
		Status:        domain.LeadStatus(field(cols, record, "status")),
		Reference:     field(cols, record, "reference"),
		AssignedTo:    field(cols, record, "assignedto"),
		CreatedBy:     field(cols, record, "createdby"),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if lead.ClientName == "" {
		return nil, fmt.Errorf("clientName is empty")
	}
	if lead.Status == "" {
		lead.Status = domain.LeadStatusOpen
	}

	if raw := field(cols, record, "budget"); raw != "" {
		budget, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid budget %q", raw)
		}
		lead.Budget = budget
	}

	var err error
	if lead.FollowUpDate, err = parseOptionalDate(field(cols, record, "followupdate")); err != nil {
		return nil, err
	}
	if lead.StartDate, err = parseOptionalDate(field(cols, record, "startdate")); err != nil {
		return nil, err
	}
	if lead.EndDate, err = parseOptionalDate(field(cols, record, "enddate")); err != nil {
		return nil, err
	}

	return lead, nil
}

func parseTask(cols map[string]int, record []string) (*domain.Task, error) {
	now := time.Now()
	task := &domain.Task{
		ID:            uuid.New().String(),
		Client:        field(cols, record, "client"),
		AssigneeEmail: field(cols, record, "assigneeemail"),
		Type:          field(cols, record, "type"),
		Note:          field(cols, record, "note"),
		Status:        domain.TaskStatus(field(cols, record, "status")),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if task.Client == "" {
		return nil, fmt.Errorf("client is empty")
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}

	raw := field(cols, record, "date")
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", raw)
	}
	task.Date = date

	return task, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	return cols
}

func field(cols map[string]int, record []string, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", raw)
	}
	return &t, nil
}
