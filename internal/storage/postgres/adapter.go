package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/salesops/sales-portal/internal/domain"
	"github.com/salesops/sales-portal/internal/storage"
)

// postgresStorage implements the Storage interface for PostgreSQL
type postgresStorage struct {
	db *sql.DB
}

// NewPostgresStorage creates a new PostgreSQL storage instance
func NewPostgresStorage(connStr string) (storage.Storage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &postgresStorage{db: db}
	if err := s.Migrate(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

// Migrate runs database migrations
func (s *postgresStorage) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'employee',
		phone TEXT NOT NULL DEFAULT '',
		team TEXT NOT NULL DEFAULT '',
		monthly_call_target INTEGER NOT NULL DEFAULT 0,
		monthly_sales_target DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_users_role ON users(role);

	CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		client_company TEXT NOT NULL,
		email TEXT NOT NULL,
		mobile TEXT NOT NULL,
		project_name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Follow Up',
		follow_up_date TIMESTAMP,
		start_date TIMESTAMP,
		end_date TIMESTAMP,
		budget DOUBLE PRECISION NOT NULL DEFAULT 0,
		reference TEXT NOT NULL DEFAULT '',
		assigned_to TEXT NOT NULL,
		created_by TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leads_status ON leads(status);
	CREATE INDEX IF NOT EXISTS idx_leads_assigned_to ON leads(assigned_to);
	CREATE INDEX IF NOT EXISTS idx_leads_created_at ON leads(created_at);
	CREATE INDEX IF NOT EXISTS idx_leads_status_created_at ON leads(status, created_at);

	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		client TEXT NOT NULL,
		assignee_email TEXT NOT NULL,
		type TEXT NOT NULL,
		task_date TIMESTAMP NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_email);
	CREATE INDEX IF NOT EXISTS idx_tasks_status_date ON tasks(status, task_date);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		client_company TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		mobile TEXT NOT NULL,
		project_name TEXT NOT NULL,
		start_date TIMESTAMP,
		end_date TIMESTAMP,
		budget DOUBLE PRECISION NOT NULL DEFAULT 0,
		reference TEXT NOT NULL DEFAULT '',
		source_lead_id TEXT NOT NULL DEFAULT '',
		created_by TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS allocations (
		id TEXT PRIMARY KEY,
		project_name TEXT NOT NULL,
		project_id INTEGER NOT NULL,
		it_team TEXT NOT NULL,
		team_lead TEXT NOT NULL,
		start_date TIMESTAMP NOT NULL,
		end_date TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

/* ---------- users ---------- */

// SaveUser inserts or updates a user
func (s *postgresStorage) SaveUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, role, phone, team, monthly_call_target, monthly_sales_target, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			phone = EXCLUDED.phone,
			team = EXCLUDED.team,
			monthly_call_target = EXCLUDED.monthly_call_target,
			monthly_sales_target = EXCLUDED.monthly_sales_target,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		string(user.Role),
		user.Phone,
		user.Team,
		user.MonthlyCallTarget,
		user.MonthlySalesTarget,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

// GetUsers retrieves all users, newest first
func (s *postgresStorage) GetUsers(ctx context.Context) ([]*domain.User, error) {
	rows, err := s.db.QueryContext(ctx, userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByID retrieves a user by ID
func (s *postgresStorage) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// GetUserByEmail retrieves a user by email
func (s *postgresStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// DeleteUser deletes a user by ID
func (s *postgresStorage) DeleteUser(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// CountEmployees counts active users with the employee role
func (s *postgresStorage) CountEmployees(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = TRUE`,
		string(domain.RoleEmployee),
	).Scan(&count)
	return count, err
}

/* ---------- leads ---------- */

// SaveLead inserts or updates a lead
func (s *postgresStorage) SaveLead(ctx context.Context, lead *domain.Lead) error {
	_, err := s.db.ExecContext(ctx, insertLeadQuery, leadArgs(lead)...)
	return err
}

// SaveLeads inserts or updates multiple leads in a single transaction
func (s *postgresStorage) SaveLeads(ctx context.Context, leads []*domain.Lead) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertLeadQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, lead := range leads {
		if _, err := stmt.ExecContext(ctx, leadArgs(lead)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetLeads retrieves all leads, newest first
func (s *postgresStorage) GetLeads(ctx context.Context) ([]*domain.Lead, error) {
	return s.queryLeads(ctx, leadColumns+` FROM leads ORDER BY created_at DESC`)
}

// GetLeadByID retrieves a lead by ID
func (s *postgresStorage) GetLeadByID(ctx context.Context, id string) (*domain.Lead, error) {
	row := s.db.QueryRowContext(ctx, leadColumns+` FROM leads WHERE id = $1`, id)
	lead, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return lead, err
}

// GetLeadsByAssignee retrieves leads assigned to a user, newest first
func (s *postgresStorage) GetLeadsByAssignee(ctx context.Context, email string) ([]*domain.Lead, error) {
	return s.queryLeads(ctx,
		leadColumns+` FROM leads WHERE assigned_to = $1 ORDER BY created_at DESC`, email)
}

// GetFollowUpLeads retrieves follow-up leads with a follow-up date set,
// soonest first
func (s *postgresStorage) GetFollowUpLeads(ctx context.Context) ([]*domain.Lead, error) {
	return s.queryLeads(ctx,
		leadColumns+` FROM leads WHERE status = $1 AND follow_up_date IS NOT NULL ORDER BY follow_up_date ASC`,
		string(domain.LeadStatusFollowUp))
}

// DeleteLead deletes a lead by ID
func (s *postgresStorage) DeleteLead(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

// GetLeadsByStatusInRange retrieves leads in any of the given statuses whose
// creation time falls inside [start, end], oldest first
func (s *postgresStorage) GetLeadsByStatusInRange(ctx context.Context, statuses []domain.LeadStatus, start, end time.Time) ([]*domain.Lead, error) {
	if len(statuses) == 0 {
		return []*domain.Lead{}, nil
	}

	placeholders := make([]string, len(statuses))
	args := make([]interface{}, 0, len(statuses)+2)
	for i, status := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, string(status))
	}
	args = append(args, start, end)

	query := fmt.Sprintf(
		leadColumns+` FROM leads WHERE status IN (%s) AND created_at >= $%d AND created_at <= $%d ORDER BY created_at ASC`,
		strings.Join(placeholders, ", "), len(statuses)+1, len(statuses)+2,
	)
	return s.queryLeads(ctx, query, args...)
}

func (s *postgresStorage) queryLeads(ctx context.Context, query string, args ...interface{}) ([]*domain.Lead, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

/* ---------- tasks ---------- */

// SaveTask inserts or updates a task
func (s *postgresStorage) SaveTask(ctx context.Context, task *domain.Task) error {
	_, err := s.db.ExecContext(ctx, insertTaskQuery, taskArgs(task)...)
	return err
}

// SaveTasks inserts or updates multiple tasks in a single transaction
func (s *postgresStorage) SaveTasks(ctx context.Context, tasks []*domain.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertTaskQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, task := range tasks {
		if _, err := stmt.ExecContext(ctx, taskArgs(task)...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetTasks retrieves all tasks, newest first
func (s *postgresStorage) GetTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.queryTasks(ctx, taskColumns+` FROM tasks ORDER BY created_at DESC`)
}

// GetTaskByID retrieves a task by ID
func (s *postgresStorage) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, taskColumns+` FROM tasks WHERE id = $1`, id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return task, err
}

// GetTasksByAssignee retrieves tasks for an assignee, newest first
func (s *postgresStorage) GetTasksByAssignee(ctx context.Context, email string) ([]*domain.Task, error) {
	return s.queryTasks(ctx,
		taskColumns+` FROM tasks WHERE assignee_email = $1 ORDER BY created_at DESC`, email)
}

// DeleteTask deletes a task by ID
func (s *postgresStorage) DeleteTask(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

// GetCompletedTasksInRange retrieves completed tasks dated inside
// [start, end], oldest first
func (s *postgresStorage) GetCompletedTasksInRange(ctx context.Context, start, end time.Time) ([]*domain.Task, error) {
	return s.queryTasks(ctx,
		taskColumns+` FROM tasks WHERE status = $1 AND task_date >= $2 AND task_date <= $3 ORDER BY created_at ASC`,
		string(domain.TaskStatusCompleted), start, end)
}

func (s *postgresStorage) queryTasks(ctx context.Context, query string, args ...interface{}) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

/* ---------- projects ---------- */

// SaveProject inserts or updates a project
func (s *postgresStorage) SaveProject(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (id, client_name, client_company, email, mobile, project_name, start_date, end_date, budget, reference, source_lead_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			client_company = EXCLUDED.client_company,
			email = EXCLUDED.email,
			mobile = EXCLUDED.mobile,
			project_name = EXCLUDED.project_name,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			budget = EXCLUDED.budget,
			reference = EXCLUDED.reference,
			source_lead_id = EXCLUDED.source_lead_id,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		project.ID,
		project.ClientName,
		project.ClientCompany,
		project.Email,
		project.Mobile,
		project.ProjectName,
		nullableTime(project.StartDate),
		nullableTime(project.EndDate),
		project.Budget,
		project.Reference,
		project.SourceLeadID,
		project.CreatedBy,
		project.CreatedAt,
		project.UpdatedAt,
	)
	return err
}

// GetProjects retrieves all projects, newest first
func (s *postgresStorage) GetProjects(ctx context.Context) ([]*domain.Project, error) {
	rows, err := s.db.QueryContext(ctx, projectColumns+` FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// GetProjectByID retrieves a project by ID
func (s *postgresStorage) GetProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	row := s.db.QueryRowContext(ctx, projectColumns+` FROM projects WHERE id = $1`, id)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return project, err
}

// GetProjectByEmail retrieves a project by client email
func (s *postgresStorage) GetProjectByEmail(ctx context.Context, email string) (*domain.Project, error) {
	row := s.db.QueryRowContext(ctx, projectColumns+` FROM projects WHERE email = $1`, email)
	project, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return project, err
}

// DeleteProject deletes a project by ID
func (s *postgresStorage) DeleteProject(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

/* ---------- allocations ---------- */

// SaveAllocation inserts or updates an allocation
func (s *postgresStorage) SaveAllocation(ctx context.Context, allocation *domain.Allocation) error {
	query := `
		INSERT INTO allocations (id, project_name, project_id, it_team, team_lead, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			project_name = EXCLUDED.project_name,
			project_id = EXCLUDED.project_id,
			it_team = EXCLUDED.it_team,
			team_lead = EXCLUDED.team_lead,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			updated_at = EXCLUDED.updated_at
	`
	_, err := s.db.ExecContext(ctx, query,
		allocation.ID,
		allocation.ProjectName,
		allocation.ProjectID,
		allocation.ITTeam,
		allocation.TeamLead,
		allocation.StartDate,
		allocation.EndDate,
		allocation.CreatedAt,
		allocation.UpdatedAt,
	)
	return err
}

// GetAllocations retrieves all allocations, newest first
func (s *postgresStorage) GetAllocations(ctx context.Context) ([]*domain.Allocation, error) {
	rows, err := s.db.QueryContext(ctx, allocationColumns+` FROM allocations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []*domain.Allocation
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}
	return allocations, rows.Err()
}

// GetAllocationByID retrieves an allocation by ID
func (s *postgresStorage) GetAllocationByID(ctx context.Context, id string) (*domain.Allocation, error) {
	row := s.db.QueryRowContext(ctx, allocationColumns+` FROM allocations WHERE id = $1`, id)
	allocation, err := scanAllocation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return allocation, err
}

// DeleteAllocation deletes an allocation by ID
func (s *postgresStorage) DeleteAllocation(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM allocations WHERE id = $1`, id)
	return err
}

// Close closes the database connection
func (s *postgresStorage) Close() error {
	return s.db.Close()
}

/* ---------- scan helpers ---------- */

const (
	userColumns       = `SELECT id, name, email, role, phone, team, monthly_call_target, monthly_sales_target, is_active, created_at, updated_at`
	leadColumns       = `SELECT id, client_name, client_company, email, mobile, project_name, status, follow_up_date, start_date, end_date, budget, reference, assigned_to, created_by, created_at, updated_at`
	taskColumns       = `SELECT id, client, assignee_email, type, task_date, note, status, created_at, updated_at`
	projectColumns    = `SELECT id, client_name, client_company, email, mobile, project_name, start_date, end_date, budget, reference, source_lead_id, created_by, created_at, updated_at`
	allocationColumns = `SELECT id, project_name, project_id, it_team, team_lead, start_date, end_date, created_at, updated_at`

	insertLeadQuery = `
		INSERT INTO leads (id, client_name, client_company, email, mobile, project_name, status, follow_up_date, start_date, end_date, budget, reference, assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			client_name = EXCLUDED.client_name,
			client_company = EXCLUDED.client_company,
			email = EXCLUDED.email,
			mobile = EXCLUDED.mobile,
			project_name = EXCLUDED.project_name,
			status = EXCLUDED.status,
			follow_up_date = EXCLUDED.follow_up_date,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			budget = EXCLUDED.budget,
			reference = EXCLUDED.reference,
			assigned_to = EXCLUDED.assigned_to,
			updated_at = EXCLUDED.updated_at
	`

	insertTaskQuery = `
		INSERT INTO tasks (id, client, assignee_email, type, task_date, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			client = EXCLUDED.client,
			assignee_email = EXCLUDED.assignee_email,
			type = EXCLUDED.type,
			task_date = EXCLUDED.task_date,
			note = EXCLUDED.note,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	user := &domain.User{}
	var role string
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&role,
		&user.Phone,
		&user.Team,
		&user.MonthlyCallTarget,
		&user.MonthlySalesTarget,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return user, nil
}

func scanLead(row rowScanner) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var status string
	var followUp, start, end sql.NullTime
	err := row.Scan(
		&lead.ID,
		&lead.ClientName,
		&lead.ClientCompany,
		&lead.Email,
		&lead.Mobile,
		&lead.ProjectName,
		&status,
		&followUp,
		&start,
		&end,
		&lead.Budget,
		&lead.Reference,
		&lead.AssignedTo,
		&lead.CreatedBy,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	lead.Status = domain.LeadStatus(status)
	lead.FollowUpDate = timePtr(followUp)
	lead.StartDate = timePtr(start)
	lead.EndDate = timePtr(end)
	return lead, nil
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var status string
	err := row.Scan(
		&task.ID,
		&task.Client,
		&task.AssigneeEmail,
		&task.Type,
		&task.Date,
		&task.Note,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Status = domain.TaskStatus(status)
	return task, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	project := &domain.Project{}
	var start, end sql.NullTime
	err := row.Scan(
		&project.ID,
		&project.ClientName,
		&project.ClientCompany,
		&project.Email,
		&project.Mobile,
		&project.ProjectName,
		&start,
		&end,
		&project.Budget,
		&project.Reference,
		&project.SourceLeadID,
		&project.CreatedBy,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	project.StartDate = timePtr(start)
	project.EndDate = timePtr(end)
	return project, nil
}

func scanAllocation(row rowScanner) (*domain.Allocation, error) {
	allocation := &domain.Allocation{}
	err := row.Scan(
		&allocation.ID,
		&allocation.ProjectName,
		&allocation.ProjectID,
		&allocation.ITTeam,
		&allocation.TeamLead,
		&allocation.StartDate,
		&allocation.EndDate,
		&allocation.CreatedAt,
		&allocation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return allocation, nil
}

func leadArgs(lead *domain.Lead) []interface{} {
	return []interface{}{
		lead.ID,
		lead.ClientName,
		lead.ClientCompany,
		lead.Email,
		lead.Mobile,
		lead.ProjectName,
		string(lead.Status),
		nullableTime(lead.FollowUpDate),
		nullableTime(lead.StartDate),
		nullableTime(lead.EndDate),
		lead.Budget,
		lead.Reference,
		lead.AssignedTo,
		lead.CreatedBy,
		lead.CreatedAt,
		lead.UpdatedAt,
	}
}

func taskArgs(task *domain.Task) []interface{} {
	return []interface{}{
		task.ID,
		task.Client,
		task.AssigneeEmail,
		task.Type,
		task.Date,
		task.Note,
		string(task.Status),
		task.CreatedAt,
		task.UpdatedAt,
	}
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
