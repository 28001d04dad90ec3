package storage

import (
	"context"
	"time"

	"github.com/salesops/sales-portal/internal/domain"
)

// Storage is the abstract interface for the persistence layer.
//
// Save operations are upserts. Lookups by ID or email return (nil, nil) when
// no record matches; errors are reserved for store failures.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *domain.User) error
	GetUsers(ctx context.Context) ([]*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountEmployees(ctx context.Context) (int, error)

	// Lead operations
	SaveLead(ctx context.Context, lead *domain.Lead) error
	SaveLeads(ctx context.Context, leads []*domain.Lead) error
	GetLeads(ctx context.Context) ([]*domain.Lead, error)
	GetLeadByID(ctx context.Context, id string) (*domain.Lead, error)
	GetLeadsByAssignee(ctx context.Context, email string) ([]*domain.Lead, error)
	GetFollowUpLeads(ctx context.Context) ([]*domain.Lead, error)
	DeleteLead(ctx context.Context, id string) error

	// Task operations
	SaveTask(ctx context.Context, task *domain.Task) error
	SaveTasks(ctx context.Context, tasks []*domain.Task) error
	GetTasks(ctx context.Context) ([]*domain.Task, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)
	GetTasksByAssignee(ctx context.Context, email string) ([]*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Project operations
	SaveProject(ctx context.Context, project *domain.Project) error
	GetProjects(ctx context.Context) ([]*domain.Project, error)
	GetProjectByID(ctx context.Context, id string) (*domain.Project, error)
	GetProjectByEmail(ctx context.Context, email string) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// Allocation operations
	SaveAllocation(ctx context.Context, allocation *domain.Allocation) error
	GetAllocations(ctx context.Context) ([]*domain.Allocation, error)
	GetAllocationByID(ctx context.Context, id string) (*domain.Allocation, error)
	DeleteAllocation(ctx context.Context, id string) error

	// Reporting queries (pre-filtered; the aggregator re-applies the same
	// predicates so results do not depend on which side narrows first)
	GetCompletedTasksInRange(ctx context.Context, start, end time.Time) ([]*domain.Task, error)
	GetLeadsByStatusInRange(ctx context.Context, statuses []domain.LeadStatus, start, end time.Time) ([]*domain.Lead, error)

	// Migration
	Migrate(ctx context.Context) error

	// Connection management
	Close() error
}
