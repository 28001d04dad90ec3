package domain

import "time"

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Task represents a unit of work assigned to an employee
type Task struct {
	ID            string     `json:"id"`
	Client        string     `json:"client"`
	AssigneeEmail string     `json:"assigneeEmail"`
	Type          string     `json:"type"`
	Date          time.Time  `json:"date"`
	Note          string     `json:"note,omitempty"`
	Status        TaskStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
