package domain

import "time"

// Allocation represents a resource allocation of an IT team to a project
type Allocation struct {
	ID          string    `json:"id"`
	ProjectName string    `json:"projectName"`
	ProjectID   int       `json:"projectId"`
	ITTeam      string    `json:"itTeam"`
	TeamLead    string    `json:"teamLead"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
