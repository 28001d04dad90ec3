package domain

import "time"

// Project represents a confirmed client project, usually converted from a lead
type Project struct {
	ID            string     `json:"id"`
	ClientName    string     `json:"clientName"`
	ClientCompany string     `json:"clientCompany"`
	Email         string     `json:"email"`
	Mobile        string     `json:"mobile"`
	ProjectName   string     `json:"projectName"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	Budget        float64    `json:"budget"`
	Reference     string     `json:"reference,omitempty"`
	SourceLeadID  string     `json:"sourceLeadId,omitempty"`
	CreatedBy     string     `json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
