package domain

import "time"

// LeadStatus represents the pipeline status of a lead
type LeadStatus string

const (
	LeadStatusFollowUp      LeadStatus = "Follow Up"
	LeadStatusInterested    LeadStatus = "Interested"
	LeadStatusNotInterested LeadStatus = "Not Interested"
	LeadStatusOpen          LeadStatus = "Open"
	LeadStatusClosed        LeadStatus = "Closed"
	LeadStatusPending       LeadStatus = "Pending"
	LeadStatusDone          LeadStatus = "Done"
)

// ActiveStatuses are the statuses whose budgets count toward the sales target.
// DoneStatuses is the closed-won subset counted as achieved revenue.
var (
	ActiveStatuses = []LeadStatus{
		LeadStatusInterested,
		LeadStatusOpen,
		LeadStatusFollowUp,
		LeadStatusPending,
		LeadStatusDone,
		LeadStatusClosed,
	}

	DoneStatuses = []LeadStatus{
		LeadStatusDone,
		LeadStatusClosed,
	}
)

// Lead represents a sales lead
type Lead struct {
	ID            string     `json:"id"`
	ClientName    string     `json:"clientName"`
	ClientCompany string     `json:"clientCompany"`
	Email         string     `json:"email"`
	Mobile        string     `json:"mobile"`
	ProjectName   string     `json:"projectName"`
	Status        LeadStatus `json:"status"`
	FollowUpDate  *time.Time `json:"followUpDate,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	Budget        float64    `json:"budget"`
	Reference     string     `json:"reference,omitempty"`
	AssignedTo    string     `json:"assignedTo"`
	CreatedBy     string     `json:"createdBy"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// IsActive reports whether the lead's status counts toward the target sum
func (l *Lead) IsActive() bool {
	return statusIn(l.Status, ActiveStatuses)
}

// IsDone reports whether the lead's status counts toward achieved revenue
func (l *Lead) IsDone() bool {
	return statusIn(l.Status, DoneStatuses)
}

func statusIn(status LeadStatus, set []LeadStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
