package domain

import "time"

// Role represents a user's access level
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User represents a portal user (admin or employee)
type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               Role      `json:"role"`
	Phone              string    `json:"phone,omitempty"`
	Team               string    `json:"team,omitempty"`
	MonthlyCallTarget  int       `json:"monthlyCallTarget"`
	MonthlySalesTarget float64   `json:"monthlySalesTarget"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
