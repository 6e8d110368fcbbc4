package dto

import "time"

// EmployeeResponse payload.
type EmployeeResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          *string   `json:"email"`
	EmploymentType string    `json:"employment_type"`
	HoursPerMonth  *float64  `json:"hours_per_month"`
	DepartmentID   *int64    `json:"department_id"`
	DepartmentName *string   `json:"department_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
