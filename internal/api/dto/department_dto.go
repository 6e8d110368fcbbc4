package dto

import "time"

// DepartmentRequest payload for creating a department.
type DepartmentRequest struct {
	Name string `json:"name" form:"name"`
}

// DepartmentResponse payload.
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
