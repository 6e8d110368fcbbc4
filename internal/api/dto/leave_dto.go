package dto

// LeaveResponse payload.
type LeaveResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	LeaveType    string  `json:"leave_type"`
	Approved     bool    `json:"approved"`
	Notes        *string `json:"notes"`
}
