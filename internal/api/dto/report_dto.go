package dto

// ReportRowResponse summarizes one employee's month.
type ReportRowResponse struct {
	EmployeeID   int64    `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	ShiftCount   int      `json:"shift_count"`
	WorkedHours  float64  `json:"worked_hours"`
	TargetHours  *float64 `json:"target_hours"`
	Difference   *float64 `json:"difference"`
}

// MonthlyReportResponse payload.
type MonthlyReportResponse struct {
	Year       int                 `json:"year"`
	Month      int                 `json:"month"`
	MonthLabel string              `json:"month_label"`
	Rows       []ReportRowResponse `json:"rows"`
	TotalHours float64             `json:"total_hours"`
}
