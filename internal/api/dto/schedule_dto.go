package dto

// ShiftResponse payload.
type ShiftResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

// MonthTargetResponse is one navigation destination.
type MonthTargetResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ShiftFormDefaultsResponse seeds the creation form.
type ShiftFormDefaultsResponse struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ScheduleResponse is the full monthly schedule view.
type ScheduleResponse struct {
	Year         int                        `json:"year"`
	Month        int                        `json:"month"`
	MonthLabel   string                     `json:"month_label"`
	Prev         MonthTargetResponse        `json:"prev"`
	Next         MonthTargetResponse        `json:"next"`
	Days         map[string][]ShiftResponse `json:"days"`
	DayOrder     []string                   `json:"day_order"`
	FormDefaults ShiftFormDefaultsResponse  `json:"form_defaults"`
}
