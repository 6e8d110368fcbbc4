package domain

import "time"

// Shift is a dated, timed work assignment belonging to exactly one employee.
// Start and end times are zero-padded 24-hour "HH:MM" strings; the store
// enforces start < end.
type Shift struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	StartTime  string
	EndTime    string
	CreatedAt  time.Time
}

// ISODate returns the shift date as YYYY-MM-DD.
func (s Shift) ISODate() string {
	return s.Date.Format("2006-01-02")
}

// ShiftWithEmployee joins a shift with the owning employee's name for the
// schedule view.
type ShiftWithEmployee struct {
	Shift
	EmployeeName string
}
