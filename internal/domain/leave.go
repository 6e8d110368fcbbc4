package domain

import "time"

// Leave is an absence request spanning one or more days. It stays pending
// until an administrator approves it; declining removes it.
type Leave struct {
	ID         int64
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  string
	Approved   bool
	Notes      *string
	CreatedAt  time.Time
}

// LeaveWithEmployee joins a leave with the requesting employee's name.
type LeaveWithEmployee struct {
	Leave
	EmployeeName string
}
