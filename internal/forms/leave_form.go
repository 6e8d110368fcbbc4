package forms

import (
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/staff-planner/internal/domain"
)

// LeaveFormValues holds the raw fields of the absence-request form.
type LeaveFormValues struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	StartDate  string `json:"start_date" form:"start_date"`
	EndDate    string `json:"end_date" form:"end_date"`
	LeaveType  string `json:"leave_type" form:"leave_type"`
	Notes      string `json:"notes" form:"notes"`
}

// ParseLeaveForm validates and normalizes a leave form, collecting every
// violation. New leaves always start out unapproved.
func ParseLeaveForm(raw LeaveFormValues) (domain.Leave, LeaveFormValues, []string) {
	var errs []string
	var leave domain.Leave

	employeeID, err := strconv.ParseInt(raw.EmployeeID, 10, 64)
	if err != nil || employeeID < 1 {
		errs = append(errs, "select an employee")
	} else {
		leave.EmployeeID = employeeID
	}

	start, startErr := time.Parse("2006-01-02", raw.StartDate)
	if startErr != nil {
		errs = append(errs, "invalid start date")
	} else {
		leave.StartDate = start
	}

	end, endErr := time.Parse("2006-01-02", raw.EndDate)
	if endErr != nil {
		errs = append(errs, "invalid end date")
	} else {
		leave.EndDate = end
	}

	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, "end date must not be before start date")
	}

	raw.LeaveType = strings.TrimSpace(raw.LeaveType)
	if raw.LeaveType == "" {
		errs = append(errs, "leave type must not be empty")
	}
	leave.LeaveType = raw.LeaveType

	if notes := strings.TrimSpace(raw.Notes); notes != "" {
		leave.Notes = &notes
	}

	leave.Approved = false
	return leave, raw, errs
}
