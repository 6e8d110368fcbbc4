// Package forms normalizes raw submitted text into typed field values. Parsers
// are pure and total: they collect every violated rule instead of stopping at
// the first, and hand back the trimmed values so forms can be redisplayed.
package forms

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/spec-kit/staff-planner/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// EmployeeFormValues holds the raw fields of the employee create/edit form.
type EmployeeFormValues struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	EmploymentType string `json:"employment_type" form:"employment_type"`
	HoursPerMonth  string `json:"hours_per_month" form:"hours_per_month"`
	DepartmentID   string `json:"department_id" form:"department_id"`
}

// ParseEmployeeForm validates and normalizes an employee form. It returns the
// typed employee, the trimmed raw values, and every validation message that
// applies. The employee is only meaningful when the message list is empty.
func ParseEmployeeForm(raw EmployeeFormValues) (domain.Employee, EmployeeFormValues, []string) {
	var errs []string
	var emp domain.Employee

	raw.Name = strings.TrimSpace(raw.Name)
	raw.Email = strings.TrimSpace(raw.Email)

	if raw.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	emp.Name = raw.Name

	if raw.Email != "" {
		if emailPattern.MatchString(raw.Email) {
			email := raw.Email
			emp.Email = &email
		} else {
			errs = append(errs, "invalid email address")
		}
	}

	emp.EmploymentType = domain.EmploymentType(raw.EmploymentType)
	if !emp.EmploymentType.Valid() {
		errs = append(errs, "invalid employment type")
	}

	if raw.HoursPerMonth != "" {
		hours, err := strconv.ParseFloat(raw.HoursPerMonth, 64)
		if err != nil || hours < 0 {
			errs = append(errs, "hours must be a positive number")
		} else {
			emp.HoursPerMonth = &hours
		}
	}

	if raw.DepartmentID != "" {
		deptID, err := strconv.ParseInt(raw.DepartmentID, 10, 64)
		if err != nil || deptID < 1 {
			errs = append(errs, "invalid department selection")
		} else {
			emp.DepartmentID = &deptID
		}
	}

	return emp, raw, errs
}
