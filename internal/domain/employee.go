package domain

import "time"

// EmploymentType enumerates the permitted employment classifications.
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
)

// Valid reports whether the employment type is one of the permitted values.
func (t EmploymentType) Valid() bool {
	return t == EmploymentFullTime || t == EmploymentPartTime
}

// Employee is a staff record. Email, hours target and department membership
// are optional and persist as NULL when absent.
type Employee struct {
	ID             int64
	Name           string
	Email          *string
	EmploymentType EmploymentType
	HoursPerMonth  *float64
	DepartmentID   *int64
	CreatedAt      time.Time
}

// EmployeeWithDepartment joins an employee with its department's name for
// listing screens. DepartmentName is nil when the employee has none.
type EmployeeWithDepartment struct {
	Employee
	DepartmentName *string
}
