package forms

import (
	"regexp"
	"strconv"
	"time"

	"github.com/spec-kit/staff-planner/internal/domain"
)

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ShiftFormValues holds the raw fields of the shift creation form.
type ShiftFormValues struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Date       string `json:"date" form:"date"`
	StartTime  string `json:"start_time" form:"start_time"`
	EndTime    string `json:"end_time" form:"end_time"`
	// Month and Year carry the schedule view the form was posted from so the
	// caller can return to it.
	Month string `json:"month" form:"month"`
	Year  string `json:"year" form:"year"`
}

// ParseShiftForm validates and normalizes a shift form, collecting every
// violation. Start must strictly precede end, compared as HHMM integers.
func ParseShiftForm(raw ShiftFormValues) (domain.Shift, ShiftFormValues, []string) {
	var errs []string
	var shift domain.Shift

	employeeID, err := strconv.ParseInt(raw.EmployeeID, 10, 64)
	if err != nil || employeeID < 1 {
		errs = append(errs, "select an employee")
	} else {
		shift.EmployeeID = employeeID
	}

	date, err := time.Parse("2006-01-02", raw.Date)
	if err != nil {
		errs = append(errs, "invalid date")
	} else {
		shift.Date = date
	}

	startOK := clockPattern.MatchString(raw.StartTime)
	if !startOK {
		errs = append(errs, "invalid start time")
	}
	endOK := clockPattern.MatchString(raw.EndTime)
	if !endOK {
		errs = append(errs, "invalid end time")
	}

	if startOK && endOK {
		if clockToInt(raw.StartTime) >= clockToInt(raw.EndTime) {
			errs = append(errs, "end time must be after start time")
		} else {
			shift.StartTime = raw.StartTime
			shift.EndTime = raw.EndTime
		}
	}

	return shift, raw, errs
}

// clockToInt converts a well-formed "HH:MM" string to an HHMM integer.
func clockToInt(clock string) int {
	hours, _ := strconv.Atoi(clock[:2])
	minutes, _ := strconv.Atoi(clock[3:])
	return hours*100 + minutes
}
