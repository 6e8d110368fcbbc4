package service

import (
	"strconv"
	"time"
)

// MonthTarget identifies a (year, month) pair for schedule navigation.
type MonthTarget struct {
	Year  int
	Month int
}

// ResolveMonthYear picks the month and year to display. Absent or
// out-of-range query values silently fall back to the current calendar month.
func ResolveMonthYear(monthStr, yearStr string, now time.Time) (year, month int) {
	year = now.Year()
	month = int(now.Month())

	if parsed, err := strconv.Atoi(monthStr); err == nil && parsed >= 1 && parsed <= 12 {
		month = parsed
	}
	if parsed, err := strconv.Atoi(yearStr); err == nil && parsed >= 1970 {
		year = parsed
	}
	return year, month
}

// MonthLabel returns the full month name for navigation display.
func MonthLabel(month int) string {
	return time.Month(month).String()
}

// NavigationTargets computes the previous and next calendar month. Day 1 of
// the adjacent month is constructed explicitly so year rollovers at the
// 1/12 boundary come out right.
func NavigationTargets(year, month int) (prev, next MonthTarget) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	prevFirst := first.AddDate(0, -1, 0)
	nextFirst := first.AddDate(0, 1, 0)

	prev = MonthTarget{Year: prevFirst.Year(), Month: int(prevFirst.Month())}
	next = MonthTarget{Year: nextFirst.Year(), Month: int(nextFirst.Month())}
	return prev, next
}

// ShiftFormDefaults seeds the shift creation form.
type ShiftFormDefaults struct {
	Date      string
	StartTime string
	EndTime   string
}

// DefaultShiftFormValues picks today's date when the viewed month is the
// current one, otherwise the first day of the viewed month.
func DefaultShiftFormValues(year, month int, now time.Time) ShiftFormDefaults {
	date := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	if year == now.Year() && month == int(now.Month()) {
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return ShiftFormDefaults{
		Date:      date.Format("2006-01-02"),
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}
