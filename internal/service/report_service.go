package service

import (
	"context"
	"strconv"
	"time"

	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// ReportService derives the monthly hours report.
type ReportService struct {
	employees repository.EmployeeRepository
	shifts    repository.ShiftRepository
	now       func() time.Time
}

// NewReportService constructs the service.
func NewReportService(employees repository.EmployeeRepository, shifts repository.ShiftRepository) *ReportService {
	return &ReportService{employees: employees, shifts: shifts, now: time.Now}
}

// ReportRow summarizes one employee's month.
type ReportRow struct {
	EmployeeID   int64
	EmployeeName string
	ShiftCount   int
	WorkedHours  float64
	TargetHours  *float64
	Difference   *float64
}

// MonthlyReport aggregates worked hours per employee for one month.
type MonthlyReport struct {
	Year       int
	Month      int
	MonthLabel string
	Rows       []ReportRow
	TotalHours float64
}

// MonthlyReport sums shift durations per employee for the resolved month and
// compares them against each employee's hours target where one is set. Every
// employee appears, including those without shifts.
func (s *ReportService) MonthlyReport(ctx context.Context, monthStr, yearStr string) (*MonthlyReport, error) {
	year, month := ResolveMonthYear(monthStr, yearStr, s.now())

	emps, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	shifts, err := s.shifts.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	type tally struct {
		hours float64
		count int
	}
	worked := make(map[int64]tally, len(emps))
	for _, shift := range shifts {
		t := worked[shift.EmployeeID]
		t.hours += shiftHours(shift.StartTime, shift.EndTime)
		t.count++
		worked[shift.EmployeeID] = t
	}

	report := &MonthlyReport{Year: year, Month: month, MonthLabel: MonthLabel(month)}
	for _, emp := range emps {
		t := worked[emp.ID]
		row := ReportRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			ShiftCount:   t.count,
			WorkedHours:  t.hours,
			TargetHours:  emp.HoursPerMonth,
		}
		if emp.HoursPerMonth != nil {
			diff := t.hours - *emp.HoursPerMonth
			row.Difference = &diff
		}
		report.Rows = append(report.Rows, row)
		report.TotalHours += t.hours
	}
	return report, nil
}

// shiftHours converts a well-formed "HH:MM" pair into a decimal hour span.
func shiftHours(start, end string) float64 {
	return float64(clockMinutes(end)-clockMinutes(start)) / 60
}

func clockMinutes(clock string) int {
	if len(clock) != 5 {
		return 0
	}
	hours, _ := strconv.Atoi(clock[:2])
	minutes, _ := strconv.Atoi(clock[3:])
	return hours*60 + minutes
}
