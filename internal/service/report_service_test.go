package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-planner/internal/domain"
)

func TestMonthlyReportSumsHoursPerEmployee(t *testing.T) {
	target := 40.0
	employees := &stubEmployeeRepo{
		listFn: func(ctx context.Context) ([]domain.EmployeeWithDepartment, error) {
			return []domain.EmployeeWithDepartment{
				{Employee: domain.Employee{ID: 1, Name: "Ana", HoursPerMonth: &target}},
				{Employee: domain.Employee{ID: 2, Name: "Bo"}},
			}, nil
		},
	}
	shifts := &stubShiftRepo{
		listFn: func(ctx context.Context, year, month int) ([]domain.ShiftWithEmployee, error) {
			return []domain.ShiftWithEmployee{
				{Shift: domain.Shift{EmployeeID: 1, StartTime: "09:00", EndTime: "17:00"}},
				{Shift: domain.Shift{EmployeeID: 1, StartTime: "09:30", EndTime: "12:00"}},
			}, nil
		},
	}

	svc := NewReportService(employees, shifts)
	svc.now = func() time.Time { return fixedNow }

	report, err := svc.MonthlyReport(context.Background(), "3", "2024")
	require.NoError(t, err)

	require.Len(t, report.Rows, 2)

	ana := report.Rows[0]
	assert.Equal(t, "Ana", ana.EmployeeName)
	assert.Equal(t, 2, ana.ShiftCount)
	assert.InDelta(t, 10.5, ana.WorkedHours, 1e-9)
	require.NotNil(t, ana.Difference)
	assert.InDelta(t, -29.5, *ana.Difference, 1e-9)

	bo := report.Rows[1]
	assert.Zero(t, bo.ShiftCount)
	assert.Zero(t, bo.WorkedHours)
	assert.Nil(t, bo.TargetHours)
	assert.Nil(t, bo.Difference)

	assert.InDelta(t, 10.5, report.TotalHours, 1e-9)
	assert.Equal(t, "March", report.MonthLabel)
}
