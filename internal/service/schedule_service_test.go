package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/forms"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

func shiftOn(day int, start, end, name string) domain.ShiftWithEmployee {
	return domain.ShiftWithEmployee{
		Shift: domain.Shift{
			Date:      time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			StartTime: start,
			EndTime:   end,
		},
		EmployeeName: name,
	}
}

func TestGroupByDatePreservesOrder(t *testing.T) {
	shifts := []domain.ShiftWithEmployee{
		shiftOn(1, "08:00", "12:00", "Ana"),
		shiftOn(1, "12:00", "16:00", "Bo"),
		shiftOn(3, "09:00", "17:00", "Ana"),
	}

	days, order := GroupByDate(shifts)

	assert.Equal(t, []string{"2024-03-01", "2024-03-03"}, order)
	require.Len(t, days["2024-03-01"], 2)
	assert.Equal(t, "08:00", days["2024-03-01"][0].StartTime)
	assert.Equal(t, "12:00", days["2024-03-01"][1].StartTime)
	require.Len(t, days["2024-03-03"], 1)
}

func TestGroupByDateEmpty(t *testing.T) {
	days, order := GroupByDate(nil)
	assert.Empty(t, days)
	assert.Empty(t, order)
}

func TestMonthViewAssemblesSchedule(t *testing.T) {
	repo := &stubShiftRepo{
		listFn: func(ctx context.Context, year, month int) ([]domain.ShiftWithEmployee, error) {
			assert.Equal(t, 2024, year)
			assert.Equal(t, 1, month)
			return []domain.ShiftWithEmployee{shiftOn(5, "09:00", "17:00", "Ana")}, nil
		},
	}
	svc := NewScheduleService(repo)
	svc.now = func() time.Time { return fixedNow }

	view, err := svc.MonthView(context.Background(), "1", "2024")
	require.NoError(t, err)

	assert.Equal(t, "January", view.MonthLabel)
	assert.Equal(t, MonthTarget{Year: 2023, Month: 12}, view.Prev)
	assert.Equal(t, MonthTarget{Year: 2024, Month: 2}, view.Next)
	assert.Equal(t, "2024-01-01", view.FormDefaults.Date)
	require.Contains(t, view.Days, "2024-03-05")
}

func TestCreateShiftRejectsReversedTimesWithoutInsert(t *testing.T) {
	inserted := false
	repo := &stubShiftRepo{
		createFn: func(ctx context.Context, shift *domain.Shift) error {
			inserted = true
			return nil
		},
	}
	svc := NewScheduleService(repo)

	_, err := svc.CreateShift(context.Background(), forms.ShiftFormValues{
		EmployeeID: "1",
		Date:       "2024-03-15",
		StartTime:  "17:00",
		EndTime:    "09:00",
	})

	require.Error(t, err)
	assert.False(t, inserted)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details["errors"], "end time must be after start time")
}

func TestCreateShiftStoreFailureKeepsValues(t *testing.T) {
	repo := &stubShiftRepo{
		createFn: func(ctx context.Context, shift *domain.Shift) error {
			return errors.New("employee vanished")
		},
	}
	svc := NewScheduleService(repo)

	raw := forms.ShiftFormValues{
		EmployeeID: "1",
		Date:       "2024-03-15",
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
	_, err := svc.CreateShift(context.Background(), raw)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, []string{"could not save shift"}, domainErr.Details["errors"])
	assert.Equal(t, raw, domainErr.Details["values"])
}

func TestCreateShiftValid(t *testing.T) {
	repo := &stubShiftRepo{
		createFn: func(ctx context.Context, shift *domain.Shift) error {
			shift.ID = 42
			return nil
		},
	}
	svc := NewScheduleService(repo)

	shift, err := svc.CreateShift(context.Background(), forms.ShiftFormValues{
		EmployeeID: "1",
		Date:       "2024-03-15",
		StartTime:  "09:00",
		EndTime:    "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), shift.ID)
}
