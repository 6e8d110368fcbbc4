package service

import (
	"context"
	"time"

	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/forms"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// ScheduleService derives the monthly shift view and handles shift writes.
type ScheduleService struct {
	shifts repository.ShiftRepository
	now    func() time.Time
}

// NewScheduleService constructs the service.
func NewScheduleService(shifts repository.ShiftRepository) *ScheduleService {
	return &ScheduleService{shifts: shifts, now: time.Now}
}

// MonthSchedule is everything the schedule screen needs for one month.
type MonthSchedule struct {
	Year         int
	Month        int
	MonthLabel   string
	Prev         MonthTarget
	Next         MonthTarget
	Days         map[string][]domain.ShiftWithEmployee
	DayOrder     []string
	FormDefaults ShiftFormDefaults
}

// MonthView resolves the requested month and assembles the schedule for it.
func (s *ScheduleService) MonthView(ctx context.Context, monthStr, yearStr string) (*MonthSchedule, error) {
	year, month := ResolveMonthYear(monthStr, yearStr, s.now())

	shifts, err := s.shifts.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	days, order := GroupByDate(shifts)
	prev, next := NavigationTargets(year, month)

	return &MonthSchedule{
		Year:         year,
		Month:        month,
		MonthLabel:   MonthLabel(month),
		Prev:         prev,
		Next:         next,
		Days:         days,
		DayOrder:     order,
		FormDefaults: DefaultShiftFormValues(year, month, s.now()),
	}, nil
}

// GroupByDate partitions shifts by ISO date, preserving the per-day start-time
// order of the input. The returned slice lists the dates in first-seen order,
// which for a date-ordered input is ascending.
func GroupByDate(shifts []domain.ShiftWithEmployee) (map[string][]domain.ShiftWithEmployee, []string) {
	days := make(map[string][]domain.ShiftWithEmployee)
	var order []string
	for _, shift := range shifts {
		key := shift.ISODate()
		if _, seen := days[key]; !seen {
			order = append(order, key)
		}
		days[key] = append(days[key], shift)
	}
	return days, order
}

// CreateShift validates the form and inserts the shift. A store failure (for
// example the employee vanished in between) comes back as a redisplayable
// "could not save shift" so the entered values are not lost.
func (s *ScheduleService) CreateShift(ctx context.Context, raw forms.ShiftFormValues) (*domain.Shift, error) {
	shift, values, errs := forms.ParseShiftForm(raw)
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError("invalid shift form", map[string]any{
			"errors": errs,
			"values": values,
		})
	}

	if err := s.shifts.Create(ctx, &shift); err != nil {
		return nil, apperrors.NewValidationError("invalid shift form", map[string]any{
			"errors": []string{"could not save shift"},
			"values": values,
		})
	}
	return &shift, nil
}

// DeleteShift deletes unconditionally.
func (s *ScheduleService) DeleteShift(ctx context.Context, id int64) error {
	if err := s.shifts.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
