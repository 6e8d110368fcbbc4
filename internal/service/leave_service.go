package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/forms"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// LeaveService manages absence requests.
type LeaveService struct {
	leaves repository.LeaveRepository
	now    func() time.Time
}

// NewLeaveService constructs the service.
func NewLeaveService(leaves repository.LeaveRepository) *LeaveService {
	return &LeaveService{leaves: leaves, now: time.Now}
}

// ListForMonth returns leaves overlapping the requested month.
func (s *LeaveService) ListForMonth(ctx context.Context, monthStr, yearStr string) ([]domain.LeaveWithEmployee, int, int, error) {
	year, month := ResolveMonthYear(monthStr, yearStr, s.now())
	leaves, err := s.leaves.ListForMonth(ctx, year, month)
	if err != nil {
		return nil, 0, 0, apperrors.NewPersistenceError(err)
	}
	return leaves, year, month, nil
}

// Create validates the form and inserts a pending leave.
func (s *LeaveService) Create(ctx context.Context, raw forms.LeaveFormValues) (*domain.Leave, error) {
	leave, values, errs := forms.ParseLeaveForm(raw)
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError("invalid leave form", map[string]any{
			"errors": errs,
			"values": values,
		})
	}

	if err := s.leaves.Create(ctx, &leave); err != nil {
		return nil, apperrors.NewValidationError("invalid leave form", map[string]any{
			"errors": []string{"could not save leave"},
			"values": values,
		})
	}
	return &leave, nil
}

// Approve marks a pending leave as approved.
func (s *LeaveService) Approve(ctx context.Context, id int64) error {
	if err := s.leaves.Approve(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("leave", nil)
		}
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// Decline removes a leave request. Declined requests are not retained.
func (s *LeaveService) Decline(ctx context.Context, id int64) error {
	return s.Delete(ctx, id)
}

// Delete removes a leave.
func (s *LeaveService) Delete(ctx context.Context, id int64) error {
	if err := s.leaves.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("leave", nil)
		}
		return apperrors.NewPersistenceError(err)
	}
	return nil
}
