package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/forms"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// EmployeeService manages employee records.
type EmployeeService struct {
	employees repository.EmployeeRepository
}

// NewEmployeeService constructs the service.
func NewEmployeeService(employees repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// List returns all employees ordered by name, each with its department name.
func (s *EmployeeService) List(ctx context.Context) ([]domain.EmployeeWithDepartment, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return emps, nil
}

// Get returns one employee with its department name.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.EmployeeWithDepartment, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return emp, nil
}

// Create validates the form and inserts the employee. Absent optional fields
// persist as NULL.
func (s *EmployeeService) Create(ctx context.Context, raw forms.EmployeeFormValues) (*domain.Employee, error) {
	emp, values, errs := forms.ParseEmployeeForm(raw)
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError("invalid employee form", map[string]any{
			"errors": errs,
			"values": values,
		})
	}

	if err := s.employees.Create(ctx, &emp); err != nil {
		return nil, s.mapWriteError(err, values)
	}
	return &emp, nil
}

// Update validates the form and updates the employee in place.
func (s *EmployeeService) Update(ctx context.Context, id int64, raw forms.EmployeeFormValues) (*domain.Employee, error) {
	emp, values, errs := forms.ParseEmployeeForm(raw)
	if len(errs) > 0 {
		return nil, apperrors.NewValidationError("invalid employee form", map[string]any{
			"errors": errs,
			"values": values,
		})
	}

	emp.ID = id
	if err := s.employees.Update(ctx, &emp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", nil)
		}
		return nil, s.mapWriteError(err, values)
	}
	return &emp, nil
}

// Delete removes the employee; the store cascades to its shifts and leaves.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", nil)
		}
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// Count returns the total number of employees.
func (s *EmployeeService) Count(ctx context.Context) (int64, error) {
	return s.employees.CountAll(ctx)
}

// mapWriteError keeps the entered values around when a write fails so the
// form can be redisplayed instead of wiped.
func (s *EmployeeService) mapWriteError(err error, values forms.EmployeeFormValues) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return apperrors.NewValidationError("invalid employee form", map[string]any{
			"errors": []string{"invalid department selection"},
			"values": values,
		})
	}
	return apperrors.NewValidationError("invalid employee form", map[string]any{
		"errors": []string{"could not save employee"},
		"values": values,
	})
}
