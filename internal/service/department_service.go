package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

// Postgres error codes surfaced by writes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// DepartmentService manages departments.
type DepartmentService struct {
	departments repository.DepartmentRepository
}

// NewDepartmentService constructs the service.
func NewDepartmentService(departments repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// List returns all departments ordered by name.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return depts, nil
}

// Create inserts a department. The name is trimmed and must be non-empty;
// uniqueness violations surface as a conflict the form shows inline.
func (s *DepartmentService) Create(ctx context.Context, name string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("invalid department form", map[string]any{
			"errors": []string{"name must not be empty"},
			"values": map[string]string{"name": name},
		})
	}

	dept := &domain.Department{Name: name}
	if err := s.departments.Create(ctx, dept); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.NewConflict("department name already exists", map[string]any{
				"values": map[string]string{"name": name},
			})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return dept, nil
}

// Delete removes a department unless employees still reference it.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	err := s.departments.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDepartmentHasEmployees):
		return apperrors.NewConflict("department has employees", nil)
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.NewNotFound("department", nil)
	default:
		return apperrors.NewPersistenceError(err)
	}
}

// Count returns the total number of departments.
func (s *DepartmentService) Count(ctx context.Context) (int64, error) {
	return s.departments.CountAll(ctx)
}
