package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/staff-planner/internal/domain"
	"github.com/spec-kit/staff-planner/internal/repository"
	apperrors "github.com/spec-kit/staff-planner/pkg/util"
)

func TestDepartmentCreateTrimsName(t *testing.T) {
	repo := &stubDepartmentRepo{
		createFn: func(ctx context.Context, dept *domain.Department) error {
			dept.ID = 1
			return nil
		},
	}
	svc := NewDepartmentService(repo)

	dept, err := svc.Create(context.Background(), "  Sales  ")
	require.NoError(t, err)
	assert.Equal(t, "Sales", dept.Name)
}

func TestDepartmentCreateEmptyNameRejected(t *testing.T) {
	created := false
	repo := &stubDepartmentRepo{
		createFn: func(ctx context.Context, dept *domain.Department) error {
			created = true
			return nil
		},
	}
	svc := NewDepartmentService(repo)

	_, err := svc.Create(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	assert.False(t, created, "nothing should be inserted")
}

func TestDepartmentCreateDuplicateName(t *testing.T) {
	repo := &stubDepartmentRepo{
		createFn: func(ctx context.Context, dept *domain.Department) error {
			return &pgconn.PgError{Code: "23505"}
		},
	}
	svc := NewDepartmentService(repo)

	_, err := svc.Create(context.Background(), "Sales")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
}

func TestDepartmentDeleteBlockedWhileReferenced(t *testing.T) {
	repo := &stubDepartmentRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return repository.ErrDepartmentHasEmployees
		},
	}
	svc := NewDepartmentService(repo)

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "department has employees", domainErr.Message)
}

func TestDepartmentDeleteMissing(t *testing.T) {
	repo := &stubDepartmentRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return pgx.ErrNoRows
		},
	}
	svc := NewDepartmentService(repo)

	err := svc.Delete(context.Background(), 99)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestDepartmentDeleteSucceeds(t *testing.T) {
	var deleted int64
	repo := &stubDepartmentRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	svc := NewDepartmentService(repo)

	require.NoError(t, svc.Delete(context.Background(), 5))
	assert.Equal(t, int64(5), deleted)
}
