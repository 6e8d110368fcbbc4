package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-planner/internal/domain"
)

// ErrDepartmentHasEmployees signals that a department is still referenced by
// at least one employee and must not be deleted.
var ErrDepartmentHasEmployees = errors.New("department has employees")

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
}

type departmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	const query = `
        SELECT id, name, created_at
        FROM departments ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name)
        VALUES ($1)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, dept.Name).Scan(&dept.ID, &dept.CreatedAt)
}

// Delete removes a department unless employees still reference it. The count
// and the delete run in one transaction so an employee inserted in between
// cannot orphan itself.
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var employees int64
	const countQuery = `SELECT COUNT(*) FROM employees WHERE department_id = $1`
	if err := tx.QueryRow(ctx, countQuery, id).Scan(&employees); err != nil {
		return err
	}
	if employees > 0 {
		return ErrDepartmentHasEmployees
	}

	cmd, err := tx.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *departmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count)
	return count, err
}
