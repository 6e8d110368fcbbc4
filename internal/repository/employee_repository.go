package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-planner/internal/domain"
)

// EmployeeRepository manages employee persistence.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.EmployeeWithDepartment, error)
	GetByID(ctx context.Context, id int64) (*domain.EmployeeWithDepartment, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.EmployeeWithDepartment, error) {
	const query = `
        SELECT e.id, e.name, e.email, e.employment_type, e.hours_per_month,
               e.department_id, e.created_at, d.name
        FROM employees e
        LEFT JOIN departments d ON d.id = e.department_id
        ORDER BY e.name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.EmployeeWithDepartment
	for rows.Next() {
		var emp domain.EmployeeWithDepartment
		if err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Email,
			&emp.EmploymentType,
			&emp.HoursPerMonth,
			&emp.DepartmentID,
			&emp.CreatedAt,
			&emp.DepartmentName,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.EmployeeWithDepartment, error) {
	const query = `
        SELECT e.id, e.name, e.email, e.employment_type, e.hours_per_month,
               e.department_id, e.created_at, d.name
        FROM employees e
        LEFT JOIN departments d ON d.id = e.department_id
        WHERE e.id = $1`
	var emp domain.EmployeeWithDepartment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.EmploymentType,
		&emp.HoursPerMonth,
		&emp.DepartmentID,
		&emp.CreatedAt,
		&emp.DepartmentName,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (name, email, employment_type, hours_per_month, department_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		emp.Name,
		emp.Email,
		emp.EmploymentType,
		emp.HoursPerMonth,
		emp.DepartmentID,
	).Scan(&emp.ID, &emp.CreatedAt)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees
        SET name=$1, email=$2, employment_type=$3, hours_per_month=$4, department_id=$5
        WHERE id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		emp.Name,
		emp.Email,
		emp.EmploymentType,
		emp.HoursPerMonth,
		emp.DepartmentID,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}
