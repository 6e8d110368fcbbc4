package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-planner/internal/domain"
)

// LeaveRepository manages absence-request persistence.
type LeaveRepository interface {
	ListForMonth(ctx context.Context, year, month int) ([]domain.LeaveWithEmployee, error)
	Create(ctx context.Context, leave *domain.Leave) error
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository builds the repository.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

// ListForMonth returns leaves overlapping the given month, earliest first.
func (r *leaveRepository) ListForMonth(ctx context.Context, year, month int) ([]domain.LeaveWithEmployee, error) {
	const query = `
        SELECT l.id, l.employee_id, l.start_date, l.end_date, l.leave_type,
               l.approved, l.notes, l.created_at, e.name
        FROM leaves l
        JOIN employees e ON e.id = l.employee_id
        WHERE l.start_date < make_date($1, $2, 1) + INTERVAL '1 month'
          AND l.end_date >= make_date($1, $2, 1)
        ORDER BY l.start_date ASC, e.name ASC`
	rows, err := r.pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeaveWithEmployee
	for rows.Next() {
		var leave domain.LeaveWithEmployee
		if err := rows.Scan(
			&leave.ID,
			&leave.EmployeeID,
			&leave.StartDate,
			&leave.EndDate,
			&leave.LeaveType,
			&leave.Approved,
			&leave.Notes,
			&leave.CreatedAt,
			&leave.EmployeeName,
		); err != nil {
			return nil, err
		}
		result = append(result, leave)
	}
	return result, rows.Err()
}

func (r *leaveRepository) Create(ctx context.Context, leave *domain.Leave) error {
	const query = `
        INSERT INTO leaves (employee_id, start_date, end_date, leave_type, approved, notes)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		leave.EmployeeID,
		leave.StartDate,
		leave.EndDate,
		leave.LeaveType,
		leave.Approved,
		leave.Notes,
	).Scan(&leave.ID, &leave.CreatedAt)
}

func (r *leaveRepository) Approve(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE leaves SET approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
