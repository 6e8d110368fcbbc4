package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staff-planner/internal/domain"
)

// ShiftRepository manages shift persistence. Times travel as zero-padded
// "HH:MM" strings and are cast at the store boundary.
type ShiftRepository interface {
	ListForMonth(ctx context.Context, year, month int) ([]domain.ShiftWithEmployee, error)
	Create(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id int64) error
	CountForMonth(ctx context.Context, year, month int) (int64, error)
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository builds the repository.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

func (r *shiftRepository) ListForMonth(ctx context.Context, year, month int) ([]domain.ShiftWithEmployee, error) {
	const query = `
        SELECT s.id, s.employee_id, s.shift_date,
               to_char(s.start_time, 'HH24:MI'), to_char(s.end_time, 'HH24:MI'),
               s.created_at, e.name
        FROM shifts s
        JOIN employees e ON e.id = s.employee_id
        WHERE s.shift_date >= make_date($1, $2, 1)
          AND s.shift_date < make_date($1, $2, 1) + INTERVAL '1 month'
        ORDER BY s.shift_date ASC, s.start_time ASC`
	rows, err := r.pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ShiftWithEmployee
	for rows.Next() {
		var shift domain.ShiftWithEmployee
		if err := rows.Scan(
			&shift.ID,
			&shift.EmployeeID,
			&shift.Date,
			&shift.StartTime,
			&shift.EndTime,
			&shift.CreatedAt,
			&shift.EmployeeName,
		); err != nil {
			return nil, err
		}
		result = append(result, shift)
	}
	return result, rows.Err()
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (employee_id, shift_date, start_time, end_time)
        VALUES ($1, $2, $3::time, $4::time)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
	).Scan(&shift.ID, &shift.CreatedAt)
}

func (r *shiftRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *shiftRepository) CountForMonth(ctx context.Context, year, month int) (int64, error) {
	const query = `
        SELECT COUNT(*) FROM shifts
        WHERE shift_date >= make_date($1, $2, 1)
          AND shift_date < make_date($1, $2, 1) + INTERVAL '1 month'`
	var count int64
	err := r.pool.QueryRow(ctx, query, year, month).Scan(&count)
	return count, err
}
