package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shift-service/internal/domain"
)

// ShiftFilter captures schedule search parameters.
type ShiftFilter struct {
	OrganizationID string
	UserID         *string
	Department     *string
	Role           *string
	DateFrom       *string
	DateTo         *string
	Limit          int
	Offset         int
}

// ShiftRepository encapsulates shift persistence.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Shift, error)
	ListForUserOnDate(ctx context.Context, userID, date string) ([]domain.Shift, error)
	ListWithFilter(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error)
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository instantiates repository.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

const shiftColumns = `id, organization_id, user_id, date, start_time, end_time, role, department, created_at, updated_at`

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (organization_id, user_id, date, start_time, end_time, role, department)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		shift.OrganizationID,
		shift.UserID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.Role,
		shift.Department,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM shifts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*domain.Shift, error) {
	const query = `SELECT ` + shiftColumns + ` FROM shifts WHERE id=$1`
	var shift domain.Shift
	if err := scanShift(r.pool.QueryRow(ctx, query, id).Scan, &shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// ListForUserOnDate is the conflict-check query: every shift already
// persisted for the assignee on that day.
func (r *shiftRepository) ListForUserOnDate(ctx context.Context, userID, date string) ([]domain.Shift, error) {
	const query = `
        SELECT ` + shiftColumns + `
        FROM shifts WHERE user_id=$1 AND date=$2
        ORDER BY start_time`
	rows, err := r.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func (r *shiftRepository) ListWithFilter(ctx context.Context, filter ShiftFilter) ([]domain.Shift, error) {
	base := `SELECT ` + shiftColumns + ` FROM shifts`
	args := []any{filter.OrganizationID}
	clauses := []string{"organization_id=$1"}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if filter.Department != nil {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("department=$%d", len(args)))
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		clauses = append(clauses, fmt.Sprintf("role=$%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY date, start_time LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]domain.Shift, error) {
	var result []domain.Shift
	for rows.Next() {
		var shift domain.Shift
		if err := scanShift(rows.Scan, &shift); err != nil {
			return nil, err
		}
		result = append(result, shift)
	}
	return result, rows.Err()
}

func scanShift(scan func(dest ...any) error, shift *domain.Shift) error {
	return scan(
		&shift.ID,
		&shift.OrganizationID,
		&shift.UserID,
		&shift.Date,
		&shift.StartTime,
		&shift.EndTime,
		&shift.Role,
		&shift.Department,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)
}
