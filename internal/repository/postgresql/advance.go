package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/advance"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, employee_id, employee_name, amount, date, notes,
	   recorded_by_uid, recorded_by_name, created_at`

func scanAdvance(row pgx.Row) (advance.SalaryAdvance, error) {
	var adv advance.SalaryAdvance
	err := row.Scan(
		&adv.ID, &adv.EmployeeID, &adv.EmployeeName, &adv.Amount, &adv.Date, &adv.Notes,
		&adv.RecordedByUID, &adv.RecordedByName, &adv.CreatedAt,
	)
	return adv, err
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepository) Create(ctx context.Context, adv advance.SalaryAdvance) (advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	// date is NOW() server-side; callers never supply it
	query := `
		INSERT INTO salary_advances (
			id, employee_id, employee_name, amount, date, notes, recorded_by_uid, recorded_by_name
		) VALUES (
			$1, $2, $3, $4, NOW(), $5, $6, $7
		) RETURNING id, date, created_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		adv.EmployeeID,
		adv.EmployeeName,
		adv.Amount,
		adv.Notes,
		adv.RecordedByUID,
		adv.RecordedByName,
	).Scan(&adv.ID, &adv.Date, &adv.CreatedAt)

	if err != nil {
		return advance.SalaryAdvance{}, fmt.Errorf("failed to create salary advance: %w", err)
	}

	return adv, nil
}

// GetByID implements advance.AdvanceRepository.
func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM salary_advances WHERE id = $1`

	adv, err := scanAdvance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return advance.SalaryAdvance{}, advance.ErrAdvanceNotFound
		}
		return advance.SalaryAdvance{}, fmt.Errorf("failed to get salary advance by ID: %w", err)
	}

	return adv, nil
}

// List implements advance.AdvanceRepository.
func (r *advanceRepository) List(ctx context.Context, employeeID *string, start, end *time.Time) ([]advance.SalaryAdvance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if employeeID != nil && *employeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *employeeID)
		argIdx++
	}
	if start != nil {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *end)
		argIdx++
	}

	query := `SELECT ` + advanceColumns + ` FROM salary_advances WHERE ` + baseWhere + ` ORDER BY date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.SalaryAdvance
	for rows.Next() {
		adv, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary advance: %w", err)
		}
		advances = append(advances, adv)
	}

	return advances, nil
}

// Delete implements advance.AdvanceRepository.
func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_advances WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary advance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}
