package calculations

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB  *sql.DB
	Now func() time.Time
}

const selectColumns = `id, user_id, factors, result, created_at`

// Create inserts a new calculation.
func (r *PGRepo) Create(ctx context.Context, calc Calculation) error {
	const query = `
INSERT INTO calculations (
    id,
    user_id,
    factors,
    result,
    base_lifespan,
    adjusted_lifespan,
    total_adjustment,
    health_score,
    country,
    gender,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	factors, err := json.Marshal(calc.Factors)
	if err != nil {
		return fmt.Errorf("encode factors: %w", err)
	}
	result, err := json.Marshal(calc.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		calc.ID,
		calc.UserID,
		factors,
		result,
		calc.Result.BaseLifespan,
		calc.Result.AdjustedLifespan,
		calc.Result.TotalAdjustment,
		string(calc.Result.HealthScore),
		calc.Result.Country,
		calc.Result.Gender,
		calc.CreatedAt,
	)
	return err
}

// GetByID fetches a live calculation by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Calculation, error) {
	query := `
SELECT ` + selectColumns + `
FROM calculations
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	calc, err := scanCalculation(r.DB.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Calculation{}, ErrNotFound
		}
		return Calculation{}, err
	}
	return calc, nil
}

// ListByUser lists live calculations ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Calculation, error) {
	limit, offset = clampPage(limit, offset)
	query := `
SELECT ` + selectColumns + `
FROM calculations
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Calculation{}
	for rows.Next() {
		calc, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, calc)
	}
	return out, rows.Err()
}

// SoftDelete marks a calculation deleted.
func (r *PGRepo) SoftDelete(ctx context.Context, userID, id string) error {
	const query = `
UPDATE calculations
SET deleted_at = $3
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	res, err := r.DB.ExecContext(ctx, query, userID, id, now().UTC())
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCalculation(row rowScanner) (Calculation, error) {
	var calc Calculation
	var factors, result []byte
	if err := row.Scan(&calc.ID, &calc.UserID, &factors, &result, &calc.CreatedAt); err != nil {
		return Calculation{}, err
	}
	if err := json.Unmarshal(factors, &calc.Factors); err != nil {
		return Calculation{}, fmt.Errorf("decode factors: %w", err)
	}
	if err := json.Unmarshal(result, &calc.Result); err != nil {
		return Calculation{}, fmt.Errorf("decode result: %w", err)
	}
	return calc, nil
}
