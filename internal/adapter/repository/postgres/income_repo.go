package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// incomeSourceRepository implements domain.IncomeSourceRepository
type incomeSourceRepository struct {
	db *DB
}

// NewIncomeSourceRepository creates a new income source repository
func NewIncomeSourceRepository(db *DB) domain.IncomeSourceRepository {
	return &incomeSourceRepository{db: db}
}

const incomeColumns = `id, user_id, source, amount, frequency, next_pay_date, is_active, created_at, updated_at`

func (r *incomeSourceRepository) Create(ctx context.Context, src *domain.IncomeSource) error {
	query := `
		INSERT INTO income_sources (` + incomeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		src.ID,
		src.UserID,
		src.Source,
		src.Amount.String(),
		string(src.Frequency),
		nullTime(src.NextPayDate),
		src.IsActive,
		src.CreatedAt,
		src.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create income source: %w", err)
	}
	return nil
}

func (r *incomeSourceRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.IncomeSource, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM income_sources
		WHERE user_id = $1 AND id = $2
	`
	src, err := scanIncomeSource(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get income source: %w", err)
	}
	return src, nil
}

func (r *incomeSourceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.IncomeSource, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM income_sources
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	defer rows.Close()

	sources := make([]*domain.IncomeSource, 0)
	for rows.Next() {
		src, err := scanIncomeSource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income source: %w", err)
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate income sources: %w", err)
	}
	return sources, nil
}

func (r *incomeSourceRepository) Update(ctx context.Context, src *domain.IncomeSource) error {
	query := `
		UPDATE income_sources
		SET source = $3, amount = $4, frequency = $5, next_pay_date = $6, is_active = $7, updated_at = $8
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		src.UserID,
		src.ID,
		src.Source,
		src.Amount.String(),
		string(src.Frequency),
		nullTime(src.NextPayDate),
		src.IsActive,
		src.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update income source: %w", err)
	}
	return requireRow(result)
}

func (r *incomeSourceRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM income_sources WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete income source: %w", err)
	}
	return requireRow(result)
}

func scanIncomeSource(row rowScanner) (*domain.IncomeSource, error) {
	var src domain.IncomeSource
	var nextPay sql.NullTime
	var frequency string

	err := row.Scan(
		&src.ID,
		&src.UserID,
		&src.Source,
		&src.Amount,
		&frequency,
		&nextPay,
		&src.IsActive,
		&src.CreatedAt,
		&src.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	src.Frequency = domain.Frequency(frequency)
	if nextPay.Valid {
		src.NextPayDate = &nextPay.Time
	}
	return &src, nil
}
