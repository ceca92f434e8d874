package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// businessProfileRepository implements domain.BusinessProfileRepository
type businessProfileRepository struct {
	db *DB
}

// NewBusinessProfileRepository creates a new business profile repository
func NewBusinessProfileRepository(db *DB) domain.BusinessProfileRepository {
	return &businessProfileRepository{db: db}
}

func (r *businessProfileRepository) Create(ctx context.Context, profile *domain.BusinessProfile) error {
	query := `
		INSERT INTO business_profiles (id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, profile.ID, profile.UserID, profile.Name, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create business profile: %w", err)
	}
	return nil
}

func (r *businessProfileRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.BusinessProfile, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM business_profiles
		WHERE user_id = $1 AND id = $2
	`
	var profile domain.BusinessProfile
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&profile.ID, &profile.UserID, &profile.Name, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business profile: %w", err)
	}
	return &profile, nil
}

func (r *businessProfileRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.BusinessProfile, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM business_profiles
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*domain.BusinessProfile, 0)
	for rows.Next() {
		var profile domain.BusinessProfile
		if err := rows.Scan(&profile.ID, &profile.UserID, &profile.Name, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan business profile: %w", err)
		}
		profiles = append(profiles, &profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate business profiles: %w", err)
	}
	return profiles, nil
}

func (r *businessProfileRepository) Update(ctx context.Context, profile *domain.BusinessProfile) error {
	query := `
		UPDATE business_profiles
		SET name = $3, updated_at = $4
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query, profile.UserID, profile.ID, profile.Name, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update business profile: %w", err)
	}
	return requireRow(result)
}

func (r *businessProfileRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM business_profiles WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete business profile: %w", err)
	}
	return requireRow(result)
}

// businessRevenueRepository implements domain.BusinessRevenueRepository
type businessRevenueRepository struct {
	db *DB
}

// NewBusinessRevenueRepository creates a new business revenue repository
func NewBusinessRevenueRepository(db *DB) domain.BusinessRevenueRepository {
	return &businessRevenueRepository{db: db}
}

const businessRevenueColumns = `id, user_id, business_profile_id, source, amount, frequency, next_pay_date, is_active, created_at, updated_at`

func (r *businessRevenueRepository) Create(ctx context.Context, rev *domain.BusinessRevenue) error {
	query := `
		INSERT INTO business_revenues (` + businessRevenueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		rev.ID,
		rev.UserID,
		nullUUID(rev.BusinessProfileID),
		rev.Source,
		rev.Amount.String(),
		string(rev.Frequency),
		nullTime(rev.NextPayDate),
		rev.IsActive,
		rev.CreatedAt,
		rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create business revenue: %w", err)
	}
	return nil
}

func (r *businessRevenueRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.BusinessRevenue, error) {
	query := `
		SELECT ` + businessRevenueColumns + `
		FROM business_revenues
		WHERE user_id = $1 AND id = $2
	`
	rev, err := scanBusinessRevenue(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business revenue: %w", err)
	}
	return rev, nil
}

func (r *businessRevenueRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.BusinessRevenue, error) {
	query := `
		SELECT ` + businessRevenueColumns + `
		FROM business_revenues
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business revenues: %w", err)
	}
	defer rows.Close()

	revenues := make([]*domain.BusinessRevenue, 0)
	for rows.Next() {
		rev, err := scanBusinessRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business revenue: %w", err)
		}
		revenues = append(revenues, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate business revenues: %w", err)
	}
	return revenues, nil
}

func (r *businessRevenueRepository) Update(ctx context.Context, rev *domain.BusinessRevenue) error {
	query := `
		UPDATE business_revenues
		SET business_profile_id = $3, source = $4, amount = $5, frequency = $6,
		    next_pay_date = $7, is_active = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		rev.UserID,
		rev.ID,
		nullUUID(rev.BusinessProfileID),
		rev.Source,
		rev.Amount.String(),
		string(rev.Frequency),
		nullTime(rev.NextPayDate),
		rev.IsActive,
		rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update business revenue: %w", err)
	}
	return requireRow(result)
}

func (r *businessRevenueRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM business_revenues WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete business revenue: %w", err)
	}
	return requireRow(result)
}

func scanBusinessRevenue(row rowScanner) (*domain.BusinessRevenue, error) {
	var rev domain.BusinessRevenue
	var profileID uuid.NullUUID
	var nextPay sql.NullTime
	var frequency string

	err := row.Scan(
		&rev.ID,
		&rev.UserID,
		&profileID,
		&rev.Source,
		&rev.Amount,
		&frequency,
		&nextPay,
		&rev.IsActive,
		&rev.CreatedAt,
		&rev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rev.Frequency = domain.Frequency(frequency)
	if profileID.Valid {
		rev.BusinessProfileID = &profileID.UUID
	}
	if nextPay.Valid {
		rev.NextPayDate = &nextPay.Time
	}
	return &rev, nil
}

// businessExpenseRepository implements domain.BusinessExpenseRepository
type businessExpenseRepository struct {
	db *DB
}

// NewBusinessExpenseRepository creates a new business expense repository
func NewBusinessExpenseRepository(db *DB) domain.BusinessExpenseRepository {
	return &businessExpenseRepository{db: db}
}

const businessExpenseColumns = `id, user_id, business_profile_id, name, category, amount, frequency, due_date, is_active, created_at, updated_at`

func (r *businessExpenseRepository) Create(ctx context.Context, exp *domain.BusinessExpense) error {
	query := `
		INSERT INTO business_expenses (` + businessExpenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		exp.ID,
		exp.UserID,
		nullUUID(exp.BusinessProfileID),
		exp.Name,
		exp.Category,
		exp.Amount.String(),
		string(exp.Frequency),
		nullTime(exp.DueDate),
		exp.IsActive,
		exp.CreatedAt,
		exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create business expense: %w", err)
	}
	return nil
}

func (r *businessExpenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.BusinessExpense, error) {
	query := `
		SELECT ` + businessExpenseColumns + `
		FROM business_expenses
		WHERE user_id = $1 AND id = $2
	`
	exp, err := scanBusinessExpense(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business expense: %w", err)
	}
	return exp, nil
}

func (r *businessExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.BusinessExpense, error) {
	query := `
		SELECT ` + businessExpenseColumns + `
		FROM business_expenses
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.BusinessExpense, 0)
	for rows.Next() {
		exp, err := scanBusinessExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate business expenses: %w", err)
	}
	return expenses, nil
}

func (r *businessExpenseRepository) Update(ctx context.Context, exp *domain.BusinessExpense) error {
	query := `
		UPDATE business_expenses
		SET business_profile_id = $3, name = $4, category = $5, amount = $6,
		    frequency = $7, due_date = $8, is_active = $9, updated_at = $10
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		exp.UserID,
		exp.ID,
		nullUUID(exp.BusinessProfileID),
		exp.Name,
		exp.Category,
		exp.Amount.String(),
		string(exp.Frequency),
		nullTime(exp.DueDate),
		exp.IsActive,
		exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update business expense: %w", err)
	}
	return requireRow(result)
}

func (r *businessExpenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM business_expenses WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete business expense: %w", err)
	}
	return requireRow(result)
}

func scanBusinessExpense(row rowScanner) (*domain.BusinessExpense, error) {
	var exp domain.BusinessExpense
	var profileID uuid.NullUUID
	var dueDate sql.NullTime
	var frequency string

	err := row.Scan(
		&exp.ID,
		&exp.UserID,
		&profileID,
		&exp.Name,
		&exp.Category,
		&exp.Amount,
		&frequency,
		&dueDate,
		&exp.IsActive,
		&exp.CreatedAt,
		&exp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	exp.Frequency = domain.Frequency(frequency)
	if profileID.Valid {
		exp.BusinessProfileID = &profileID.UUID
	}
	if dueDate.Valid {
		exp.DueDate = &dueDate.Time
	}
	return &exp, nil
}
