package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// expenseRepository implements domain.ExpenseRepository
type expenseRepository struct {
	db *DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *DB) domain.ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, user_id, name, category, amount, frequency, due_date, is_active, created_at, updated_at`

func (r *expenseRepository) Create(ctx context.Context, exp *domain.Expense) error {
	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		exp.ID,
		exp.UserID,
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
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND id = $2
	`
	exp, err := scanExpense(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return exp, nil
}

func (r *expenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]*domain.Expense, 0)
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, exp *domain.Expense) error {
	query := `
		UPDATE expenses
		SET name = $3, category = $4, amount = $5, frequency = $6, due_date = $7, is_active = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		exp.UserID,
		exp.ID,
		exp.Name,
		exp.Category,
		exp.Amount.String(),
		string(exp.Frequency),
		nullTime(exp.DueDate),
		exp.IsActive,
		exp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return requireRow(result)
}

func (r *expenseRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireRow(result)
}

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var exp domain.Expense
	var dueDate sql.NullTime
	var frequency string

	err := row.Scan(
		&exp.ID,
		&exp.UserID,
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
	if dueDate.Valid {
		exp.DueDate = &dueDate.Time
	}
	return &exp, nil
}
