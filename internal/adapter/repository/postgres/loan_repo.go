package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// loanRepository implements domain.LoanRepository
type loanRepository struct {
	db *DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *DB) domain.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, user_id, display_name, lender, balance, original_amount, monthly_payment, interest_rate, next_due_date, created_at, updated_at`

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		loan.ID,
		loan.UserID,
		loan.DisplayName,
		loan.Lender,
		loan.Balance.String(),
		loan.OriginalAmount.String(),
		loan.MonthlyPayment.String(),
		loan.InterestRate.String(),
		nullTime(loan.NextDueDate),
		loan.CreatedAt,
		loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create loan: %w", err)
	}
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1 AND id = $2
	`
	loan, err := scanLoan(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

func (r *loanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]*domain.Loan, 0)
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loans: %w", err)
	}
	return loans, nil
}

func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	query := `
		UPDATE loans
		SET display_name = $3, lender = $4, balance = $5, original_amount = $6,
		    monthly_payment = $7, interest_rate = $8, next_due_date = $9, updated_at = $10
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		loan.UserID,
		loan.ID,
		loan.DisplayName,
		loan.Lender,
		loan.Balance.String(),
		loan.OriginalAmount.String(),
		loan.MonthlyPayment.String(),
		loan.InterestRate.String(),
		nullTime(loan.NextDueDate),
		loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	return requireRow(result)
}

func (r *loanRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM loans WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	return requireRow(result)
}

func scanLoan(row rowScanner) (*domain.Loan, error) {
	var loan domain.Loan
	var nextDue sql.NullTime

	err := row.Scan(
		&loan.ID,
		&loan.UserID,
		&loan.DisplayName,
		&loan.Lender,
		&loan.Balance,
		&loan.OriginalAmount,
		&loan.MonthlyPayment,
		&loan.InterestRate,
		&nextDue,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if nextDue.Valid {
		loan.NextDueDate = &nextDue.Time
	}
	return &loan, nil
}
