package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// paymentRepository implements domain.PaymentRepository
type paymentRepository struct {
	db *DB
}

// NewPaymentRepository creates a new payment record repository
func NewPaymentRepository(db *DB) domain.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, user_id, account_id, account_type, amount, status, paid_date, payment_method, confirmation_number, notes, created_at, updated_at`

func (r *paymentRepository) Create(ctx context.Context, rec *domain.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.AccountID,
		string(rec.AccountType),
		rec.Amount.String(),
		string(rec.Status),
		nullTime(rec.PaidDate),
		rec.PaymentMethod,
		rec.ConfirmationNumber,
		rec.Notes,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment record: %w", err)
	}
	return nil
}

// MarkPaid transitions a record to paid. Only pending records transition;
// re-settling an already paid record is a no-op reported as ErrNotFound.
func (r *paymentRepository) MarkPaid(ctx context.Context, userID, id uuid.UUID, paidDate time.Time) error {
	query := `
		UPDATE payment_records
		SET status = $3, paid_date = $4, updated_at = $4
		WHERE user_id = $1 AND id = $2 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query,
		userID,
		id,
		string(domain.PaymentStatusPaid),
		paidDate,
		string(domain.PaymentStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to settle payment record: %w", err)
	}
	return requireRow(result)
}

func (r *paymentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.PaymentRecord, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payment_records
		WHERE user_id = $1 AND id = $2
	`
	rec, err := scanPaymentRecord(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment record: %w", err)
	}
	return rec, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.PaymentRecord, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payment_records
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment records: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.PaymentRecord, 0)
	for rows.Next() {
		rec, err := scanPaymentRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment records: %w", err)
	}
	return records, nil
}

func scanPaymentRecord(row rowScanner) (*domain.PaymentRecord, error) {
	var rec domain.PaymentRecord
	var paidDate sql.NullTime
	var accountType, status string

	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.AccountID,
		&accountType,
		&rec.Amount,
		&status,
		&paidDate,
		&rec.PaymentMethod,
		&rec.ConfirmationNumber,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.AccountType = domain.AccountType(accountType)
	rec.Status = domain.PaymentStatus(status)
	if paidDate.Valid {
		rec.PaidDate = &paidDate.Time
	}
	return &rec, nil
}
