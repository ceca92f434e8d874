package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// creditCardRepository implements domain.CreditCardRepository
type creditCardRepository struct {
	db *DB
}

// NewCreditCardRepository creates a new credit card repository
func NewCreditCardRepository(db *DB) domain.CreditCardRepository {
	return &creditCardRepository{db: db}
}

const creditCardColumns = `id, user_id, display_name, balance, credit_limit, minimum_payment, interest_rate, next_due_date, created_at, updated_at`

func (r *creditCardRepository) Create(ctx context.Context, card *domain.CreditCard) error {
	query := `
		INSERT INTO credit_cards (` + creditCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		card.ID,
		card.UserID,
		card.DisplayName,
		card.Balance.String(),
		card.CreditLimit.String(),
		card.MinimumPayment.String(),
		card.InterestRate.String(),
		nullTime(card.NextDueDate),
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create credit card: %w", err)
	}
	return nil
}

func (r *creditCardRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CreditCard, error) {
	query := `
		SELECT ` + creditCardColumns + `
		FROM credit_cards
		WHERE user_id = $1 AND id = $2
	`
	card, err := scanCreditCard(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credit card: %w", err)
	}
	return card, nil
}

func (r *creditCardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.CreditCard, error) {
	query := `
		SELECT ` + creditCardColumns + `
		FROM credit_cards
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	defer rows.Close()

	cards := make([]*domain.CreditCard, 0)
	for rows.Next() {
		card, err := scanCreditCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credit card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credit cards: %w", err)
	}
	return cards, nil
}

func (r *creditCardRepository) Update(ctx context.Context, card *domain.CreditCard) error {
	query := `
		UPDATE credit_cards
		SET display_name = $3, balance = $4, credit_limit = $5, minimum_payment = $6,
		    interest_rate = $7, next_due_date = $8, updated_at = $9
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		card.UserID,
		card.ID,
		card.DisplayName,
		card.Balance.String(),
		card.CreditLimit.String(),
		card.MinimumPayment.String(),
		card.InterestRate.String(),
		nullTime(card.NextDueDate),
		card.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update credit card: %w", err)
	}
	return requireRow(result)
}

func (r *creditCardRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM credit_cards WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete credit card: %w", err)
	}
	return requireRow(result)
}

func scanCreditCard(row rowScanner) (*domain.CreditCard, error) {
	var card domain.CreditCard
	var nextDue sql.NullTime

	err := row.Scan(
		&card.ID,
		&card.UserID,
		&card.DisplayName,
		&card.Balance,
		&card.CreditLimit,
		&card.MinimumPayment,
		&card.InterestRate,
		&nextDue,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if nextDue.Valid {
		card.NextDueDate = &nextDue.Time
	}
	return &card, nil
}
