package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// MarkPaidInput represents the input for marking a due amount as paid
type MarkPaidInput struct {
	AccountID          uuid.UUID
	AccountType        string // accepts hyphen or underscore spelling
	Amount             decimal.Decimal
	PaymentMethod      string
	ConfirmationNumber string
	Notes              string
}

// PaymentService records payments against payable accounts
type PaymentService struct {
	PaymentRepo domain.PaymentRepository
	CardRepo    domain.CreditCardRepository
	LoanRepo    domain.LoanRepository

	// Now is swappable for tests; defaults to time.Now
	Now func() time.Time
}

// NewPaymentService creates a new PaymentService instance
func NewPaymentService(
	paymentRepo domain.PaymentRepository,
	cardRepo domain.CreditCardRepository,
	loanRepo domain.LoanRepository,
) *PaymentService {
	return &PaymentService{
		PaymentRepo: paymentRepo,
		CardRepo:    cardRepo,
		LoanRepo:    loanRepo,
		Now:         time.Now,
	}
}

// MarkPaid records that a due amount was paid.
// Two-step write:
//  1. create the record with status pending
//  2. transition it to paid with the settlement time
//
// If step 2 fails the pending record stays behind; it is inert (only paid
// records suppress a due account) and the account simply reappears as unpaid
// on the next read. Repeated user calls are not deduplicated: marking the
// same account paid twice creates two records.
func (s *PaymentService) MarkPaid(ctx context.Context, userID uuid.UUID, input MarkPaidInput) (*domain.PaymentRecord, error) {
	accountType := domain.NormalizeAccountType(input.AccountType)

	// Reject payments against accounts the caller does not own. The
	// monthly_payment type has no backing table and is taken at face value.
	switch accountType {
	case domain.AccountTypeCreditCard:
		if _, err := s.CardRepo.GetByID(ctx, userID, input.AccountID); err != nil {
			return nil, fmt.Errorf("credit card %s: %w", input.AccountID, err)
		}
	case domain.AccountTypeLoan:
		if _, err := s.LoanRepo.GetByID(ctx, userID, input.AccountID); err != nil {
			return nil, fmt.Errorf("loan %s: %w", input.AccountID, err)
		}
	case domain.AccountTypeMonthlyPayment:
	default:
		return nil, errors.New("account type must be credit_card, loan, or monthly_payment")
	}

	now := s.Now()
	rec := &domain.PaymentRecord{
		ID:                 uuid.New(),
		UserID:             userID,
		AccountID:          input.AccountID,
		AccountType:        accountType,
		Amount:             input.Amount,
		Status:             domain.PaymentStatusPending,
		PaymentMethod:      input.PaymentMethod,
		ConfirmationNumber: input.ConfirmationNumber,
		Notes:              input.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	if err := s.PaymentRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to create payment record: %w", err)
	}

	paidAt := s.Now()
	if err := s.PaymentRepo.MarkPaid(ctx, userID, rec.ID, paidAt); err != nil {
		// No rollback: the pending record reappears as unpaid on the next read.
		return nil, fmt.Errorf("payment %s created but not settled: %w", rec.ID, err)
	}

	rec.Status = domain.PaymentStatusPaid
	rec.PaidDate = &paidAt
	rec.UpdatedAt = paidAt
	return rec, nil
}
