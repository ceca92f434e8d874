package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the lifecycle state of a payment record
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// RecencyWindow is how long a settled payment keeps its account out of the
// upcoming-payments list. The 30-day figure is a product convention and must
// be preserved exactly.
const RecencyWindow = 30 * 24 * time.Hour

// PaymentRecord represents a single payment made against a payable account.
// Records are created pending and transitioned to paid; a paid record is
// immutable except for corrective edits.
type PaymentRecord struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	AccountID          uuid.UUID
	AccountType        AccountType
	Amount             decimal.Decimal
	Status             PaymentStatus
	PaidDate           *time.Time // NULL until the record transitions to paid
	PaymentMethod      string
	ConfirmationNumber string
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate ensures the payment record adheres to domain rules
func (p *PaymentRecord) Validate() error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return errors.New("payment amount must be positive")
	}
	switch NormalizeAccountType(string(p.AccountType)) {
	case AccountTypeCreditCard, AccountTypeLoan, AccountTypeMonthlyPayment:
	default:
		return errors.New("payment account type must be credit_card, loan, or monthly_payment")
	}
	switch p.Status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusCancelled:
	default:
		return errors.New("payment status must be pending, paid, failed, or cancelled")
	}
	return nil
}

// SettledWithin reports whether this record is a paid payment settled less
// than window ago. The lower bound is inclusive: a payment settled at now
// still counts. Only paid records ever suppress an account.
func (p *PaymentRecord) SettledWithin(window time.Duration, now time.Time) bool {
	if p.Status != PaymentStatusPaid || p.PaidDate == nil {
		return false
	}
	elapsed := now.Sub(*p.PaidDate)
	return elapsed >= 0 && elapsed < window
}
