package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of account a payment record points at
type AccountType string

const (
	AccountTypeCreditCard     AccountType = "credit_card"
	AccountTypeLoan           AccountType = "loan"
	AccountTypeMonthlyPayment AccountType = "monthly_payment"
)

// NormalizeAccountType folds the hyphen and underscore spellings onto one form.
// "credit-card" and "credit_card" denote the same account type.
func NormalizeAccountType(raw string) AccountType {
	return AccountType(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "-", "_"))
}

// CreditCard represents a credit card entity in the domain layer
type CreditCard struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DisplayName    string
	Balance        decimal.Decimal
	CreditLimit    decimal.Decimal
	MinimumPayment decimal.Decimal
	InterestRate   decimal.Decimal // APR as a percentage, e.g. 24.99
	NextDueDate    *time.Time      // NULL when the user has not set a due date
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate ensures the card adheres to domain rules
func (c *CreditCard) Validate() error {
	if c.DisplayName == "" {
		return errors.New("credit card display name cannot be empty")
	}
	if c.Balance.IsNegative() {
		return errors.New("credit card balance cannot be negative")
	}
	if c.CreditLimit.IsNegative() {
		return errors.New("credit card credit limit cannot be negative")
	}
	if c.MinimumPayment.IsNegative() {
		return errors.New("credit card minimum payment cannot be negative")
	}
	// Balance above the limit is allowed here: over-limit cards are real data
	// and the dashboard must still render them.
	return nil
}

// Loan represents a loan entity in the domain layer
type Loan struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	DisplayName    string
	Lender         string
	Balance        decimal.Decimal
	OriginalAmount decimal.Decimal
	MonthlyPayment decimal.Decimal
	InterestRate   decimal.Decimal
	NextDueDate    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate ensures the loan adheres to domain rules
func (l *Loan) Validate() error {
	if l.DisplayName == "" {
		return errors.New("loan display name cannot be empty")
	}
	if l.Balance.IsNegative() {
		return errors.New("loan balance cannot be negative")
	}
	if l.MonthlyPayment.IsNegative() {
		return errors.New("loan monthly payment cannot be negative")
	}
	return nil
}

// PayableAccount is the unified due-payment view over credit cards and loans.
// PaymentAmount is the card minimum payment or the loan monthly payment.
type PayableAccount struct {
	ID            uuid.UUID
	AccountType   AccountType
	DisplayName   string
	Balance       decimal.Decimal
	PaymentAmount decimal.Decimal
	InterestRate  decimal.Decimal
	NextDueDate   *time.Time
}

// Payable converts the card into its due-payment view
func (c *CreditCard) Payable() PayableAccount {
	return PayableAccount{
		ID:            c.ID,
		AccountType:   AccountTypeCreditCard,
		DisplayName:   c.DisplayName,
		Balance:       c.Balance,
		PaymentAmount: c.MinimumPayment,
		InterestRate:  c.InterestRate,
		NextDueDate:   c.NextDueDate,
	}
}

// Payable converts the loan into its due-payment view
func (l *Loan) Payable() PayableAccount {
	return PayableAccount{
		ID:            l.ID,
		AccountType:   AccountTypeLoan,
		DisplayName:   l.DisplayName,
		Balance:       l.Balance,
		PaymentAmount: l.MonthlyPayment,
		InterestRate:  l.InterestRate,
		NextDueDate:   l.NextDueDate,
	}
}
