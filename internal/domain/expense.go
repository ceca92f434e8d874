package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a recurring personal expense
type Expense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  string
	Amount    decimal.Decimal
	Frequency Frequency
	DueDate   *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate ensures the expense adheres to domain rules
func (e *Expense) Validate() error {
	if e.Name == "" {
		return errors.New("expense name cannot be empty")
	}
	if e.Amount.IsNegative() {
		return errors.New("expense amount cannot be negative")
	}
	return nil
}

// MonthlyAmount returns the monthly-equivalent value of this expense
func (e *Expense) MonthlyAmount() decimal.Decimal {
	return MonthlyEquivalent(e.Amount, e.Frequency)
}

// TotalMonthlyExpenses sums the monthly equivalent over all active expenses
func TotalMonthlyExpenses(expenses []*Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		if !exp.IsActive {
			continue
		}
		total = total.Add(exp.MonthlyAmount())
	}
	return total
}
