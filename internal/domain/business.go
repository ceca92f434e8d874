package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessProfile groups business-scoped records under one venture
type BusinessProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate ensures the profile adheres to domain rules
func (b *BusinessProfile) Validate() error {
	if b.Name == "" {
		return errors.New("business profile name cannot be empty")
	}
	return nil
}

// BusinessRevenue mirrors IncomeSource but is scoped to an optional business profile
type BusinessRevenue struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	BusinessProfileID *uuid.UUID
	Source            string
	Amount            decimal.Decimal
	Frequency         Frequency
	NextPayDate       *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate ensures the revenue entry adheres to domain rules
func (r *BusinessRevenue) Validate() error {
	if r.Source == "" {
		return errors.New("business revenue source cannot be empty")
	}
	if r.Amount.IsNegative() {
		return errors.New("business revenue amount cannot be negative")
	}
	return nil
}

// MonthlyAmount returns the monthly-equivalent value of this revenue stream
func (r *BusinessRevenue) MonthlyAmount() decimal.Decimal {
	return MonthlyEquivalent(r.Amount, r.Frequency)
}

// BusinessExpense mirrors Expense but is scoped to an optional business profile
type BusinessExpense struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	BusinessProfileID *uuid.UUID
	Name              string
	Category          string
	Amount            decimal.Decimal
	Frequency         Frequency
	DueDate           *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate ensures the expense entry adheres to domain rules
func (e *BusinessExpense) Validate() error {
	if e.Name == "" {
		return errors.New("business expense name cannot be empty")
	}
	if e.Amount.IsNegative() {
		return errors.New("business expense amount cannot be negative")
	}
	return nil
}

// MonthlyAmount returns the monthly-equivalent value of this expense
func (e *BusinessExpense) MonthlyAmount() decimal.Decimal {
	return MonthlyEquivalent(e.Amount, e.Frequency)
}

// Vendor represents a supplier a business orders from
type Vendor struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	BusinessProfileID *uuid.UUID
	Name              string
	ContactName       string
	Email             string
	Phone             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate ensures the vendor adheres to domain rules
func (v *Vendor) Validate() error {
	if v.Name == "" {
		return errors.New("vendor name cannot be empty")
	}
	return nil
}
