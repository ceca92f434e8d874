package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Every repository scopes reads and writes by user ID: a record owned by
// another user behaves exactly like a missing record (ErrNotFound).

// CreditCardRepository defines the interface for credit card persistence operations
type CreditCardRepository interface {
	Create(ctx context.Context, card *CreditCard) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*CreditCard, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CreditCard, error)
	Update(ctx context.Context, card *CreditCard) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// LoanRepository defines the interface for loan persistence operations
type LoanRepository interface {
	Create(ctx context.Context, loan *Loan) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Loan, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Loan, error)
	Update(ctx context.Context, loan *Loan) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// IncomeSourceRepository defines the interface for income source persistence operations
type IncomeSourceRepository interface {
	Create(ctx context.Context, src *IncomeSource) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*IncomeSource, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*IncomeSource, error)
	Update(ctx context.Context, src *IncomeSource) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense persistence operations
type ExpenseRepository interface {
	Create(ctx context.Context, exp *Expense) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Expense, error)
	Update(ctx context.Context, exp *Expense) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// PaymentRepository defines the interface for payment record persistence operations
type PaymentRepository interface {
	Create(ctx context.Context, rec *PaymentRecord) error

	// MarkPaid transitions a record to paid with the given settlement time.
	// It is the second half of the two-step mark-as-paid write; a record left
	// pending by a failed transition is inert and never suppresses anything.
	MarkPaid(ctx context.Context, userID, id uuid.UUID, paidDate time.Time) error

	GetByID(ctx context.Context, userID, id uuid.UUID) (*PaymentRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentRecord, error)
}

// AssetRepository defines the interface for asset persistence operations
type AssetRepository interface {
	Create(ctx context.Context, asset *Asset) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Asset, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Asset, error)
	Update(ctx context.Context, asset *Asset) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// LiabilityRepository defines the interface for liability persistence operations
type LiabilityRepository interface {
	Create(ctx context.Context, liability *Liability) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Liability, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Liability, error)
	Update(ctx context.Context, liability *Liability) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// SnapshotRepository defines the interface for net-worth snapshot persistence.
// Snapshots are append-only; there is no update or delete.
type SnapshotRepository interface {
	Create(ctx context.Context, snap *NetWorthSnapshot) error

	// ListByUser returns snapshots ordered by SnapshotDate ascending
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*NetWorthSnapshot, error)
}

// BusinessProfileRepository defines the interface for business profile persistence operations
type BusinessProfileRepository interface {
	Create(ctx context.Context, profile *BusinessProfile) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*BusinessProfile, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BusinessProfile, error)
	Update(ctx context.Context, profile *BusinessProfile) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// BusinessRevenueRepository defines the interface for business revenue persistence operations
type BusinessRevenueRepository interface {
	Create(ctx context.Context, rev *BusinessRevenue) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*BusinessRevenue, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BusinessRevenue, error)
	Update(ctx context.Context, rev *BusinessRevenue) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// BusinessExpenseRepository defines the interface for business expense persistence operations
type BusinessExpenseRepository interface {
	Create(ctx context.Context, exp *BusinessExpense) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*BusinessExpense, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BusinessExpense, error)
	Update(ctx context.Context, exp *BusinessExpense) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// VendorRepository defines the interface for vendor persistence operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *Vendor) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*Vendor, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Vendor, error)
	Update(ctx context.Context, vendor *Vendor) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// PurchaseOrderRepository defines the interface for purchase order persistence operations.
// Orders and their items are written together in one database transaction.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *PurchaseOrder) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*PurchaseOrder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PurchaseOrder, error)
	Update(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
