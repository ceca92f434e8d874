package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the lifecycle state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSubmitted PurchaseOrderStatus = "submitted"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrder represents an order placed with a vendor
type PurchaseOrder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	BusinessProfileID *uuid.UUID
	VendorID          uuid.UUID
	OrderNumber       string
	Status            PurchaseOrderStatus
	OrderDate         time.Time
	Items             []PurchaseOrderItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PurchaseOrderItem is a single line on a purchase order
type PurchaseOrderItem struct {
	ID              uuid.UUID
	PurchaseOrderID uuid.UUID
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
}

// Total returns the order total: sum of quantity times unit price over all lines
func (o *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Quantity.Mul(item.UnitPrice))
	}
	return total
}

// Validate ensures the order adheres to domain rules
func (o *PurchaseOrder) Validate() error {
	if o.OrderNumber == "" {
		return errors.New("purchase order number cannot be empty")
	}
	if o.VendorID == uuid.Nil {
		return errors.New("purchase order must reference a vendor")
	}
	switch o.Status {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSubmitted,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
	default:
		return errors.New("purchase order status must be draft, submitted, received, or cancelled")
	}
	if len(o.Items) == 0 {
		return errors.New("purchase order must have at least one item")
	}
	for _, item := range o.Items {
		if item.Description == "" {
			return errors.New("purchase order item description cannot be empty")
		}
		if item.Quantity.LessThanOrEqual(decimal.Zero) {
			return errors.New("purchase order item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return errors.New("purchase order item unit price cannot be negative")
		}
	}
	return nil
}
