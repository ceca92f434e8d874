package httpapi

// Request payloads with go-playground/validator tags. Each entity gets a
// tagged create shape and a pointer-field patch shape; validation failures
// surface as field-path/message pairs before anything reaches persistence.

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// decodeAndValidate decodes the JSON body into dst and runs the validator
// over it. On failure it writes the 400 response itself and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err))
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]FieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, FieldError{
					Field:   fe.Field(),
					Message: fmt.Sprintf("failed %q validation", fe.Tag()),
				})
			}
			respondValidationError(w, details)
			return false
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

type createCardRequest struct {
	DisplayName    string          `json:"displayName" validate:"required"`
	Balance        decimal.Decimal `json:"balance"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	NextDueDate    *time.Time      `json:"nextDueDate"`
}

type patchCardRequest struct {
	DisplayName    *string          `json:"displayName" validate:"omitempty,min=1"`
	Balance        *decimal.Decimal `json:"balance"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	MinimumPayment *decimal.Decimal `json:"minimumPayment"`
	InterestRate   *decimal.Decimal `json:"interestRate"`
	NextDueDate    *time.Time       `json:"nextDueDate"`
}

type createLoanRequest struct {
	DisplayName    string          `json:"displayName" validate:"required"`
	Lender         string          `json:"lender"`
	Balance        decimal.Decimal `json:"balance"`
	OriginalAmount decimal.Decimal `json:"originalAmount"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	NextDueDate    *time.Time      `json:"nextDueDate"`
}

type patchLoanRequest struct {
	DisplayName    *string          `json:"displayName" validate:"omitempty,min=1"`
	Lender         *string          `json:"lender"`
	Balance        *decimal.Decimal `json:"balance"`
	OriginalAmount *decimal.Decimal `json:"originalAmount"`
	MonthlyPayment *decimal.Decimal `json:"monthlyPayment"`
	InterestRate   *decimal.Decimal `json:"interestRate"`
	NextDueDate    *time.Time       `json:"nextDueDate"`
}

type createIncomeRequest struct {
	Source      string          `json:"source" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   string          `json:"frequency" validate:"required,oneof=weekly biweekly monthly annually"`
	NextPayDate *time.Time      `json:"nextPayDate"`
	IsActive    *bool           `json:"isActive"`
}

type patchIncomeRequest struct {
	Source      *string          `json:"source" validate:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount"`
	Frequency   *string          `json:"frequency" validate:"omitempty,oneof=weekly biweekly monthly annually"`
	NextPayDate *time.Time       `json:"nextPayDate"`
	IsActive    *bool            `json:"isActive"`
}

type createExpenseRequest struct {
	Name      string          `json:"name" validate:"required"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Frequency string          `json:"frequency" validate:"required,oneof=weekly biweekly monthly annually"`
	DueDate   *time.Time      `json:"dueDate"`
	IsActive  *bool           `json:"isActive"`
}

type patchExpenseRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1"`
	Category  *string          `json:"category"`
	Amount    *decimal.Decimal `json:"amount"`
	Frequency *string          `json:"frequency" validate:"omitempty,oneof=weekly biweekly monthly annually"`
	DueDate   *time.Time       `json:"dueDate"`
	IsActive  *bool            `json:"isActive"`
}

type createAssetRequest struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"required,oneof=cash investment real_estate vehicle personal_property business"`
	Value    decimal.Decimal `json:"value"`
}

type patchAssetRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1"`
	Category *string          `json:"category" validate:"omitempty,oneof=cash investment real_estate vehicle personal_property business"`
	Value    *decimal.Decimal `json:"value"`
}

type createLiabilityRequest struct {
	Name     string          `json:"name" validate:"required"`
	Category string          `json:"category" validate:"required,oneof=consumer_debt vehicle_loan real_estate_debt education_debt business_debt taxes"`
	Balance  decimal.Decimal `json:"balance"`
}

type patchLiabilityRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1"`
	Category *string          `json:"category" validate:"omitempty,oneof=consumer_debt vehicle_loan real_estate_debt education_debt business_debt taxes"`
	Balance  *decimal.Decimal `json:"balance"`
}

type markPaidRequest struct {
	AccountID          string          `json:"accountId" validate:"required,uuid"`
	AccountType        string          `json:"accountType" validate:"required"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentMethod      string          `json:"paymentMethod"`
	ConfirmationNumber string          `json:"confirmationNumber"`
	Notes              string          `json:"notes"`
}

type createBusinessProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

type patchBusinessProfileRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

type createBusinessRevenueRequest struct {
	BusinessProfileID *string         `json:"businessProfileId" validate:"omitempty,uuid"`
	Source            string          `json:"source" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Frequency         string          `json:"frequency" validate:"required,oneof=weekly biweekly monthly annually"`
	NextPayDate       *time.Time      `json:"nextPayDate"`
	IsActive          *bool           `json:"isActive"`
}

type patchBusinessRevenueRequest struct {
	BusinessProfileID *string          `json:"businessProfileId" validate:"omitempty,uuid"`
	Source            *string          `json:"source" validate:"omitempty,min=1"`
	Amount            *decimal.Decimal `json:"amount"`
	Frequency         *string          `json:"frequency" validate:"omitempty,oneof=weekly biweekly monthly annually"`
	NextPayDate       *time.Time       `json:"nextPayDate"`
	IsActive          *bool            `json:"isActive"`
}

type createBusinessExpenseRequest struct {
	BusinessProfileID *string         `json:"businessProfileId" validate:"omitempty,uuid"`
	Name              string          `json:"name" validate:"required"`
	Category          string          `json:"category"`
	Amount            decimal.Decimal `json:"amount"`
	Frequency         string          `json:"frequency" validate:"required,oneof=weekly biweekly monthly annually"`
	DueDate           *time.Time      `json:"dueDate"`
	IsActive          *bool           `json:"isActive"`
}

type patchBusinessExpenseRequest struct {
	BusinessProfileID *string          `json:"businessProfileId" validate:"omitempty,uuid"`
	Name              *string          `json:"name" validate:"omitempty,min=1"`
	Category          *string          `json:"category"`
	Amount            *decimal.Decimal `json:"amount"`
	Frequency         *string          `json:"frequency" validate:"omitempty,oneof=weekly biweekly monthly annually"`
	DueDate           *time.Time       `json:"dueDate"`
	IsActive          *bool            `json:"isActive"`
}

type createVendorRequest struct {
	BusinessProfileID *string `json:"businessProfileId" validate:"omitempty,uuid"`
	Name              string  `json:"name" validate:"required"`
	ContactName       string  `json:"contactName"`
	Email             string  `json:"email" validate:"omitempty,email"`
	Phone             string  `json:"phone"`
}

type patchVendorRequest struct {
	BusinessProfileID *string `json:"businessProfileId" validate:"omitempty,uuid"`
	Name              *string `json:"name" validate:"omitempty,min=1"`
	ContactName       *string `json:"contactName"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Phone             *string `json:"phone"`
}

type purchaseOrderItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type createPurchaseOrderRequest struct {
	BusinessProfileID *string                    `json:"businessProfileId" validate:"omitempty,uuid"`
	VendorID          string                     `json:"vendorId" validate:"required,uuid"`
	OrderNumber       string                     `json:"orderNumber" validate:"required"`
	Status            string                     `json:"status" validate:"omitempty,oneof=draft submitted received cancelled"`
	OrderDate         *time.Time                 `json:"orderDate"`
	Items             []purchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type patchPurchaseOrderRequest struct {
	BusinessProfileID *string                    `json:"businessProfileId" validate:"omitempty,uuid"`
	VendorID          *string                    `json:"vendorId" validate:"omitempty,uuid"`
	OrderNumber       *string                    `json:"orderNumber" validate:"omitempty,min=1"`
	Status            *string                    `json:"status" validate:"omitempty,oneof=draft submitted received cancelled"`
	OrderDate         *time.Time                 `json:"orderDate"`
	Items             []purchaseOrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
}
