package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetCategory buckets assets for the net-worth roll-up
type AssetCategory string

const (
	AssetCategoryCash             AssetCategory = "cash"
	AssetCategoryInvestment       AssetCategory = "investment"
	AssetCategoryRealEstate       AssetCategory = "real_estate"
	AssetCategoryVehicle          AssetCategory = "vehicle"
	AssetCategoryPersonalProperty AssetCategory = "personal_property"
	AssetCategoryBusiness         AssetCategory = "business"
)

// AssetCategories lists every valid asset category in display order
var AssetCategories = []AssetCategory{
	AssetCategoryCash,
	AssetCategoryInvestment,
	AssetCategoryRealEstate,
	AssetCategoryVehicle,
	AssetCategoryPersonalProperty,
	AssetCategoryBusiness,
}

// LiabilityCategory buckets liabilities for the net-worth roll-up
type LiabilityCategory string

const (
	LiabilityCategoryConsumerDebt   LiabilityCategory = "consumer_debt"
	LiabilityCategoryVehicleLoan    LiabilityCategory = "vehicle_loan"
	LiabilityCategoryRealEstateDebt LiabilityCategory = "real_estate_debt"
	LiabilityCategoryEducationDebt  LiabilityCategory = "education_debt"
	LiabilityCategoryBusinessDebt   LiabilityCategory = "business_debt"
	LiabilityCategoryTaxes          LiabilityCategory = "taxes"
)

// LiabilityCategories lists every valid liability category in display order
var LiabilityCategories = []LiabilityCategory{
	LiabilityCategoryConsumerDebt,
	LiabilityCategoryVehicleLoan,
	LiabilityCategoryRealEstateDebt,
	LiabilityCategoryEducationDebt,
	LiabilityCategoryBusinessDebt,
	LiabilityCategoryTaxes,
}

// Asset represents something the user owns
type Asset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  AssetCategory
	Value     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate ensures the asset adheres to domain rules
func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.New("asset name cannot be empty")
	}
	if a.Value.IsNegative() {
		return errors.New("asset value cannot be negative")
	}
	for _, cat := range AssetCategories {
		if a.Category == cat {
			return nil
		}
	}
	return errors.New("unknown asset category: " + string(a.Category))
}

// Liability represents something the user owes
type Liability struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  LiabilityCategory
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate ensures the liability adheres to domain rules
func (l *Liability) Validate() error {
	if l.Name == "" {
		return errors.New("liability name cannot be empty")
	}
	if l.Balance.IsNegative() {
		return errors.New("liability balance cannot be negative")
	}
	for _, cat := range LiabilityCategories {
		if l.Category == cat {
			return nil
		}
	}
	return errors.New("unknown liability category: " + string(l.Category))
}
