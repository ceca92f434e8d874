package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often an income or expense recurs
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnually Frequency = "annually"
)

// Monthly-equivalent multipliers. 4.33 approximates 52/12 weeks per month;
// downstream displays are defined against these exact conventional values,
// not a calendar-accurate calculation.
var (
	weeksPerMonth      = decimal.RequireFromString("4.33")
	fortnightsPerMonth = decimal.RequireFromString("2.17")
	monthsPerYear      = decimal.NewFromInt(12)
)

// MonthlyEquivalent converts an amount stated at the given frequency into its
// monthly figure. Unrecognized frequencies are treated as already monthly.
func MonthlyEquivalent(amount decimal.Decimal, freq Frequency) decimal.Decimal {
	switch freq {
	case FrequencyWeekly:
		return amount.Mul(weeksPerMonth)
	case FrequencyBiweekly:
		return amount.Mul(fortnightsPerMonth)
	case FrequencyAnnually:
		return amount.Div(monthsPerYear)
	default:
		return amount
	}
}

// IncomeSource represents a recurring income stream
type IncomeSource struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Source      string
	Amount      decimal.Decimal
	Frequency   Frequency
	NextPayDate *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate ensures the income source adheres to domain rules
func (i *IncomeSource) Validate() error {
	if i.Source == "" {
		return errors.New("income source cannot be empty")
	}
	if i.Amount.IsNegative() {
		return errors.New("income amount cannot be negative")
	}
	return nil
}

// MonthlyAmount returns the monthly-equivalent value of this source
func (i *IncomeSource) MonthlyAmount() decimal.Decimal {
	return MonthlyEquivalent(i.Amount, i.Frequency)
}

// TotalMonthlyIncome sums the monthly equivalent over all active sources
func TotalMonthlyIncome(sources []*IncomeSource) decimal.Decimal {
	total := decimal.Zero
	for _, src := range sources {
		if !src.IsActive {
			continue
		}
		total = total.Add(src.MonthlyAmount())
	}
	return total
}
