package overview

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompute_FullPicture(t *testing.T) {
	cards := []*domain.CreditCard{
		{DisplayName: "Visa", Balance: d("1200"), CreditLimit: d("5000")},
		{DisplayName: "Amex", Balance: d("800"), CreditLimit: d("3000")},
	}
	loans := []*domain.Loan{
		{DisplayName: "Auto", Balance: d("9000")},
	}
	income := []*domain.IncomeSource{
		{Source: "Salary", Amount: d("5000"), Frequency: domain.FrequencyMonthly, IsActive: true},
	}
	expenses := []*domain.Expense{
		{Name: "Rent", Amount: d("1500"), Frequency: domain.FrequencyMonthly, IsActive: true},
	}

	m := Compute(cards, loans, income, expenses)

	assert.True(t, m.TotalDebt.Equal(d("11000")), "totalDebt %s", m.TotalDebt)
	assert.True(t, m.TotalCreditLimit.Equal(d("8000")))
	assert.True(t, m.TotalCreditUsed.Equal(d("2000")))
	assert.True(t, m.AvailableCredit.Equal(d("6000")))
	assert.True(t, m.CreditUtilization.Equal(d("25")), "utilization %s", m.CreditUtilization)
	assert.True(t, m.AvailableCash.Equal(d("3500")))
	assert.True(t, m.TotalLiquidity.Equal(d("9500")))
}

func TestCompute_AvailableCashClampsAtZero(t *testing.T) {
	income := []*domain.IncomeSource{
		{Source: "Part time", Amount: d("1000"), Frequency: domain.FrequencyMonthly, IsActive: true},
	}
	expenses := []*domain.Expense{
		{Name: "Rent", Amount: d("1500"), Frequency: domain.FrequencyMonthly, IsActive: true},
	}

	m := Compute(nil, nil, income, expenses)
	assert.True(t, m.AvailableCash.IsZero(), "negative cash flow must display as zero, got %s", m.AvailableCash)
	assert.True(t, m.TotalLiquidity.IsZero())
}

func TestCompute_ZeroCreditLimit(t *testing.T) {
	cards := []*domain.CreditCard{
		{DisplayName: "Secured card", Balance: d("100"), CreditLimit: decimal.Zero},
	}

	m := Compute(cards, nil, nil, nil)
	assert.True(t, m.CreditUtilization.IsZero(), "zero limit must yield zero utilization, not a division error")
}

func TestCompute_EmptyCollections(t *testing.T) {
	m := Compute(nil, nil, nil, nil)
	assert.True(t, m.TotalDebt.IsZero())
	assert.True(t, m.MonthlyIncome.IsZero())
	assert.True(t, m.CreditUtilization.IsZero())
	assert.True(t, m.TotalLiquidity.IsZero())
}
