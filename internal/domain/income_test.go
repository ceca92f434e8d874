package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyEquivalent_Multipliers(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		frequency Frequency
		want      string
	}{
		{"weekly uses 4.33", "100", FrequencyWeekly, "433"},
		{"biweekly uses 2.17", "100", FrequencyBiweekly, "217"},
		{"monthly passes through", "100", FrequencyMonthly, "100"},
		{"annually divides by 12", "6000", FrequencyAnnually, "500"},
		{"unknown frequency treated as monthly", "100", Frequency("quarterly"), "100"},
		{"weekly keeps cents exact", "123.45", FrequencyWeekly, "534.5385"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			got := MonthlyEquivalent(amount, tt.frequency)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestIncomeSource_Validate(t *testing.T) {
	src := &IncomeSource{Source: "Salary", Amount: decimal.NewFromInt(5000), Frequency: FrequencyMonthly}
	assert.NoError(t, src.Validate())

	src.Source = ""
	assert.Error(t, src.Validate())

	src.Source = "Salary"
	src.Amount = decimal.NewFromInt(-1)
	assert.Error(t, src.Validate())
}

func TestTotalMonthlyIncome_SkipsInactive(t *testing.T) {
	sources := []*IncomeSource{
		{Source: "Salary", Amount: decimal.NewFromInt(1000), Frequency: FrequencyWeekly, IsActive: true},
		{Source: "Side gig", Amount: decimal.NewFromInt(500), Frequency: FrequencyMonthly, IsActive: true},
		{Source: "Old job", Amount: decimal.NewFromInt(9999), Frequency: FrequencyMonthly, IsActive: false},
	}

	total := TotalMonthlyIncome(sources)
	// 1000 * 4.33 + 500 = 4830
	assert.True(t, total.Equal(decimal.RequireFromString("4830")), "got %s", total)
}

func TestTotalMonthlyExpenses_SkipsInactive(t *testing.T) {
	expenses := []*Expense{
		{Name: "Rent", Amount: decimal.NewFromInt(1200), Frequency: FrequencyMonthly, IsActive: true},
		{Name: "Insurance", Amount: decimal.NewFromInt(1200), Frequency: FrequencyAnnually, IsActive: true},
		{Name: "Cancelled sub", Amount: decimal.NewFromInt(50), Frequency: FrequencyMonthly, IsActive: false},
	}

	total := TotalMonthlyExpenses(expenses)
	// 1200 + 1200/12 = 1300
	assert.True(t, total.Equal(decimal.RequireFromString("1300")), "got %s", total)
}
