package overview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// Metrics holds the overview dashboard figures, all derived from
// already-fetched collections with no separate aggregation query.
type Metrics struct {
	TotalDebt         decimal.Decimal
	MonthlyIncome     decimal.Decimal
	MonthlyExpenses   decimal.Decimal
	AvailableCash     decimal.Decimal
	TotalCreditLimit  decimal.Decimal
	TotalCreditUsed   decimal.Decimal
	AvailableCredit   decimal.Decimal
	CreditUtilization decimal.Decimal // percentage, 0 when there is no credit limit
	TotalLiquidity    decimal.Decimal
}

var oneHundred = decimal.NewFromInt(100)

// Compute derives the overview metrics.
// Conventions preserved exactly:
//   - availableCash clamps at zero; negative cash flow displays as zero
//   - creditUtilization is 0 when the total limit is 0, never a division error
func Compute(cards []*domain.CreditCard, loans []*domain.Loan, income []*domain.IncomeSource, expenses []*domain.Expense) Metrics {
	var m Metrics

	m.TotalDebt = decimal.Zero
	m.TotalCreditLimit = decimal.Zero
	m.TotalCreditUsed = decimal.Zero
	for _, card := range cards {
		m.TotalDebt = m.TotalDebt.Add(card.Balance)
		m.TotalCreditLimit = m.TotalCreditLimit.Add(card.CreditLimit)
		m.TotalCreditUsed = m.TotalCreditUsed.Add(card.Balance)
	}
	for _, loan := range loans {
		m.TotalDebt = m.TotalDebt.Add(loan.Balance)
	}

	m.MonthlyIncome = domain.TotalMonthlyIncome(income)
	m.MonthlyExpenses = domain.TotalMonthlyExpenses(expenses)

	m.AvailableCash = m.MonthlyIncome.Sub(m.MonthlyExpenses)
	if m.AvailableCash.IsNegative() {
		m.AvailableCash = decimal.Zero
	}

	m.AvailableCredit = m.TotalCreditLimit.Sub(m.TotalCreditUsed)
	if m.TotalCreditLimit.IsZero() {
		m.CreditUtilization = decimal.Zero
	} else {
		m.CreditUtilization = m.TotalCreditUsed.Div(m.TotalCreditLimit).Mul(oneHundred)
	}

	m.TotalLiquidity = m.AvailableCash.Add(m.AvailableCredit)
	return m
}

// OverviewService assembles the overview dashboard metrics for a user
type OverviewService struct {
	CardRepo    domain.CreditCardRepository
	LoanRepo    domain.LoanRepository
	IncomeRepo  domain.IncomeSourceRepository
	ExpenseRepo domain.ExpenseRepository
}

// NewOverviewService creates a new OverviewService instance
func NewOverviewService(
	cardRepo domain.CreditCardRepository,
	loanRepo domain.LoanRepository,
	incomeRepo domain.IncomeSourceRepository,
	expenseRepo domain.ExpenseRepository,
) *OverviewService {
	return &OverviewService{
		CardRepo:    cardRepo,
		LoanRepo:    loanRepo,
		IncomeRepo:  incomeRepo,
		ExpenseRepo: expenseRepo,
	}
}

// GetMetrics fetches the user's collections and computes the overview
func (s *OverviewService) GetMetrics(ctx context.Context, userID uuid.UUID) (*Metrics, error) {
	cards, err := s.CardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	loans, err := s.LoanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	income, err := s.IncomeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	expenses, err := s.ExpenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	metrics := Compute(cards, loans, income, expenses)
	return &metrics, nil
}
