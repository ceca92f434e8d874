package duesoon

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// DueSoonService assembles the upcoming-payments and upcoming-income views.
// It fetches the user's raw collections fresh on every call and runs the pure
// filter over them; nothing is cached here.
type DueSoonService struct {
	CardRepo    domain.CreditCardRepository
	LoanRepo    domain.LoanRepository
	IncomeRepo  domain.IncomeSourceRepository
	PaymentRepo domain.PaymentRepository

	// Now is swappable for tests; defaults to time.Now
	Now func() time.Time
}

// NewDueSoonService creates a new DueSoonService instance
func NewDueSoonService(
	cardRepo domain.CreditCardRepository,
	loanRepo domain.LoanRepository,
	incomeRepo domain.IncomeSourceRepository,
	paymentRepo domain.PaymentRepository,
) *DueSoonService {
	return &DueSoonService{
		CardRepo:    cardRepo,
		LoanRepo:    loanRepo,
		IncomeRepo:  incomeRepo,
		PaymentRepo: paymentRepo,
		Now:         time.Now,
	}
}

// UpcomingPayments returns the due-soon list over the user's credit cards and
// loans, with recently settled accounts suppressed.
func (s *DueSoonService) UpcomingPayments(ctx context.Context, userID uuid.UUID, window Window) ([]DueItem, error) {
	cards, err := s.CardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credit cards: %w", err)
	}
	loans, err := s.LoanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	payments, err := s.PaymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment records: %w", err)
	}

	accounts := make([]domain.PayableAccount, 0, len(cards)+len(loans))
	for _, card := range cards {
		accounts = append(accounts, card.Payable())
	}
	for _, loan := range loans {
		accounts = append(accounts, loan.Payable())
	}

	return FilterDueSoon(accounts, payments, window, s.Now()), nil
}

// UpcomingIncome returns the upcoming-income list over the user's active
// income sources.
func (s *DueSoonService) UpcomingIncome(ctx context.Context, userID uuid.UUID, window Window) ([]IncomeItem, error) {
	sources, err := s.IncomeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list income sources: %w", err)
	}
	return FilterUpcomingIncome(sources, window, s.Now()), nil
}
