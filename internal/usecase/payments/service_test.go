package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// MockPaymentRepository is a mock implementation of PaymentRepository for testing
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, rec *domain.PaymentRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockPaymentRepository) MarkPaid(ctx context.Context, userID, id uuid.UUID, paidDate time.Time) error {
	args := m.Called(ctx, userID, id, paidDate)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.PaymentRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PaymentRecord), args.Error(1)
}

// MockCreditCardRepository is a mock implementation of CreditCardRepository for testing
type MockCreditCardRepository struct {
	mock.Mock
}

func (m *MockCreditCardRepository) Create(ctx context.Context, card *domain.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCreditCardRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.CreditCard, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.CreditCard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CreditCard), args.Error(1)
}

func (m *MockCreditCardRepository) Update(ctx context.Context, card *domain.CreditCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCreditCardRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockLoanRepository is a mock implementation of LoanRepository for testing
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Loan, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Loan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func newTestService(paymentRepo *MockPaymentRepository, cardRepo *MockCreditCardRepository, loanRepo *MockLoanRepository) *PaymentService {
	svc := NewPaymentService(paymentRepo, cardRepo, loanRepo)
	svc.Now = func() time.Time { return time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestMarkPaid_CreditCardSuccess(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepository)
	cardRepo := new(MockCreditCardRepository)
	loanRepo := new(MockLoanRepository)
	svc := newTestService(paymentRepo, cardRepo, loanRepo)

	userID := uuid.New()
	cardID := uuid.New()
	cardRepo.On("GetByID", ctx, userID, cardID).Return(&domain.CreditCard{ID: cardID, UserID: userID, DisplayName: "Visa"}, nil)

	// Capture the status at write time: the service mutates the same record
	// after settling it.
	var statusAtCreate domain.PaymentStatus
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentRecord")).
		Run(func(args mock.Arguments) {
			statusAtCreate = args.Get(1).(*domain.PaymentRecord).Status
		}).
		Return(nil)
	paymentRepo.On("MarkPaid", ctx, userID, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).Return(nil)

	rec, err := svc.MarkPaid(ctx, userID, MarkPaidInput{
		AccountID:   cardID,
		AccountType: "credit-card", // hyphen spelling folds onto credit_card
		Amount:      decimal.NewFromInt(35),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPaid, rec.Status)
	assert.Equal(t, domain.AccountTypeCreditCard, rec.AccountType)
	require.NotNil(t, rec.PaidDate)
	assert.Equal(t, svc.Now(), *rec.PaidDate)

	// The record must be written pending first; settlement is a second step.
	assert.Equal(t, domain.PaymentStatusPending, statusAtCreate)
	paymentRepo.AssertExpectations(t)
	cardRepo.AssertExpectations(t)
}

func TestMarkPaid_SettleFailureLeavesPendingRecord(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepository)
	cardRepo := new(MockCreditCardRepository)
	loanRepo := new(MockLoanRepository)
	svc := newTestService(paymentRepo, cardRepo, loanRepo)

	userID := uuid.New()
	loanID := uuid.New()
	loanRepo.On("GetByID", ctx, userID, loanID).Return(&domain.Loan{ID: loanID, UserID: userID, DisplayName: "Auto"}, nil)
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentRecord")).Return(nil)
	paymentRepo.On("MarkPaid", ctx, userID, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).
		Return(errors.New("connection reset"))

	_, err := svc.MarkPaid(ctx, userID, MarkPaidInput{
		AccountID:   loanID,
		AccountType: "loan",
		Amount:      decimal.NewFromInt(320),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created but not settled")

	// No compensating delete: the pending row stays behind.
	paymentRepo.AssertNotCalled(t, "Delete")
	paymentRepo.AssertExpectations(t)
}

func TestMarkPaid_RejectsUnownedAccount(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepository)
	cardRepo := new(MockCreditCardRepository)
	loanRepo := new(MockLoanRepository)
	svc := newTestService(paymentRepo, cardRepo, loanRepo)

	userID := uuid.New()
	cardID := uuid.New()
	cardRepo.On("GetByID", ctx, userID, cardID).Return(nil, domain.ErrNotFound)

	_, err := svc.MarkPaid(ctx, userID, MarkPaidInput{
		AccountID:   cardID,
		AccountType: "credit_card",
		Amount:      decimal.NewFromInt(35),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	paymentRepo.AssertNotCalled(t, "Create")
}

func TestMarkPaid_MonthlyPaymentSkipsOwnershipCheck(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepository)
	cardRepo := new(MockCreditCardRepository)
	loanRepo := new(MockLoanRepository)
	svc := newTestService(paymentRepo, cardRepo, loanRepo)

	userID := uuid.New()
	paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.PaymentRecord")).Return(nil)
	paymentRepo.On("MarkPaid", ctx, userID, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).Return(nil)

	rec, err := svc.MarkPaid(ctx, userID, MarkPaidInput{
		AccountID:   uuid.New(),
		AccountType: "monthly_payment",
		Amount:      decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTypeMonthlyPayment, rec.AccountType)
	cardRepo.AssertNotCalled(t, "GetByID")
	loanRepo.AssertNotCalled(t, "GetByID")
}

func TestMarkPaid_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepository)
	cardRepo := new(MockCreditCardRepository)
	loanRepo := new(MockLoanRepository)
	svc := newTestService(paymentRepo, cardRepo, loanRepo)

	userID := uuid.New()

	t.Run("unknown account type", func(t *testing.T) {
		_, err := svc.MarkPaid(ctx, userID, MarkPaidInput{
			AccountID:   uuid.New(),
			AccountType: "mortgage",
			Amount:      decimal.NewFromInt(100),
		})
		assert.Error(t, err)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := svc.MarkPaid(ctx, userID, MarkPaidInput{
			AccountID:   uuid.New(),
			AccountType: "monthly_payment",
			Amount:      decimal.Zero,
		})
		assert.Error(t, err)
	})

	paymentRepo.AssertNotCalled(t, "Create")
}
