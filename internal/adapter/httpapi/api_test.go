package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-backend/internal/adapter/auth"
	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

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

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestAPI wires an API with the demo bypass on, so requests without a
// token resolve to the demo identity.
func newTestAPI(cards *MockCreditCardRepository) *API {
	api := NewAPI(testLogger(), auth.NewVerifier("test-secret", true), Repositories{Cards: cards})
	api.now = func() time.Time { return time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC) }
	return api
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []FieldError    `json:"details"`
}

func doRequest(t *testing.T, api *API, method, path string, body interface{}) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHealthEndpointSkipsAuth(t *testing.T) {
	api := NewAPI(testLogger(), auth.NewVerifier("test-secret", false), Repositories{})

	rec, env := doRequest(t, api, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestMissingTokenRejectedInProductionMode(t *testing.T) {
	api := NewAPI(testLogger(), auth.NewVerifier("test-secret", false), Repositories{})

	rec, env := doRequest(t, api, http.MethodGet, "/api/v1/cards", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "unauthenticated", env.Error)
}

func TestCreateCard(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		cards := new(MockCreditCardRepository)
		cards.On("Create", mock.Anything, mock.AnythingOfType("*domain.CreditCard")).Return(nil)
		api := newTestAPI(cards)

		rec, env := doRequest(t, api, http.MethodPost, "/api/v1/cards", map[string]interface{}{
			"displayName": "Visa",
			"balance":     "1200.50",
			"creditLimit": "5000",
		})
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body)
		assert.True(t, env.Success)

		var dto creditCardDTO
		require.NoError(t, json.Unmarshal(env.Data, &dto))
		assert.Equal(t, "Visa", dto.DisplayName)
		assert.True(t, dto.Balance.Equal(decimal.RequireFromString("1200.50")))

		created := cards.Calls[0].Arguments.Get(1).(*domain.CreditCard)
		assert.Equal(t, auth.DemoIdentity().UserID, created.UserID)
	})

	t.Run("missing display name", func(t *testing.T) {
		api := newTestAPI(new(MockCreditCardRepository))

		rec, env := doRequest(t, api, http.MethodPost, "/api/v1/cards", map[string]interface{}{
			"balance": "100",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "validation failed", env.Error)
		require.NotEmpty(t, env.Details)
		assert.Equal(t, "DisplayName", env.Details[0].Field)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		api := newTestAPI(new(MockCreditCardRepository))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/cards", bytes.NewBufferString("{nope"))
		rec := httptest.NewRecorder()
		api.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetCard_NotFound(t *testing.T) {
	cards := new(MockCreditCardRepository)
	cards.On("GetByID", mock.Anything, auth.DemoIdentity().UserID, mock.AnythingOfType("uuid.UUID")).
		Return(nil, domain.ErrNotFound)
	api := newTestAPI(cards)

	rec, env := doRequest(t, api, http.MethodGet, "/api/v1/cards/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "record not found", env.Error)
}

func TestGetCard_MalformedID(t *testing.T) {
	api := newTestAPI(new(MockCreditCardRepository))

	rec, env := doRequest(t, api, http.MethodGet, "/api/v1/cards/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestUpcomingPayments_BadFilter(t *testing.T) {
	api := newTestAPI(new(MockCreditCardRepository))

	rec, env := doRequest(t, api, http.MethodGet, "/api/v1/upcoming/payments?filter=fortnight", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}
