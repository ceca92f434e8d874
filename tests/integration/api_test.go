//go:build integration

// End-to-end tests against a running server and database. Point API_ADDR at
// the server and run with -tags integration; the server must allow the demo
// identity (APP_ENV != production, no Authorization header sent).
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiAddr() string {
	if addr := os.Getenv("API_ADDR"); addr != "" {
		return addr
	}
	return "http://localhost:8080"
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func call(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, apiAddr()+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	if out != nil && env.Data != nil {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return resp.StatusCode
}

type cardPayload struct {
	ID             uuid.UUID       `json:"id"`
	DisplayName    string          `json:"displayName"`
	Balance        decimal.Decimal `json:"balance"`
	MinimumPayment decimal.Decimal `json:"minimumPayment"`
}

type dueItemPayload struct {
	AccountID    uuid.UUID `json:"accountId"`
	DaysUntilDue int       `json:"daysUntilDue"`
	DueLabel     string    `json:"dueLabel"`
}

type paymentPayload struct {
	ID       uuid.UUID  `json:"id"`
	Status   string     `json:"status"`
	PaidDate *time.Time `json:"paidDate"`
}

func TestMarkPaidSuppressesUpcomingPayment(t *testing.T) {
	due := time.Now().AddDate(0, 0, 2).Format(time.RFC3339)

	var card cardPayload
	status := call(t, http.MethodPost, "/api/v1/cards", map[string]interface{}{
		"displayName":    fmt.Sprintf("e2e card %d", time.Now().UnixNano()),
		"balance":        "1200",
		"creditLimit":    "5000",
		"minimumPayment": "35",
		"nextDueDate":    due,
	}, &card)
	require.Equal(t, http.StatusCreated, status)
	defer call(t, http.MethodDelete, "/api/v1/cards/"+card.ID.String(), nil, nil)

	findCard := func() *dueItemPayload {
		var items []dueItemPayload
		status := call(t, http.MethodGet, "/api/v1/upcoming/payments?filter=all", nil, &items)
		require.Equal(t, http.StatusOK, status)
		for i := range items {
			if items[i].AccountID == card.ID {
				return &items[i]
			}
		}
		return nil
	}

	item := findCard()
	require.NotNil(t, item, "new card must appear in the due list")
	assert.Equal(t, 2, item.DaysUntilDue)
	assert.Equal(t, "2 days", item.DueLabel)

	var payment paymentPayload
	status = call(t, http.MethodPost, "/api/v1/payments/mark-paid", map[string]interface{}{
		"accountId":   card.ID.String(),
		"accountType": "credit-card",
		"amount":      "35",
	}, &payment)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "paid", payment.Status)
	require.NotNil(t, payment.PaidDate)

	assert.Nil(t, findCard(), "paid card must disappear from the due list")
}

func TestOverviewEndpoint(t *testing.T) {
	var metrics map[string]decimal.Decimal
	status := call(t, http.MethodGet, "/api/v1/overview", nil, &metrics)
	require.Equal(t, http.StatusOK, status)

	for _, key := range []string{"totalDebt", "monthlyIncome", "availableCash", "creditUtilization", "totalLiquidity"} {
		_, ok := metrics[key]
		assert.True(t, ok, "overview must include %s", key)
	}
	assert.True(t, metrics["availableCash"].GreaterThanOrEqual(decimal.Zero), "availableCash never displays negative")
}

func TestSnapshotRoundTrip(t *testing.T) {
	status := call(t, http.MethodPost, "/api/v1/net-worth/snapshots", nil, nil)
	require.Equal(t, http.StatusCreated, status)

	var snaps []struct {
		NetWorth         decimal.Decimal `json:"netWorth"`
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	}
	status = call(t, http.MethodGet, "/api/v1/net-worth/snapshots", nil, &snaps)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, snaps)

	last := snaps[len(snaps)-1]
	assert.True(t, last.NetWorth.Equal(last.TotalAssets.Sub(last.TotalLiabilities)))
}
