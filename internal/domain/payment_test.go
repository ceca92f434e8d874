package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaymentRecord_SettledWithin(t *testing.T) {
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

	paidAt := func(d time.Duration) *PaymentRecord {
		paid := now.Add(-d)
		return &PaymentRecord{Status: PaymentStatusPaid, PaidDate: &paid}
	}

	tests := []struct {
		name string
		rec  *PaymentRecord
		want bool
	}{
		{"settled just now", paidAt(0), true},
		{"settled 29 days ago", paidAt(29 * 24 * time.Hour), true},
		{"settled exactly 30 days ago", paidAt(30 * 24 * time.Hour), false},
		{"settled 30 days and a second ago", paidAt(30*24*time.Hour + time.Second), false},
		{"pending record never suppresses", &PaymentRecord{Status: PaymentStatusPending}, false},
		{"failed record never suppresses", &PaymentRecord{Status: PaymentStatusFailed, PaidDate: &now}, false},
		{"paid without a date never suppresses", &PaymentRecord{Status: PaymentStatusPaid}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.SettledWithin(RecencyWindow, now))
		})
	}

	t.Run("future paid date does not suppress", func(t *testing.T) {
		future := now.Add(24 * time.Hour)
		rec := &PaymentRecord{Status: PaymentStatusPaid, PaidDate: &future}
		assert.False(t, rec.SettledWithin(RecencyWindow, now))
	})
}

func TestPaymentRecord_Validate(t *testing.T) {
	rec := &PaymentRecord{
		Amount:      decimal.NewFromInt(100),
		AccountType: AccountTypeCreditCard,
		Status:      PaymentStatusPending,
	}
	assert.NoError(t, rec.Validate())

	t.Run("hyphen spelling accepted", func(t *testing.T) {
		hyphen := *rec
		hyphen.AccountType = AccountType("credit-card")
		assert.NoError(t, hyphen.Validate())
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		bad := *rec
		bad.Amount = decimal.Zero
		assert.Error(t, bad.Validate())
	})

	t.Run("unknown account type rejected", func(t *testing.T) {
		bad := *rec
		bad.AccountType = AccountType("mortgage")
		assert.Error(t, bad.Validate())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		bad := *rec
		bad.Status = PaymentStatus("settled")
		assert.Error(t, bad.Validate())
	})
}
