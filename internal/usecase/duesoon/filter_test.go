package duesoon

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// Wednesday 2024-06-12, noon UTC
var testToday = time.Date(2024, 6, 12, 12, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }

func payable(id uuid.UUID, accountType domain.AccountType, due *time.Time) domain.PayableAccount {
	return domain.PayableAccount{
		ID:            id,
		AccountType:   accountType,
		DisplayName:   "Account " + id.String()[:8],
		Balance:       decimal.NewFromInt(1000),
		PaymentAmount: decimal.NewFromInt(50),
		NextDueDate:   due,
	}
}

func paidRecord(accountID uuid.UUID, accountType domain.AccountType, paidAgo time.Duration) *domain.PaymentRecord {
	paid := testToday.Add(-paidAgo)
	return &domain.PaymentRecord{
		ID:          uuid.New(),
		AccountID:   accountID,
		AccountType: accountType,
		Amount:      decimal.NewFromInt(50),
		Status:      domain.PaymentStatusPaid,
		PaidDate:    &paid,
	}
}

func TestParseWindow(t *testing.T) {
	for raw, want := range map[string]Window{"": WindowAll, "all": WindowAll, "week": WindowWeek, "month": WindowMonth} {
		got, err := ParseWindow(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseWindow("fortnight")
	assert.Error(t, err)
}

func TestFilterDueSoon_RecencySuppression(t *testing.T) {
	cardID := uuid.New()
	loanID := uuid.New()
	accounts := []domain.PayableAccount{
		payable(cardID, domain.AccountTypeCreditCard, datePtr(testToday.AddDate(0, 0, 2))),
		payable(loanID, domain.AccountTypeLoan, datePtr(testToday.AddDate(0, 0, 3))),
	}

	t.Run("recent payment hides the account in every window", func(t *testing.T) {
		payments := []*domain.PaymentRecord{paidRecord(cardID, domain.AccountTypeCreditCard, 5*24*time.Hour)}
		for _, window := range []Window{WindowAll, WindowWeek, WindowMonth} {
			items := FilterDueSoon(accounts, payments, window, testToday)
			require.Len(t, items, 1, "window %s", window)
			assert.Equal(t, loanID, items[0].Account.ID)
		}
	})

	t.Run("payment exactly 30 days old no longer suppresses", func(t *testing.T) {
		payments := []*domain.PaymentRecord{paidRecord(cardID, domain.AccountTypeCreditCard, 30*24*time.Hour)}
		items := FilterDueSoon(accounts, payments, WindowAll, testToday)
		assert.Len(t, items, 2)
	})

	t.Run("payment 30 days and a second old no longer suppresses", func(t *testing.T) {
		payments := []*domain.PaymentRecord{paidRecord(cardID, domain.AccountTypeCreditCard, 30*24*time.Hour+time.Second)}
		items := FilterDueSoon(accounts, payments, WindowAll, testToday)
		assert.Len(t, items, 2)
	})

	t.Run("pending payment does not suppress", func(t *testing.T) {
		rec := paidRecord(cardID, domain.AccountTypeCreditCard, time.Hour)
		rec.Status = domain.PaymentStatusPending
		rec.PaidDate = nil
		items := FilterDueSoon(accounts, []*domain.PaymentRecord{rec}, WindowAll, testToday)
		assert.Len(t, items, 2)
	})

	t.Run("hyphen and underscore spellings suppress the same account", func(t *testing.T) {
		rec := paidRecord(cardID, domain.AccountType("credit-card"), time.Hour)
		items := FilterDueSoon(accounts, []*domain.PaymentRecord{rec}, WindowAll, testToday)
		require.Len(t, items, 1)
		assert.Equal(t, loanID, items[0].Account.ID)
	})

	t.Run("payment for an unowned account is ignored", func(t *testing.T) {
		stranger := paidRecord(uuid.New(), domain.AccountTypeCreditCard, time.Hour)
		items := FilterDueSoon(accounts, []*domain.PaymentRecord{stranger}, WindowAll, testToday)
		assert.Len(t, items, 2)
	})
}

func TestFilterDueSoon_WeekWindow(t *testing.T) {
	// Week around Wednesday 2024-06-12: Sunday 06-09 through Saturday 06-15.
	inWeekStart := uuid.New()
	inWeekEnd := uuid.New()
	beforeWeek := uuid.New()
	afterWeek := uuid.New()
	noDueDate := uuid.New()

	accounts := []domain.PayableAccount{
		payable(inWeekStart, domain.AccountTypeCreditCard, datePtr(time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC))),
		payable(inWeekEnd, domain.AccountTypeCreditCard, datePtr(time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC))),
		payable(beforeWeek, domain.AccountTypeCreditCard, datePtr(time.Date(2024, 6, 8, 23, 59, 0, 0, time.UTC))),
		payable(afterWeek, domain.AccountTypeCreditCard, datePtr(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))),
		payable(noDueDate, domain.AccountTypeCreditCard, nil),
	}

	items := FilterDueSoon(accounts, nil, WindowWeek, testToday)
	got := make(map[uuid.UUID]bool)
	for _, item := range items {
		got[item.Account.ID] = true
	}
	assert.True(t, got[inWeekStart])
	assert.True(t, got[inWeekEnd])
	assert.False(t, got[beforeWeek])
	assert.False(t, got[afterWeek])
	assert.False(t, got[noDueDate])
}

func TestFilterDueSoon_MonthWindow(t *testing.T) {
	sameMonth := uuid.New()
	nextMonth := uuid.New()
	sameMonthLastYear := uuid.New()

	accounts := []domain.PayableAccount{
		payable(sameMonth, domain.AccountTypeCreditCard, datePtr(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))),
		payable(nextMonth, domain.AccountTypeCreditCard, datePtr(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))),
		payable(sameMonthLastYear, domain.AccountTypeCreditCard, datePtr(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC))),
	}

	items := FilterDueSoon(accounts, nil, WindowMonth, testToday)
	require.Len(t, items, 1)
	assert.Equal(t, sameMonth, items[0].Account.ID)
}

func TestFilterDueSoon_MissingDueDateUnderAll(t *testing.T) {
	id := uuid.New()
	accounts := []domain.PayableAccount{payable(id, domain.AccountTypeLoan, nil)}

	items := FilterDueSoon(accounts, nil, WindowAll, testToday)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].DaysUntilDue)
	assert.Equal(t, "Due Today", items[0].DueLabel)
}

func TestFilterDueSoon_SortAndLabels(t *testing.T) {
	overdue := uuid.New()
	today := uuid.New()
	tomorrow := uuid.New()
	later := uuid.New()

	accounts := []domain.PayableAccount{
		payable(later, domain.AccountTypeLoan, datePtr(testToday.AddDate(0, 0, 2))),
		payable(overdue, domain.AccountTypeCreditCard, datePtr(testToday.AddDate(0, 0, -3))),
		payable(tomorrow, domain.AccountTypeCreditCard, datePtr(testToday.AddDate(0, 0, 1))),
		payable(today, domain.AccountTypeLoan, datePtr(testToday)),
	}

	items := FilterDueSoon(accounts, nil, WindowAll, testToday)
	require.Len(t, items, 4)

	assert.Equal(t, overdue, items[0].Account.ID)
	assert.Equal(t, "3 days overdue", items[0].DueLabel)
	assert.Equal(t, today, items[1].Account.ID)
	assert.Equal(t, "Due Today", items[1].DueLabel)
	assert.Equal(t, tomorrow, items[2].Account.ID)
	assert.Equal(t, "Due Tomorrow", items[2].DueLabel)
	assert.Equal(t, later, items[3].Account.ID)
	assert.Equal(t, "2 days", items[3].DueLabel)
}

func TestFilterDueSoon_PureOverInputs(t *testing.T) {
	cardID := uuid.New()
	accounts := []domain.PayableAccount{
		payable(cardID, domain.AccountTypeCreditCard, datePtr(testToday.AddDate(0, 0, 2))),
		payable(uuid.New(), domain.AccountTypeLoan, datePtr(testToday.AddDate(0, 0, -1))),
	}
	payments := []*domain.PaymentRecord{paidRecord(uuid.New(), domain.AccountTypeLoan, time.Hour)}

	before := make([]domain.PayableAccount, len(accounts))
	copy(before, accounts)

	first := FilterDueSoon(accounts, payments, WindowAll, testToday)
	second := FilterDueSoon(accounts, payments, WindowAll, testToday)

	assert.Equal(t, before, accounts, "input slice must not be mutated")
	assert.Equal(t, first, second, "repeat runs must agree")
}

func TestFilterUpcomingIncome(t *testing.T) {
	active := &domain.IncomeSource{
		ID:          uuid.New(),
		Source:      "Salary",
		Amount:      decimal.NewFromInt(5000),
		Frequency:   domain.FrequencyMonthly,
		NextPayDate: datePtr(testToday.AddDate(0, 0, 3)),
		IsActive:    true,
	}
	inactive := &domain.IncomeSource{
		ID:          uuid.New(),
		Source:      "Old job",
		Amount:      decimal.NewFromInt(4000),
		Frequency:   domain.FrequencyMonthly,
		NextPayDate: datePtr(testToday.AddDate(0, 0, 1)),
		IsActive:    false,
	}
	noDate := &domain.IncomeSource{
		ID:        uuid.New(),
		Source:    "Freelance",
		Amount:    decimal.NewFromInt(800),
		Frequency: domain.FrequencyMonthly,
		IsActive:  true,
	}

	t.Run("all window keeps dateless sources and drops inactive", func(t *testing.T) {
		items := FilterUpcomingIncome([]*domain.IncomeSource{active, inactive, noDate}, WindowAll, testToday)
		require.Len(t, items, 2)
		assert.Equal(t, noDate.ID, items[0].Source.ID)
		assert.Equal(t, "Due Today", items[0].PayLabel)
		assert.Equal(t, active.ID, items[1].Source.ID)
		assert.Equal(t, "3 days", items[1].PayLabel)
	})

	t.Run("week window drops dateless sources", func(t *testing.T) {
		items := FilterUpcomingIncome([]*domain.IncomeSource{active, noDate}, WindowWeek, testToday)
		require.Len(t, items, 1)
		assert.Equal(t, active.ID, items[0].Source.ID)
	})
}

func TestDaysUntilDue(t *testing.T) {
	midnight := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		due   time.Time
		today time.Time
		want  int
	}{
		{"same instant", midnight, midnight, 0},
		{"two days out", midnight.AddDate(0, 0, 2), midnight, 2},
		{"three days overdue", midnight.AddDate(0, 0, -3), midnight, -3},
		{"partial day rounds up", midnight.Add(36 * time.Hour), midnight, 2},
		{"due later today from noon", midnight.Add(18 * time.Hour), midnight.Add(12 * time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilDue(tt.due, tt.today))
		})
	}
}

func TestWeekBounds(t *testing.T) {
	t.Run("midweek", func(t *testing.T) {
		start, end := WeekBounds(testToday)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 6, 15, 23, 59, 59, 999000000, time.UTC), end)
	})

	t.Run("sunday is its own week start", func(t *testing.T) {
		sunday := time.Date(2024, 6, 9, 15, 30, 0, 0, time.UTC)
		start, _ := WeekBounds(sunday)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("saturday still belongs to the running week", func(t *testing.T) {
		saturday := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		start, end := WeekBounds(saturday)
		assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), start)
		assert.True(t, end.After(saturday))
	})
}
