package snapshot

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompose_BucketsByCategory(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assets := []*domain.Asset{
		{Name: "Checking", Category: domain.AssetCategoryCash, Value: d("3000")},
		{Name: "Savings", Category: domain.AssetCategoryCash, Value: d("7000")},
		{Name: "Index fund", Category: domain.AssetCategoryInvestment, Value: d("20000")},
	}
	liabilities := []*domain.Liability{
		{Name: "Card debt", Category: domain.LiabilityCategoryConsumerDebt, Balance: d("2000")},
		{Name: "Back taxes", Category: domain.LiabilityCategoryTaxes, Balance: d("1000")},
	}

	snap := Compose(userID, at, assets, liabilities)
	require.NoError(t, snap.Validate())

	assert.True(t, snap.AssetTotals[domain.AssetCategoryCash].Equal(d("10000")))
	assert.True(t, snap.AssetTotals[domain.AssetCategoryInvestment].Equal(d("20000")))
	assert.True(t, snap.TotalAssets.Equal(d("30000")))
	assert.True(t, snap.TotalLiabilities.Equal(d("3000")))
	assert.True(t, snap.NetWorth.Equal(d("27000")))

	// Every category is present even when empty, so history rows line up.
	assert.Len(t, snap.AssetTotals, len(domain.AssetCategories))
	assert.Len(t, snap.LiabilityTotals, len(domain.LiabilityCategories))
	assert.True(t, snap.AssetTotals[domain.AssetCategoryVehicle].IsZero())
}

func TestCompose_EmptyPortfolio(t *testing.T) {
	snap := Compose(uuid.New(), time.Now(), nil, nil)
	require.NoError(t, snap.Validate())
	assert.True(t, snap.NetWorth.IsZero())
}

func snapAt(date time.Time, netWorth string) *domain.NetWorthSnapshot {
	return &domain.NetWorthSnapshot{
		ID:           uuid.New(),
		SnapshotDate: date,
		NetWorth:     d(netWorth),
	}
}

func TestComputeTrends(t *testing.T) {
	base := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	snaps := []*domain.NetWorthSnapshot{
		snapAt(base, "10000"),
		snapAt(base.AddDate(0, 1, 0), "12000"),
		snapAt(base.AddDate(1, 1, 0), "18000"),
	}

	trends := ComputeTrends(snaps)
	require.Len(t, trends, 3)

	t.Run("first snapshot has no deltas", func(t *testing.T) {
		assert.Nil(t, trends[0].MonthOverMonth)
		assert.Nil(t, trends[0].YearOverYear)
	})

	t.Run("month over month against immediate predecessor", func(t *testing.T) {
		require.NotNil(t, trends[1].MonthOverMonth)
		assert.True(t, trends[1].MonthOverMonth.Equal(d("20")), "got %s", trends[1].MonthOverMonth)
		assert.Nil(t, trends[1].YearOverYear, "nothing a year back yet")
	})

	t.Run("year over year against most recent year-old snapshot", func(t *testing.T) {
		require.NotNil(t, trends[2].MonthOverMonth)
		assert.True(t, trends[2].MonthOverMonth.Equal(d("50")))
		require.NotNil(t, trends[2].YearOverYear)
		// Compared against the Feb 2023 snapshot (12000), not the Jan one.
		assert.True(t, trends[2].YearOverYear.Equal(d("50")), "got %s", trends[2].YearOverYear)
	})
}

func TestComputeTrends_ZeroPreviousYieldsNil(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snaps := []*domain.NetWorthSnapshot{
		snapAt(base, "0"),
		snapAt(base.AddDate(0, 1, 0), "5000"),
	}

	trends := ComputeTrends(snaps)
	require.Len(t, trends, 2)
	assert.Nil(t, trends[1].MonthOverMonth, "division against a zero baseline is undefined, not infinite")
}

func TestComputeTrends_NegativeBaseline(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snaps := []*domain.NetWorthSnapshot{
		snapAt(base, "-1000"),
		snapAt(base.AddDate(0, 1, 0), "-500"),
	}

	trends := ComputeTrends(snaps)
	require.NotNil(t, trends[1].MonthOverMonth)
	// (-500 - -1000) / |-1000| * 100 = 50: moving toward zero reads as growth.
	assert.True(t, trends[1].MonthOverMonth.Equal(d("50")), "got %s", trends[1].MonthOverMonth)
}
