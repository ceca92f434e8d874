package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validSnapshot() *NetWorthSnapshot {
	return &NetWorthSnapshot{
		AssetTotals: map[AssetCategory]decimal.Decimal{
			AssetCategoryCash:       decimal.NewFromInt(5000),
			AssetCategoryInvestment: decimal.NewFromInt(20000),
		},
		LiabilityTotals: map[LiabilityCategory]decimal.Decimal{
			LiabilityCategoryConsumerDebt: decimal.NewFromInt(3000),
		},
		TotalAssets:      decimal.NewFromInt(25000),
		TotalLiabilities: decimal.NewFromInt(3000),
		NetWorth:         decimal.NewFromInt(22000),
	}
}

func TestNetWorthSnapshot_Validate(t *testing.T) {
	assert.NoError(t, validSnapshot().Validate())

	t.Run("asset total mismatch", func(t *testing.T) {
		snap := validSnapshot()
		snap.TotalAssets = decimal.NewFromInt(24000)
		assert.Error(t, snap.Validate())
	})

	t.Run("liability total mismatch", func(t *testing.T) {
		snap := validSnapshot()
		snap.TotalLiabilities = decimal.NewFromInt(1)
		assert.Error(t, snap.Validate())
	})

	t.Run("net worth mismatch", func(t *testing.T) {
		snap := validSnapshot()
		snap.NetWorth = decimal.NewFromInt(25000)
		assert.Error(t, snap.Validate())
	})

	t.Run("negative net worth is valid when consistent", func(t *testing.T) {
		snap := validSnapshot()
		snap.LiabilityTotals[LiabilityCategoryTaxes] = decimal.NewFromInt(30000)
		snap.TotalLiabilities = decimal.NewFromInt(33000)
		snap.NetWorth = decimal.NewFromInt(-8000)
		assert.NoError(t, snap.Validate())
	})
}
