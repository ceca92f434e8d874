package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NetWorthSnapshot is a point-in-time aggregate of asset and liability
// category totals. Snapshots are append-only: created on demand, never
// mutated, ordered by SnapshotDate.
type NetWorthSnapshot struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SnapshotDate     time.Time
	AssetTotals      map[AssetCategory]decimal.Decimal
	LiabilityTotals  map[LiabilityCategory]decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	NetWorth         decimal.Decimal
}

// Validate ensures the snapshot adheres to domain rules.
// NetWorth must equal TotalAssets - TotalLiabilities, and the stored totals
// must match the sum of their category buckets.
func (s *NetWorthSnapshot) Validate() error {
	assetSum := decimal.Zero
	for _, v := range s.AssetTotals {
		assetSum = assetSum.Add(v)
	}
	if !assetSum.Equal(s.TotalAssets) {
		return errors.New("total assets must equal the sum of asset category totals")
	}

	liabilitySum := decimal.Zero
	for _, v := range s.LiabilityTotals {
		liabilitySum = liabilitySum.Add(v)
	}
	if !liabilitySum.Equal(s.TotalLiabilities) {
		return errors.New("total liabilities must equal the sum of liability category totals")
	}

	if !s.NetWorth.Equal(s.TotalAssets.Sub(s.TotalLiabilities)) {
		return errors.New("net worth must equal total assets minus total liabilities")
	}
	return nil
}
