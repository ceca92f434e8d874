package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// Trend pairs a snapshot with its percentage change against the immediately
// preceding snapshot (month over month) and against the year-prior snapshot
// (year over year). A delta is nil when there is no comparison snapshot or
// the comparison net worth is zero.
type Trend struct {
	Snapshot       *domain.NetWorthSnapshot
	MonthOverMonth *decimal.Decimal
	YearOverYear   *decimal.Decimal
}

// SnapshotService creates and reads net-worth snapshots
type SnapshotService struct {
	AssetRepo     domain.AssetRepository
	LiabilityRepo domain.LiabilityRepository
	SnapshotRepo  domain.SnapshotRepository

	// Now is swappable for tests; defaults to time.Now
	Now func() time.Time
}

// NewSnapshotService creates a new SnapshotService instance
func NewSnapshotService(
	assetRepo domain.AssetRepository,
	liabilityRepo domain.LiabilityRepository,
	snapshotRepo domain.SnapshotRepository,
) *SnapshotService {
	return &SnapshotService{
		AssetRepo:     assetRepo,
		LiabilityRepo: liabilityRepo,
		SnapshotRepo:  snapshotRepo,
		Now:           time.Now,
	}
}

// Compose buckets the user's assets and liabilities into category totals and
// derives netWorth = totalAssets - totalLiabilities. Pure over its inputs.
func Compose(userID uuid.UUID, at time.Time, assets []*domain.Asset, liabilities []*domain.Liability) *domain.NetWorthSnapshot {
	snap := &domain.NetWorthSnapshot{
		ID:               uuid.New(),
		UserID:           userID,
		SnapshotDate:     at,
		AssetTotals:      make(map[domain.AssetCategory]decimal.Decimal, len(domain.AssetCategories)),
		LiabilityTotals:  make(map[domain.LiabilityCategory]decimal.Decimal, len(domain.LiabilityCategories)),
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
	}

	// Every category appears in the snapshot, zero-valued when empty, so the
	// stored history has a stable shape.
	for _, cat := range domain.AssetCategories {
		snap.AssetTotals[cat] = decimal.Zero
	}
	for _, cat := range domain.LiabilityCategories {
		snap.LiabilityTotals[cat] = decimal.Zero
	}

	for _, asset := range assets {
		snap.AssetTotals[asset.Category] = snap.AssetTotals[asset.Category].Add(asset.Value)
		snap.TotalAssets = snap.TotalAssets.Add(asset.Value)
	}
	for _, liability := range liabilities {
		snap.LiabilityTotals[liability.Category] = snap.LiabilityTotals[liability.Category].Add(liability.Balance)
		snap.TotalLiabilities = snap.TotalLiabilities.Add(liability.Balance)
	}

	snap.NetWorth = snap.TotalAssets.Sub(snap.TotalLiabilities)
	return snap
}

// Create takes a new snapshot of the user's current assets and liabilities
// and appends it to the history.
func (s *SnapshotService) Create(ctx context.Context, userID uuid.UUID) (*domain.NetWorthSnapshot, error) {
	assets, err := s.AssetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	liabilities, err := s.LiabilityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}

	snap := Compose(userID, s.Now(), assets, liabilities)
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	if err := s.SnapshotRepo.Create(ctx, snap); err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}
	return snap, nil
}

// History returns the user's snapshots, oldest first, with month-over-month
// and year-over-year deltas attached.
func (s *SnapshotService) History(ctx context.Context, userID uuid.UUID) ([]Trend, error) {
	snaps, err := s.SnapshotRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return ComputeTrends(snaps), nil
}

// ComputeTrends attaches deltas to a snapshot history. The input must be
// ordered by SnapshotDate ascending, which is the repository contract.
//
// Month over month compares against the immediately preceding snapshot.
// Year over year compares against the most recent snapshot taken at least
// one year before this one.
func ComputeTrends(snaps []*domain.NetWorthSnapshot) []Trend {
	trends := make([]Trend, 0, len(snaps))
	for i, snap := range snaps {
		trend := Trend{Snapshot: snap}

		if i > 0 {
			trend.MonthOverMonth = percentChange(snaps[i-1].NetWorth, snap.NetWorth)
		}

		yearAgo := snap.SnapshotDate.AddDate(-1, 0, 0)
		for j := i - 1; j >= 0; j-- {
			if !snaps[j].SnapshotDate.After(yearAgo) {
				trend.YearOverYear = percentChange(snaps[j].NetWorth, snap.NetWorth)
				break
			}
		}

		trends = append(trends, trend)
	}
	return trends
}

// percentChange returns (current - previous) / |previous| * 100, or nil when
// previous is zero.
func percentChange(previous, current decimal.Decimal) *decimal.Decimal {
	if previous.IsZero() {
		return nil
	}
	change := current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(100))
	return &change
}
