package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// snapshotRepository implements domain.SnapshotRepository.
// A snapshot is stored as a header row plus one category row per bucket,
// written together in one database transaction.
type snapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new net-worth snapshot repository
func NewSnapshotRepository(db *DB) domain.SnapshotRepository {
	return &snapshotRepository{db: db}
}

const (
	categorySideAsset     = "asset"
	categorySideLiability = "liability"
)

func (r *snapshotRepository) Create(ctx context.Context, snap *domain.NetWorthSnapshot) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertHeader := `
		INSERT INTO net_worth_snapshots (id, user_id, snapshot_date, total_assets, total_liabilities, net_worth)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = dbTx.ExecContext(ctx, insertHeader,
		snap.ID,
		snap.UserID,
		snap.SnapshotDate,
		snap.TotalAssets.String(),
		snap.TotalLiabilities.String(),
		snap.NetWorth.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	insertCategory := `
		INSERT INTO net_worth_snapshot_categories (snapshot_id, side, category, total)
		VALUES ($1, $2, $3, $4)
	`
	for category, total := range snap.AssetTotals {
		if _, err := dbTx.ExecContext(ctx, insertCategory, snap.ID, categorySideAsset, string(category), total.String()); err != nil {
			return fmt.Errorf("failed to insert snapshot asset category: %w", err)
		}
	}
	for category, total := range snap.LiabilityTotals {
		if _, err := dbTx.ExecContext(ctx, insertCategory, snap.ID, categorySideLiability, string(category), total.String()); err != nil {
			return fmt.Errorf("failed to insert snapshot liability category: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.NetWorthSnapshot, error) {
	headerQuery := `
		SELECT id, user_id, snapshot_date, total_assets, total_liabilities, net_worth
		FROM net_worth_snapshots
		WHERE user_id = $1
		ORDER BY snapshot_date
	`
	rows, err := r.db.QueryContext(ctx, headerQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snaps := make([]*domain.NetWorthSnapshot, 0)
	byID := make(map[uuid.UUID]*domain.NetWorthSnapshot)
	for rows.Next() {
		var snap domain.NetWorthSnapshot
		err := rows.Scan(
			&snap.ID,
			&snap.UserID,
			&snap.SnapshotDate,
			&snap.TotalAssets,
			&snap.TotalLiabilities,
			&snap.NetWorth,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap.AssetTotals = make(map[domain.AssetCategory]decimal.Decimal)
		snap.LiabilityTotals = make(map[domain.LiabilityCategory]decimal.Decimal)
		snaps = append(snaps, &snap)
		byID[snap.ID] = &snap
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshots: %w", err)
	}
	if len(snaps) == 0 {
		return snaps, nil
	}

	categoryQuery := `
		SELECT c.snapshot_id, c.side, c.category, c.total
		FROM net_worth_snapshot_categories c
		JOIN net_worth_snapshots s ON s.id = c.snapshot_id
		WHERE s.user_id = $1
	`
	catRows, err := r.db.QueryContext(ctx, categoryQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshot categories: %w", err)
	}
	defer catRows.Close()

	for catRows.Next() {
		var snapshotID uuid.UUID
		var side, category string
		var total decimal.Decimal
		if err := catRows.Scan(&snapshotID, &side, &category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot category: %w", err)
		}
		snap, ok := byID[snapshotID]
		if !ok {
			continue
		}
		switch side {
		case categorySideAsset:
			snap.AssetTotals[domain.AssetCategory(category)] = total
		case categorySideLiability:
			snap.LiabilityTotals[domain.LiabilityCategory(category)] = total
		}
	}
	if err := catRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate snapshot categories: %w", err)
	}

	return snaps, nil
}
