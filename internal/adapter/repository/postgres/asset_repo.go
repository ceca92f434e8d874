package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	query := `
		INSERT INTO assets (id, user_id, name, category, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		asset.ID,
		asset.UserID,
		asset.Name,
		string(asset.Category),
		asset.Value.String(),
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *assetRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Asset, error) {
	query := `
		SELECT id, user_id, name, category, value, created_at, updated_at
		FROM assets
		WHERE user_id = $1 AND id = $2
	`
	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

func (r *assetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Asset, error) {
	query := `
		SELECT id, user_id, name, category, value, created_at, updated_at
		FROM assets
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}
	return assets, nil
}

func (r *assetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	query := `
		UPDATE assets
		SET name = $3, category = $4, value = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		asset.UserID,
		asset.ID,
		asset.Name,
		string(asset.Category),
		asset.Value.String(),
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return requireRow(result)
}

func (r *assetRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return requireRow(result)
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var category string

	err := row.Scan(
		&asset.ID,
		&asset.UserID,
		&asset.Name,
		&category,
		&asset.Value,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	asset.Category = domain.AssetCategory(category)
	return &asset, nil
}

// liabilityRepository implements domain.LiabilityRepository
type liabilityRepository struct {
	db *DB
}

// NewLiabilityRepository creates a new liability repository
func NewLiabilityRepository(db *DB) domain.LiabilityRepository {
	return &liabilityRepository{db: db}
}

func (r *liabilityRepository) Create(ctx context.Context, liability *domain.Liability) error {
	query := `
		INSERT INTO liabilities (id, user_id, name, category, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		liability.ID,
		liability.UserID,
		liability.Name,
		string(liability.Category),
		liability.Balance.String(),
		liability.CreatedAt,
		liability.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create liability: %w", err)
	}
	return nil
}

func (r *liabilityRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Liability, error) {
	query := `
		SELECT id, user_id, name, category, balance, created_at, updated_at
		FROM liabilities
		WHERE user_id = $1 AND id = $2
	`
	liability, err := scanLiability(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get liability: %w", err)
	}
	return liability, nil
}

func (r *liabilityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Liability, error) {
	query := `
		SELECT id, user_id, name, category, balance, created_at, updated_at
		FROM liabilities
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liabilities: %w", err)
	}
	defer rows.Close()

	liabilities := make([]*domain.Liability, 0)
	for rows.Next() {
		liability, err := scanLiability(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liability: %w", err)
		}
		liabilities = append(liabilities, liability)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate liabilities: %w", err)
	}
	return liabilities, nil
}

func (r *liabilityRepository) Update(ctx context.Context, liability *domain.Liability) error {
	query := `
		UPDATE liabilities
		SET name = $3, category = $4, balance = $5, updated_at = $6
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		liability.UserID,
		liability.ID,
		liability.Name,
		string(liability.Category),
		liability.Balance.String(),
		liability.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update liability: %w", err)
	}
	return requireRow(result)
}

func (r *liabilityRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM liabilities WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete liability: %w", err)
	}
	return requireRow(result)
}

func scanLiability(row rowScanner) (*domain.Liability, error) {
	var liability domain.Liability
	var category string

	err := row.Scan(
		&liability.ID,
		&liability.UserID,
		&liability.Name,
		&category,
		&liability.Balance,
		&liability.CreatedAt,
		&liability.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	liability.Category = domain.LiabilityCategory(category)
	return &liability, nil
}
