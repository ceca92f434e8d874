package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// vendorRepository implements domain.VendorRepository
type vendorRepository struct {
	db *DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *DB) domain.VendorRepository {
	return &vendorRepository{db: db}
}

const vendorColumns = `id, user_id, business_profile_id, name, contact_name, email, phone, created_at, updated_at`

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		vendor.ID,
		vendor.UserID,
		nullUUID(vendor.BusinessProfileID),
		vendor.Name,
		vendor.ContactName,
		vendor.Email,
		vendor.Phone,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE user_id = $1 AND id = $2
	`
	vendor, err := scanVendor(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return vendor, nil
}

func (r *vendorRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := make([]*domain.Vendor, 0)
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, vendor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vendors: %w", err)
	}
	return vendors, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	query := `
		UPDATE vendors
		SET business_profile_id = $3, name = $4, contact_name = $5, email = $6, phone = $7, updated_at = $8
		WHERE user_id = $1 AND id = $2
	`
	result, err := r.db.ExecContext(ctx, query,
		vendor.UserID,
		vendor.ID,
		nullUUID(vendor.BusinessProfileID),
		vendor.Name,
		vendor.ContactName,
		vendor.Email,
		vendor.Phone,
		vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	return requireRow(result)
}

func (r *vendorRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM vendors WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	return requireRow(result)
}

func scanVendor(row rowScanner) (*domain.Vendor, error) {
	var vendor domain.Vendor
	var profileID uuid.NullUUID

	err := row.Scan(
		&vendor.ID,
		&vendor.UserID,
		&profileID,
		&vendor.Name,
		&vendor.ContactName,
		&vendor.Email,
		&vendor.Phone,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if profileID.Valid {
		vendor.BusinessProfileID = &profileID.UUID
	}
	return &vendor, nil
}
