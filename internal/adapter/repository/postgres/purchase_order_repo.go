package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fintrackhq/fintrack-backend/internal/domain"
)

// purchaseOrderRepository implements domain.PurchaseOrderRepository.
// An order is stored as a header row plus one row per line item, written
// together in one database transaction. Updates replace the full item set.
type purchaseOrderRepository struct {
	db *DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *DB) domain.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, order *domain.PurchaseOrder) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	insertOrder := `
		INSERT INTO purchase_orders (id, user_id, business_profile_id, vendor_id, order_number, status, order_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = dbTx.ExecContext(ctx, insertOrder,
		order.ID,
		order.UserID,
		nullUUID(order.BusinessProfileID),
		order.VendorID,
		order.OrderNumber,
		string(order.Status),
		order.OrderDate,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert purchase order: %w", err)
	}

	if err := insertItems(ctx, dbTx, order); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase order: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, dbTx *sql.Tx, order *domain.PurchaseOrder) error {
	insertItem := `
		INSERT INTO purchase_order_items (id, purchase_order_id, description, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, item := range order.Items {
		_, err := dbTx.ExecContext(ctx, insertItem,
			item.ID,
			item.PurchaseOrderID,
			item.Description,
			item.Quantity.String(),
			item.UnitPrice.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert purchase order item: %w", err)
		}
	}
	return nil
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseOrder, error) {
	query := `
		SELECT id, user_id, business_profile_id, vendor_id, order_number, status, order_date, created_at, updated_at
		FROM purchase_orders
		WHERE user_id = $1 AND id = $2
	`
	order, err := scanPurchaseOrder(r.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase order: %w", err)
	}

	items, err := r.loadItems(ctx, []uuid.UUID{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	return order, nil
}

func (r *purchaseOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.PurchaseOrder, error) {
	query := `
		SELECT id, user_id, business_profile_id, vendor_id, order_number, status, order_date, created_at, updated_at
		FROM purchase_orders
		WHERE user_id = $1
		ORDER BY order_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.PurchaseOrder, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order: %w", err)
		}
		orders = append(orders, order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase orders: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, order := range orders {
		order.Items = items[order.ID]
	}
	return orders, nil
}

func (r *purchaseOrderRepository) Update(ctx context.Context, order *domain.PurchaseOrder) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	updateOrder := `
		UPDATE purchase_orders
		SET business_profile_id = $3, vendor_id = $4, order_number = $5, status = $6, order_date = $7, updated_at = $8
		WHERE user_id = $1 AND id = $2
	`
	result, err := dbTx.ExecContext(ctx, updateOrder,
		order.UserID,
		order.ID,
		nullUUID(order.BusinessProfileID),
		order.VendorID,
		order.OrderNumber,
		string(order.Status),
		order.OrderDate,
		order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase order: %w", err)
	}
	if err := requireRow(result); err != nil {
		return err
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM purchase_order_items WHERE purchase_order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("failed to clear purchase order items: %w", err)
	}
	if err := insertItems(ctx, dbTx, order); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit purchase order update: %w", err)
	}
	return nil
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	// Items cascade via the foreign key.
	result, err := r.db.ExecContext(ctx, `DELETE FROM purchase_orders WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase order: %w", err)
	}
	return requireRow(result)
}

func (r *purchaseOrderRepository) loadItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]domain.PurchaseOrderItem, error) {
	query := `
		SELECT id, purchase_order_id, description, quantity, unit_price
		FROM purchase_order_items
		WHERE purchase_order_id = ANY($1)
		ORDER BY description
	`
	ids := make([]string, len(orderIDs))
	for i, id := range orderIDs {
		ids[i] = id.String()
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase order items: %w", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]domain.PurchaseOrderItem)
	for rows.Next() {
		var item domain.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.PurchaseOrderID, &item.Description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order item: %w", err)
		}
		items[item.PurchaseOrderID] = append(items[item.PurchaseOrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchase order items: %w", err)
	}
	return items, nil
}

func scanPurchaseOrder(row rowScanner) (*domain.PurchaseOrder, error) {
	var order domain.PurchaseOrder
	var profileID uuid.NullUUID
	var status string

	err := row.Scan(
		&order.ID,
		&order.UserID,
		&profileID,
		&order.VendorID,
		&order.OrderNumber,
		&status,
		&order.OrderDate,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Status = domain.PurchaseOrderStatus(status)
	if profileID.Valid {
		order.BusinessProfileID = &profileID.UUID
	}
	return &order, nil
}
