package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxInventoryRepository creates a new repository for inventory data.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{pool: pool}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

const purchaseColumns = `purchase_id, item_id, item_name, supplier_id, supplier_name, date, unit_price, quantity, total_cost, purchase_order, reference, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row pgx.Row) (domain.Purchase, error) {
	var p domain.Purchase
	var itemID, itemName, supplierID, supplierName, purchaseOrder, reference sql.NullString
	err := row.Scan(
		&p.PurchaseID,
		&itemID,
		&itemName,
		&supplierID,
		&supplierName,
		&p.Date,
		&p.UnitPrice,
		&p.Quantity,
		&p.TotalCost,
		&purchaseOrder,
		&reference,
		&p.Status,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	p.ItemID = itemID.String
	p.ItemName = itemName.String
	p.SupplierID = supplierID.String
	p.SupplierName = supplierName.String
	p.PurchaseOrder = purchaseOrder.String
	p.Reference = reference.String
	return p, err
}

// SavePurchase inserts a new purchase.
func (r *PgxInventoryRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	query := `
		INSERT INTO purchases (purchase_id, item_id, item_name, supplier_id, supplier_name, date, unit_price, quantity, total_cost, purchase_order, reference, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		purchase.PurchaseID,
		nullableID(purchase.ItemID),
		purchase.ItemName,
		nullableID(purchase.SupplierID),
		purchase.SupplierName,
		purchase.Date,
		purchase.UnitPrice,
		purchase.Quantity,
		purchase.TotalCost,
		purchase.PurchaseOrder,
		purchase.Reference,
		purchase.Status,
		purchase.CreatedAt,
		purchase.CreatedBy,
		purchase.LastUpdatedAt,
		purchase.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase %s: %w", purchase.PurchaseID, err)
	}
	return nil
}

// FindPurchaseByID retrieves a purchase by its ID.
func (r *PgxInventoryRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE purchase_id = $1;`

	p, err := scanPurchase(r.pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase %s", apperrors.ErrNotFound, purchaseID)
		}
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}
	return &p, nil
}

// ListPurchases retrieves all purchases, newest first.
func (r *PgxInventoryRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases ORDER BY date DESC, created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}
	return purchases, nil
}

// FindItemsByIDs retrieves multiple inventory items keyed by ID.
func (r *PgxInventoryRepository) FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.InventoryItem, error) {
	query := `
		SELECT item_id, name, sku, unit_cost, created_at, created_by, last_updated_at, last_updated_by
		FROM inventory_items
		WHERE item_id = ANY($1);
	`
	rows, err := r.pool.Query(ctx, query, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory items by IDs: %w", err)
	}
	defer rows.Close()

	items := make(map[string]domain.InventoryItem)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items[item.ItemID] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (domain.InventoryItem, error) {
	var item domain.InventoryItem
	var sku sql.NullString
	err := row.Scan(&item.ItemID, &item.Name, &sku, &item.UnitCost, &item.CreatedAt, &item.CreatedBy, &item.LastUpdatedAt, &item.LastUpdatedBy)
	item.SKU = sku.String
	return item, err
}

// ListItems retrieves all inventory items ordered by name.
func (r *PgxInventoryRepository) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
		SELECT item_id, name, sku, unit_cost, created_at, created_by, last_updated_at, last_updated_by
		FROM inventory_items
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory item rows: %w", err)
	}
	return items, nil
}

// FindSuppliersByIDs retrieves multiple suppliers keyed by ID.
func (r *PgxInventoryRepository) FindSuppliersByIDs(ctx context.Context, supplierIDs []string) (map[string]domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM suppliers
		WHERE supplier_id = ANY($1);
	`
	rows, err := r.pool.Query(ctx, query, supplierIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find suppliers by IDs: %w", err)
	}
	defer rows.Close()

	suppliers := make(map[string]domain.Supplier)
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers[s.SupplierID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

// ListSuppliers retrieves all suppliers ordered by name.
func (r *PgxInventoryRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM suppliers
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.CreatedAt, &s.CreatedBy, &s.LastUpdatedAt, &s.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

// SaveItem inserts a new inventory item.
func (r *PgxInventoryRepository) SaveItem(ctx context.Context, item domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (item_id, name, sku, unit_cost, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		item.ItemID,
		item.Name,
		item.SKU,
		item.UnitCost,
		item.CreatedAt,
		item.CreatedBy,
		item.LastUpdatedAt,
		item.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save inventory item %s: %w", item.ItemID, err)
	}
	return nil
}

// SaveSupplier inserts a new supplier.
func (r *PgxInventoryRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.CreatedAt,
		supplier.CreatedBy,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save supplier %s: %w", supplier.SupplierID, err)
	}
	return nil
}
