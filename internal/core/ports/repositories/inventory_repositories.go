package repositories

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// InventoryReader defines read operations for inventory data
type InventoryReader interface {
	// FindPurchaseByID retrieves a specific purchase.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves all purchases ordered by date descending.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)

	// FindItemsByIDs retrieves multiple inventory items by their IDs.
	FindItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.InventoryItem, error)

	// ListItems retrieves all inventory items ordered by name.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)

	// FindSuppliersByIDs retrieves multiple suppliers by their IDs.
	FindSuppliersByIDs(ctx context.Context, supplierIDs []string) (map[string]domain.Supplier, error)

	// ListSuppliers retrieves all suppliers ordered by name.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// InventoryWriter defines write operations for inventory data
type InventoryWriter interface {
	// SavePurchase persists a new purchase.
	SavePurchase(ctx context.Context, purchase domain.Purchase) error

	// SaveItem persists a new inventory item.
	SaveItem(ctx context.Context, item domain.InventoryItem) error

	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
}

// InventoryRepositoryFacade combines all inventory-related repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}
