package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// InventoryReaderSvc defines read operations for the inventory module
type InventoryReaderSvc interface {
	// GetPurchaseByID retrieves a specific purchase.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves all purchases, newest first.
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)

	// ListItems retrieves all inventory items.
	ListItems(ctx context.Context) ([]domain.InventoryItem, error)

	// ListSuppliers retrieves all suppliers.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// PurchaseTransactions converts all purchases into synthetic finance
	// transactions for dashboard aggregation.
	PurchaseTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// InventoryWriterSvc defines write operations for the inventory module
type InventoryWriterSvc interface {
	// CreatePurchase records a new purchase.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error)

	// CreateItem records a new inventory item.
	CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error)

	// CreateSupplier records a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)
}

// InventorySvcFacade combines all inventory-related service interfaces
type InventorySvcFacade interface {
	InventoryReaderSvc
	InventoryWriterSvc
}
