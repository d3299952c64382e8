package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryRepositoryFacade
}

// NewInventoryService creates a new inventory module service.
func NewInventoryService(repo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{inventoryRepo: repo}
}

func (s *inventoryService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, userID string) (*domain.Purchase, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitPrice.IsNegative() || req.TotalCost.IsNegative() {
		return nil, fmt.Errorf("%w: purchase amounts cannot be negative", apperrors.ErrValidation)
	}

	itemName := req.Item.Name
	if req.Item.ID != "" && itemName == "" {
		items, err := s.inventoryRepo.FindItemsByIDs(ctx, []string{req.Item.ID})
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve item for purchase", slog.String("item_id", req.Item.ID))
			return nil, err
		}
		if item, ok := items[req.Item.ID]; ok {
			itemName = item.Name
		}
	}

	supplierName := req.Supplier.Name
	if req.Supplier.ID != "" && supplierName == "" {
		suppliers, err := s.inventoryRepo.FindSuppliersByIDs(ctx, []string{req.Supplier.ID})
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve supplier for purchase", slog.String("supplier_id", req.Supplier.ID))
			return nil, err
		}
		if supplier, ok := suppliers[req.Supplier.ID]; ok {
			supplierName = supplier.Name
		}
	}

	totalCost := req.TotalCost
	if totalCost.IsZero() && !req.UnitPrice.IsZero() {
		totalCost = req.UnitPrice.Mul(decimal.NewFromInt(req.Quantity))
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	now := time.Now()
	purchase := domain.Purchase{
		PurchaseID:    uuid.NewString(),
		ItemID:        req.Item.ID,
		ItemName:      itemName,
		SupplierID:    req.Supplier.ID,
		SupplierName:  supplierName,
		Date:          req.Date,
		UnitPrice:     req.UnitPrice,
		Quantity:      req.Quantity,
		TotalCost:     totalCost,
		PurchaseOrder: req.PurchaseOrder,
		Reference:     req.Reference,
		Status:        status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inventoryRepo.SavePurchase(ctx, purchase); err != nil {
		s.LogError(ctx, err, "Failed to save purchase in repository", slog.String("purchase_id", purchase.PurchaseID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase created successfully in service", slog.String("purchase_id", purchase.PurchaseID))
	return &purchase, nil
}

func (s *inventoryService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	purchase, err := s.inventoryRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find purchase by ID in repository", slog.String("purchase_id", purchaseID))
		}
		return nil, err
	}
	return purchase, nil
}

func (s *inventoryService) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	purchases, err := s.inventoryRepo.ListPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases from repository")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		return []domain.Purchase{}, nil
	}
	return purchases, nil
}

func (s *inventoryService) ListItems(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.inventoryRepo.ListItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory items from repository")
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	if items == nil {
		return []domain.InventoryItem{}, nil
	}
	return items, nil
}

func (s *inventoryService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.inventoryRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers from repository")
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *inventoryService) CreateItem(ctx context.Context, req dto.CreateInventoryItemRequest, userID string) (*domain.InventoryItem, error) {
	now := time.Now()
	item := domain.InventoryItem{
		ItemID:   uuid.NewString(),
		Name:     req.Name,
		SKU:      req.SKU,
		UnitCost: req.UnitCost,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inventoryRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save inventory item in repository", slog.String("item_id", item.ItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Inventory item created successfully in service", slog.String("item_id", item.ItemID))
	return &item, nil
}

func (s *inventoryService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		Name:       req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.inventoryRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier in repository", slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created successfully in service", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

// PurchaseTransactions projects every purchase into a synthetic expense
// transaction for the finance dashboard.
func (s *inventoryService) PurchaseTransactions(ctx context.Context) ([]domain.Transaction, error) {
	purchases, err := s.inventoryRepo.ListPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases for transaction projection")
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	itemIDs := make([]string, 0, len(purchases))
	supplierIDs := make([]string, 0, len(purchases))
	for _, purchase := range purchases {
		if purchase.ItemID != "" {
			itemIDs = append(itemIDs, purchase.ItemID)
		}
		if purchase.SupplierID != "" {
			supplierIDs = append(supplierIDs, purchase.SupplierID)
		}
	}

	items := map[string]domain.InventoryItem{}
	if len(itemIDs) > 0 {
		items, err = s.inventoryRepo.FindItemsByIDs(ctx, itemIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve items for purchase projection")
			return nil, fmt.Errorf("failed to resolve items: %w", err)
		}
	}

	suppliers := map[string]domain.Supplier{}
	if len(supplierIDs) > 0 {
		suppliers, err = s.inventoryRepo.FindSuppliersByIDs(ctx, supplierIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve suppliers for purchase projection")
			return nil, fmt.Errorf("failed to resolve suppliers: %w", err)
		}
	}

	txns := make([]domain.Transaction, len(purchases))
	for i, purchase := range purchases {
		txns[i] = fincalc.PurchaseToTransaction(purchase, items, suppliers)
	}
	return txns, nil
}
