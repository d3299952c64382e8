package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the data needed to record a purchase.
type CreatePurchaseRequest struct {
	Item          FlexRef         `json:"item"`
	Supplier      FlexRef         `json:"supplier"`
	Date          time.Time       `json:"date" binding:"required"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity" binding:"required,min=1"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	PurchaseOrder string          `json:"purchaseOrder"`
	Reference     string          `json:"reference"`
	Status        string          `json:"status" binding:"omitempty,oneof=paid pending"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID    string          `json:"purchaseID"`
	ItemID        string          `json:"itemID,omitempty"`
	ItemName      string          `json:"itemName,omitempty"`
	SupplierID    string          `json:"supplierID,omitempty"`
	SupplierName  string          `json:"supplierName,omitempty"`
	Date          time.Time       `json:"date"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	PurchaseOrder string          `json:"purchaseOrder,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		ItemID:        p.ItemID,
		ItemName:      p.ItemName,
		SupplierID:    p.SupplierID,
		SupplierName:  p.SupplierName,
		Date:          p.Date,
		UnitPrice:     p.UnitPrice,
		Quantity:      p.Quantity,
		TotalCost:     p.TotalCost,
		PurchaseOrder: p.PurchaseOrder,
		Reference:     p.Reference,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToListPurchaseResponse converts a slice of domain.Purchase to PurchaseResponse DTOs
func ToListPurchaseResponse(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i, p := range purchases {
		res[i] = ToPurchaseResponse(&p)
	}
	return res
}

// CreateInventoryItemRequest defines the data needed to create an inventory item.
type CreateInventoryItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	SKU      string          `json:"sku"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// InventoryItemResponse mirrors domain.InventoryItem.
type InventoryItemResponse struct {
	ItemID   string          `json:"itemID"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku,omitempty"`
	UnitCost decimal.Decimal `json:"unitCost"`
}

// ToInventoryItemResponse converts a domain.InventoryItem to its DTO
func ToInventoryItemResponse(item *domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ItemID:   item.ItemID,
		Name:     item.Name,
		SKU:      item.SKU,
		UnitCost: item.UnitCost,
	}
}

// ToListInventoryItemResponse converts a slice of domain.InventoryItem to DTOs
func ToListInventoryItemResponse(items []domain.InventoryItem) []InventoryItemResponse {
	res := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		res[i] = ToInventoryItemResponse(&item)
	}
	return res
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name string `json:"name" binding:"required"`
}

// SupplierResponse mirrors domain.Supplier.
type SupplierResponse struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
}

// ToSupplierResponse converts a domain.Supplier to its DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
	}
}

// ToListSupplierResponse converts a slice of domain.Supplier to DTOs
func ToListSupplierResponse(suppliers []domain.Supplier) []SupplierResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return res
}
