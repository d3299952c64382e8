package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownSupplierName is the placeholder the inventory module stores when a
// purchase has no real supplier. It must never leak into transaction
// descriptions.
const UnknownSupplierName = "Unknown Supplier"

// Purchase is an inventory-module record. It is converted into a synthetic
// expense transaction for the finance dashboard.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	ItemID        string          `json:"itemID,omitempty"`
	ItemName      string          `json:"itemName,omitempty"` // Denormalized; may be empty
	SupplierID    string          `json:"supplierID,omitempty"`
	SupplierName  string          `json:"supplierName,omitempty"` // Denormalized; may be empty
	Date          time.Time       `json:"date"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Quantity      int64           `json:"quantity"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	PurchaseOrder string          `json:"purchaseOrder,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Status        string          `json:"status"`
	AuditFields
}

// InventoryItem is an inventory-module lookup record.
type InventoryItem struct {
	ItemID   string          `json:"itemID"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku,omitempty"`
	UnitCost decimal.Decimal `json:"unitCost"`
	AuditFields
}

// Supplier is an inventory-module lookup record.
type Supplier struct {
	SupplierID string `json:"supplierID"`
	Name       string `json:"name"`
	AuditFields
}
