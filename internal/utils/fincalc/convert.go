package fincalc

import (
	"fmt"
	"strings"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalesRevenueCategory is the fixed category of sales-derived transactions.
const SalesRevenueCategory = "Sales Revenue"

// InventoryPurchaseCategory is the fixed category of inventory-derived transactions.
const InventoryPurchaseCategory = "Inventory Purchase"

// salesFallbackAccount is used when neither the sale nor the customer
// carries a payment method.
const salesFallbackAccount = "Sales Account"

// mapSourceStatus maps a sales/inventory status onto the transaction
// status. "paid" means completed; an empty status means pending; anything
// else passes through unchanged.
func mapSourceStatus(status string) domain.TransactionStatus {
	switch status {
	case "paid":
		return domain.StatusCompleted
	case "":
		return domain.StatusPending
	default:
		return domain.TransactionStatus(status)
	}
}

// shortID returns the first 8 characters of an id for synthesized references.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SaleToTransaction converts a sale into its synthetic income transaction.
// The customers map resolves the customer name and preferred payment method
// when the sale record itself does not carry them.
func SaleToTransaction(sale domain.Sale, customers map[string]domain.Customer) domain.Transaction {
	customer, hasCustomer := customers[sale.CustomerID]

	customerName := sale.CustomerName
	if customerName == "" && hasCustomer {
		customerName = customer.Name
	}
	if customerName == "" {
		customerName = "Customer"
	}

	description := "Sale to " + customerName
	if len(sale.Items) > 0 {
		parts := make([]string, len(sale.Items))
		for i, item := range sale.Items {
			parts[i] = fmt.Sprintf("%dx %s", item.Quantity, item.ProductName)
		}
		description += " (" + strings.Join(parts, ", ") + ")"
	}

	account := sale.PaymentMethod
	if account == "" && hasCustomer {
		account = customer.PreferredPaymentMethod
	}
	if account == "" {
		account = salesFallbackAccount
	}

	reference := sale.InvoiceNumber
	if reference == "" {
		reference = "INV-" + shortID(sale.SaleID)
	}

	return domain.Transaction{
		TransactionID: domain.SalesIDPrefix + sale.SaleID,
		Date:          sale.Date,
		Description:   description,
		Amount:        sale.Total,
		Type:          domain.Income,
		Category:      SalesRevenueCategory,
		AccountName:   account,
		Reference:     reference,
		Status:        mapSourceStatus(sale.Status),
		SourceType:    domain.SourceSales,
	}
}

// PurchaseToTransaction converts an inventory purchase into its synthetic
// expense transaction. The items and suppliers maps resolve names the
// purchase record does not carry. The amount falls back from total cost to
// unit price times quantity to zero.
func PurchaseToTransaction(purchase domain.Purchase, items map[string]domain.InventoryItem, suppliers map[string]domain.Supplier) domain.Transaction {
	itemName := purchase.ItemName
	if itemName == "" {
		if item, ok := items[purchase.ItemID]; ok {
			itemName = item.Name
		}
	}
	if itemName == "" {
		itemName = "Unknown Item"
	}

	description := "Inventory: " + itemName
	if purchase.Quantity > 0 && purchase.UnitPrice.IsPositive() {
		description += fmt.Sprintf(" (%d units @ %s)", purchase.Quantity, purchase.UnitPrice.String())
	}

	supplierName := purchase.SupplierName
	if supplierName == "" {
		if supplier, ok := suppliers[purchase.SupplierID]; ok {
			supplierName = supplier.Name
		}
	}
	if supplierName != "" && supplierName != domain.UnknownSupplierName {
		description += " from " + supplierName
	}

	amount := purchase.TotalCost
	if amount.IsZero() && purchase.Quantity > 0 {
		amount = purchase.UnitPrice.Mul(decimal.NewFromInt(purchase.Quantity))
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}

	reference := purchase.PurchaseOrder
	if reference == "" {
		reference = purchase.Reference
	}
	if reference == "" {
		reference = "PO-" + shortID(purchase.PurchaseID)
	}

	return domain.Transaction{
		TransactionID: domain.InventoryIDPrefix + purchase.PurchaseID,
		Date:          purchase.Date,
		Description:   description,
		Amount:        amount,
		Type:          domain.Expense,
		Category:      InventoryPurchaseCategory,
		AccountName:   domain.DefaultAccountName,
		Reference:     reference,
		Status:        mapSourceStatus(purchase.Status),
		SourceType:    domain.SourceInventory,
	}
}
