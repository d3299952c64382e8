package fincalc_test

import (
	"testing"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSaleToTransaction(t *testing.T) {
	sale := domain.Sale{
		SaleID: "s1",
		Total:  decimal.NewFromInt(500),
		Status: "paid",
		Items: []domain.SaleItem{
			{ProductName: "Widget", Quantity: 2},
		},
	}

	got := fincalc.SaleToTransaction(sale, nil)

	assert.Equal(t, "sales-s1", got.TransactionID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, domain.Income, got.Type)
	assert.Equal(t, "Sales Revenue", got.Category)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.Equal(t, "Sale to Customer (2x Widget)", got.Description)
	assert.Equal(t, "Sales Account", got.AccountName)
	assert.Equal(t, "INV-s1", got.Reference)
	assert.Equal(t, domain.SourceSales, got.SourceType)
}

func TestSaleToTransaction_CustomerLookup(t *testing.T) {
	customers := map[string]domain.Customer{
		"c1": {CustomerID: "c1", Name: "Acme Corp", PreferredPaymentMethod: "Bank Transfer"},
	}
	sale := domain.Sale{
		SaleID:        "a1b2c3d4e5f6",
		CustomerID:    "c1",
		Total:         decimal.NewFromInt(1200),
		Status:        "pending",
		InvoiceNumber: "",
		Items: []domain.SaleItem{
			{ProductName: "Widget", Quantity: 2},
			{ProductName: "Gadget", Quantity: 1},
		},
	}

	got := fincalc.SaleToTransaction(sale, customers)

	assert.Equal(t, "Sale to Acme Corp (2x Widget, 1x Gadget)", got.Description)
	assert.Equal(t, "Bank Transfer", got.AccountName)
	assert.Equal(t, "INV-a1b2c3d4", got.Reference)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestSaleToTransaction_NoItemsOmitsList(t *testing.T) {
	sale := domain.Sale{SaleID: "s2", CustomerName: "Jane", Total: decimal.NewFromInt(10), Status: "paid"}

	got := fincalc.SaleToTransaction(sale, nil)
	assert.Equal(t, "Sale to Jane", got.Description)
}

func TestSaleToTransaction_SalePaymentMethodWins(t *testing.T) {
	customers := map[string]domain.Customer{
		"c1": {CustomerID: "c1", Name: "Acme", PreferredPaymentMethod: "Bank Transfer"},
	}
	sale := domain.Sale{SaleID: "s3", CustomerID: "c1", PaymentMethod: "Cash", Total: decimal.NewFromInt(5), Status: "paid"}

	got := fincalc.SaleToTransaction(sale, customers)
	assert.Equal(t, "Cash", got.AccountName)
}

func TestPurchaseToTransaction(t *testing.T) {
	purchase := domain.Purchase{
		PurchaseID: "p1",
		ItemName:   "Steel Rods",
		UnitPrice:  decimal.NewFromInt(10),
		Quantity:   5,
		Status:     "pending",
	}

	got := fincalc.PurchaseToTransaction(purchase, nil, nil)

	assert.Equal(t, "inventory-p1", got.TransactionID)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(50)), "amount = %s", got.Amount)
	assert.Equal(t, domain.Expense, got.Type)
	assert.Equal(t, "Inventory Purchase", got.Category)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, "Inventory: Steel Rods (5 units @ 10)", got.Description)
	assert.Equal(t, "PO-p1", got.Reference)
}

func TestPurchaseToTransaction_SupplierAppended(t *testing.T) {
	suppliers := map[string]domain.Supplier{
		"sup1": {SupplierID: "sup1", Name: "Northwind"},
	}
	purchase := domain.Purchase{
		PurchaseID: "p2",
		ItemName:   "Bolts",
		SupplierID: "sup1",
		TotalCost:  decimal.NewFromInt(75),
		Status:     "paid",
	}

	got := fincalc.PurchaseToTransaction(purchase, nil, suppliers)

	assert.Equal(t, "Inventory: Bolts from Northwind", got.Description)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestPurchaseToTransaction_UnknownSupplierNotAppended(t *testing.T) {
	purchase := domain.Purchase{
		PurchaseID:   "p3",
		ItemName:     "Bolts",
		SupplierName: "Unknown Supplier",
		TotalCost:    decimal.NewFromInt(10),
	}

	got := fincalc.PurchaseToTransaction(purchase, nil, nil)
	assert.Equal(t, "Inventory: Bolts", got.Description)
}

func TestPurchaseToTransaction_AmountFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		purchase domain.Purchase
		want     decimal.Decimal
	}{
		{
			name:     "total cost wins",
			purchase: domain.Purchase{PurchaseID: "p", TotalCost: decimal.NewFromInt(99), UnitPrice: decimal.NewFromInt(1), Quantity: 3},
			want:     decimal.NewFromInt(99),
		},
		{
			name:     "unit price times quantity",
			purchase: domain.Purchase{PurchaseID: "p", UnitPrice: decimal.NewFromFloat(2.5), Quantity: 4},
			want:     decimal.NewFromInt(10),
		},
		{
			name:     "nothing known yields zero",
			purchase: domain.Purchase{PurchaseID: "p"},
			want:     decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fincalc.PurchaseToTransaction(tt.purchase, nil, nil)
			assert.True(t, got.Amount.Equal(tt.want), "amount = %s", got.Amount)
		})
	}
}

func TestPurchaseToTransaction_ReferenceFallbacks(t *testing.T) {
	withPO := domain.Purchase{PurchaseID: "p1", PurchaseOrder: "PO-2024-17", Reference: "REF-1"}
	assert.Equal(t, "PO-2024-17", fincalc.PurchaseToTransaction(withPO, nil, nil).Reference)

	withRef := domain.Purchase{PurchaseID: "p1", Reference: "REF-1"}
	assert.Equal(t, "REF-1", fincalc.PurchaseToTransaction(withRef, nil, nil).Reference)

	bare := domain.Purchase{PurchaseID: "0123456789"}
	assert.Equal(t, "PO-01234567", fincalc.PurchaseToTransaction(bare, nil, nil).Reference)
}
