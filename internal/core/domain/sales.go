package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a sales-module record. It is converted into a synthetic income
// transaction for the finance dashboard.
type Sale struct {
	SaleID        string          `json:"saleID"`
	CustomerID    string          `json:"customerID,omitempty"`
	CustomerName  string          `json:"customerName,omitempty"` // Denormalized; may be empty
	Date          time.Time       `json:"date"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"` // paid, pending, ...
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	Items         []SaleItem      `json:"items"`
	AuditFields
}

// SaleItem is a line item on a sale, used only for description enrichment.
type SaleItem struct {
	ProductID   string          `json:"productID,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Customer is a sales-module lookup record.
type Customer struct {
	CustomerID             string `json:"customerID"`
	Name                   string `json:"name"`
	Email                  string `json:"email,omitempty"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod,omitempty"`
	AuditFields
}

// Product is a sales-module lookup record.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku,omitempty"`
	Price     decimal.Decimal `json:"price"`
	AuditFields
}
