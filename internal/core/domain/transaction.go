package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of a transaction. The amount is
// always non-negative; the sign is carried by the type.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionStatus is the settlement state of a transaction. Only
// completed transactions count toward balances.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
)

// SourceType identifies which module a transaction originated from.
type SourceType string

const (
	SourceFinance   SourceType = "finance"
	SourceSales     SourceType = "sales"
	SourceInventory SourceType = "inventory"
)

// Synthetic transaction id prefixes. Transactions derived from the sales
// and inventory modules carry these prefixes so they never collide with
// native finance ids and stay read-only from the finance surface.
const (
	SalesIDPrefix     = "sales-"
	InventoryIDPrefix = "inventory-"
)

// DefaultCategory is the fallback category name when a transaction arrives
// without a resolvable category reference.
const DefaultCategory = "Other"

// Transaction is the unified transaction shape shared by all three source
// modules after normalization.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	Date          time.Time         `json:"date"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"` // Always >= 0
	Type          TransactionType   `json:"type"`
	Category      string            `json:"category"`
	AccountID     string            `json:"accountID,omitempty"`
	AccountName   string            `json:"accountName"`
	Reference     string            `json:"reference,omitempty"`
	Status        TransactionStatus `json:"status"`
	SourceType    SourceType        `json:"sourceType"`
	AuditFields
}

// IsSynthetic reports whether the transaction was derived from another
// module rather than entered directly in finance.
func (t Transaction) IsSynthetic() bool {
	return IsSyntheticTransactionID(t.TransactionID)
}

// IsSyntheticTransactionID reports whether an id carries a cross-module prefix.
func IsSyntheticTransactionID(id string) bool {
	return strings.HasPrefix(id, SalesIDPrefix) || strings.HasPrefix(id, InventoryIDPrefix)
}
