package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the kind of financial account.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	CreditCard AccountType = "CREDIT_CARD"
	Cash       AccountType = "CASH"
	OtherAcct  AccountType = "OTHER"
)

// DefaultAccountName is the fallback account name used when a transaction
// arrives without a resolvable account reference.
const DefaultAccountName = "Default"

// Account represents a financial account within the core domain.
// Balance is the persisted, authoritative figure. InitialBalance and
// CurrentBalance are derived per dashboard build: InitialBalance snapshots
// Balance at load time, CurrentBalance is the replay of completed
// transactions on top of it. Neither derived field is ever written back.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	Name        string          `json:"name"`      // User-defined name, unique
	AccountType AccountType     `json:"accountType"`
	Description string          `json:"description"` // Nullable user description
	IsActive    bool            `json:"isActive"`
	AuditFields                 // Embed CreatedAt, CreatedBy, etc.
	Balance     decimal.Decimal `json:"balance"`

	InitialBalance decimal.Decimal `json:"initialBalance"` // Derived, in-memory only
	CurrentBalance decimal.Decimal `json:"currentBalance"` // Derived, in-memory only
}
