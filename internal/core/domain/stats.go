package domain

import "github.com/shopspring/decimal"

// Stats is the derived dashboard summary. Balance covers completed
// transactions only; pending figures are informational and excluded from it.
// Invariants: Balance = TotalIncome - TotalExpenses,
// SalesIncome + RegularIncome = TotalIncome,
// InventoryExpenses + RegularExpenses = TotalExpenses.
type Stats struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	SalesIncome       decimal.Decimal `json:"salesIncome"`
	RegularIncome     decimal.Decimal `json:"regularIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	InventoryExpenses decimal.Decimal `json:"inventoryExpenses"`
	RegularExpenses   decimal.Decimal `json:"regularExpenses"`
	Balance           decimal.Decimal `json:"balance"`
	PendingIncome     decimal.Decimal `json:"pendingIncome"`
	PendingExpenses   decimal.Decimal `json:"pendingExpenses"`
}
