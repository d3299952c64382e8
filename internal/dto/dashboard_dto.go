package dto

import (
	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatsResponse represents the dashboard summary block.
type StatsResponse struct {
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

// DashboardResponse represents the assembled finance dashboard response.
type DashboardResponse struct {
	Transactions          []TransactionResponse `json:"transactions"`
	Accounts              []AccountResponse     `json:"accounts"`
	Stats                 StatsResponse         `json:"stats"`
	Warnings              []string              `json:"warnings,omitempty"`
	UnmatchedTransactions int                   `json:"unmatchedTransactions"`
}

// ToStatsResponse converts domain.Stats to StatsResponse DTO
func ToStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		TotalIncome:       s.TotalIncome,
		SalesIncome:       s.SalesIncome,
		RegularIncome:     s.RegularIncome,
		TotalExpenses:     s.TotalExpenses,
		InventoryExpenses: s.InventoryExpenses,
		RegularExpenses:   s.RegularExpenses,
		Balance:           s.Balance,
		PendingIncome:     s.PendingIncome,
		PendingExpenses:   s.PendingExpenses,
	}
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse DTO
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Transactions:          ToListTransactionResponse(d.Transactions),
		Accounts:              ToListAccountResponse(d.Accounts),
		Stats:                 ToStatsResponse(d.Stats),
		Warnings:              d.Warnings,
		UnmatchedTransactions: d.UnmatchedTransactions,
	}
}
