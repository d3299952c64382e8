// Package fincalc holds the pure financial computations behind the finance
// dashboard: three-source transaction merging, summary stats, account
// balance reconciliation and budget comparison. Everything here takes and
// returns values; services do the fetching and logging.
package fincalc

import (
	"strings"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// belongsToSource reports whether a merged-list transaction came from the
// given source. Sales and inventory entries are identified by their id
// prefix, native finance entries by source type.
func belongsToSource(txn domain.Transaction, source domain.SourceType) bool {
	switch source {
	case domain.SourceSales:
		return strings.HasPrefix(txn.TransactionID, domain.SalesIDPrefix)
	case domain.SourceInventory:
		return strings.HasPrefix(txn.TransactionID, domain.InventoryIDPrefix)
	default:
		return txn.SourceType == domain.SourceFinance
	}
}

// MergeBySource replaces all entries of one source in the merged list with
// a freshly fetched batch. Stale entries from the source are dropped before
// the new ones are appended, so repeated refreshes never accumulate
// duplicates and the other sources' entries are untouched.
func MergeBySource(existing []domain.Transaction, incoming []domain.Transaction, source domain.SourceType) []domain.Transaction {
	merged := make([]domain.Transaction, 0, len(existing)+len(incoming))
	for _, txn := range existing {
		if !belongsToSource(txn, source) {
			merged = append(merged, txn)
		}
	}
	merged = append(merged, incoming...)
	return merged
}

// ComputeStats derives the dashboard summary from the merged list.
// Completed transactions feed the balance; pending ones are tallied
// separately and excluded from it.
func ComputeStats(txns []domain.Transaction) domain.Stats {
	stats := domain.Stats{
		TotalIncome:       decimal.Zero,
		SalesIncome:       decimal.Zero,
		RegularIncome:     decimal.Zero,
		TotalExpenses:     decimal.Zero,
		InventoryExpenses: decimal.Zero,
		RegularExpenses:   decimal.Zero,
		Balance:           decimal.Zero,
		PendingIncome:     decimal.Zero,
		PendingExpenses:   decimal.Zero,
	}

	for _, txn := range txns {
		switch txn.Status {
		case domain.StatusCompleted:
			switch txn.Type {
			case domain.Income:
				stats.TotalIncome = stats.TotalIncome.Add(txn.Amount)
				if txn.SourceType == domain.SourceSales {
					stats.SalesIncome = stats.SalesIncome.Add(txn.Amount)
				} else {
					stats.RegularIncome = stats.RegularIncome.Add(txn.Amount)
				}
			case domain.Expense:
				stats.TotalExpenses = stats.TotalExpenses.Add(txn.Amount)
				if txn.SourceType == domain.SourceInventory {
					stats.InventoryExpenses = stats.InventoryExpenses.Add(txn.Amount)
				} else {
					stats.RegularExpenses = stats.RegularExpenses.Add(txn.Amount)
				}
			}
		case domain.StatusPending:
			switch txn.Type {
			case domain.Income:
				stats.PendingIncome = stats.PendingIncome.Add(txn.Amount)
			case domain.Expense:
				stats.PendingExpenses = stats.PendingExpenses.Add(txn.Amount)
			}
		}
	}

	stats.Balance = stats.TotalIncome.Sub(stats.TotalExpenses)
	return stats
}

// ReconcileBalances replays completed transactions against each account's
// InitialBalance to derive CurrentBalance. The input slice is not mutated.
// A transaction is matched to its account by exact name first, then by
// account id; a transaction matching no account is skipped and counted.
// The accumulation is a pure sum, so processing order does not matter.
func ReconcileBalances(accounts []domain.Account, txns []domain.Transaction) ([]domain.Account, int) {
	reconciled := make([]domain.Account, len(accounts))
	byName := make(map[string]int, len(accounts))
	byID := make(map[string]int, len(accounts))
	for i, acc := range accounts {
		acc.CurrentBalance = acc.InitialBalance
		reconciled[i] = acc
		byName[acc.Name] = i
		byID[acc.AccountID] = i
	}

	skipped := 0
	for _, txn := range txns {
		if txn.Status != domain.StatusCompleted {
			continue
		}

		idx, ok := byName[txn.AccountName]
		if !ok && txn.AccountID != "" {
			idx, ok = byID[txn.AccountID]
		}
		if !ok {
			skipped++
			continue
		}

		switch txn.Type {
		case domain.Income:
			reconciled[idx].CurrentBalance = reconciled[idx].CurrentBalance.Add(txn.Amount)
		case domain.Expense:
			reconciled[idx].CurrentBalance = reconciled[idx].CurrentBalance.Sub(txn.Amount)
		}
	}

	return reconciled, skipped
}
