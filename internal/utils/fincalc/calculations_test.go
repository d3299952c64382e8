package fincalc_test

import (
	"testing"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, amount float64, txnType domain.TransactionType, status domain.TransactionStatus, source domain.SourceType, account string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Amount:        decimal.NewFromFloat(amount),
		Type:          txnType,
		Status:        status,
		SourceType:    source,
		AccountName:   account,
	}
}

func mixedTransactions() []domain.Transaction {
	return []domain.Transaction{
		txn("t1", 100, domain.Income, domain.StatusCompleted, domain.SourceFinance, "Checking"),
		txn("sales-s1", 500, domain.Income, domain.StatusCompleted, domain.SourceSales, "Sales Account"),
		txn("t2", 40, domain.Expense, domain.StatusCompleted, domain.SourceFinance, "Checking"),
		txn("inventory-p1", 60, domain.Expense, domain.StatusCompleted, domain.SourceInventory, "Default"),
		txn("t3", 25, domain.Income, domain.StatusPending, domain.SourceFinance, "Checking"),
		txn("inventory-p2", 10, domain.Expense, domain.StatusPending, domain.SourceInventory, "Default"),
	}
}

func TestComputeStats(t *testing.T) {
	stats := fincalc.ComputeStats(mixedTransactions())

	assert.True(t, stats.TotalIncome.Equal(decimal.NewFromInt(600)), "totalIncome = %s", stats.TotalIncome)
	assert.True(t, stats.SalesIncome.Equal(decimal.NewFromInt(500)))
	assert.True(t, stats.RegularIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.TotalExpenses.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.InventoryExpenses.Equal(decimal.NewFromInt(60)))
	assert.True(t, stats.RegularExpenses.Equal(decimal.NewFromInt(40)))
	assert.True(t, stats.Balance.Equal(decimal.NewFromInt(500)))
	assert.True(t, stats.PendingIncome.Equal(decimal.NewFromInt(25)))
	assert.True(t, stats.PendingExpenses.Equal(decimal.NewFromInt(10)))
}

func TestComputeStats_Invariants(t *testing.T) {
	stats := fincalc.ComputeStats(mixedTransactions())

	// balance = totalIncome - totalExpenses, completed only
	assert.True(t, stats.Balance.Equal(stats.TotalIncome.Sub(stats.TotalExpenses)))
	// source splits partition the totals
	assert.True(t, stats.SalesIncome.Add(stats.RegularIncome).Equal(stats.TotalIncome))
	assert.True(t, stats.InventoryExpenses.Add(stats.RegularExpenses).Equal(stats.TotalExpenses))
}

func TestComputeStats_OrderIndependent(t *testing.T) {
	txns := mixedTransactions()
	reversed := make([]domain.Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}

	forward := fincalc.ComputeStats(txns)
	backward := fincalc.ComputeStats(reversed)
	assert.True(t, forward.Balance.Equal(backward.Balance))
	assert.True(t, forward.TotalIncome.Equal(backward.TotalIncome))
	assert.True(t, forward.TotalExpenses.Equal(backward.TotalExpenses))
}

func TestMergeBySource_Idempotent(t *testing.T) {
	finance := []domain.Transaction{
		txn("t1", 100, domain.Income, domain.StatusCompleted, domain.SourceFinance, "Checking"),
	}
	sales := []domain.Transaction{
		txn("sales-s1", 500, domain.Income, domain.StatusCompleted, domain.SourceSales, "Sales Account"),
		txn("sales-s2", 200, domain.Income, domain.StatusPending, domain.SourceSales, "Sales Account"),
	}

	merged := fincalc.MergeBySource(nil, finance, domain.SourceFinance)
	merged = fincalc.MergeBySource(merged, sales, domain.SourceSales)
	require.Len(t, merged, 3)

	// a second refresh of the same payload replaces, never accumulates
	again := fincalc.MergeBySource(merged, sales, domain.SourceSales)
	assert.Equal(t, merged, again)

	// refreshing one source leaves the others untouched
	refreshed := fincalc.MergeBySource(merged, sales[:1], domain.SourceSales)
	require.Len(t, refreshed, 2)
	assert.Equal(t, "t1", refreshed[0].TransactionID)
	assert.Equal(t, "sales-s1", refreshed[1].TransactionID)
}

func TestMergeBySource_FailedSourceContributesNothing(t *testing.T) {
	merged := fincalc.MergeBySource(nil, mixedTransactions(), domain.SourceFinance)
	// an empty refresh drops all inventory entries
	merged = fincalc.MergeBySource(merged, nil, domain.SourceInventory)
	for _, tx := range merged {
		assert.NotEqual(t, domain.SourceInventory, tx.SourceType)
	}
}

func TestReconcileBalances(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "a1", Name: "Checking", InitialBalance: decimal.NewFromInt(1000)},
		{AccountID: "a2", Name: "Savings", InitialBalance: decimal.NewFromInt(5000)},
	}
	txns := []domain.Transaction{
		txn("t1", 200, domain.Income, domain.StatusCompleted, domain.SourceFinance, "Checking"),
		txn("t2", 50, domain.Expense, domain.StatusCompleted, domain.SourceFinance, "Checking"),
		txn("t3", 999, domain.Income, domain.StatusPending, domain.SourceFinance, "Checking"), // pending, ignored
	}

	reconciled, skipped := fincalc.ReconcileBalances(accounts, txns)
	require.Len(t, reconciled, 2)
	assert.Zero(t, skipped)
	assert.True(t, reconciled[0].CurrentBalance.Equal(decimal.NewFromInt(1150)))
	assert.True(t, reconciled[1].CurrentBalance.Equal(decimal.NewFromInt(5000)))

	// input slice untouched
	assert.True(t, accounts[0].CurrentBalance.IsZero())
}

func TestReconcileBalances_UnmatchedSkipped(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "a1", Name: "Checking", InitialBalance: decimal.NewFromInt(1000)},
	}
	txns := []domain.Transaction{
		txn("t1", 200, domain.Income, domain.StatusCompleted, domain.SourceFinance, "Unknown"),
	}

	reconciled, skipped := fincalc.ReconcileBalances(accounts, txns)
	assert.Equal(t, 1, skipped)
	assert.True(t, reconciled[0].CurrentBalance.Equal(decimal.NewFromInt(1000)))
}

func TestReconcileBalances_MatchByAccountID(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "a1", Name: "Checking", InitialBalance: decimal.NewFromInt(100)},
	}
	byID := txn("t1", 40, domain.Expense, domain.StatusCompleted, domain.SourceFinance, "Renamed Account")
	byID.AccountID = "a1"

	reconciled, skipped := fincalc.ReconcileBalances(accounts, []domain.Transaction{byID})
	assert.Zero(t, skipped)
	assert.True(t, reconciled[0].CurrentBalance.Equal(decimal.NewFromInt(60)))
}

func TestReconcileBalances_NetMatchesStats(t *testing.T) {
	// sum of (currentBalance - initialBalance) equals totalIncome - totalExpenses
	// when every completed transaction matches an account
	accounts := []domain.Account{
		{AccountID: "a1", Name: "Checking", InitialBalance: decimal.NewFromInt(1000)},
		{AccountID: "a2", Name: "Sales Account", InitialBalance: decimal.Zero},
		{AccountID: "a3", Name: "Default", InitialBalance: decimal.Zero},
	}
	txns := mixedTransactions()

	reconciled, skipped := fincalc.ReconcileBalances(accounts, txns)
	require.Zero(t, skipped)

	net := decimal.Zero
	for i, acc := range reconciled {
		net = net.Add(acc.CurrentBalance.Sub(accounts[i].InitialBalance))
	}
	stats := fincalc.ComputeStats(txns)
	assert.True(t, net.Equal(stats.TotalIncome.Sub(stats.TotalExpenses)), "net = %s", net)
}
