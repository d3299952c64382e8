package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/platform/observability"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
	sales       portssvc.SalesReaderSvc
	inventory   portssvc.InventoryReaderSvc
}

// NewDashboardService creates the dashboard aggregation service.
func NewDashboardService(
	accountRepo portsrepo.AccountReader,
	txnRepo portsrepo.TransactionReader,
	sales portssvc.SalesReaderSvc,
	inventory portssvc.InventoryReaderSvc,
) portssvc.DashboardSvc {
	return &dashboardService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		sales:       sales,
		inventory:   inventory,
	}
}

// BuildDashboard assembles the three-source finance dashboard. Accounts are
// load-bearing: if they cannot be fetched the build fails. Each transaction
// source degrades independently to a warning and contributes zero
// transactions, so one broken module never blanks the dashboard.
func (s *dashboardService) BuildDashboard(ctx context.Context) (*domain.Dashboard, error) {
	observability.DashboardRefreshTotal.Inc()

	accounts, err := s.accountRepo.ListAccounts(ctx, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for dashboard")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	var (
		financeTxns   []domain.Transaction
		salesTxns     []domain.Transaction
		inventoryTxns []domain.Transaction
		financeErr    error
		salesErr      error
		inventoryErr  error
	)

	// The three sources are independent; fetch them concurrently. Errors
	// are collected per source rather than aborting the group.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		financeTxns, financeErr = s.txnRepo.ListAllTransactions(gctx)
		return nil
	})
	g.Go(func() error {
		salesTxns, salesErr = s.sales.SalesTransactions(gctx)
		return nil
	})
	g.Go(func() error {
		inventoryTxns, inventoryErr = s.inventory.PurchaseTransactions(gctx)
		return nil
	})
	_ = g.Wait()

	var warnings []string
	merged := []domain.Transaction{}
	for _, source := range []struct {
		name domain.SourceType
		txns []domain.Transaction
		err  error
	}{
		{domain.SourceFinance, financeTxns, financeErr},
		{domain.SourceSales, salesTxns, salesErr},
		{domain.SourceInventory, inventoryTxns, inventoryErr},
	} {
		if source.err != nil {
			observability.DashboardSourceFailures.WithLabelValues(string(source.name)).Inc()
			s.LogWarn(ctx, "Dashboard source fetch failed, contributing zero transactions",
				slog.String("source", string(source.name)),
				slog.String("error", source.err.Error()))
			warnings = append(warnings, fmt.Sprintf("%s data unavailable", source.name))
			source.txns = nil
		}
		merged = fincalc.MergeBySource(merged, source.txns, source.name)
	}

	stats := fincalc.ComputeStats(merged)

	// Snapshot the stored balance before replaying completed transactions
	for i := range accounts {
		accounts[i].InitialBalance = accounts[i].Balance
	}
	reconciled, skipped := fincalc.ReconcileBalances(accounts, merged)
	if skipped > 0 {
		observability.UnmatchedTransactionsTotal.Add(float64(skipped))
		s.LogWarn(ctx, "Completed transactions matched no account during reconciliation",
			slog.Int("skipped", skipped))
	}

	s.LogDebug(ctx, "Dashboard assembled",
		slog.Int("transactions", len(merged)),
		slog.Int("accounts", len(reconciled)),
		slog.Int("warnings", len(warnings)))

	return &domain.Dashboard{
		Transactions:          merged,
		Accounts:              reconciled,
		Stats:                 stats,
		Warnings:              warnings,
		UnmatchedTransactions: skipped,
	}, nil
}
