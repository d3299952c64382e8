package services

import (
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, alertNotifier portssvc.AlertNotifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.Sales = NewSalesService(repos.SalesRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo)

	// The dashboard aggregates the other three modules
	container.Dashboard = NewDashboardService(
		repos.AccountRepo,
		repos.TransactionRepo,
		container.Sales,
		container.Inventory,
	)

	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo, alertNotifier)
	container.Auth = NewAuthService(cfg, repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade     = (*accountService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.DashboardSvc         = (*dashboardService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.SalesSvcFacade       = (*salesService)(nil)
	_ portssvc.InventorySvcFacade   = (*inventoryService)(nil)
	_ portssvc.AuthSvc              = (*authService)(nil)
)
