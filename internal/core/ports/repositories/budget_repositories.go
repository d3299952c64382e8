package repositories

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data
type BudgetReader interface {
	// FindBudgetByID retrieves a budget with its category lines.
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets with their category lines.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)

	// ListAlertNotifications retrieves persisted alert notifications,
	// newest first.
	ListAlertNotifications(ctx context.Context, budgetID string) ([]domain.AlertNotification, error)
}

// BudgetWriter defines write operations for budget data
type BudgetWriter interface {
	// SaveBudget persists a new budget and its category lines.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget replaces an existing budget's details and category lines.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget and its category lines.
	DeleteBudget(ctx context.Context, budgetID string) error

	// SaveAlertNotification persists a budget alert notification.
	SaveAlertNotification(ctx context.Context, notification domain.AlertNotification) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
