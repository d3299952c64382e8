package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetReaderSvc defines read operations for budget definitions
type BudgetReaderSvc interface {
	// GetBudgetByID retrieves a budget with its category lines.
	GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves all budgets.
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}

// BudgetWriterSvc defines write operations for budget definitions
type BudgetWriterSvc interface {
	// CreateBudget persists a new budget.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)

	// UpdateBudget updates an existing budget's details and lines.
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error)

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, budgetID string, userID string) error
}

// BudgetTrackerSvc defines the budget vs actuals reporting operations
type BudgetTrackerSvc interface {
	// TrackBudget computes utilization of a budget over its own window.
	TrackBudget(ctx context.Context, budgetID string) (*domain.BudgetReport, error)

	// CompareBudget computes utilization over a standard period window
	// (month, quarter or year to date) instead of the budget's own dates.
	// An empty period falls back to the budget's own window.
	CompareBudget(ctx context.Context, budgetID string, period string) (*domain.BudgetReport, error)

	// ListAlerts returns the live alerts for a budget at the given
	// threshold. A nil threshold uses the default (90 percent).
	ListAlerts(ctx context.Context, budgetID string, threshold *decimal.Decimal) ([]domain.BudgetAlert, error)

	// ListAllAlerts returns the live alerts across every budget at the
	// given threshold.
	ListAllAlerts(ctx context.Context, threshold *decimal.Decimal) ([]domain.BudgetAlert, error)

	// CreateAlertNotification persists and publishes a notification for the
	// current state of one budget line, or the whole budget when the
	// request's CategoryName is empty.
	CreateAlertNotification(ctx context.Context, budgetID string, req dto.CreateAlertNotificationRequest, userID string) (*domain.AlertNotification, error)

	// ListAlertNotifications returns previously persisted notifications for
	// a budget, newest first.
	ListAlertNotifications(ctx context.Context, budgetID string) ([]domain.AlertNotification, error)
}

// BudgetSvcFacade combines all budget-related service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
	BudgetTrackerSvc
}

// AlertNotifier publishes budget alert notifications to an external broker.
// A nil notifier is valid and disables publishing.
type AlertNotifier interface {
	PublishBudgetAlert(ctx context.Context, notification *domain.AlertNotification) error
}
