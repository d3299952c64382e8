package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/platform/observability"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	txnRepo    portsrepo.TransactionReader
	notifier   portssvc.AlertNotifier
}

// NewBudgetService creates the budget service. notifier may be nil, which
// disables broker publishing while keeping notifications persisted.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, txnRepo portsrepo.TransactionReader, notifier portssvc.AlertNotifier) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
		notifier:   notifier,
	}
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", apperrors.ErrValidation)
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		Name:       req.Name,
		PeriodType: req.PeriodType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Categories: toDomainCategories(req.Categories),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget in repository", slog.String("budget_id", budget.BudgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created successfully in service", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

func toDomainCategories(reqs []dto.BudgetCategoryRequest) []domain.BudgetCategory {
	categories := make([]domain.BudgetCategory, len(reqs))
	for i, c := range reqs {
		kind := c.Kind
		if kind == "" {
			kind = domain.KindExpense
		}
		categories[i] = domain.BudgetCategory{
			CategoryName: c.CategoryName,
			Budgeted:     c.Budgeted,
			Kind:         kind,
		}
	}
	return categories
}

func (s *budgetService) GetBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find budget by ID in repository", slog.String("budget_id", budgetID))
		}
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets from repository")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest, userID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		budget.Name = *req.Name
	}
	if req.PeriodType != nil {
		budget.PeriodType = *req.PeriodType
	}
	if req.StartDate != nil {
		budget.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		budget.EndDate = *req.EndDate
	}
	if !budget.EndDate.After(budget.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", apperrors.ErrValidation)
	}
	if req.Categories != nil {
		budget.Categories = toDomainCategories(req.Categories)
	}
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget in repository", slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated successfully in service", slog.String("budget_id", budgetID))
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string, userID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete budget in repository", slog.String("budget_id", budgetID))
		}
		return err
	}

	s.LogInfo(ctx, "Budget deleted successfully in service", slog.String("budget_id", budgetID), slog.String("user_id", userID))
	return nil
}

// foldActuals picks each category's actual from the summed transaction
// totals according to its kind: expense lines track expenses, revenue
// lines track income.
func foldActuals(budget domain.Budget, totals map[string]domain.CategoryTotals) map[string]decimal.Decimal {
	actuals := make(map[string]decimal.Decimal, len(budget.Categories))
	for _, category := range budget.Categories {
		t := totals[category.CategoryName]
		if category.Kind == domain.KindRevenue {
			actuals[category.CategoryName] = t.Income
		} else {
			actuals[category.CategoryName] = t.Expense
		}
	}
	return actuals
}

func (s *budgetService) buildReport(ctx context.Context, budget *domain.Budget, from, to time.Time) (*domain.BudgetReport, error) {
	totals, err := s.txnRepo.SumActualsByCategory(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum actuals for budget report", slog.String("budget_id", budget.BudgetID))
		return nil, fmt.Errorf("failed to sum actuals: %w", err)
	}

	report := fincalc.BuildBudgetReport(*budget, foldActuals(*budget, totals))
	report.From = from
	report.To = to
	return &report, nil
}

func (s *budgetService) TrackBudget(ctx context.Context, budgetID string) (*domain.BudgetReport, error) {
	budget, err := s.GetBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	return s.buildReport(ctx, budget, budget.StartDate, budget.EndDate)
}

// periodWindow resolves a named period to a [from, to) window ending now.
func periodWindow(period string, now time.Time) (time.Time, time.Time, error) {
	year, month, _ := now.Date()
	loc := now.Location()

	switch domain.PeriodType(period) {
	case domain.PeriodMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc), now, nil
	case domain.PeriodQuarter:
		quarterStart := month - (month-1)%3
		return time.Date(year, quarterStart, 1, 0, 0, 0, 0, loc), now, nil
	case domain.PeriodYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc), now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown period %q", apperrors.ErrValidation, period)
	}
}

func (s *budgetService) CompareBudget(ctx context.Context, budgetID string, period string) (*domain.BudgetReport, error) {
	if period == "" {
		return s.TrackBudget(ctx, budgetID)
	}

	budget, err := s.GetBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	from, to, err := periodWindow(period, time.Now())
	if err != nil {
		return nil, err
	}
	return s.buildReport(ctx, budget, from, to)
}

func (s *budgetService) ListAlerts(ctx context.Context, budgetID string, threshold *decimal.Decimal) ([]domain.BudgetAlert, error) {
	report, err := s.TrackBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	limit := fincalc.DefaultAlertThreshold
	if threshold != nil {
		if threshold.IsNegative() {
			return nil, fmt.Errorf("%w: threshold cannot be negative", apperrors.ErrValidation)
		}
		limit = *threshold
	}

	return fincalc.AlertsFromReport(*report, limit), nil
}

func (s *budgetService) ListAllAlerts(ctx context.Context, threshold *decimal.Decimal) ([]domain.BudgetAlert, error) {
	limit := fincalc.DefaultAlertThreshold
	if threshold != nil {
		if threshold.IsNegative() {
			return nil, fmt.Errorf("%w: threshold cannot be negative", apperrors.ErrValidation)
		}
		limit = *threshold
	}

	budgets, err := s.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}

	alerts := []domain.BudgetAlert{}
	for i := range budgets {
		report, err := s.buildReport(ctx, &budgets[i], budgets[i].StartDate, budgets[i].EndDate)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, fincalc.AlertsFromReport(*report, limit)...)
	}
	return alerts, nil
}

func (s *budgetService) CreateAlertNotification(ctx context.Context, budgetID string, req dto.CreateAlertNotificationRequest, userID string) (*domain.AlertNotification, error) {
	report, err := s.TrackBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	alert, err := resolveAlert(report, req)
	if err != nil {
		return nil, err
	}

	notification := domain.AlertNotification{
		NotificationID: uuid.NewString(),
		BudgetID:       budgetID,
		CategoryName:   alert.CategoryName,
		PercentUsed:    alert.PercentUsed,
		Severity:       alert.Severity,
		Message:        fincalc.AlertMessage(alert),
		CreatedAt:      time.Now(),
		CreatedBy:      userID,
	}

	if err := s.budgetRepo.SaveAlertNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save alert notification", slog.String("budget_id", budgetID))
		return nil, err
	}
	observability.BudgetAlertNotificationsTotal.WithLabelValues(string(notification.Severity)).Inc()

	// Broker publishing is best effort: the notification is already durable
	if s.notifier != nil {
		if err := s.notifier.PublishBudgetAlert(ctx, &notification); err != nil {
			s.LogError(ctx, err, "Failed to publish alert notification to broker",
				slog.String("notification_id", notification.NotificationID))
		}
	}

	s.LogInfo(ctx, "Alert notification created",
		slog.String("notification_id", notification.NotificationID),
		slog.String("budget_id", budgetID),
		slog.String("severity", string(notification.Severity)))
	return &notification, nil
}

// resolveAlert finds the alert the notification request targets: a named
// category line, or the budget total when CategoryName is empty.
func resolveAlert(report *domain.BudgetReport, req dto.CreateAlertNotificationRequest) (domain.BudgetAlert, error) {
	threshold := fincalc.DefaultAlertThreshold
	if req.Threshold != nil {
		if req.Threshold.IsNegative() {
			return domain.BudgetAlert{}, fmt.Errorf("%w: threshold cannot be negative", apperrors.ErrValidation)
		}
		threshold = *req.Threshold
	}

	for _, alert := range fincalc.AlertsFromReport(*report, threshold) {
		if alert.CategoryName == req.CategoryName {
			return alert, nil
		}
	}
	return domain.BudgetAlert{}, fmt.Errorf("%w: no alert at threshold %s for category %q", apperrors.ErrNotFound, threshold.String(), req.CategoryName)
}

func (s *budgetService) ListAlertNotifications(ctx context.Context, budgetID string) ([]domain.AlertNotification, error) {
	notifications, err := s.budgetRepo.ListAlertNotifications(ctx, budgetID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list alert notifications", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to list alert notifications: %w", err)
	}
	if notifications == nil {
		return []domain.AlertNotification{}, nil
	}
	return notifications, nil
}
