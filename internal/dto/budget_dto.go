package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"github.com/shopspring/decimal"
)

// BudgetCategoryRequest is one budgeted line in a create/update request.
type BudgetCategoryRequest struct {
	CategoryName string              `json:"categoryName" binding:"required"`
	Budgeted     decimal.Decimal     `json:"budgeted" binding:"required"`
	Kind         domain.CategoryKind `json:"kind" binding:"omitempty,oneof=expense revenue"`
}

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Name       string                  `json:"name" binding:"required"`
	PeriodType domain.PeriodType       `json:"periodType" binding:"required,oneof=month quarter year"`
	StartDate  time.Time               `json:"startDate" binding:"required"`
	EndDate    time.Time               `json:"endDate" binding:"required"`
	Categories []BudgetCategoryRequest `json:"categories" binding:"required,min=1,dive"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
// Categories, when provided, replaces the full set of lines.
type UpdateBudgetRequest struct {
	Name       *string                 `json:"name"`
	PeriodType *domain.PeriodType      `json:"periodType" binding:"omitempty,oneof=month quarter year"`
	StartDate  *time.Time              `json:"startDate"`
	EndDate    *time.Time              `json:"endDate"`
	Categories []BudgetCategoryRequest `json:"categories" binding:"omitempty,min=1,dive"`
}

// BudgetCategoryResponse mirrors domain.BudgetCategory.
type BudgetCategoryResponse struct {
	CategoryName string              `json:"categoryName"`
	Budgeted     decimal.Decimal     `json:"budgeted"`
	Kind         domain.CategoryKind `json:"kind"`
}

// BudgetResponse defines the data returned for a budget definition.
type BudgetResponse struct {
	BudgetID      string                   `json:"budgetID"`
	Name          string                   `json:"name"`
	PeriodType    domain.PeriodType        `json:"periodType"`
	StartDate     time.Time                `json:"startDate"`
	EndDate       time.Time                `json:"endDate"`
	Categories    []BudgetCategoryResponse `json:"categories"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy string                   `json:"lastUpdatedBy"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	categories := make([]BudgetCategoryResponse, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = BudgetCategoryResponse{
			CategoryName: c.CategoryName,
			Budgeted:     c.Budgeted,
			Kind:         c.Kind,
		}
	}
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		Name:          b.Name,
		PeriodType:    b.PeriodType,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Categories:    categories,
		CreatedAt:     b.CreatedAt,
		CreatedBy:     b.CreatedBy,
		LastUpdatedAt: b.LastUpdatedAt,
		LastUpdatedBy: b.LastUpdatedBy,
	}
}

// ToListBudgetResponse converts a slice of domain.Budget to BudgetResponse DTOs
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return res
}

// BudgetCategoryReportResponse is the computed utilization of one budget line.
type BudgetCategoryReportResponse struct {
	CategoryName string              `json:"categoryName"`
	Kind         domain.CategoryKind `json:"kind"`
	Budgeted     decimal.Decimal     `json:"budgeted"`
	Actual       decimal.Decimal     `json:"actual"`
	Variance     decimal.Decimal     `json:"variance"`
	PercentUsed  decimal.Decimal     `json:"percentUsed"`
	Status       domain.BudgetStatus `json:"status"`
	Favorable    bool                `json:"favorable"`
}

// BudgetReportResponse is the computed utilization of a whole budget.
type BudgetReportResponse struct {
	BudgetID         string                         `json:"budgetID"`
	Name             string                         `json:"name"`
	From             time.Time                      `json:"from"`
	To               time.Time                      `json:"to"`
	Categories       []BudgetCategoryReportResponse `json:"categories"`
	TotalBudgeted    decimal.Decimal                `json:"totalBudgeted"`
	TotalActual      decimal.Decimal                `json:"totalActual"`
	TotalVariance    decimal.Decimal                `json:"totalVariance"`
	TotalPercentUsed decimal.Decimal                `json:"totalPercentUsed"`
	TotalStatus      domain.BudgetStatus            `json:"totalStatus"`
}

// ToBudgetReportResponse converts a domain.BudgetReport to BudgetReportResponse DTO
func ToBudgetReportResponse(r *domain.BudgetReport) BudgetReportResponse {
	categories := make([]BudgetCategoryReportResponse, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = BudgetCategoryReportResponse{
			CategoryName: c.CategoryName,
			Kind:         c.Kind,
			Budgeted:     c.Budgeted,
			Actual:       c.Actual,
			Variance:     c.Variance,
			PercentUsed:  c.PercentUsed,
			Status:       c.Status,
			Favorable:    c.Favorable,
		}
	}
	return BudgetReportResponse{
		BudgetID:         r.BudgetID,
		Name:             r.Name,
		From:             r.From,
		To:               r.To,
		Categories:       categories,
		TotalBudgeted:    r.TotalBudgeted,
		TotalActual:      r.TotalActual,
		TotalVariance:    r.TotalVariance,
		TotalPercentUsed: r.TotalPercentUsed,
		TotalStatus:      r.TotalStatus,
	}
}

// ComparisonParams defines query parameters for the budget comparison report.
type ComparisonParams struct {
	// Period overrides the budget's own window: month, quarter or year.
	Period string `form:"period" binding:"omitempty,oneof=month quarter year"`
}

// AlertsParams defines query parameters for listing live budget alerts.
type AlertsParams struct {
	// Threshold is the minimum percent used for an alert, default 90.
	Threshold *decimal.Decimal `form:"threshold"`
}

// BudgetAlertResponse mirrors domain.BudgetAlert.
type BudgetAlertResponse struct {
	BudgetID     string               `json:"budgetID"`
	BudgetName   string               `json:"budgetName"`
	CategoryName string               `json:"categoryName,omitempty"`
	PercentUsed  decimal.Decimal      `json:"percentUsed"`
	Severity     domain.AlertSeverity `json:"severity"`
	Message      string               `json:"message"`
}

// ListBudgetAlertsResponse wraps the list of live alerts.
type ListBudgetAlertsResponse struct {
	Alerts []BudgetAlertResponse `json:"alerts"`
}

// ToBudgetAlertResponse converts a domain.BudgetAlert to its DTO
func ToBudgetAlertResponse(alert domain.BudgetAlert) BudgetAlertResponse {
	return BudgetAlertResponse{
		BudgetID:     alert.BudgetID,
		BudgetName:   alert.BudgetName,
		CategoryName: alert.CategoryName,
		PercentUsed:  alert.PercentUsed,
		Severity:     alert.Severity,
		Message:      fincalc.AlertMessage(alert),
	}
}

// ToListBudgetAlertResponse converts a slice of domain.BudgetAlert to DTOs
func ToListBudgetAlertResponse(alerts []domain.BudgetAlert) []BudgetAlertResponse {
	responses := make([]BudgetAlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		responses = append(responses, ToBudgetAlertResponse(alert))
	}
	return responses
}

// CreateAlertNotificationRequest asks the server to persist and publish a
// notification for the current state of one budget line (or the whole
// budget when CategoryName is empty). BudgetID is only read on the
// collection route, where the path carries no budget.
type CreateAlertNotificationRequest struct {
	BudgetID     string           `json:"budgetID"`
	CategoryName string           `json:"categoryName"`
	Threshold    *decimal.Decimal `json:"threshold"`
}

// AlertNotificationResponse defines the data returned for a persisted
// alert notification.
type AlertNotificationResponse struct {
	NotificationID string               `json:"notificationID"`
	BudgetID       string               `json:"budgetID"`
	CategoryName   string               `json:"categoryName,omitempty"`
	PercentUsed    decimal.Decimal      `json:"percentUsed"`
	Severity       domain.AlertSeverity `json:"severity"`
	Message        string               `json:"message"`
	CreatedAt      time.Time            `json:"createdAt"`
	CreatedBy      string               `json:"createdBy"`
}

// ToAlertNotificationResponse converts a domain.AlertNotification to its DTO
func ToAlertNotificationResponse(n *domain.AlertNotification) AlertNotificationResponse {
	return AlertNotificationResponse{
		NotificationID: n.NotificationID,
		BudgetID:       n.BudgetID,
		CategoryName:   n.CategoryName,
		PercentUsed:    n.PercentUsed,
		Severity:       n.Severity,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
		CreatedBy:      n.CreatedBy,
	}
}
