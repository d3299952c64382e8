package fincalc

import (
	"fmt"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	ninety  = decimal.NewFromInt(90)
)

// DefaultAlertThreshold is the percent-used threshold at which budget
// alerts are raised when the caller supplies none.
var DefaultAlertThreshold = ninety

// PercentUsed computes actual/budgeted*100. A zero budget yields zero
// rather than a division error, for any actual.
func PercentUsed(budgeted, actual decimal.Decimal) decimal.Decimal {
	if budgeted.IsZero() {
		return decimal.Zero
	}
	return actual.Div(budgeted).Mul(hundred)
}

// ClassifyUsage maps percent-used onto a budget status. Evaluated in
// order: >=100 over-budget, >=90 warning, otherwise on-track. The same
// thresholds apply to single lines and aggregate totals.
func ClassifyUsage(percentUsed decimal.Decimal) domain.BudgetStatus {
	switch {
	case percentUsed.GreaterThanOrEqual(hundred):
		return domain.BudgetOverBudget
	case percentUsed.GreaterThanOrEqual(ninety):
		return domain.BudgetWarning
	default:
		return domain.BudgetOnTrack
	}
}

// CompareCategory computes the utilization report for one budget line.
// Favorability depends on the category kind: spending under an expense
// budget is favorable, while exceeding a revenue target is favorable.
func CompareCategory(category domain.BudgetCategory, actual decimal.Decimal) domain.BudgetCategoryReport {
	variance := actual.Sub(category.Budgeted)
	percentUsed := PercentUsed(category.Budgeted, actual)

	favorable := variance.LessThanOrEqual(decimal.Zero)
	if category.Kind == domain.KindRevenue {
		favorable = variance.GreaterThanOrEqual(decimal.Zero)
	}

	return domain.BudgetCategoryReport{
		CategoryName: category.CategoryName,
		Kind:         category.Kind,
		Budgeted:     category.Budgeted,
		Actual:       actual,
		Variance:     variance,
		PercentUsed:  percentUsed,
		Status:       ClassifyUsage(percentUsed),
		Favorable:    favorable,
	}
}

// BuildBudgetReport computes per-category and aggregate utilization for a
// budget given actual spend attributed to each category name.
func BuildBudgetReport(budget domain.Budget, actuals map[string]decimal.Decimal) domain.BudgetReport {
	report := domain.BudgetReport{
		BudgetID:      budget.BudgetID,
		Name:          budget.Name,
		From:          budget.StartDate,
		To:            budget.EndDate,
		Categories:    make([]domain.BudgetCategoryReport, 0, len(budget.Categories)),
		TotalBudgeted: decimal.Zero,
		TotalActual:   decimal.Zero,
	}

	for _, category := range budget.Categories {
		actual := actuals[category.CategoryName]
		row := CompareCategory(category, actual)
		report.Categories = append(report.Categories, row)
		report.TotalBudgeted = report.TotalBudgeted.Add(category.Budgeted)
		report.TotalActual = report.TotalActual.Add(actual)
	}

	report.TotalVariance = report.TotalActual.Sub(report.TotalBudgeted)
	report.TotalPercentUsed = PercentUsed(report.TotalBudgeted, report.TotalActual)
	report.TotalStatus = ClassifyUsage(report.TotalPercentUsed)
	return report
}

// alertSeverity grades an alert: critical at or past the budget, warning below.
func alertSeverity(percentUsed decimal.Decimal) domain.AlertSeverity {
	if percentUsed.GreaterThanOrEqual(hundred) {
		return domain.SeverityCritical
	}
	return domain.SeverityWarning
}

// AlertsFromReport surfaces every category at or past the threshold, plus
// the budget as a whole (empty category name) when its aggregate crosses
// the threshold.
func AlertsFromReport(report domain.BudgetReport, threshold decimal.Decimal) []domain.BudgetAlert {
	var alerts []domain.BudgetAlert
	for _, row := range report.Categories {
		if row.PercentUsed.GreaterThanOrEqual(threshold) {
			alerts = append(alerts, domain.BudgetAlert{
				BudgetID:     report.BudgetID,
				BudgetName:   report.Name,
				CategoryName: row.CategoryName,
				PercentUsed:  row.PercentUsed,
				Severity:     alertSeverity(row.PercentUsed),
			})
		}
	}

	if report.TotalPercentUsed.GreaterThanOrEqual(threshold) {
		alerts = append(alerts, domain.BudgetAlert{
			BudgetID:    report.BudgetID,
			BudgetName:  report.Name,
			PercentUsed: report.TotalPercentUsed,
			Severity:    alertSeverity(report.TotalPercentUsed),
		})
	}

	return alerts
}

// AlertMessage renders the human-readable notification text for an alert.
func AlertMessage(alert domain.BudgetAlert) string {
	scope := alert.BudgetName
	if alert.CategoryName != "" {
		scope = fmt.Sprintf("%s / %s", alert.BudgetName, alert.CategoryName)
	}
	if alert.Severity == domain.SeverityCritical {
		return fmt.Sprintf("Over Budget: %s is at %s%% of its budget", scope, alert.PercentUsed.StringFixed(1))
	}
	return fmt.Sprintf("Near Limit: %s is at %s%% of its budget", scope, alert.PercentUsed.StringFixed(1))
}
