package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryKind determines variance polarity: for expense categories a
// positive variance (actual over budgeted) is unfavorable, for revenue
// categories exceeding the target is favorable.
type CategoryKind string

const (
	KindExpense CategoryKind = "expense"
	KindRevenue CategoryKind = "revenue"
)

// BudgetStatus classifies utilization of a budget line or total.
type BudgetStatus string

const (
	BudgetOnTrack    BudgetStatus = "on-track"
	BudgetWarning    BudgetStatus = "warning"
	BudgetOverBudget BudgetStatus = "over-budget"
)

// AlertSeverity grades a budget alert.
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// PeriodType is the comparison window for budget reports.
type PeriodType string

const (
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
)

// Budget is a budget definition: a named set of per-category targets over
// a date window.
type Budget struct {
	BudgetID   string           `json:"budgetID"`
	Name       string           `json:"name"`
	PeriodType PeriodType       `json:"periodType"`
	StartDate  time.Time        `json:"startDate"`
	EndDate    time.Time        `json:"endDate"`
	Categories []BudgetCategory `json:"categories"`
	AuditFields
}

// BudgetCategory is a single budgeted line within a budget.
type BudgetCategory struct {
	CategoryName string          `json:"categoryName"`
	Budgeted     decimal.Decimal `json:"budgeted"`
	Kind         CategoryKind    `json:"kind"`
}

// BudgetCategoryReport is the computed utilization of one budget line.
type BudgetCategoryReport struct {
	CategoryName string          `json:"categoryName"`
	Kind         CategoryKind    `json:"kind"`
	Budgeted     decimal.Decimal `json:"budgeted"`
	Actual       decimal.Decimal `json:"actual"`
	Variance     decimal.Decimal `json:"variance"` // actual - budgeted
	PercentUsed  decimal.Decimal `json:"percentUsed"`
	Status       BudgetStatus    `json:"status"`
	Favorable    bool            `json:"favorable"`
}

// BudgetReport is the computed utilization of a whole budget, per category
// and in aggregate. The same thresholds classify lines and the total.
type BudgetReport struct {
	BudgetID         string                 `json:"budgetID"`
	Name             string                 `json:"name"`
	From             time.Time              `json:"from"`
	To               time.Time              `json:"to"`
	Categories       []BudgetCategoryReport `json:"categories"`
	TotalBudgeted    decimal.Decimal        `json:"totalBudgeted"`
	TotalActual      decimal.Decimal        `json:"totalActual"`
	TotalVariance    decimal.Decimal        `json:"totalVariance"`
	TotalPercentUsed decimal.Decimal        `json:"totalPercentUsed"`
	TotalStatus      BudgetStatus           `json:"totalStatus"`
}

// CategoryTotals holds the summed completed transaction amounts for one
// category over a window, split by transaction type. Budget tracking picks
// the side matching the category kind.
type CategoryTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// BudgetAlert is raised when a budget line (or the whole budget, with an
// empty CategoryName) reaches the caller-supplied threshold.
type BudgetAlert struct {
	BudgetID     string          `json:"budgetID"`
	BudgetName   string          `json:"budgetName"`
	CategoryName string          `json:"categoryName,omitempty"`
	PercentUsed  decimal.Decimal `json:"percentUsed"`
	Severity     AlertSeverity   `json:"severity"`
}

// AlertNotification is a persisted record of a budget alert the user chose
// to be notified about.
type AlertNotification struct {
	NotificationID string          `json:"notificationID"`
	BudgetID       string          `json:"budgetID"`
	CategoryName   string          `json:"categoryName,omitempty"`
	PercentUsed    decimal.Decimal `json:"percentUsed"`
	Severity       AlertSeverity   `json:"severity"`
	Message        string          `json:"message"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}
