package fincalc_test

import (
	"testing"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentUsed_ZeroBudgetGuard(t *testing.T) {
	for _, actual := range []int64{0, 1, 1000} {
		got := fincalc.PercentUsed(decimal.Zero, decimal.NewFromInt(actual))
		assert.True(t, got.IsZero(), "actual=%d percentUsed=%s", actual, got)
	}
}

func TestClassifyUsage(t *testing.T) {
	tests := []struct {
		percent float64
		want    domain.BudgetStatus
	}{
		{0, domain.BudgetOnTrack},
		{89.99, domain.BudgetOnTrack},
		{90, domain.BudgetWarning},
		{99.99, domain.BudgetWarning},
		{100, domain.BudgetOverBudget},
		{150, domain.BudgetOverBudget},
	}

	for _, tt := range tests {
		got := fincalc.ClassifyUsage(decimal.NewFromFloat(tt.percent))
		assert.Equal(t, tt.want, got, "percentUsed=%v", tt.percent)
	}
}

func TestCompareCategory_Warning(t *testing.T) {
	category := domain.BudgetCategory{
		CategoryName: "Office Supplies",
		Budgeted:     decimal.NewFromInt(1000),
		Kind:         domain.KindExpense,
	}

	got := fincalc.CompareCategory(category, decimal.NewFromInt(950))

	assert.True(t, got.Variance.Equal(decimal.NewFromInt(-50)), "variance = %s", got.Variance)
	assert.True(t, got.PercentUsed.Equal(decimal.NewFromInt(95)), "percentUsed = %s", got.PercentUsed)
	assert.Equal(t, domain.BudgetWarning, got.Status)
	assert.True(t, got.Favorable)
}

func TestCompareCategory_Polarity(t *testing.T) {
	expense := domain.BudgetCategory{CategoryName: "Travel", Budgeted: decimal.NewFromInt(100), Kind: domain.KindExpense}
	revenue := domain.BudgetCategory{CategoryName: "Sales Revenue", Budgeted: decimal.NewFromInt(100), Kind: domain.KindRevenue}

	// over on an expense budget is unfavorable; over a revenue target is favorable
	over := decimal.NewFromInt(120)
	assert.False(t, fincalc.CompareCategory(expense, over).Favorable)
	assert.True(t, fincalc.CompareCategory(revenue, over).Favorable)

	// under budget on expenses is favorable; missing a revenue target is not
	under := decimal.NewFromInt(80)
	assert.True(t, fincalc.CompareCategory(expense, under).Favorable)
	assert.False(t, fincalc.CompareCategory(revenue, under).Favorable)
}

func testBudget() domain.Budget {
	return domain.Budget{
		BudgetID: "b1",
		Name:     "Q3 Operations",
		Categories: []domain.BudgetCategory{
			{CategoryName: "Office Supplies", Budgeted: decimal.NewFromInt(1000), Kind: domain.KindExpense},
			{CategoryName: "Travel", Budgeted: decimal.NewFromInt(500), Kind: domain.KindExpense},
			{CategoryName: "Marketing", Budgeted: decimal.Zero, Kind: domain.KindExpense},
		},
	}
}

func TestBuildBudgetReport(t *testing.T) {
	actuals := map[string]decimal.Decimal{
		"Office Supplies": decimal.NewFromInt(950),
		"Travel":          decimal.NewFromInt(600),
		// Marketing has spend against a zero budget
		"Marketing": decimal.NewFromInt(200),
	}

	report := fincalc.BuildBudgetReport(testBudget(), actuals)
	require.Len(t, report.Categories, 3)

	assert.Equal(t, domain.BudgetWarning, report.Categories[0].Status)
	assert.Equal(t, domain.BudgetOverBudget, report.Categories[1].Status)
	assert.True(t, report.Categories[2].PercentUsed.IsZero())
	assert.Equal(t, domain.BudgetOnTrack, report.Categories[2].Status)

	assert.True(t, report.TotalBudgeted.Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.TotalActual.Equal(decimal.NewFromInt(1750)))
	assert.True(t, report.TotalVariance.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.BudgetOverBudget, report.TotalStatus)
}

func TestAlertsFromReport(t *testing.T) {
	actuals := map[string]decimal.Decimal{
		"Office Supplies": decimal.NewFromInt(950),  // 95%, warning
		"Travel":          decimal.NewFromInt(600),  // 120%, critical
		"Marketing":       decimal.NewFromInt(200),  // zero budget, 0%
	}
	report := fincalc.BuildBudgetReport(testBudget(), actuals)

	alerts := fincalc.AlertsFromReport(report, fincalc.DefaultAlertThreshold)
	// office supplies, travel, and the budget total (116.7%)
	require.Len(t, alerts, 3)

	assert.Equal(t, "Office Supplies", alerts[0].CategoryName)
	assert.Equal(t, domain.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, "Travel", alerts[1].CategoryName)
	assert.Equal(t, domain.SeverityCritical, alerts[1].Severity)
	assert.Empty(t, alerts[2].CategoryName, "whole-budget alert carries no category")
	assert.Equal(t, domain.SeverityCritical, alerts[2].Severity)
}

func TestAlertsFromReport_CustomThreshold(t *testing.T) {
	actuals := map[string]decimal.Decimal{
		"Office Supplies": decimal.NewFromInt(500), // 50%
		"Travel":          decimal.NewFromInt(300), // 60%
	}
	report := fincalc.BuildBudgetReport(testBudget(), actuals)

	assert.Empty(t, fincalc.AlertsFromReport(report, decimal.NewFromInt(90)))

	lowered := fincalc.AlertsFromReport(report, decimal.NewFromInt(50))
	require.Len(t, lowered, 3)
	for _, alert := range lowered {
		assert.Equal(t, domain.SeverityWarning, alert.Severity)
	}
}

func TestAlertMessage(t *testing.T) {
	critical := domain.BudgetAlert{
		BudgetName:   "Q3 Operations",
		CategoryName: "Travel",
		PercentUsed:  decimal.NewFromInt(120),
		Severity:     domain.SeverityCritical,
	}
	assert.Equal(t, "Over Budget: Q3 Operations / Travel is at 120.0% of its budget", fincalc.AlertMessage(critical))

	warning := domain.BudgetAlert{
		BudgetName:  "Q3 Operations",
		PercentUsed: decimal.NewFromFloat(92.5),
		Severity:    domain.SeverityWarning,
	}
	assert.Equal(t, "Near Limit: Q3 Operations is at 92.5% of its budget", fincalc.AlertMessage(warning))
}
