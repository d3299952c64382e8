package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/core/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListAlertNotifications(ctx context.Context, budgetID string) ([]domain.AlertNotification, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AlertNotification), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

func (m *MockBudgetRepository) SaveAlertNotification(ctx context.Context, notification domain.AlertNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// MockAlertNotifier is a mock type for the AlertNotifier interface
type MockAlertNotifier struct {
	mock.Mock
}

func (m *MockAlertNotifier) PublishBudgetAlert(ctx context.Context, notification *domain.AlertNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

// --- Test Suite Setup ---

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockBudgetRepository
	mockTxns     *MockTransactionRepository
	mockNotifier *MockAlertNotifier
	service      portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.mockTxns = new(MockTransactionRepository)
	suite.mockNotifier = new(MockAlertNotifier)
	suite.service = services.NewBudgetService(suite.mockRepo, suite.mockTxns, suite.mockNotifier)
}

func monthlyBudget() *domain.Budget {
	return &domain.Budget{
		BudgetID:   "bud-1",
		Name:       "Operations Q3",
		PeriodType: domain.PeriodMonth,
		StartDate:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Categories: []domain.BudgetCategory{
			{CategoryName: "Groceries", Budgeted: decimal.NewFromInt(500), Kind: domain.KindExpense},
			{CategoryName: "Sales Revenue", Budgeted: decimal.NewFromInt(2000), Kind: domain.KindRevenue},
		},
	}
}

// --- Test Cases ---

func (suite *BudgetServiceTestSuite) TestTrackBudget() {
	ctx := context.Background()
	budget := monthlyBudget()
	totals := map[string]domain.CategoryTotals{
		"Groceries":     {Expense: decimal.NewFromInt(475)},
		"Sales Revenue": {Income: decimal.NewFromInt(2200)},
	}

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, budget.StartDate, budget.EndDate).Return(totals, nil).Once()

	report, err := suite.service.TrackBudget(ctx, "bud-1")

	suite.Require().NoError(err)
	suite.Require().Len(report.Categories, 2)

	groceries := report.Categories[0]
	suite.True(groceries.PercentUsed.Equal(decimal.NewFromInt(95)))
	suite.Equal(domain.BudgetWarning, groceries.Status)
	suite.True(groceries.Variance.Equal(decimal.NewFromInt(-25)))
	suite.True(groceries.Favorable) // under an expense budget

	revenue := report.Categories[1]
	suite.Equal(domain.BudgetOverBudget, revenue.Status) // 110% of target
	suite.True(revenue.Favorable)                        // exceeding revenue is good

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestTrackBudget_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindBudgetByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.TrackBudget(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(report)
	suite.mockTxns.AssertNotCalled(suite.T(), "SumActualsByCategory", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCompareBudget_PeriodWindow() {
	ctx := context.Background()
	budget := monthlyBudget()
	totals := map[string]domain.CategoryTotals{}

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()
	// The window is the current month to date, not the budget's own dates
	suite.mockTxns.On("SumActualsByCategory", ctx, mock.MatchedBy(func(from time.Time) bool {
		return from.Day() == 1 && from.Month() == time.Now().Month()
	}), mock.AnythingOfType("time.Time")).Return(totals, nil).Once()

	report, err := suite.service.CompareBudget(ctx, "bud-1", "month")

	suite.Require().NoError(err)
	suite.Equal(1, report.From.Day())
	// With no actuals every line is on track
	suite.Equal(domain.BudgetOnTrack, report.TotalStatus)
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCompareBudget_InvalidPeriod() {
	ctx := context.Background()
	budget := monthlyBudget()

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()

	report, err := suite.service.CompareBudget(ctx, "bud-1", "fortnight")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(report)
}

func (suite *BudgetServiceTestSuite) TestListAlerts_DefaultThreshold() {
	ctx := context.Background()
	budget := monthlyBudget()
	totals := map[string]domain.CategoryTotals{
		"Groceries": {Expense: decimal.NewFromInt(475)}, // 95%
	}

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, budget.StartDate, budget.EndDate).Return(totals, nil).Once()

	alerts, err := suite.service.ListAlerts(ctx, "bud-1", nil)

	suite.Require().NoError(err)
	// Only the groceries line crosses 90; the aggregate sits at 19%
	suite.Require().Len(alerts, 1)
	suite.Equal("Groceries", alerts[0].CategoryName)
	suite.Equal(domain.SeverityWarning, alerts[0].Severity)
}

func (suite *BudgetServiceTestSuite) TestCreateAlertNotification_PersistsAndPublishes() {
	ctx := context.Background()
	budget := monthlyBudget()
	totals := map[string]domain.CategoryTotals{
		"Groceries": {Expense: decimal.NewFromInt(510)}, // 102%, critical
	}

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, budget.StartDate, budget.EndDate).Return(totals, nil).Once()
	suite.mockRepo.On("SaveAlertNotification", ctx, mock.MatchedBy(func(n domain.AlertNotification) bool {
		return n.BudgetID == "bud-1" && n.CategoryName == "Groceries" && n.Severity == domain.SeverityCritical
	})).Return(nil).Once()
	suite.mockNotifier.On("PublishBudgetAlert", ctx, mock.AnythingOfType("*domain.AlertNotification")).Return(nil).Once()

	notification, err := suite.service.CreateAlertNotification(ctx, "bud-1", dto.CreateAlertNotificationRequest{CategoryName: "Groceries"}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(notification)
	suite.NotEmpty(notification.NotificationID)
	suite.Contains(notification.Message, "Over Budget")
	suite.Equal("user-1", notification.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateAlertNotification_PublishFailureIsNotFatal() {
	ctx := context.Background()
	budget := monthlyBudget()
	totals := map[string]domain.CategoryTotals{
		"Groceries": {Expense: decimal.NewFromInt(510)},
	}

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, budget.StartDate, budget.EndDate).Return(totals, nil).Once()
	suite.mockRepo.On("SaveAlertNotification", ctx, mock.AnythingOfType("domain.AlertNotification")).Return(nil).Once()
	suite.mockNotifier.On("PublishBudgetAlert", ctx, mock.AnythingOfType("*domain.AlertNotification")).Return(context.DeadlineExceeded).Once()

	notification, err := suite.service.CreateAlertNotification(ctx, "bud-1", dto.CreateAlertNotificationRequest{CategoryName: "Groceries"}, "user-1")

	// The notification is durable even when the broker is down
	suite.Require().NoError(err)
	suite.NotNil(notification)
}

func (suite *BudgetServiceTestSuite) TestCreateAlertNotification_BelowThreshold() {
	ctx := context.Background()
	budget := monthlyBudget()
	totals := map[string]domain.CategoryTotals{
		"Groceries": {Expense: decimal.NewFromInt(100)}, // 20%
	}

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, budget.StartDate, budget.EndDate).Return(totals, nil).Once()

	notification, err := suite.service.CreateAlertNotification(ctx, "bud-1", dto.CreateAlertNotificationRequest{CategoryName: "Groceries"}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(notification)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAlertNotification", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateAlertNotification_NegativeThresholdRejected() {
	ctx := context.Background()
	budget := monthlyBudget()
	totals := map[string]domain.CategoryTotals{
		"Groceries": {Expense: decimal.NewFromInt(510)},
	}

	suite.mockRepo.On("FindBudgetByID", ctx, "bud-1").Return(budget, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, budget.StartDate, budget.EndDate).Return(totals, nil).Once()

	minusTen := decimal.NewFromInt(-10)
	notification, err := suite.service.CreateAlertNotification(ctx, "bud-1", dto.CreateAlertNotificationRequest{
		CategoryName: "Groceries",
		Threshold:    &minusTen,
	}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(notification)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAlertNotification", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestListAllAlerts_AggregatesAcrossBudgets() {
	ctx := context.Background()
	opsBudget := monthlyBudget()
	travelBudget := &domain.Budget{
		BudgetID:   "bud-2",
		Name:       "Travel Q3",
		PeriodType: domain.PeriodMonth,
		StartDate:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		Categories: []domain.BudgetCategory{
			{CategoryName: "Travel", Budgeted: decimal.NewFromInt(100), Kind: domain.KindExpense},
		},
	}

	suite.mockRepo.On("ListBudgets", ctx).Return([]domain.Budget{*opsBudget, *travelBudget}, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, opsBudget.StartDate, opsBudget.EndDate).Return(map[string]domain.CategoryTotals{
		"Groceries": {Expense: decimal.NewFromInt(475)}, // 95%, warning
	}, nil).Once()
	suite.mockTxns.On("SumActualsByCategory", ctx, travelBudget.StartDate, travelBudget.EndDate).Return(map[string]domain.CategoryTotals{
		"Travel": {Expense: decimal.NewFromInt(120)}, // 120%, critical
	}, nil).Once()

	alerts, err := suite.service.ListAllAlerts(ctx, nil)

	suite.Require().NoError(err)
	// Groceries line, Travel line, plus the travel budget's own total
	suite.Require().Len(alerts, 3)
	suite.Equal("bud-1", alerts[0].BudgetID)
	suite.Equal("Groceries", alerts[0].CategoryName)
	suite.Equal(domain.SeverityWarning, alerts[0].Severity)
	suite.Equal("bud-2", alerts[1].BudgetID)
	suite.Equal("Travel", alerts[1].CategoryName)
	suite.Equal(domain.SeverityCritical, alerts[1].Severity)
	suite.Equal("bud-2", alerts[2].BudgetID)
	suite.Empty(alerts[2].CategoryName)
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestListAllAlerts_NegativeThresholdRejected() {
	ctx := context.Background()

	minusOne := decimal.NewFromInt(-1)
	alerts, err := suite.service.ListAllAlerts(ctx, &minusOne)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(alerts)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListBudgets", mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_InvalidDates() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:       "Backwards",
		PeriodType: domain.PeriodMonth,
		StartDate:  time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		Categories: []dto.BudgetCategoryRequest{{CategoryName: "Rent", Budgeted: decimal.NewFromInt(100)}},
	}

	budget, err := suite.service.CreateBudget(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(budget)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DefaultsKindToExpense() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Name:       "Monthly Ops",
		PeriodType: domain.PeriodMonth,
		StartDate:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		Categories: []dto.BudgetCategoryRequest{{CategoryName: "Rent", Budgeted: decimal.NewFromInt(100)}},
	}

	suite.mockRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return len(b.Categories) == 1 && b.Categories[0].Kind == domain.KindExpense
	})).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.KindExpense, budget.Categories[0].Kind)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
