package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/core/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// MockSalesReader is a mock type for the SalesReaderSvc interface
type MockSalesReader struct {
	mock.Mock
	portssvc.SalesSvcFacade
}

func (m *MockSalesReader) SalesTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockInventoryReader is a mock type for the InventoryReaderSvc interface
type MockInventoryReader struct {
	mock.Mock
	portssvc.InventorySvcFacade
}

func (m *MockInventoryReader) PurchaseTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type DashboardServiceTestSuite struct {
	suite.Suite
	mockAccounts  *MockAccountRepository
	mockTxns      *MockTransactionRepository
	mockSales     *MockSalesReader
	mockInventory *MockInventoryReader
	service       portssvc.DashboardSvc
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockTxns = new(MockTransactionRepository)
	suite.mockSales = new(MockSalesReader)
	suite.mockInventory = new(MockInventoryReader)
	suite.service = services.NewDashboardService(suite.mockAccounts, suite.mockTxns, suite.mockSales, suite.mockInventory)
}

func completedIncome(id string, amount int64, account string, source domain.SourceType) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          time.Now(),
		Amount:        decimal.NewFromInt(amount),
		Type:          domain.Income,
		Status:        domain.StatusCompleted,
		SourceType:    source,
		AccountName:   account,
	}
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestBuildDashboard_HappyPath() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "acc-1", Name: "Checking", Balance: decimal.NewFromInt(1000)},
	}
	financeTxns := []domain.Transaction{completedIncome("txn-1", 200, "Checking", domain.SourceFinance)}
	salesTxns := []domain.Transaction{completedIncome("sales-s1", 300, "Sales Account", domain.SourceSales)}

	suite.mockAccounts.On("ListAccounts", mock.Anything, false).Return(accounts, nil).Once()
	suite.mockTxns.On("ListAllTransactions", mock.Anything).Return(financeTxns, nil).Once()
	suite.mockSales.On("SalesTransactions", mock.Anything).Return(salesTxns, nil).Once()
	suite.mockInventory.On("PurchaseTransactions", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	dashboard, err := suite.service.BuildDashboard(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(dashboard)
	suite.Len(dashboard.Transactions, 2)
	suite.Empty(dashboard.Warnings)

	// Checking: stored 1000 snapshot + 200 completed income replayed
	suite.Require().Len(dashboard.Accounts, 1)
	suite.True(dashboard.Accounts[0].InitialBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(dashboard.Accounts[0].CurrentBalance.Equal(decimal.NewFromInt(1200)))

	// The sales transaction matched no account and was skipped
	suite.Equal(1, dashboard.UnmatchedTransactions)

	suite.True(dashboard.Stats.TotalIncome.Equal(decimal.NewFromInt(500)))
	suite.True(dashboard.Stats.SalesIncome.Equal(decimal.NewFromInt(300)))
	suite.True(dashboard.Stats.Balance.Equal(decimal.NewFromInt(500)))
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_SalesFailureDegradesToWarning() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "acc-1", Name: "Checking", Balance: decimal.NewFromInt(1000)},
	}
	financeTxns := []domain.Transaction{completedIncome("txn-1", 200, "Checking", domain.SourceFinance)}

	suite.mockAccounts.On("ListAccounts", mock.Anything, false).Return(accounts, nil).Once()
	suite.mockTxns.On("ListAllTransactions", mock.Anything).Return(financeTxns, nil).Once()
	suite.mockSales.On("SalesTransactions", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockInventory.On("PurchaseTransactions", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	dashboard, err := suite.service.BuildDashboard(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(dashboard)

	// The failed source contributes zero transactions and one warning
	suite.Len(dashboard.Transactions, 1)
	suite.Require().Len(dashboard.Warnings, 1)
	suite.Contains(dashboard.Warnings[0], "sales")
	suite.True(dashboard.Stats.SalesIncome.IsZero())
	suite.True(dashboard.Stats.TotalIncome.Equal(decimal.NewFromInt(200)))
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_AccountsFailureIsFatal() {
	ctx := context.Background()

	suite.mockAccounts.On("ListAccounts", mock.Anything, false).Return(nil, assert.AnError).Once()

	dashboard, err := suite.service.BuildDashboard(ctx)

	suite.Require().Error(err)
	suite.Nil(dashboard)
	suite.mockTxns.AssertNotCalled(suite.T(), "ListAllTransactions", mock.Anything)
}

func (suite *DashboardServiceTestSuite) TestBuildDashboard_AllSourcesFail() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: "acc-1", Name: "Checking", Balance: decimal.NewFromInt(1000)},
	}

	suite.mockAccounts.On("ListAccounts", mock.Anything, false).Return(accounts, nil).Once()
	suite.mockTxns.On("ListAllTransactions", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockSales.On("SalesTransactions", mock.Anything).Return(nil, assert.AnError).Once()
	suite.mockInventory.On("PurchaseTransactions", mock.Anything).Return(nil, assert.AnError).Once()

	dashboard, err := suite.service.BuildDashboard(ctx)

	suite.Require().NoError(err)
	suite.Empty(dashboard.Transactions)
	suite.Len(dashboard.Warnings, 3)
	// With no transactions, current balances equal the stored snapshot
	suite.True(dashboard.Accounts[0].CurrentBalance.Equal(decimal.NewFromInt(1000)))
}

// Creating a completed transaction must not move the stored account balance:
// the dashboard replay is the only place its amount is applied, so it shows
// up exactly once in currentBalance.
func (suite *DashboardServiceTestSuite) TestBuildDashboard_CreatedTransactionCountedOnce() {
	ctx := context.Background()
	txnService := services.NewTransactionService(suite.mockTxns)

	var saved domain.Transaction
	suite.mockTxns.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Transaction) }).
		Return(nil).Once()

	_, err := txnService.CreateTransaction(ctx, dto.CreateTransactionRequest{
		Date:        time.Now(),
		Description: "Client payment",
		Amount:      decimal.NewFromInt(200),
		Type:        domain.Income,
		Account:     dto.FlexRef{ID: "acc-1", Name: "Checking"},
	}, "user-1")
	suite.Require().NoError(err)

	accounts := []domain.Account{
		{AccountID: "acc-1", Name: "Checking", Balance: decimal.NewFromInt(1000)},
	}
	suite.mockAccounts.On("ListAccounts", mock.Anything, false).Return(accounts, nil).Once()
	suite.mockTxns.On("ListAllTransactions", mock.Anything).Return([]domain.Transaction{saved}, nil).Once()
	suite.mockSales.On("SalesTransactions", mock.Anything).Return([]domain.Transaction{}, nil).Once()
	suite.mockInventory.On("PurchaseTransactions", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	dashboard, err := suite.service.BuildDashboard(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(dashboard.Accounts, 1)
	suite.True(dashboard.Accounts[0].InitialBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(dashboard.Accounts[0].CurrentBalance.Equal(decimal.NewFromInt(1200)))
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
