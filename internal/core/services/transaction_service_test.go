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

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumActualsByCategory(ctx context.Context, from time.Time, to time.Time) (map[string]domain.CategoryTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.CategoryTotals), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Description: "Office supplies",
		Amount:      decimal.NewFromInt(120),
		Type:        domain.Expense,
		Category:    dto.FlexRef{Name: "Supplies"},
		Account:     dto.FlexRef{ID: "acc-1", Name: "Checking"},
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.StatusCompleted, txn.Status) // defaulted
	suite.Equal("Supplies", txn.Category)
	suite.Equal(domain.SourceFinance, txn.SourceType)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_DefaultsCategoryAndAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Description: "Misc income",
		Amount:      decimal.NewFromInt(10),
		Type:        domain.Income,
		Status:      domain.StatusPending,
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Category == domain.DefaultCategory && txn.AccountName == domain.DefaultAccountName
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultCategory, txn.Category)
	suite.Equal(domain.DefaultAccountName, txn.AccountName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NegativeAmountRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Date:        time.Now(),
		Description: "Bad",
		Amount:      decimal.NewFromInt(-5),
		Type:        domain.Expense,
	}

	txn, err := suite.service.CreateTransaction(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_SyntheticRejected() {
	ctx := context.Background()

	err := suite.service.DeleteTransaction(ctx, "sales-7c9e6679", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReadOnly)
	// The repository must not be touched for synthetic ids
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_InventorySyntheticRejected() {
	ctx := context.Background()

	err := suite.service.DeleteTransaction(ctx, "inventory-11f1e845", "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrReadOnly)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteTransaction", ctx, "txn-1").Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "txn-1", "user-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
