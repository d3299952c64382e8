package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error) {
	args := m.Called(ctx, limit, pageToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.String(1), args.Error(2)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
	userID      string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "erp-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.userID = uuid.NewString()

	finance := suite.router.Group("/api/v1/finance", middleware.AuthMiddleware(suite.jwtSecret))
	suite.mockService = new(MockTransactionService)
	registerTransactionRoutes(finance, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			Date:          time.Now(),
			Description:   "Office supplies",
			Amount:        decimal.NewFromInt(120),
			Type:          domain.Expense,
			Category:      "Supplies",
			Status:        domain.StatusCompleted,
			SourceType:    domain.SourceFinance,
		},
	}
	suite.mockService.On("ListTransactions", mock.Anything, 10, "").
		Return(txns, "next-page-token", nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/finance/transactions?limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.Equal("next-page-token", resp.NextToken)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/finance/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   "Client payment",
		Amount:        decimal.NewFromInt(500),
		Type:          domain.Income,
		Category:      "Consulting",
		Status:        domain.StatusCompleted,
		SourceType:    domain.SourceFinance,
	}
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.userID).
		Return(created, nil).Once()

	body := []byte(`{"date":"2025-08-10T00:00:00Z","description":"Client payment","amount":500,"type":"income","category":"Consulting"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/finance/transactions", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.userID).
		Return(nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)).Once()

	body := []byte(`{"date":"2025-08-10T00:00:00Z","description":"Refund gone wrong","amount":50,"type":"expense"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/finance/transactions", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_SyntheticIsConflict() {
	syntheticID := "sales-" + uuid.NewString()[:8]
	suite.mockService.On("DeleteTransaction", mock.Anything, syntheticID, suite.userID).
		Return(fmt.Errorf("%w: transaction %s is derived from the sales module", apperrors.ErrReadOnly, syntheticID)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/finance/transactions/"+syntheticID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	missingID := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, missingID, suite.userID).
		Return(fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, missingID)).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/finance/transactions/"+missingID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	transactionID := uuid.NewString()
	suite.mockService.On("DeleteTransaction", mock.Anything, transactionID, suite.userID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/finance/transactions/"+transactionID, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
