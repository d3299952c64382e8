package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for finance transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of finance transactions ordered by
	// date descending. Returned token is empty on the last page.
	ListTransactions(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error)
}

// TransactionWriterSvc defines write operations for finance transactions
type TransactionWriterSvc interface {
	// CreateTransaction persists a new finance transaction, applying
	// category and account defaults, and adjusts the target account's
	// balance when the transaction is completed.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// UpdateTransaction updates an existing finance transaction.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes a finance transaction. Synthetic
	// cross-module transactions are rejected with ErrReadOnly.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
