package repositories

import (
	"context"
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// TransactionReader defines read operations for finance transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions ordered by date
	// descending. nextToken is empty when there are no more pages.
	ListTransactions(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error)

	// ListAllTransactions retrieves every persisted finance transaction.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// SumActualsByCategory sums completed transaction amounts per category
	// within [from, to), split by transaction type.
	SumActualsByCategory(ctx context.Context, from time.Time, to time.Time) (map[string]domain.CategoryTotals, error)
}

// TransactionWriter defines write operations for finance transactions
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
