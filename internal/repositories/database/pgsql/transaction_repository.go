package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/bizgrid/erp_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for finance transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, date, description, amount, type, category, account_id, account_name, reference, status, source_type, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var txn domain.Transaction
	var accountID sql.NullString
	err := row.Scan(
		&txn.TransactionID,
		&txn.Date,
		&txn.Description,
		&txn.Amount,
		&txn.Type,
		&txn.Category,
		&accountID,
		&txn.AccountName,
		&txn.Reference,
		&txn.Status,
		&txn.SourceType,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if accountID.Valid {
		txn.AccountID = accountID.String
	}
	return txn, err
}

func nullableID(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}

const insertTransactionQuery = `
	INSERT INTO transactions (transaction_id, date, description, amount, type, category, account_id, account_name, reference, status, source_type, created_at, created_by, last_updated_at, last_updated_by)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

func transactionArgs(txn domain.Transaction) []any {
	return []any{
		txn.TransactionID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.Type,
		txn.Category,
		nullableID(txn.AccountID),
		txn.AccountName,
		txn.Reference,
		txn.Status,
		txn.SourceType,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	}
}

// SaveTransaction inserts a new finance transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if _, err := r.Pool.Exec(ctx, insertTransactionQuery, transactionArgs(txn)...); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions retrieves a page of transactions ordered by date
// descending, using an opaque keyset token for stable paging.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions`
	args := []any{}
	if pageToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (date, created_at) < ($1, $2)`
		args = append(args, txnDate, createdAt)
	}
	query += fmt.Sprintf(` ORDER BY date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	// Fetch one extra row to know whether another page exists
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating transaction rows: %w", err)
	}

	nextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return txns, nextToken, nil
}

// ListAllTransactions retrieves every finance transaction, newest first.
func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// SumActualsByCategory sums completed transaction amounts per category
// within [from, to), split into income and expense sides.
func (r *PgxTransactionRepository) SumActualsByCategory(ctx context.Context, from time.Time, to time.Time) (map[string]domain.CategoryTotals, error) {
	query := `
		SELECT category,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0) AS income,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense
		FROM transactions
		WHERE status = 'completed' AND date >= $1 AND date < $2
		GROUP BY category;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum actuals by category: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]domain.CategoryTotals)
	for rows.Next() {
		var category string
		var income, expense decimal.Decimal
		if err := rows.Scan(&category, &income, &expense); err != nil {
			return nil, fmt.Errorf("failed to scan category totals row: %w", err)
		}
		totals[category] = domain.CategoryTotals{Income: income, Expense: expense}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals rows: %w", err)
	}
	return totals, nil
}

const updateTransactionQuery = `
	UPDATE transactions
	SET date = $2, description = $3, amount = $4, type = $5, category = $6, account_id = $7, account_name = $8, reference = $9, status = $10, last_updated_at = $11, last_updated_by = $12
	WHERE transaction_id = $1;
`

func updateTransactionArgs(txn domain.Transaction) []any {
	return []any{
		txn.TransactionID,
		txn.Date,
		txn.Description,
		txn.Amount,
		txn.Type,
		txn.Category,
		nullableID(txn.AccountID),
		txn.AccountName,
		txn.Reference,
		txn.Status,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	}
}

// UpdateTransaction updates an existing transaction's details.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	tag, err := r.Pool.Exec(ctx, updateTransactionQuery, updateTransactionArgs(txn)...)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txn.TransactionID)
	}
	return nil
}

// DeleteTransaction removes a transaction by ID.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
