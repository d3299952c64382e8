package pgsql

import (
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the full set of pgsql-backed repositories
// sharing one connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		SalesRepo:       newPgxSalesRepository(pool),
		InventoryRepo:   newPgxInventoryRepository(pool),
		BudgetRepo:      newPgxBudgetRepository(pool),
		UserRepo:        newPgxUserRepository(pool),
	}
}
