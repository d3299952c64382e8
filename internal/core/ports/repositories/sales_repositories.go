package repositories

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
)

// SalesReader defines read operations for sales data
type SalesReader interface {
	// FindSaleByID retrieves a specific sale with its line items.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves all sales ordered by date descending.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// FindCustomersByIDs retrieves multiple customers by their IDs.
	FindCustomersByIDs(ctx context.Context, customerIDs []string) (map[string]domain.Customer, error)

	// ListCustomers retrieves all customers ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// ListProducts retrieves all products ordered by name.
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// SalesWriter defines write operations for sales data
type SalesWriter interface {
	// SaveSale persists a new sale and its line items.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// SaveCustomer persists a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error
}

// SalesRepositoryFacade combines all sales-related repository interfaces
type SalesRepositoryFacade interface {
	SalesReader
	SalesWriter
}
