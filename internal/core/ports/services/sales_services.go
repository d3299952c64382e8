package services

import (
	"context"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/bizgrid/erp_backend/internal/dto"
)

// SalesReaderSvc defines read operations for the sales module
type SalesReaderSvc interface {
	// GetSaleByID retrieves a specific sale with its line items.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves all sales, newest first.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// ListCustomers retrieves all customers.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// ListProducts retrieves all products.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// SalesTransactions converts all sales into synthetic finance
	// transactions for dashboard aggregation.
	SalesTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// SalesWriterSvc defines write operations for the sales module
type SalesWriterSvc interface {
	// CreateSale records a new sale.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error)

	// CreateCustomer records a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)

	// CreateProduct records a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)
}

// SalesSvcFacade combines all sales-related service interfaces
type SalesSvcFacade interface {
	SalesReaderSvc
	SalesWriterSvc
}
