package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/bizgrid/erp_backend/internal/core/ports/services"
	"github.com/bizgrid/erp_backend/internal/dto"
	"github.com/bizgrid/erp_backend/internal/utils/fincalc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type salesService struct {
	BaseService
	salesRepo portsrepo.SalesRepositoryFacade
}

// NewSalesService creates a new sales module service.
func NewSalesService(repo portsrepo.SalesRepositoryFacade) portssvc.SalesSvcFacade {
	return &salesService{salesRepo: repo}
}

func (s *salesService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, userID string) (*domain.Sale, error) {
	now := time.Now()

	items := make([]domain.SaleItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.SaleItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	// Derive the total from line items when the client omits it
	total := req.Total
	if total.IsZero() && len(items) > 0 {
		for _, item := range items {
			total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
		}
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: sale total cannot be negative", apperrors.ErrValidation)
	}

	customerName := req.Customer.Name
	if req.Customer.ID != "" && customerName == "" {
		customers, err := s.salesRepo.FindCustomersByIDs(ctx, []string{req.Customer.ID})
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve customer for sale", slog.String("customer_id", req.Customer.ID))
			return nil, err
		}
		if customer, ok := customers[req.Customer.ID]; ok {
			customerName = customer.Name
		}
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		CustomerID:    req.Customer.ID,
		CustomerName:  customerName,
		Date:          req.Date,
		Total:         total,
		Status:        status,
		PaymentMethod: req.PaymentMethod,
		InvoiceNumber: req.InvoiceNumber,
		Items:         items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.salesRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale in repository", slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale created successfully in service", slog.String("sale_id", sale.SaleID))
	return &sale, nil
}

func (s *salesService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.salesRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find sale by ID in repository", slog.String("sale_id", saleID))
		}
		return nil, err
	}
	return sale, nil
}

func (s *salesService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.salesRepo.ListSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales from repository")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

func (s *salesService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.salesRepo.ListCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers from repository")
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *salesService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.salesRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products from repository")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *salesService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		CustomerID:             uuid.NewString(),
		Name:                   req.Name,
		Email:                  req.Email,
		PreferredPaymentMethod: req.PreferredPaymentMethod,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.salesRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer in repository", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created successfully in service", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *salesService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	now := time.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		Name:      req.Name,
		SKU:       req.SKU,
		Price:     req.Price,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.salesRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product in repository", slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.LogInfo(ctx, "Product created successfully in service", slog.String("product_id", product.ProductID))
	return &product, nil
}

// SalesTransactions projects every sale into a synthetic income transaction
// for the finance dashboard.
func (s *salesService) SalesTransactions(ctx context.Context) ([]domain.Transaction, error) {
	sales, err := s.salesRepo.ListSales(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for transaction projection")
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	// Customers feed both the name and the preferred-payment-method fallback
	customerIDs := make([]string, 0, len(sales))
	for _, sale := range sales {
		if sale.CustomerID != "" {
			customerIDs = append(customerIDs, sale.CustomerID)
		}
	}

	customers := map[string]domain.Customer{}
	if len(customerIDs) > 0 {
		customers, err = s.salesRepo.FindCustomersByIDs(ctx, customerIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to resolve customers for sales projection")
			return nil, fmt.Errorf("failed to resolve customers: %w", err)
		}
	}

	txns := make([]domain.Transaction, len(sales))
	for i, sale := range sales {
		txns[i] = fincalc.SaleToTransaction(sale, customers)
	}
	return txns, nil
}
