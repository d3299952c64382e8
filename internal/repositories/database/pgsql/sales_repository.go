package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bizgrid/erp_backend/internal/apperrors"
	"github.com/bizgrid/erp_backend/internal/core/domain"
	portsrepo "github.com/bizgrid/erp_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSalesRepository struct {
	pool *pgxpool.Pool
}

// newPgxSalesRepository creates a new repository for sales data.
func newPgxSalesRepository(pool *pgxpool.Pool) portsrepo.SalesRepositoryFacade {
	return &PgxSalesRepository{pool: pool}
}

var _ portsrepo.SalesRepositoryFacade = (*PgxSalesRepository)(nil)

const saleColumns = `sale_id, customer_id, customer_name, date, total, status, payment_method, invoice_number, items, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (domain.Sale, error) {
	var sale domain.Sale
	var customerID, customerName, paymentMethod, invoiceNumber sql.NullString
	// Line items live in a jsonb column; pgx unmarshals directly
	err := row.Scan(
		&sale.SaleID,
		&customerID,
		&customerName,
		&sale.Date,
		&sale.Total,
		&sale.Status,
		&paymentMethod,
		&invoiceNumber,
		&sale.Items,
		&sale.CreatedAt,
		&sale.CreatedBy,
		&sale.LastUpdatedAt,
		&sale.LastUpdatedBy,
	)
	sale.CustomerID = customerID.String
	sale.CustomerName = customerName.String
	sale.PaymentMethod = paymentMethod.String
	sale.InvoiceNumber = invoiceNumber.String
	return sale, err
}

// SaveSale inserts a new sale with its line items.
func (r *PgxSalesRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (sale_id, customer_id, customer_name, date, total, status, payment_method, invoice_number, items, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		sale.SaleID,
		nullableID(sale.CustomerID),
		sale.CustomerName,
		sale.Date,
		sale.Total,
		sale.Status,
		sale.PaymentMethod,
		sale.InvoiceNumber,
		sale.Items,
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale %s: %w", sale.SaleID, err)
	}
	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (r *PgxSalesRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`

	sale, err := scanSale(r.pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return &sale, nil
}

// ListSales retrieves all sales, newest first.
func (r *PgxSalesRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC, created_at DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return sales, nil
}

// FindCustomersByIDs retrieves multiple customers keyed by ID.
func (r *PgxSalesRepository) FindCustomersByIDs(ctx context.Context, customerIDs []string) (map[string]domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, preferred_payment_method, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE customer_id = ANY($1);
	`
	rows, err := r.pool.Query(ctx, query, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to find customers by IDs: %w", err)
	}
	defer rows.Close()

	customers := make(map[string]domain.Customer)
	for rows.Next() {
		var c domain.Customer
		var email, preferred sql.NullString
		if err := rows.Scan(&c.CustomerID, &c.Name, &email, &preferred, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		c.Email = email.String
		c.PreferredPaymentMethod = preferred.String
		customers[c.CustomerID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// ListCustomers retrieves all customers ordered by name.
func (r *PgxSalesRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, preferred_payment_method, created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		var email, preferred sql.NullString
		if err := rows.Scan(&c.CustomerID, &c.Name, &email, &preferred, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		c.Email = email.String
		c.PreferredPaymentMethod = preferred.String
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

// ListProducts retrieves all products ordered by name.
func (r *PgxSalesRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, sku, price, created_at, created_by, last_updated_at, last_updated_by
		FROM products
		ORDER BY name;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var sku sql.NullString
		if err := rows.Scan(&p.ProductID, &p.Name, &sku, &p.Price, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		p.SKU = sku.String
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// SaveCustomer inserts a new customer.
func (r *PgxSalesRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, email, preferred_payment_method, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Email,
		customer.PreferredPaymentMethod,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

// SaveProduct inserts a new product.
func (r *PgxSalesRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, sku, price, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.SKU,
		product.Price,
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}
