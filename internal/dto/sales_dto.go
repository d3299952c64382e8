package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line item on a sale creation request.
type SaleItemRequest struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName" binding:"required"`
	Quantity    int64           `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	Customer      FlexRef           `json:"customer"`
	Date          time.Time         `json:"date" binding:"required"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status" binding:"omitempty,oneof=paid pending"`
	PaymentMethod string            `json:"paymentMethod"`
	InvoiceNumber string            `json:"invoiceNumber"`
	Items         []SaleItemRequest `json:"items" binding:"omitempty,dive"`
}

// SaleItemResponse mirrors domain.SaleItem.
type SaleItemResponse struct {
	ProductID   string          `json:"productID,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        string             `json:"saleID"`
	CustomerID    string             `json:"customerID,omitempty"`
	CustomerName  string             `json:"customerName,omitempty"`
	Date          time.Time          `json:"date"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"paymentMethod,omitempty"`
	InvoiceNumber string             `json:"invoiceNumber,omitempty"`
	Items         []SaleItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return SaleResponse{
		SaleID:        s.SaleID,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		Date:          s.Date,
		Total:         s.Total,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		InvoiceNumber: s.InvoiceNumber,
		Items:         items,
		CreatedAt:     s.CreatedAt,
		CreatedBy:     s.CreatedBy,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to SaleResponse DTOs
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = ToSaleResponse(&s)
	}
	return res
}

// CreateCustomerRequest defines the data needed to create a customer.
type CreateCustomerRequest struct {
	Name                   string `json:"name" binding:"required"`
	Email                  string `json:"email" binding:"omitempty,email"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod"`
}

// CustomerResponse mirrors domain.Customer.
type CustomerResponse struct {
	CustomerID             string `json:"customerID"`
	Name                   string `json:"name"`
	Email                  string `json:"email,omitempty"`
	PreferredPaymentMethod string `json:"preferredPaymentMethod,omitempty"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:             c.CustomerID,
		Name:                   c.Name,
		Email:                  c.Email,
		PreferredPaymentMethod: c.PreferredPaymentMethod,
	}
}

// ToListCustomerResponse converts a slice of domain.Customer to CustomerResponse DTOs
func ToListCustomerResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return res
}

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	SKU   string          `json:"sku"`
	Price decimal.Decimal `json:"price"`
}

// ProductResponse mirrors domain.Product.
type ProductResponse struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku,omitempty"`
	Price     decimal.Decimal `json:"price"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID: p.ProductID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
	}
}

// ToListProductResponse converts a slice of domain.Product to ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
