package dto

import (
	"time"

	"github.com/bizgrid/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a finance
// transaction. Category and Account accept either a bare string or an
// {id, name} object; both default when absent.
type CreateTransactionRequest struct {
	Date        time.Time                `json:"date" binding:"required"`
	Description string                   `json:"description" binding:"required"`
	Amount      decimal.Decimal          `json:"amount" binding:"required"`
	Type        domain.TransactionType   `json:"type" binding:"required,oneof=income expense"`
	Status      domain.TransactionStatus `json:"status" binding:"omitempty,oneof=completed pending"`
	Category    FlexRef                  `json:"category"`
	Account     FlexRef                  `json:"account"`
	Reference   string                   `json:"reference"`
}

// UpdateTransactionRequest defines the data allowed for updating a transaction.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Date        *time.Time                `json:"date"`
	Description *string                   `json:"description"`
	Amount      *decimal.Decimal          `json:"amount"`
	Type        *domain.TransactionType   `json:"type" binding:"omitempty,oneof=income expense"`
	Status      *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=completed pending"`
	Category    *FlexRef                  `json:"category"`
	Account     *FlexRef                  `json:"account"`
	Reference   *string                   `json:"reference"`
}

// TransactionResponse defines the data returned for a transaction.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Date          time.Time                `json:"date"`
	Description   string                   `json:"description"`
	Amount        decimal.Decimal          `json:"amount"`
	Type          domain.TransactionType   `json:"type"`
	Category      string                   `json:"category"`
	AccountID     string                   `json:"accountID,omitempty"`
	AccountName   string                   `json:"accountName"`
	Reference     string                   `json:"reference,omitempty"`
	Status        domain.TransactionStatus `json:"status"`
	SourceType    domain.SourceType        `json:"sourceType"`
	CreatedAt     time.Time                `json:"createdAt"`
	CreatedBy     string                   `json:"createdBy"`
	LastUpdatedAt time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy string                   `json:"lastUpdatedBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Date:          txn.Date,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Category:      txn.Category,
		AccountID:     txn.AccountID,
		AccountName:   txn.AccountName,
		Reference:     txn.Reference,
		Status:        txn.Status,
		SourceType:    txn.SourceType,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
		LastUpdatedAt: txn.LastUpdatedAt,
		LastUpdatedBy: txn.LastUpdatedBy,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}
