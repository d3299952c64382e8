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
	"github.com/google/uuid"
)

// Transaction writes never touch the stored account balance: that column is
// the user-managed starting point, and current balances are derived by
// replaying completed transactions on top of it at read time.
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new finance transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: repo}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative, sign is carried by the type", apperrors.ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusCompleted
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          req.Date,
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category.NameOr(domain.DefaultCategory),
		AccountID:     req.Account.ID,
		AccountName:   req.Account.NameOr(domain.DefaultAccountName),
		Reference:     req.Reference,
		Status:        status,
		SourceType:    domain.SourceFinance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction in repository", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully in service", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID in repository", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, limit int, pageToken string) ([]domain.Transaction, string, error) {
	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, limit, pageToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository", slog.Int("limit", limit))
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}

	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nextToken, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	// Synthetic cross-module transactions are owned by their source modules
	if domain.IsSyntheticTransactionID(transactionID) {
		s.LogWarn(ctx, "Rejected update of synthetic transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("%w: synthetic transactions must be modified in their source module", apperrors.ErrReadOnly)
	}

	existing, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must be non-negative, sign is carried by the type", apperrors.ErrValidation)
		}
		updated.Amount = *req.Amount
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.Category != nil {
		updated.Category = req.Category.NameOr(domain.DefaultCategory)
	}
	if req.Account != nil {
		updated.AccountID = req.Account.ID
		updated.AccountName = req.Account.NameOr(domain.DefaultAccountName)
	}
	if req.Reference != nil {
		updated.Reference = *req.Reference
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.txnRepo.UpdateTransaction(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update transaction in repository", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully in service", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	// Reject before touching the repository: synthetic transactions are
	// projections of sales/inventory records, not finance rows
	if domain.IsSyntheticTransactionID(transactionID) {
		s.LogWarn(ctx, "Rejected delete of synthetic transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("%w: synthetic transactions must be deleted in their source module", apperrors.ErrReadOnly)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete transaction in repository", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully in service", slog.String("transaction_id", transactionID))
	return nil
}
