package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finsight/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/SscSPs/finsight/internal/utils/pagination"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...ServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{transactionRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := s.now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		Kind:          domain.TransactionKind(req.Type),
		Category:      domain.Category(req.Category),
		Description:   req.Description,
		OccurredAt:    req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction in repository", slog.String("transaction_id", txn.TransactionID))
		return nil, s.storeError("save transaction", err)
	}

	s.LogInfo(ctx, "Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		s.logStoreError(ctx, err, "Failed to find transaction by ID in repository", slog.String("transaction_id", transactionID))
		return nil, s.storeError("find transaction", err)
	}
	return txn, nil
}

// ListTransactions retrieves one page of transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter, err := params.ToFilter(s.location())
	if err != nil {
		return nil, err
	}

	txns, err := s.transactionRepo.ListTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions from repository", slog.Int("limit", filter.Limit))
		return nil, s.storeError("list transactions", err)
	}

	resp := dto.ToListTransactionsResponse(txns, pagination.NextCursor(txns, filter.Limit))
	s.LogDebug(ctx, "Transactions listed successfully", slog.Int("count", len(txns)))
	return &resp, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransaction(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		txn.Kind = domain.TransactionKind(*req.Type)
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Category != nil {
		txn.Category = domain.Category(*req.Category)
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		txn.OccurredAt = *req.Date
	}
	txn.LastUpdatedAt = s.now()

	if err := txn.Validate(); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.logStoreError(ctx, err, "Failed to update transaction in repository", slog.String("transaction_id", transactionID))
		return nil, s.storeError("update transaction", err)
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		s.logStoreError(ctx, err, "Failed to delete transaction in repository", slog.String("transaction_id", transactionID))
		return s.storeError("delete transaction", err)
	}
	s.LogInfo(ctx, "Transaction deleted successfully", slog.String("transaction_id", transactionID))
	return nil
}
