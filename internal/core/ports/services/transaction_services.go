package services

import (
	"context"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransaction retrieves a single transaction owned by ownerID.
	GetTransaction(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of the owner's transactions, newest first.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transactions.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
