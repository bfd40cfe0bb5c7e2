package repositories

import (
	"context"

	"github.com/SscSPs/finsight/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
// Every lookup is scoped to one owner.
type TransactionReader interface {
	// FindTransactionByID retrieves one transaction; ErrNotFound when it does not exist for the owner.
	FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest first.
	ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionsInRange retrieves every transaction that occurred within rng, oldest first.
	ListTransactionsInRange(ctx context.Context, ownerID string, rng domain.DateRange) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction overwrites the mutable fields of an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by ownerID.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
