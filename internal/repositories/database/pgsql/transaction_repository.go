package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/finsight/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	"github.com/SscSPs/finsight/internal/models"
	"github.com/SscSPs/finsight/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, owner_id, kind, amount, category, description, occurred_at, created_at, last_updated_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Kind,
		m.Amount,
		m.Category,
		m.Description,
		m.OccurredAt,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return r.mapError(fmt.Sprintf("save transaction %s", m.TransactionID), err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction owned by ownerID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID, ownerID)
	if err != nil {
		return nil, r.mapError(fmt.Sprintf("find transaction %s", transactionID), err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, r.mapError(fmt.Sprintf("find transaction %s", transactionID), err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves transactions matching filter, newest first.
// Pages continue strictly after filter.After in (occurred_at, created_at) order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	conds := []string{"owner_id = $1"}
	args := []any{ownerID}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Kind != nil {
		conds = append(conds, "kind = "+arg(string(*filter.Kind)))
	}
	if filter.Category != nil {
		conds = append(conds, "category = "+arg(string(*filter.Category)))
	}
	if filter.From != nil {
		conds = append(conds, "occurred_at >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "occurred_at <= "+arg(*filter.To))
	}
	if filter.After != nil {
		conds = append(conds, fmt.Sprintf("(occurred_at, created_at) < (%s, %s)", arg(filter.After.OccurredAt), arg(filter.After.CreatedAt)))
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE ` + strings.Join(conds, " AND ") +
		` ORDER BY occurred_at DESC, created_at DESC`
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	return r.queryTransactions(ctx, "list transactions", query, args...)
}

// ListTransactionsInRange retrieves every transaction within rng (inclusive), oldest first.
func (r *PgxTransactionRepository) ListTransactionsInRange(ctx context.Context, ownerID string, rng domain.DateRange) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
		ORDER BY occurred_at ASC, created_at ASC;
	`
	return r.queryTransactions(ctx, "list transactions in range", query, ownerID, rng.Start, rng.End)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, op string, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// UpdateTransaction overwrites the mutable columns of a transaction owned by txn.OwnerID.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET kind = $3, amount = $4, category = $5, description = $6, occurred_at = $7, last_updated_at = $8
		WHERE transaction_id = $1 AND owner_id = $2;
	`
	op := fmt.Sprintf("update transaction %s", m.TransactionID)
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Kind,
		m.Amount,
		m.Category,
		m.Description,
		m.OccurredAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return r.mapError(op, err)
	}
	return requireAffected(tag, op)
}

// DeleteTransaction removes a transaction owned by ownerID.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	op := fmt.Sprintf("delete transaction %s", transactionID)
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1 AND owner_id = $2;`, transactionID, ownerID)
	if err != nil {
		return r.mapError(op, err)
	}
	return requireAffected(tag, op)
}
