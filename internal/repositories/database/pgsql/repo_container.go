package pgsql

import (
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
	}
}
