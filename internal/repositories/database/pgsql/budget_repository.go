package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/finsight/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	"github.com/SscSPs/finsight/internal/models"
	"github.com/SscSPs/finsight/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetColumns = `budget_id, owner_id, category, amount, period, month, year, created_at, last_updated_at`

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

// upsertedBudget is a budget row plus whether the upsert inserted it.
type upsertedBudget struct {
	models.Budget
	Inserted bool `db:"inserted"`
}

// SaveBudget inserts a new budget. A clash on the uniqueness key yields ErrDuplicate.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID,
		m.OwnerID,
		m.Category,
		m.Amount,
		m.Period,
		m.Month,
		m.Year,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return r.mapError(fmt.Sprintf("save budget for %s %d-%02d", m.Category, m.Year, m.Month), err)
	}
	return nil
}

// UpsertBudget inserts the budget or updates the amount of the row holding its key.
// xmax is zero only for freshly inserted tuples.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, bool, error) {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (owner_id, category, period, month, year)
		DO UPDATE SET amount = EXCLUDED.amount, last_updated_at = EXCLUDED.last_updated_at
		RETURNING ` + budgetColumns + `, (xmax = 0) AS inserted;
	`
	op := fmt.Sprintf("upsert budget for %s %d-%02d", m.Category, m.Year, m.Month)
	rows, err := r.Pool.Query(ctx, query,
		m.BudgetID,
		m.OwnerID,
		m.Category,
		m.Amount,
		m.Period,
		m.Month,
		m.Year,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return nil, false, r.mapError(op, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[upsertedBudget])
	if err != nil {
		return nil, false, r.mapError(op, err)
	}
	stored := mapping.ToDomainBudget(row.Budget)
	return &stored, row.Inserted, nil
}

// FindBudgetByID retrieves a budget owned by ownerID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE budget_id = $1 AND owner_id = $2;
	`
	return r.findOne(ctx, fmt.Sprintf("find budget %s", budgetID), query, budgetID, ownerID)
}

func (r *PgxBudgetRepository) findOne(ctx context.Context, op string, query string, args ...any) (*domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, r.mapError(op, err)
	}
	b := mapping.ToDomainBudget(m)
	return &b, nil
}

// ListBudgets retrieves the owner's budgets for one month ordered by category.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, ownerID string, period domain.Period) ([]domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE owner_id = $1 AND month = $2 AND year = $3
		ORDER BY category ASC, period ASC;
	`
	op := fmt.Sprintf("list budgets for %d-%02d", period.Year, period.Month)
	rows, err := r.Pool.Query(ctx, query, ownerID, period.Month, period.Year)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return mapping.ToDomainBudgetSlice(ms), nil
}

// UpdateBudget overwrites the amount of an existing budget.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	op := fmt.Sprintf("update budget %s", budget.BudgetID)
	query := `
		UPDATE budgets
		SET amount = $3, last_updated_at = $4
		WHERE budget_id = $1 AND owner_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, budget.BudgetID, budget.OwnerID, budget.Amount, budget.LastUpdatedAt)
	if err != nil {
		return r.mapError(op, err)
	}
	return requireAffected(tag, op)
}

// DeleteBudget removes a budget owned by ownerID.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, ownerID string, budgetID string) error {
	op := fmt.Sprintf("delete budget %s", budgetID)
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1 AND owner_id = $2;`, budgetID, ownerID)
	if err != nil {
		return r.mapError(op, err)
	}
	return requireAffected(tag, op)
}
