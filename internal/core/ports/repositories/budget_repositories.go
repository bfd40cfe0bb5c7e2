package repositories

import (
	"context"

	"github.com/SscSPs/finsight/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// FindBudgetByID retrieves one budget; ErrNotFound when it does not exist for the owner.
	FindBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the owner's budgets for one month.
	ListBudgets(ctx context.Context, ownerID string, period domain.Period) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// SaveBudget inserts a new budget. A key clash yields ErrDuplicate.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpsertBudget inserts the budget or, when its key already exists, updates
	// the stored amount. created reports whether a new row was inserted.
	UpsertBudget(ctx context.Context, budget domain.Budget) (stored *domain.Budget, created bool, err error)

	// UpdateBudget overwrites the amount of an existing budget.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget owned by ownerID.
	DeleteBudget(ctx context.Context, ownerID string, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
