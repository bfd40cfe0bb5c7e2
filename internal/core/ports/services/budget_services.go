package services

import (
	"context"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets and their progress.
type BudgetReaderSvc interface {
	// ListBudgetsWithProgress returns the owner's budgets for period joined with actual spend.
	ListBudgetsWithProgress(ctx context.Context, ownerID string, period domain.Period) ([]domain.BudgetProgress, error)

	// GetBudgetWithProgress returns one budget joined with the spend of its month.
	GetBudgetWithProgress(ctx context.Context, ownerID string, budgetID string) (*domain.BudgetProgress, error)
}

// BudgetWriterSvc defines write operations for budgets.
type BudgetWriterSvc interface {
	// CreateBudget creates a budget; an existing budget with the same key yields ErrDuplicate.
	CreateBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// UpsertBudget creates the budget or updates the amount of the one sharing its key.
	UpsertBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, bool, error)

	// UpdateBudget changes the amount of an existing budget.
	UpdateBudget(ctx context.Context, ownerID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	DeleteBudget(ctx context.Context, ownerID string, budgetID string) error
}

// BudgetSvcFacade combines all budget-related service interfaces.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
