package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finsight/internal/core/analytics"
	"github.com/SscSPs/finsight/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/google/uuid"
)

type budgetService struct {
	BaseService
	budgetRepo      portsrepo.BudgetRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, transactionRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.BudgetSvcFacade {
	svc := &budgetService{budgetRepo: budgetRepo, transactionRepo: transactionRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// ListBudgetsWithProgress fetches the month's transactions once and measures
// every budget of that month against the resulting summary.
func (s *budgetService) ListBudgetsWithProgress(ctx context.Context, ownerID string, period domain.Period) ([]domain.BudgetProgress, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, ownerID, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets from repository", slog.String("period", period.String()))
		return nil, s.storeError("list budgets", err)
	}
	if len(budgets) == 0 {
		return []domain.BudgetProgress{}, nil
	}

	summary, _, err := s.summarizePeriod(ctx, s.transactionRepo, ownerID, period)
	if err != nil {
		return nil, err
	}

	progress := make([]domain.BudgetProgress, len(budgets))
	for i, b := range budgets {
		progress[i] = analytics.ComputeProgress(b, summary)
	}

	s.LogDebug(ctx, "Budgets listed with progress",
		slog.String("period", period.String()),
		slog.Int("count", len(progress)))
	return progress, nil
}

func (s *budgetService) GetBudgetWithProgress(ctx context.Context, ownerID string, budgetID string) (*domain.BudgetProgress, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, ownerID, budgetID)
	if err != nil {
		s.logStoreError(ctx, err, "Failed to find budget by ID in repository", slog.String("budget_id", budgetID))
		return nil, s.storeError("find budget", err)
	}

	summary, _, err := s.summarizePeriod(ctx, s.transactionRepo, ownerID, budget.CalendarPeriod())
	if err != nil {
		return nil, err
	}

	progress := analytics.ComputeProgress(*budget, summary)
	return &progress, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.newBudget(ownerID, req)
	if err != nil {
		return nil, err
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.logStoreError(ctx, err, "Failed to save budget in repository",
			slog.String("category", string(budget.Category)),
			slog.String("period", budget.CalendarPeriod().String()))
		return nil, s.storeError("save budget", err)
	}

	s.LogInfo(ctx, "Budget created successfully", slog.String("budget_id", budget.BudgetID))
	return &budget, nil
}

// UpsertBudget creates the budget, or updates the amount of the budget that
// already holds the same owner/category/period/month/year key.
func (s *budgetService) UpsertBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, bool, error) {
	budget, err := s.newBudget(ownerID, req)
	if err != nil {
		return nil, false, err
	}

	stored, created, err := s.budgetRepo.UpsertBudget(ctx, budget)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert budget in repository", slog.String("category", string(budget.Category)))
		return nil, false, s.storeError("upsert budget", err)
	}

	s.LogInfo(ctx, "Budget upserted successfully",
		slog.String("budget_id", stored.BudgetID),
		slog.Bool("created", created))
	return stored, created, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, ownerID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, ownerID, budgetID)
	if err != nil {
		s.logStoreError(ctx, err, "Failed to find budget by ID in repository", slog.String("budget_id", budgetID))
		return nil, s.storeError("find budget", err)
	}

	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	budget.LastUpdatedAt = s.now()
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.logStoreError(ctx, err, "Failed to update budget in repository", slog.String("budget_id", budgetID))
		return nil, s.storeError("update budget", err)
	}

	s.LogInfo(ctx, "Budget updated successfully", slog.String("budget_id", budgetID))
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, ownerID string, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, ownerID, budgetID); err != nil {
		s.logStoreError(ctx, err, "Failed to delete budget in repository", slog.String("budget_id", budgetID))
		return s.storeError("delete budget", err)
	}
	s.LogInfo(ctx, "Budget deleted successfully", slog.String("budget_id", budgetID))
	return nil
}

// newBudget builds a validated budget from a create request, defaulting the
// month and year to the current period and the period kind to monthly.
func (s *budgetService) newBudget(ownerID string, req dto.CreateBudgetRequest) (domain.Budget, error) {
	now := s.now()
	period, err := domain.ResolvePeriod(req.Month, req.Year, now)
	if err != nil {
		return domain.Budget{}, err
	}

	kind := domain.BudgetMonthly
	if req.Period != "" {
		kind = domain.BudgetPeriod(req.Period)
	}

	budget := domain.Budget{
		BudgetID: uuid.NewString(),
		OwnerID:  ownerID,
		Category: domain.Category(req.Category),
		Period:   kind,
		Month:    period.Month,
		Year:     period.Year,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	if err := budget.Validate(); err != nil {
		return domain.Budget{}, err
	}
	return budget, nil
}
