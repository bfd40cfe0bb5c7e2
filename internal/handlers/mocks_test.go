package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock InsightService ---
type MockInsightService struct {
	mock.Mock
}

func (m *MockInsightService) GenerateInsights(ctx context.Context, ownerID string, period domain.Period) (*domain.InsightReport, error) {
	args := m.Called(ctx, ownerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsightReport), args.Error(1)
}

var _ portssvc.InsightService = (*MockInsightService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) MonthlyReport(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, ownerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

func (m *MockReportingService) MonthlyReportDetail(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlyReportDetail, error) {
	args := m.Called(ctx, ownerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReportDetail), args.Error(1)
}

func (m *MockReportingService) ExportTransactions(ctx context.Context, ownerID string, from, to *time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) ListBudgetsWithProgress(ctx context.Context, ownerID string, period domain.Period) ([]domain.BudgetProgress, error) {
	args := m.Called(ctx, ownerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetProgress), args.Error(1)
}

func (m *MockBudgetService) GetBudgetWithProgress(ctx context.Context, ownerID string, budgetID string) (*domain.BudgetProgress, error) {
	args := m.Called(ctx, ownerID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetProgress), args.Error(1)
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) UpsertBudget(ctx context.Context, ownerID string, req dto.CreateBudgetRequest) (*domain.Budget, bool, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*domain.Budget), args.Bool(1), args.Error(2)
}

func (m *MockBudgetService) UpdateBudget(ctx context.Context, ownerID string, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID, budgetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetService) DeleteBudget(ctx context.Context, ownerID string, budgetID string) error {
	args := m.Called(ctx, ownerID, budgetID)
	return args.Error(0)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)
