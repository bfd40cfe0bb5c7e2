package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsInRange(ctx context.Context, ownerID string, rng domain.DateRange) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, rng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) FindBudgetByID(ctx context.Context, ownerID string, budgetID string) (*domain.Budget, error) {
	args := m.Called(ctx, ownerID, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, ownerID string, period domain.Period) ([]domain.Budget, error) {
	args := m.Called(ctx, ownerID, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) (*domain.Budget, bool, error) {
	args := m.Called(ctx, budget)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Budget), args.Bool(1), args.Error(2)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, ownerID string, budgetID string) error {
	args := m.Called(ctx, ownerID, budgetID)
	return args.Error(0)
}

// --- Fixtures ---

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func amountPtr(s string) *decimal.Decimal {
	d := amount(s)
	return &d
}

func newTxn(kind domain.TransactionKind, cat domain.Category, value string, at time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: "txn-" + at.Format("20060102") + "-" + string(cat),
		OwnerID:       "owner-1",
		Kind:          kind,
		Amount:        amount(value),
		Category:      cat,
		OccurredAt:    at,
		AuditFields:   domain.AuditFields{CreatedAt: at, LastUpdatedAt: at},
	}
}

func rangeStarting(year int, month time.Month) interface{} {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return mock.MatchedBy(func(r domain.DateRange) bool {
		return r.Start.Equal(start)
	})
}
