// Package analytics holds the pure computations behind reports, insights and
// budget progress. Nothing here performs I/O.
package analytics

import (
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate reduces the transactions that fall inside rng into a summary for p.
// Category mappings keep the order in which categories are first seen.
func Aggregate(txns []domain.Transaction, p domain.Period, rng domain.DateRange) domain.PeriodSummary {
	s := domain.EmptySummary(p)
	for _, t := range txns {
		if !rng.Contains(t.OccurredAt) {
			continue
		}
		switch t.Kind {
		case domain.KindIncome:
			s.Income = s.Income.Add(t.Amount)
			s.CategoryIncome.Add(t.Category, t.Amount)
		case domain.KindExpense:
			s.Expenses = s.Expenses.Add(t.Amount)
			s.CategoryExpenses.Add(t.Category, t.Amount)
		default:
			continue
		}
		s.TransactionCount++
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// TopCategory returns the category with the largest amount. On ties the first
// category encountered wins. ok is false for an empty mapping.
func TopCategory(m domain.CategoryAmounts) (top domain.Category, amount decimal.Decimal, ok bool) {
	for _, c := range m.Categories() {
		v, _ := m.Get(c)
		if !ok || v.GreaterThan(amount) {
			top, amount, ok = c, v, true
		}
	}
	return top, amount, ok
}

// Trends computes month-over-month deltas; both are zero without a previous period.
func Trends(current domain.PeriodSummary, previous domain.OptionalSummary) domain.Trends {
	prev, ok := previous.Get()
	if !ok {
		return domain.Trends{SpendingChange: decimal.Zero, IncomeChange: decimal.Zero}
	}
	return domain.Trends{
		SpendingChange: current.Expenses.Sub(prev.Expenses),
		IncomeChange:   current.Income.Sub(prev.Income),
	}
}
