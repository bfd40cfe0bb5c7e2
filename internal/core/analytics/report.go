package analytics

import (
	"sort"

	"github.com/SscSPs/finsight/internal/core/domain"
)

// BuildMonthlyReport shapes a period summary into the monthly report view.
func BuildMonthlyReport(s domain.PeriodSummary) domain.MonthlyReport {
	report := domain.MonthlyReport{
		Period:           s.Period,
		TotalIncome:      s.Income,
		TotalExpenses:    s.Expenses,
		Balance:          s.Balance,
		CategoryExpenses: s.CategoryExpenses,
		CategoryIncome:   s.CategoryIncome,
		TransactionCount: s.TransactionCount,
	}
	if top, _, ok := TopCategory(s.CategoryExpenses); ok {
		report.TopSpendingCategory = &top
	}
	return report
}

// SortNewestFirst orders transactions by OccurredAt descending, keeping the
// relative order of equal dates.
func SortNewestFirst(txns []domain.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].OccurredAt.After(txns[j].OccurredAt)
	})
}
