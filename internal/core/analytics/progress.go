package analytics

import (
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeProgress joins b with the spend recorded for its category in summary.
// A zero budget amount yields a zero percentage.
func ComputeProgress(b domain.Budget, summary domain.PeriodSummary) domain.BudgetProgress {
	spent, ok := summary.CategoryExpenses.Get(b.Category)
	if !ok {
		spent = decimal.Zero
	}
	pct := decimal.Zero
	if !b.Amount.IsZero() {
		pct = spent.Div(b.Amount).Mul(hundred)
	}
	return domain.BudgetProgress{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.Amount.Sub(spent),
		Percentage: pct,
	}
}
