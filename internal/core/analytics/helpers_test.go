package analytics_test

import (
	"time"

	"github.com/SscSPs/finsight/internal/core/analytics"
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/shopspring/decimal"
)

var march2024 = domain.Period{Month: 3, Year: 2024}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(kind domain.TransactionKind, cat domain.Category, amount string, at time.Time) domain.Transaction {
	return domain.Transaction{
		OwnerID:    "user_1",
		Kind:       kind,
		Category:   cat,
		Amount:     dec(amount),
		OccurredAt: at,
	}
}

func day(p domain.Period, d int) time.Time {
	return time.Date(p.Year, time.Month(p.Month), d, 12, 0, 0, 0, time.UTC)
}

// summaryOf aggregates txns for p in UTC.
func summaryOf(p domain.Period, txns ...domain.Transaction) domain.PeriodSummary {
	return analytics.Aggregate(txns, p, p.Range(time.UTC))
}

// expensesSummary builds a summary with the given category expenses, in order.
func expensesSummary(p domain.Period, income string, cats ...any) domain.PeriodSummary {
	txns := []domain.Transaction{}
	if income != "" {
		txns = append(txns, txn(domain.KindIncome, domain.CategorySalary, income, day(p, 1)))
	}
	for i := 0; i+1 < len(cats); i += 2 {
		txns = append(txns, txn(domain.KindExpense, cats[i].(domain.Category), cats[i+1].(string), day(p, 2)))
	}
	return summaryOf(p, txns...)
}
