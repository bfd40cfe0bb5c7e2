package domain

import "github.com/shopspring/decimal"

// MonthlyReport is the totals-and-breakdown view of one period.
type MonthlyReport struct {
	Period
	TotalIncome         decimal.Decimal `json:"totalIncome"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	Balance             decimal.Decimal `json:"balance"`
	CategoryExpenses    CategoryAmounts `json:"categoryExpenses"`
	CategoryIncome      CategoryAmounts `json:"categoryIncome"`
	TopSpendingCategory *Category       `json:"topSpendingCategory"`
	TransactionCount    int             `json:"transactionCount"`
}

// MonthlyReportDetail is a monthly report together with the transactions it was
// built from, newest first. Used for client-side document rendering.
type MonthlyReportDetail struct {
	MonthlyReport
	Transactions []Transaction
}
