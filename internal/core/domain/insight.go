package domain

import "github.com/shopspring/decimal"

// InsightType grades an insight for display.
type InsightType string

const (
	InsightInfo    InsightType = "info"
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightError   InsightType = "error"
)

// Insight is a human-readable observation derived from period summaries.
type Insight struct {
	Type       InsightType `json:"type"`
	Title      string      `json:"title"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion"`
}

// Trends holds month-over-month deltas.
type Trends struct {
	SpendingChange decimal.Decimal `json:"spendingChange"`
	IncomeChange   decimal.Decimal `json:"incomeChange"`
}

// InsightReport is the result of analysing a period against its predecessors.
type InsightReport struct {
	Period   Period
	Insights []Insight
	Current  PeriodSummary
	Previous OptionalSummary
	Trends   Trends
}
