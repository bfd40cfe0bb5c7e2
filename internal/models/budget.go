package models

import "github.com/shopspring/decimal"

// Budget represents a row in the budgets table.
// (owner_id, category, period, month, year) is unique.
type Budget struct {
	BudgetID string          `db:"budget_id"`
	OwnerID  string          `db:"owner_id"`
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	Period   string          `db:"period"`
	Month    int             `db:"month"`
	Year     int             `db:"year"`
	AuditFields
}
