package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind mirrors the transaction_kind column values.
type TransactionKind string

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

// Transaction represents a row in the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	OwnerID       string          `db:"owner_id"`
	Kind          TransactionKind `db:"kind"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	OccurredAt    time.Time       `db:"occurred_at"`
	AuditFields
}
