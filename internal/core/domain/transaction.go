package domain

import (
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction is money in or money out.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// IsValid reports whether k is a known kind.
func (k TransactionKind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single dated, categorized money movement owned by one user.
// Direction is carried by Kind; Amount is never negative.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	OwnerID       string          `json:"ownerID"`
	Kind          TransactionKind `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      Category        `json:"category"`
	Description   string          `json:"description"`
	OccurredAt    time.Time       `json:"occurredAt"` // date of the economic event
	AuditFields
}

// Validate checks the invariants of a transaction before it is persisted.
func (t Transaction) Validate() error {
	var fields []apperrors.FieldError
	if !t.Kind.IsValid() {
		fields = append(fields, apperrors.FieldError{Field: "type", Message: "must be income or expense"})
	}
	if t.Amount.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "amount", Message: "must not be negative"})
	} else if exceedsAmountScale(t.Amount) {
		fields = append(fields, apperrors.FieldError{Field: "amount", Message: amountScaleMessage})
	}
	if !t.Category.IsValid() {
		fields = append(fields, apperrors.FieldError{Field: "category", Message: "unknown category"})
	}
	if t.OccurredAt.IsZero() {
		fields = append(fields, apperrors.FieldError{Field: "date", Message: "is required"})
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

// TransactionCursor marks the position after which the next page starts.
type TransactionCursor struct {
	OccurredAt time.Time
	CreatedAt  time.Time
}

// TransactionFilter narrows a transaction listing. Nil fields do not filter.
type TransactionFilter struct {
	Kind     *TransactionKind
	Category *Category
	From     *time.Time
	To       *time.Time
	Limit    int // 0 means no limit
	After    *TransactionCursor
}
