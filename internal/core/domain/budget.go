package domain

import (
	"errors"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the cadence a budget is expressed in.
type BudgetPeriod string

const (
	BudgetWeekly  BudgetPeriod = "weekly"
	BudgetMonthly BudgetPeriod = "monthly"
)

// IsValid reports whether p is a known cadence.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetWeekly || p == BudgetMonthly
}

// Budget is a spending ceiling for one category in one month.
// At most one budget exists per (owner, category, period, month, year).
type Budget struct {
	BudgetID string          `json:"budgetID"`
	OwnerID  string          `json:"ownerID"`
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   BudgetPeriod    `json:"period"`
	Month    int             `json:"month"`
	Year     int             `json:"year"`
	AuditFields
}

// CalendarPeriod returns the month the budget applies to.
func (b Budget) CalendarPeriod() Period {
	return Period{Month: b.Month, Year: b.Year}
}

// Validate checks the invariants of a budget before it is persisted.
func (b Budget) Validate() error {
	var fields []apperrors.FieldError
	if !b.Category.IsBudgetable() {
		fields = append(fields, apperrors.FieldError{Field: "category", Message: "not a budgetable category"})
	}
	if b.Amount.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "amount", Message: "must not be negative"})
	} else if exceedsAmountScale(b.Amount) {
		fields = append(fields, apperrors.FieldError{Field: "amount", Message: amountScaleMessage})
	}
	if !b.Period.IsValid() {
		fields = append(fields, apperrors.FieldError{Field: "period", Message: "must be weekly or monthly"})
	}
	if _, err := NewPeriod(b.Month, b.Year); err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			fields = append(fields, verr.Fields...)
		}
	}
	if len(fields) > 0 {
		return apperrors.NewValidationError(fields...)
	}
	return nil
}

// BudgetProgress joins a budget with the actual spend in its category and month.
// Spent + Remaining == Amount; Remaining goes negative when over budget.
type BudgetProgress struct {
	Budget
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"` // unrounded, not clamped
}
