package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places stored for monetary amounts.
const AmountScale = 4

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// exceedsAmountScale reports whether a carries more significant decimals than
// the store keeps. Trailing zeros do not count.
func exceedsAmountScale(a decimal.Decimal) bool {
	return !a.Equal(a.Round(AmountScale))
}

var amountScaleMessage = fmt.Sprintf("must have at most %d decimal places", AmountScale)
