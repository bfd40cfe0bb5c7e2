package utils

import "github.com/shopspring/decimal"

// Display precisions. Amounts are carried unrounded and rounded only here.
const (
	CurrencyPrecision   = 2
	PercentagePrecision = 1
)

// RoundCurrency rounds a monetary amount for display.
// Example: 12.345 returns 12.35
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CurrencyPrecision)
}

// RoundPercentage rounds a percentage for display.
// Example: 33.3333 returns 33.3
func RoundPercentage(pct decimal.Decimal) decimal.Decimal {
	return pct.Round(PercentagePrecision)
}

// FormatCurrency renders an amount with exactly two decimals.
// Example: 150 returns "150.00"
func FormatCurrency(amount decimal.Decimal) string {
	return amount.StringFixed(CurrencyPrecision)
}

// FormatPercentage renders a percentage with exactly one decimal.
// Example: 50 returns "50.0"
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(PercentagePrecision)
}
