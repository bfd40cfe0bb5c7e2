package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CategoryAmounts maps categories to summed amounts and remembers the order in
// which categories were first added. The zero value is an empty mapping.
type CategoryAmounts struct {
	order  []Category
	values map[Category]decimal.Decimal
}

// Add accumulates amount onto category c.
func (m *CategoryAmounts) Add(c Category, amount decimal.Decimal) {
	if m.values == nil {
		m.values = make(map[Category]decimal.Decimal)
	}
	cur, ok := m.values[c]
	if !ok {
		m.order = append(m.order, c)
	}
	m.values[c] = cur.Add(amount)
}

// Get returns the amount for c and whether c is present.
func (m CategoryAmounts) Get(c Category) (decimal.Decimal, bool) {
	v, ok := m.values[c]
	return v, ok
}

// Len returns the number of categories present.
func (m CategoryAmounts) Len() int {
	return len(m.order)
}

// Categories returns the categories in insertion order.
func (m CategoryAmounts) Categories() []Category {
	out := make([]Category, len(m.order))
	copy(out, m.order)
	return out
}

// Total sums every amount in the mapping.
func (m CategoryAmounts) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range m.order {
		total = total.Add(m.values[c])
	}
	return total
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion order.
func (m CategoryAmounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[c])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the document.
func (m *CategoryAmounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("category amounts: expected object, got %v", tok)
	}
	*m = CategoryAmounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("category amounts: expected string key, got %v", keyTok)
		}
		var amount decimal.Decimal
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("category amounts: value for %q: %w", key, err)
		}
		m.Add(Category(key), amount)
	}
	_, err = dec.Token()
	return err
}

// PeriodSummary is the reduction of one period's transactions.
// Balance is always Income - Expenses.
type PeriodSummary struct {
	Period
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	Balance          decimal.Decimal `json:"balance"`
	CategoryExpenses CategoryAmounts `json:"categoryExpenses"`
	CategoryIncome   CategoryAmounts `json:"-"`
	TransactionCount int             `json:"-"`
}

// EmptySummary returns the zero summary for p.
func EmptySummary(p Period) PeriodSummary {
	return PeriodSummary{
		Period:   p,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Balance:  decimal.Zero,
	}
}

// OptionalSummary holds a PeriodSummary that may be absent.
type OptionalSummary struct {
	summary PeriodSummary
	present bool
}

// SomeSummary wraps a present summary.
func SomeSummary(s PeriodSummary) OptionalSummary {
	return OptionalSummary{summary: s, present: true}
}

// NoSummary is the absent value.
func NoSummary() OptionalSummary {
	return OptionalSummary{}
}

// Get returns the wrapped summary and whether it is present.
func (o OptionalSummary) Get() (PeriodSummary, bool) {
	return o.summary, o.present
}
