package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
)

// Period is a calendar month, the unit of aggregation for reports, insights and budgets.
type Period struct {
	Month int `json:"month"` // 1-12
	Year  int `json:"year"`
}

// DateRange is an inclusive [Start, End] interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// NewPeriod validates month and year and returns the matching Period.
func NewPeriod(month, year int) (Period, error) {
	var fields []apperrors.FieldError
	if month < 1 || month > 12 {
		fields = append(fields, apperrors.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if year < 1 || year > 9999 {
		fields = append(fields, apperrors.FieldError{Field: "year", Message: "must be between 1 and 9999"})
	}
	if len(fields) > 0 {
		return Period{}, apperrors.NewValidationError(fields...)
	}
	return Period{Month: month, Year: year}, nil
}

// PeriodOf returns the calendar month containing t, in t's location.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// ResolvePeriod fills absent month/year from now and validates the result.
func ResolvePeriod(month, year *int, now time.Time) (Period, error) {
	p := PeriodOf(now)
	if month != nil {
		p.Month = *month
	}
	if year != nil {
		p.Year = *year
	}
	return NewPeriod(p.Month, p.Year)
}

// Previous returns the month before p, rolling back across January.
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// Next returns the month after p, rolling forward across December.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// Range returns the first and last instant of p in loc.
func (p Period) Range(loc *time.Location) DateRange {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	next := p.Next()
	end := time.Date(next.Year, time.Month(next.Month), 1, 0, 0, 0, 0, loc).Add(-time.Nanosecond)
	return DateRange{Start: start, End: end}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// TrailingPeriods returns count periods ending at p and walking backward:
// p, the month before p, and so on.
func TrailingPeriods(p Period, count int) []Period {
	if count <= 0 {
		return []Period{}
	}
	out := make([]Period, count)
	cur := p
	for i := range out {
		out[i] = cur
		cur = cur.Previous()
	}
	return out
}
