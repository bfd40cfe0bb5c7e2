package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
)

const dateLayout = "2006-01-02"

// PeriodQuery holds the optional month/year query parameters shared by the
// insight, report and budget endpoints.
type PeriodQuery struct {
	Month string `form:"month"`
	Year  string `form:"year"`
}

// Resolve validates the raw parameters and fills absent ones from now.
// Non-integer or out-of-range values are rejected, never coerced.
func (q PeriodQuery) Resolve(now time.Time) (domain.Period, error) {
	var fields []apperrors.FieldError
	month, err := optionalInt(q.Month)
	if err != nil {
		fields = append(fields, apperrors.FieldError{Field: "month", Message: "must be an integer"})
	}
	year, err := optionalInt(q.Year)
	if err != nil {
		fields = append(fields, apperrors.FieldError{Field: "year", Message: "must be an integer"})
	}
	if len(fields) > 0 {
		return domain.Period{}, apperrors.NewValidationError(fields...)
	}
	return domain.ResolvePeriod(month, year, now)
}

func optionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// DateRangeQuery holds optional startDate/endDate bounds. Each accepts
// either RFC 3339 or a bare YYYY-MM-DD date; a bare endDate covers the whole day.
type DateRangeQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Resolve parses both bounds in loc. Absent bounds come back nil.
func (q DateRangeQuery) Resolve(loc *time.Location) (from, to *time.Time, err error) {
	if loc == nil {
		loc = time.UTC
	}
	var fields []apperrors.FieldError
	from, ok := parseBound(q.StartDate, false, loc)
	if !ok {
		fields = append(fields, apperrors.FieldError{Field: "startDate", Message: "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"})
	}
	to, ok = parseBound(q.EndDate, true, loc)
	if !ok {
		fields = append(fields, apperrors.FieldError{Field: "endDate", Message: "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"})
	}
	if len(fields) == 0 && from != nil && to != nil && to.Before(*from) {
		fields = append(fields, apperrors.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}
	if len(fields) > 0 {
		return nil, nil, apperrors.NewValidationError(fields...)
	}
	return from, to, nil
}

func parseBound(raw string, endOfDay bool, loc *time.Location) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, true
	}
	day, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return nil, false
	}
	if endOfDay {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &day, true
}
