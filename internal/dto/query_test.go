package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodQuery_Resolve(t *testing.T) {
	now := time.Date(2024, 7, 20, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		query      PeriodQuery
		want       domain.Period
		wantFields []string
	}{
		{name: "defaults to now", query: PeriodQuery{}, want: domain.Period{Month: 7, Year: 2024}},
		{name: "explicit month and year", query: PeriodQuery{Month: "2", Year: "2023"}, want: domain.Period{Month: 2, Year: 2023}},
		{name: "month only", query: PeriodQuery{Month: "12"}, want: domain.Period{Month: 12, Year: 2024}},
		{name: "surrounding spaces", query: PeriodQuery{Month: " 3 "}, want: domain.Period{Month: 3, Year: 2024}},
		{name: "month out of range", query: PeriodQuery{Month: "13"}, wantFields: []string{"month"}},
		{name: "month zero", query: PeriodQuery{Month: "0"}, wantFields: []string{"month"}},
		{name: "non-integer month", query: PeriodQuery{Month: "March"}, wantFields: []string{"month"}},
		{name: "fractional month", query: PeriodQuery{Month: "3.5"}, wantFields: []string{"month"}},
		{name: "non-integer year", query: PeriodQuery{Year: "20x4"}, wantFields: []string{"year"}},
		{name: "both malformed", query: PeriodQuery{Month: "x", Year: "y"}, wantFields: []string{"month", "year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query.Resolve(now)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.ErrorIs(t, err, apperrors.ErrValidation)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			var fields []string
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestDateRangeQuery_Resolve(t *testing.T) {
	t.Run("absent bounds", func(t *testing.T) {
		from, to, err := DateRangeQuery{}.Resolve(nil)
		require.NoError(t, err)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("bare end date covers the whole day", func(t *testing.T) {
		from, to, err := DateRangeQuery{StartDate: "2024-03-01", EndDate: "2024-03-31"}.Resolve(time.UTC)
		require.NoError(t, err)
		require.NotNil(t, from)
		require.NotNil(t, to)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *from)
		assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC), *to)
	})

	t.Run("bare dates use the given location", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		from, _, err := DateRangeQuery{StartDate: "2024-03-01"}.Resolve(loc)
		require.NoError(t, err)
		assert.True(t, from.Equal(time.Date(2024, 3, 1, 5, 0, 0, 0, time.UTC)))
	})

	t.Run("rfc3339 timestamps are taken as is", func(t *testing.T) {
		_, to, err := DateRangeQuery{EndDate: "2024-03-10T12:00:00Z"}.Resolve(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), to.UTC())
	})

	t.Run("malformed and inverted bounds", func(t *testing.T) {
		_, _, err := DateRangeQuery{StartDate: "yesterday"}.Resolve(time.UTC)
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, _, err = DateRangeQuery{StartDate: "2024-03-10", EndDate: "2024-03-01"}.Resolve(time.UTC)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "endDate", verr.Fields[0].Field)
	})
}

func TestListTransactionsParams_ToFilter(t *testing.T) {
	params := ListTransactionsParams{
		DateRangeQuery: DateRangeQuery{StartDate: "2024-03-01"},
		Type:           "expense",
		Category:       "Food",
		Limit:          10,
	}

	filter, err := params.ToFilter(time.UTC)
	require.NoError(t, err)
	require.NotNil(t, filter.Kind)
	assert.Equal(t, domain.KindExpense, *filter.Kind)
	require.NotNil(t, filter.Category)
	assert.Equal(t, domain.CategoryFood, *filter.Category)
	assert.NotNil(t, filter.From)
	assert.Nil(t, filter.To)
	assert.Nil(t, filter.After)
	assert.Equal(t, 10, filter.Limit)

	params.NextToken = "%%%"
	_, err = params.ToFilter(time.UTC)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
