package dto

import (
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/utils"
	"github.com/shopspring/decimal"
)

// PeriodSummaryResponse is one month's totals as shown alongside insights.
type PeriodSummaryResponse struct {
	Month            int                    `json:"month"`
	Year             int                    `json:"year"`
	Income           decimal.Decimal        `json:"income"`
	Expenses         decimal.Decimal        `json:"expenses"`
	Balance          decimal.Decimal        `json:"balance"`
	CategoryExpenses domain.CategoryAmounts `json:"categoryExpenses"`
}

// TrendsResponse carries month-over-month changes in spending and income.
type TrendsResponse struct {
	SpendingChange decimal.Decimal `json:"spendingChange"`
	IncomeChange   decimal.Decimal `json:"incomeChange"`
}

// InsightSummaryResponse groups the figures the insights were derived from.
type InsightSummaryResponse struct {
	CurrentMonth  PeriodSummaryResponse  `json:"currentMonth"`
	PreviousMonth *PeriodSummaryResponse `json:"previousMonth"`
	Trends        TrendsResponse         `json:"trends"`
}

// InsightsResponse is the payload of GET /insights.
type InsightsResponse struct {
	Month    int                    `json:"month"`
	Year     int                    `json:"year"`
	Insights []domain.Insight       `json:"insights"`
	Summary  InsightSummaryResponse `json:"summary"`
}

// ToPeriodSummaryResponse converts a summary, rounding amounts to two decimals.
func ToPeriodSummaryResponse(s domain.PeriodSummary) PeriodSummaryResponse {
	return PeriodSummaryResponse{
		Month:            s.Month,
		Year:             s.Year,
		Income:           utils.RoundCurrency(s.Income),
		Expenses:         utils.RoundCurrency(s.Expenses),
		Balance:          utils.RoundCurrency(s.Balance),
		CategoryExpenses: roundAmounts(s.CategoryExpenses),
	}
}

// ToInsightsResponse converts an insight report into its wire shape.
// previousMonth is null when no prior summary was supplied.
func ToInsightsResponse(r *domain.InsightReport) InsightsResponse {
	insights := r.Insights
	if insights == nil {
		insights = []domain.Insight{}
	}
	resp := InsightsResponse{
		Month:    r.Period.Month,
		Year:     r.Period.Year,
		Insights: insights,
		Summary: InsightSummaryResponse{
			CurrentMonth: ToPeriodSummaryResponse(r.Current),
			Trends: TrendsResponse{
				SpendingChange: utils.RoundCurrency(r.Trends.SpendingChange),
				IncomeChange:   utils.RoundCurrency(r.Trends.IncomeChange),
			},
		},
	}
	if prev, ok := r.Previous.Get(); ok {
		p := ToPeriodSummaryResponse(prev)
		resp.Summary.PreviousMonth = &p
	}
	return resp
}

func roundAmounts(m domain.CategoryAmounts) domain.CategoryAmounts {
	var out domain.CategoryAmounts
	for _, c := range m.Categories() {
		v, _ := m.Get(c)
		out.Add(c, utils.RoundCurrency(v))
	}
	return out
}
