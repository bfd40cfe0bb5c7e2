package handlers_test

import (
	"errors"
	"net/http"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetInsights_Success() {
	period := domain.Period{Month: 3, Year: 2024}

	current := domain.EmptySummary(period)
	current.Income = decimal.NewFromInt(1000)
	current.Expenses = decimal.RequireFromString("150.456")
	current.Balance = current.Income.Sub(current.Expenses)
	current.CategoryExpenses.Add(domain.CategoryFood, decimal.RequireFromString("150.456"))

	previous := domain.EmptySummary(period.Previous())
	previous.Expenses = decimal.NewFromInt(100)
	previous.Balance = previous.Expenses.Neg()

	report := &domain.InsightReport{
		Period: period,
		Insights: []domain.Insight{{
			Type:       domain.InsightWarning,
			Title:      "Spending Increased",
			Message:    "Your spending increased by 50.5% compared to last month.",
			Suggestion: "Review your recent expenses to identify areas where you can cut back.",
		}},
		Current:  current,
		Previous: domain.SomeSummary(previous),
		Trends: domain.Trends{
			SpendingChange: decimal.RequireFromString("50.456"),
			IncomeChange:   decimal.NewFromInt(1000),
		},
	}
	suite.mockInsight.On("GenerateInsights", mock.Anything, testOwnerID, period).Return(report, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/insights?month=3&year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.EqualValues(3, body["month"])
	suite.EqualValues(2024, body["year"])
	suite.Len(body["insights"], 1)

	summary := body["summary"].(map[string]any)
	currentMonth := summary["currentMonth"].(map[string]any)
	suite.Equal("150.46", currentMonth["expenses"])
	suite.Equal(map[string]any{"Food": "150.46"}, currentMonth["categoryExpenses"])
	suite.NotNil(summary["previousMonth"])
	suite.Equal("50.46", summary["trends"].(map[string]any)["spendingChange"])
}

func (suite *HandlerTestSuite) TestGetInsights_EmptyInsightsIsArray() {
	period := domain.Period{Month: 1, Year: 2024}
	report := &domain.InsightReport{
		Period:   period,
		Current:  domain.EmptySummary(period),
		Previous: domain.SomeSummary(domain.EmptySummary(period.Previous())),
	}
	suite.mockInsight.On("GenerateInsights", mock.Anything, testOwnerID, period).Return(report, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/insights?month=1&year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal([]any{}, suite.decode(w)["insights"])
}

func (suite *HandlerTestSuite) TestGetInsights_InvalidMonth() {
	w := suite.serve(http.MethodGet, "/api/v1/insights?month=13&year=2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"month"}, suite.validationFields(w))
	suite.mockInsight.AssertNotCalled(suite.T(), "GenerateInsights")
}

func (suite *HandlerTestSuite) TestGetInsights_NonIntegerYear() {
	w := suite.serve(http.MethodGet, "/api/v1/insights?month=2&year=twenty", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "must be an integer")
	suite.Equal([]string{"year"}, suite.validationFields(w))
}

func (suite *HandlerTestSuite) TestGetInsights_StoreFailure() {
	period := domain.Period{Month: 3, Year: 2024}
	suite.mockInsight.On("GenerateInsights", mock.Anything, testOwnerID, period).
		Return(nil, apperrors.Upstream("list transactions", errors.New("connection refused"))).Once()

	w := suite.serve(http.MethodGet, "/api/v1/insights?month=3&year=2024", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to generate insights", suite.decode(w)["error"])
	suite.NotContains(w.Body.String(), "connection refused")
}
