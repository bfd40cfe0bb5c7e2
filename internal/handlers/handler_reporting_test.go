package handlers_test

import (
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/export"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func reportTransactions() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "t-2",
			OwnerID:       testOwnerID,
			Kind:          domain.KindExpense,
			Amount:        decimal.RequireFromString("42.50"),
			Category:      domain.CategoryFood,
			Description:   `Dinner, "the good place"`,
			OccurredAt:    time.Date(2024, 3, 20, 19, 0, 0, 0, time.UTC),
		},
		{
			TransactionID: "t-1",
			OwnerID:       testOwnerID,
			Kind:          domain.KindIncome,
			Amount:        decimal.NewFromInt(3000),
			Category:      domain.CategorySalary,
			Description:   "March salary",
			OccurredAt:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func (suite *HandlerTestSuite) TestGetMonthlyReport_NoTransactions() {
	period := domain.Period{Month: 2, Year: 2024}
	report := &domain.MonthlyReport{
		Period:        period,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Balance:       decimal.Zero,
	}
	suite.mockReporting.On("MonthlyReport", mock.Anything, testOwnerID, period).Return(report, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/reports/monthly?month=2&year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Nil(body["topSpendingCategory"])
	suite.Equal("0", body["totalExpenses"])
	suite.EqualValues(0, body["transactionCount"])
	suite.Equal(map[string]any{}, body["categoryExpenses"])
}

func (suite *HandlerTestSuite) TestExportCSV_Success() {
	suite.mockReporting.On("ExportTransactions", mock.Anything, testOwnerID,
		mock.MatchedBy(func(from *time.Time) bool {
			return from != nil && from.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		}),
		mock.MatchedBy(func(to *time.Time) bool {
			return to != nil && to.Equal(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond))
		}),
	).Return(reportTransactions(), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/reports/export/csv?startDate=2024-03-01&endDate=2024-03-31", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(export.CSVContentType, w.Header().Get("Content-Type"))
	suite.Equal("attachment; filename=transactions.csv", w.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	suite.Require().NoError(err)
	suite.Equal([][]string{
		{"Date", "Type", "Category", "Amount", "Description"},
		{"2024-03-20", "expense", "Food", "42.5", `Dinner, "the good place"`},
		{"2024-03-01", "income", "Salary", "3000", "March salary"},
	}, records)
}

func (suite *HandlerTestSuite) TestExportCSV_WithoutBounds() {
	suite.mockReporting.On("ExportTransactions", mock.Anything, testOwnerID, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/reports/export/csv", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Date,Type,Category,Amount,Description\n", w.Body.String())
}

func (suite *HandlerTestSuite) TestExportCSV_EndBeforeStart() {
	w := suite.serve(http.MethodGet, "/api/v1/reports/export/csv?startDate=2024-03-10&endDate=2024-03-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"endDate"}, suite.validationFields(w))
	suite.mockReporting.AssertNotCalled(suite.T(), "ExportTransactions")
}

func (suite *HandlerTestSuite) TestExportPDFData_Success() {
	period := domain.Period{Month: 3, Year: 2024}
	food := domain.CategoryFood
	detail := &domain.MonthlyReportDetail{
		MonthlyReport: domain.MonthlyReport{
			Period:              period,
			TotalIncome:         decimal.NewFromInt(3000),
			TotalExpenses:       decimal.RequireFromString("42.50"),
			Balance:             decimal.RequireFromString("2957.50"),
			TopSpendingCategory: &food,
			TransactionCount:    2,
		},
		Transactions: reportTransactions(),
	}
	suite.mockReporting.On("MonthlyReportDetail", mock.Anything, testOwnerID, period).Return(detail, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/reports/export/pdf?month=3&year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("Food", body["topSpendingCategory"])
	rows := body["transactions"].([]any)
	suite.Require().Len(rows, 2)
	suite.Equal("2024-03-20", rows[0].(map[string]any)["date"])
	suite.Equal("2024-03-01", rows[1].(map[string]any)["date"])
}

func (suite *HandlerTestSuite) TestExportXLSX_Success() {
	period := domain.Period{Month: 3, Year: 2024}
	detail := &domain.MonthlyReportDetail{
		MonthlyReport: domain.MonthlyReport{Period: period},
		Transactions:  reportTransactions(),
	}
	suite.mockReporting.On("MonthlyReportDetail", mock.Anything, testOwnerID, period).Return(detail, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/reports/export/xlsx?month=3&year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(export.XLSXContentType, w.Header().Get("Content-Type"))
	suite.Equal("attachment; filename=report-2024-03.xlsx", w.Header().Get("Content-Disposition"))
	suite.True(strings.HasPrefix(w.Body.String(), "PK"), "xlsx is a zip archive")
}
