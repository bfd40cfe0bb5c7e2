package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxns *MockTransactionRepository
	service  portssvc.ReportingService
	ctx      context.Context
	ownerID  string
	march    domain.Period
	txns     []domain.Transaction
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxns = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockTxns)
	suite.ctx = context.Background()
	suite.ownerID = "owner-1"
	suite.march = domain.Period{Month: 3, Year: 2024}
	suite.txns = []domain.Transaction{
		newTxn(domain.KindExpense, domain.CategoryBills, "80", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		newTxn(domain.KindIncome, domain.CategorySalary, "2000", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)),
		newTxn(domain.KindExpense, domain.CategoryFood, "120", time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)),
	}
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport() {
	suite.mockTxns.On("ListTransactionsInRange", suite.ctx, suite.ownerID, rangeStarting(2024, time.March)).Return(suite.txns, nil).Once()

	report, err := suite.service.MonthlyReport(suite.ctx, suite.ownerID, suite.march)

	suite.Require().NoError(err)
	suite.Equal(suite.march, report.Period)
	suite.Equal("2000", report.TotalIncome.String())
	suite.Equal("200", report.TotalExpenses.String())
	suite.Equal("1800", report.Balance.String())
	suite.Equal([]domain.Category{domain.CategoryBills, domain.CategoryFood}, report.CategoryExpenses.Categories())
	suite.Require().NotNil(report.TopSpendingCategory)
	suite.Equal(domain.CategoryFood, *report.TopSpendingCategory)
	suite.Equal(3, report.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_StoreFailure() {
	suite.mockTxns.On("ListTransactionsInRange", suite.ctx, suite.ownerID, mock.Anything).Return(nil, assert.AnError).Once()

	report, err := suite.service.MonthlyReport(suite.ctx, suite.ownerID, suite.march)

	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrUpstream)
}

func (suite *ReportingServiceTestSuite) TestMonthlyReportDetail_NewestFirst() {
	suite.mockTxns.On("ListTransactionsInRange", suite.ctx, suite.ownerID, rangeStarting(2024, time.March)).Return(suite.txns, nil).Once()

	detail, err := suite.service.MonthlyReportDetail(suite.ctx, suite.ownerID, suite.march)

	suite.Require().NoError(err)
	suite.Require().Len(detail.Transactions, 3)
	suite.Equal(28, detail.Transactions[0].OccurredAt.Day())
	suite.Equal(1, detail.Transactions[2].OccurredAt.Day())
	suite.Equal(1, suite.txns[0].OccurredAt.Day(), "store result must not be reordered in place")
}

func (suite *ReportingServiceTestSuite) TestExportTransactions_PassesBoundsAndSorts() {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.mockTxns.On("ListTransactions", suite.ctx, suite.ownerID, domain.TransactionFilter{From: &from}).Return(suite.txns, nil).Once()

	rows, err := suite.service.ExportTransactions(suite.ctx, suite.ownerID, &from, nil)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.True(rows[0].OccurredAt.After(rows[1].OccurredAt))
	suite.True(rows[1].OccurredAt.After(rows[2].OccurredAt))
	suite.mockTxns.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestExportTransactions_EmptyIsNotNil() {
	suite.mockTxns.On("ListTransactions", suite.ctx, suite.ownerID, domain.TransactionFilter{}).Return(nil, nil).Once()

	rows, err := suite.service.ExportTransactions(suite.ctx, suite.ownerID, nil, nil)

	suite.Require().NoError(err)
	suite.NotNil(rows)
	suite.Empty(rows)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
