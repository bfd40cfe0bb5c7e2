package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func sampleBudget(amount string) *domain.Budget {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	return &domain.Budget{
		BudgetID: "b-1",
		OwnerID:  testOwnerID,
		Category: domain.CategoryFood,
		Amount:   decimal.RequireFromString(amount),
		Period:   domain.BudgetMonthly,
		Month:    3,
		Year:     2024,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

func foodBudgetRequest(amount string) func(dto.CreateBudgetRequest) bool {
	return func(req dto.CreateBudgetRequest) bool {
		return req.Category == "Food" && req.Amount != nil && req.Amount.Equal(decimal.RequireFromString(amount))
	}
}

func (suite *HandlerTestSuite) TestListBudgets_WithProgress() {
	period := domain.Period{Month: 3, Year: 2024}
	progress := []domain.BudgetProgress{{
		Budget:     *sampleBudget("200"),
		Spent:      decimal.RequireFromString("250"),
		Remaining:  decimal.RequireFromString("-50"),
		Percentage: decimal.RequireFromString("125"),
	}}
	suite.mockBudget.On("ListBudgetsWithProgress", mock.Anything, testOwnerID, period).Return(progress, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/budgets?month=3&year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{
		"budgetID": "b-1",
		"category": "Food",
		"amount": "200",
		"period": "monthly",
		"month": 3,
		"year": 2024,
		"createdAt": "2024-03-01T08:00:00Z",
		"lastUpdatedAt": "2024-03-01T08:00:00Z",
		"spent": "250",
		"remaining": "-50",
		"percentage": "125"
	}]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListBudgets_EmptyIsArray() {
	period := domain.Period{Month: 3, Year: 2024}
	suite.mockBudget.On("ListBudgetsWithProgress", mock.Anything, testOwnerID, period).
		Return([]domain.BudgetProgress{}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/budgets?month=3&year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlerTestSuite) TestCreateBudget_Success() {
	suite.mockBudget.On("CreateBudget", mock.Anything, testOwnerID, mock.MatchedBy(foodBudgetRequest("200"))).
		Return(sampleBudget("200"), nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/budgets", map[string]any{
		"category": "Food", "amount": "200", "month": 3, "year": 2024,
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("b-1", suite.decode(w)["budgetID"])
}

func (suite *HandlerTestSuite) TestCreateBudget_Duplicate() {
	suite.mockBudget.On("CreateBudget", mock.Anything, testOwnerID, mock.MatchedBy(foodBudgetRequest("300"))).
		Return(nil, fmt.Errorf("%w: save budget", apperrors.ErrDuplicate)).Once()

	w := suite.serve(http.MethodPost, "/api/v1/budgets", map[string]any{
		"category": "Food", "amount": 300, "month": 3, "year": 2024,
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("Budget already exists", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestCreateBudget_IncomeCategoryRejected() {
	w := suite.serve(http.MethodPost, "/api/v1/budgets", map[string]any{
		"category": "Salary", "amount": 300,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"category"}, suite.validationFields(w))
	suite.mockBudget.AssertNotCalled(suite.T(), "CreateBudget")
}

func (suite *HandlerTestSuite) TestCreateBudget_MissingAmount() {
	w := suite.serve(http.MethodPost, "/api/v1/budgets", map[string]any{"category": "Food"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"amount"}, suite.validationFields(w))
}

func (suite *HandlerTestSuite) TestUpsertBudget_CreatedThenUpdated() {
	suite.mockBudget.On("UpsertBudget", mock.Anything, testOwnerID, mock.MatchedBy(foodBudgetRequest("200"))).
		Return(sampleBudget("200"), true, nil).Once()
	suite.mockBudget.On("UpsertBudget", mock.Anything, testOwnerID, mock.MatchedBy(foodBudgetRequest("300"))).
		Return(sampleBudget("300"), false, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/budgets", map[string]any{"category": "Food", "amount": 200})
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.serve(http.MethodPut, "/api/v1/budgets", map[string]any{"category": "Food", "amount": 300})
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("300", suite.decode(w)["amount"])
}

func (suite *HandlerTestSuite) TestGetBudget_NotFound() {
	suite.mockBudget.On("GetBudgetWithProgress", mock.Anything, testOwnerID, "missing").
		Return(nil, fmt.Errorf("%w: find budget missing", apperrors.ErrNotFound)).Once()

	w := suite.serve(http.MethodGet, "/api/v1/budgets/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Budget not found", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestUpdateBudget_Success() {
	suite.mockBudget.On("UpdateBudget", mock.Anything, testOwnerID, "b-1", mock.MatchedBy(func(req dto.UpdateBudgetRequest) bool {
		return req.Amount != nil && req.Amount.Equal(decimal.NewFromInt(450))
	})).Return(sampleBudget("450"), nil).Once()

	w := suite.serve(http.MethodPatch, "/api/v1/budgets/b-1", map[string]any{"amount": 450})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("450", suite.decode(w)["amount"])
}

func (suite *HandlerTestSuite) TestDeleteBudget() {
	suite.mockBudget.On("DeleteBudget", mock.Anything, testOwnerID, "b-1").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/budgets/b-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())
}
