package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func sampleTransaction() *domain.Transaction {
	created := time.Date(2024, 3, 20, 19, 5, 0, 0, time.UTC)
	return &domain.Transaction{
		TransactionID: "t-1",
		OwnerID:       testOwnerID,
		Kind:          domain.KindExpense,
		Amount:        decimal.RequireFromString("42.50"),
		Category:      domain.CategoryFood,
		Description:   "Dinner",
		OccurredAt:    time.Date(2024, 3, 20, 19, 0, 0, 0, time.UTC),
		AuditFields:   domain.AuditFields{CreatedAt: created, LastUpdatedAt: created},
	}
}

func (suite *HandlerTestSuite) TestCreateTransaction_Success() {
	suite.mockTransaction.On("CreateTransaction", mock.Anything, testOwnerID, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Type == "expense" && req.Category == "Food" && req.Amount.Equal(decimal.RequireFromString("42.50"))
	})).Return(sampleTransaction(), nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type":        "expense",
		"amount":      "42.50",
		"category":    "Food",
		"description": "Dinner",
		"date":        "2024-03-20T19:00:00Z",
	})

	suite.Equal(http.StatusCreated, w.Code)
	body := suite.decode(w)
	suite.Equal("t-1", body["transactionID"])
	suite.Equal("expense", body["type"])
}

func (suite *HandlerTestSuite) TestCreateTransaction_InvalidFields() {
	w := suite.serve(http.MethodPost, "/api/v1/transactions", map[string]any{
		"type":     "transfer",
		"category": "Groceries",
		"date":     "2024-03-20T19:00:00Z",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ElementsMatch([]string{"type", "amount", "category"}, suite.validationFields(w))
	suite.mockTransaction.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *HandlerTestSuite) TestCreateTransaction_MalformedJSON() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testOwnerID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"request"}, suite.validationFields(w))
}

func (suite *HandlerTestSuite) TestListTransactions_DefaultLimit() {
	next := "next-page"
	resp := &dto.ListTransactionsResponse{
		Transactions: []dto.TransactionResponse{dto.ToTransactionResponse(sampleTransaction())},
		NextToken:    &next,
	}
	suite.mockTransaction.On("ListTransactions", mock.Anything, testOwnerID, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 20 && p.Category == "Food" && p.StartDate == "2024-03-01"
	})).Return(resp, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions?category=Food&startDate=2024-03-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Len(body["transactions"], 1)
	suite.Equal("next-page", body["nextToken"])
}

func (suite *HandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.serve(http.MethodGet, "/api/v1/transactions?limit=500", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal([]string{"limit"}, suite.validationFields(w))
}

func (suite *HandlerTestSuite) TestGetTransaction_OtherOwnersIsNotFound() {
	suite.mockTransaction.On("GetTransaction", mock.Anything, testOwnerID, "t-foreign").
		Return(nil, fmt.Errorf("%w: find transaction t-foreign", apperrors.ErrNotFound)).Once()

	w := suite.serve(http.MethodGet, "/api/v1/transactions/t-foreign", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Transaction not found", suite.decode(w)["error"])
}

func (suite *HandlerTestSuite) TestUpdateTransaction_PartialUpdate() {
	suite.mockTransaction.On("UpdateTransaction", mock.Anything, testOwnerID, "t-1", mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
		return req.Description != nil && *req.Description == "Team dinner" && req.Amount == nil && req.Type == nil
	})).Return(sampleTransaction(), nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/transactions/t-1", map[string]any{"description": "Team dinner"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteTransaction() {
	suite.mockTransaction.On("DeleteTransaction", mock.Anything, testOwnerID, "t-1").Return(nil).Once()

	w := suite.serve(http.MethodDelete, "/api/v1/transactions/t-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}
