package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/SscSPs/finsight/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the owner's transactions, newest first, with cursor pagination
// @Tags transactions
// @Produce json
// @Param type query string false "income or expense"
// @Param category query string false "Category"
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string false "End date (YYYY-MM-DD or RFC 3339), inclusive"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		bindingFailed(c, err)
		return
	}

	logger.Info("Received request to list transactions", slog.Int("limit", params.Limit))

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), ownerID, params)
	if err != nil {
		respondError(c, err, "Transactions", "list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}

// createTransaction godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		bindingFailed(c, err)
		return
	}

	logger.Info("Received request to create transaction", slog.String("type", req.Type), slog.String("category", req.Category))

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Transaction", "create transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), ownerID, c.Param("transactionID"))
	if err != nil {
		respondError(c, err, "Transaction", "retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Changes the supplied fields of a transaction; omitted fields keep their values
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")
	logger = logger.With(slog.String("transaction_id", transactionID))

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		bindingFailed(c, err)
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), ownerID, transactionID, req)
	if err != nil {
		respondError(c, err, "Transaction", "update transaction")
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param transactionID path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), ownerID, transactionID); err != nil {
		respondError(c, err, "Transaction", "delete transaction")
		return
	}

	logger.Info("Transaction deleted successfully", slog.String("transaction_id", transactionID))
	c.Status(http.StatusNoContent)
}
