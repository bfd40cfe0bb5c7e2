package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/SscSPs/finsight/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
	location      *time.Location
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade, loc *time.Location) *budgetHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &budgetHandler{
		budgetService: bs,
		location:      loc,
	}
}

// RegisterBudgetRoutes registers routes related to budgets.
func RegisterBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, loc *time.Location) {
	h := newBudgetHandler(budgetService, loc)

	budgets := rg.Group("/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.createBudget)
		budgets.PUT("", h.upsertBudget)
		budgets.GET("/:budgetID", h.getBudget)
		budgets.PATCH("/:budgetID", h.updateBudget)
		budgets.DELETE("/:budgetID", h.deleteBudget)
	}
}

// listBudgets godoc
// @Summary List budgets with progress
// @Description Lists the owner's budgets for a month with the amount spent against each
// @Tags budgets
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {array} dto.BudgetProgressResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list budgets"
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	period, ok := resolvePeriod(c, h.location)
	if !ok {
		return
	}

	logger = logger.With(slog.Int("month", period.Month), slog.Int("year", period.Year))
	logger.Info("Received request to list budgets")

	progress, err := h.budgetService.ListBudgetsWithProgress(c.Request.Context(), ownerID, period)
	if err != nil {
		respondError(c, err, "Budgets", "list budgets")
		return
	}

	logger.Info("Budgets listed successfully", slog.Int("count", len(progress)))
	c.JSON(http.StatusOK, dto.ToBudgetProgressResponses(progress))
}

// createBudget godoc
// @Summary Create a budget
// @Description Creates a budget for a category and month. A budget for the same category, period and month must not exist.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Budget already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create budget"
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBudget", slog.String("error", err.Error()))
		bindingFailed(c, err)
		return
	}

	logger.Info("Received request to create budget", slog.String("category", req.Category))

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Budget", "create budget")
		return
	}

	logger.Info("Budget created successfully", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// upsertBudget godoc
// @Summary Create or update a budget
// @Description Sets the amount of the budget for a category and month, creating it when absent
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 200 {object} dto.BudgetResponse "Budget updated"
// @Success 201 {object} dto.BudgetResponse "Budget created"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to save budget"
// @Security BearerAuth
// @Router /budgets [put]
func (h *budgetHandler) upsertBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertBudget", slog.String("error", err.Error()))
		bindingFailed(c, err)
		return
	}

	logger.Info("Received request to upsert budget", slog.String("category", req.Category))

	budget, created, err := h.budgetService.UpsertBudget(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Budget", "save budget")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	logger.Info("Budget saved successfully", slog.String("budget_id", budget.BudgetID), slog.Bool("created", created))
	c.JSON(status, dto.ToBudgetResponse(budget))
}

// getBudget godoc
// @Summary Get a budget with progress
// @Tags budgets
// @Produce json
// @Param budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetProgressResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Budget not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve budget"
// @Security BearerAuth
// @Router /budgets/{budgetID} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	budgetID := c.Param("budgetID")

	progress, err := h.budgetService.GetBudgetWithProgress(c.Request.Context(), ownerID, budgetID)
	if err != nil {
		respondError(c, err, "Budget", "retrieve budget")
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetProgressResponse(progress))
}

// updateBudget godoc
// @Summary Update a budget amount
// @Tags budgets
// @Accept json
// @Produce json
// @Param budgetID path string true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "New amount"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Budget not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update budget"
// @Security BearerAuth
// @Router /budgets/{budgetID} [patch]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	budgetID := c.Param("budgetID")
	logger = logger.With(slog.String("budget_id", budgetID))

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBudget", slog.String("error", err.Error()))
		bindingFailed(c, err)
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), ownerID, budgetID, req)
	if err != nil {
		respondError(c, err, "Budget", "update budget")
		return
	}

	logger.Info("Budget updated successfully")
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// deleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param budgetID path string true "Budget ID"
// @Success 204 "No Content"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Budget not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete budget"
// @Security BearerAuth
// @Router /budgets/{budgetID} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	budgetID := c.Param("budgetID")

	if err := h.budgetService.DeleteBudget(c.Request.Context(), ownerID, budgetID); err != nil {
		respondError(c, err, "Budget", "delete budget")
		return
	}

	logger.Info("Budget deleted successfully", slog.String("budget_id", budgetID))
	c.Status(http.StatusNoContent)
}
