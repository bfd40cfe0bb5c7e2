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

// insightHandler handles HTTP requests for spending insights
type insightHandler struct {
	insightService portssvc.InsightService
	location       *time.Location
}

// newInsightHandler creates a new insightHandler
func newInsightHandler(is portssvc.InsightService, loc *time.Location) *insightHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &insightHandler{
		insightService: is,
		location:       loc,
	}
}

// RegisterInsightRoutes registers the insight endpoint under rg.
// loc is the zone in which an omitted month/year defaults to the current one.
func RegisterInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightService, loc *time.Location) {
	h := newInsightHandler(insightService, loc)
	rg.GET("/insights", h.getInsights)
}

// getInsights godoc
// @Summary Generate spending insights
// @Description Compares a month with the two months before it and returns insights plus a month-over-month summary
// @Tags insights
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.InsightsResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate insights"
// @Security BearerAuth
// @Router /insights [get]
func (h *insightHandler) getInsights(c *gin.Context) {
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
	logger.Info("Received request to generate insights")

	report, err := h.insightService.GenerateInsights(c.Request.Context(), ownerID, period)
	if err != nil {
		respondError(c, err, "Insights", "generate insights")
		return
	}

	logger.Info("Insights generated successfully", slog.Int("insight_count", len(report.Insights)))
	c.JSON(http.StatusOK, dto.ToInsightsResponse(report))
}
