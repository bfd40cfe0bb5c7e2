package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/SscSPs/finsight/internal/export"
	"github.com/SscSPs/finsight/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	location         *time.Location
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, loc *time.Location) *reportingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &reportingHandler{
		reportingService: rs,
		location:         loc,
	}
}

// RegisterReportingRoutes registers routes related to financial reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location) {
	h := newReportingHandler(reportingService, loc)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/monthly", h.getMonthlyReport)
		reportingGroup.GET("/export/csv", h.exportCSV)
		reportingGroup.GET("/export/pdf", h.exportPDFData)
		reportingGroup.GET("/export/xlsx", h.exportXLSX)
	}
}

// getMonthlyReport godoc
// @Summary Generate monthly report
// @Description Totals, per-category breakdowns and the top spending category for one month
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
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
	logger.Info("Received request to generate monthly report")

	report, err := h.reportingService.MonthlyReport(c.Request.Context(), ownerID, period)
	if err != nil {
		respondError(c, err, "Report", "generate report")
		return
	}

	logger.Info("Monthly report generated successfully", slog.Int("transaction_count", report.TransactionCount))
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(report))
}

// exportCSV godoc
// @Summary Export transactions as CSV
// @Description Streams the owner's transactions, newest first, as an RFC 4180 CSV attachment
// @Tags reports
// @Produce text/csv
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string false "End date (YYYY-MM-DD or RFC 3339), inclusive"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid date range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to export transactions"
// @Security BearerAuth
// @Router /reports/export/csv [get]
func (h *reportingHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}

	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingFailed(c, err)
		return
	}
	from, to, err := q.Resolve(h.location)
	if err != nil {
		respondError(c, err, "", "")
		return
	}

	logger = logger.With(slog.String("startDate", q.StartDate), slog.String("endDate", q.EndDate))
	logger.Info("Received request to export transactions as CSV")

	txns, err := h.reportingService.ExportTransactions(c.Request.Context(), ownerID, from, to)
	if err != nil {
		respondError(c, err, "Transactions", "export transactions")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteTransactionsCSV(&buf, txns, h.location); err != nil {
		respondError(c, err, "Transactions", "export transactions")
		return
	}

	logger.Info("Transactions exported successfully", slog.Int("row_count", len(txns)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.CSVFilename))
	c.Data(http.StatusOK, export.CSVContentType, buf.Bytes())
}

// exportPDFData godoc
// @Summary Monthly report document data
// @Description Returns the monthly report with its transactions, newest first, for client-side PDF rendering
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} dto.ReportDocumentResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/export/pdf [get]
func (h *reportingHandler) exportPDFData(c *gin.Context) {
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
	logger.Info("Received request for report document data")

	detail, err := h.reportingService.MonthlyReportDetail(c.Request.Context(), ownerID, period)
	if err != nil {
		respondError(c, err, "Report", "generate report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportDocumentResponse(detail, h.location))
}

// exportXLSX godoc
// @Summary Export monthly report as XLSX
// @Description Returns a workbook with a Summary sheet and a Transactions sheet for one month
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {file} file "XLSX workbook"
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to export report"
// @Security BearerAuth
// @Router /reports/export/xlsx [get]
func (h *reportingHandler) exportXLSX(c *gin.Context) {
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
	logger.Info("Received request to export monthly workbook")

	detail, err := h.reportingService.MonthlyReportDetail(c.Request.Context(), ownerID, period)
	if err != nil {
		respondError(c, err, "Report", "export report")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMonthlyWorkbook(&buf, detail, h.location); err != nil {
		respondError(c, err, "Report", "export report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.WorkbookFilename(period)))
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}
