package dto

import (
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/utils"
	"github.com/shopspring/decimal"
)

// MonthlyReportResponse is the payload of GET /reports/monthly.
type MonthlyReportResponse struct {
	Month               int                    `json:"month"`
	Year                int                    `json:"year"`
	TotalIncome         decimal.Decimal        `json:"totalIncome"`
	TotalExpenses       decimal.Decimal        `json:"totalExpenses"`
	Balance             decimal.Decimal        `json:"balance"`
	CategoryExpenses    domain.CategoryAmounts `json:"categoryExpenses"`
	CategoryIncome      domain.CategoryAmounts `json:"categoryIncome"`
	TopSpendingCategory *string                `json:"topSpendingCategory"`
	TransactionCount    int                    `json:"transactionCount"`
}

// ReportTransactionRow is one transaction line of an exported report.
type ReportTransactionRow struct {
	Date        string          `json:"date"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ReportDocumentResponse is the data a client needs to render a monthly
// report document: the report figures plus its transactions, newest first.
type ReportDocumentResponse struct {
	MonthlyReportResponse
	Transactions []ReportTransactionRow `json:"transactions"`
}

// ToMonthlyReportResponse converts a domain.MonthlyReport, rounding amounts to two decimals.
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	resp := MonthlyReportResponse{
		Month:            r.Month,
		Year:             r.Year,
		TotalIncome:      utils.RoundCurrency(r.TotalIncome),
		TotalExpenses:    utils.RoundCurrency(r.TotalExpenses),
		Balance:          utils.RoundCurrency(r.Balance),
		CategoryExpenses: roundAmounts(r.CategoryExpenses),
		CategoryIncome:   roundAmounts(r.CategoryIncome),
		TransactionCount: r.TransactionCount,
	}
	if r.TopSpendingCategory != nil {
		top := string(*r.TopSpendingCategory)
		resp.TopSpendingCategory = &top
	}
	return resp
}

// ToReportDocumentResponse converts a monthly report with its transactions.
// Row dates are rendered in loc (UTC when nil), the zone the report was bucketed in.
func ToReportDocumentResponse(d *domain.MonthlyReportDetail, loc *time.Location) ReportDocumentResponse {
	if loc == nil {
		loc = time.UTC
	}
	rows := make([]ReportTransactionRow, len(d.Transactions))
	for i, t := range d.Transactions {
		rows[i] = ReportTransactionRow{
			Date:        t.OccurredAt.In(loc).Format(dateLayout),
			Type:        string(t.Kind),
			Category:    string(t.Category),
			Amount:      t.Amount,
			Description: t.Description,
		}
	}
	return ReportDocumentResponse{
		MonthlyReportResponse: ToMonthlyReportResponse(&d.MonthlyReport),
		Transactions:          rows,
	}
}

// ErrorResponse is the body returned for not-found, conflict and internal errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned for rejected input.
type ValidationErrorResponse struct {
	Errors []ValidationFieldResponse `json:"errors"`
}

// ValidationFieldResponse names one offending input field.
type ValidationFieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
