package export

import (
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	// XLSXContentType is the media type of WriteMonthlyWorkbook output.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	summarySheet      = "Summary"
	transactionsSheet = "Transactions"
)

// WorkbookFilename returns the attachment name for a monthly workbook.
func WorkbookFilename(p domain.Period) string {
	return fmt.Sprintf("report-%s.xlsx", p.String())
}

// WriteMonthlyWorkbook renders a monthly report as an XLSX workbook with a
// Summary sheet (totals and category breakdowns) and a Transactions sheet.
func WriteMonthlyWorkbook(w io.Writer, detail *domain.MonthlyReportDetail, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if _, err := f.NewSheet(transactionsSheet); err != nil {
		return fmt.Errorf("failed to create transactions sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummarySheet(f, &detail.MonthlyReport, headerStyle); err != nil {
		return err
	}
	if err := writeTransactionsSheet(f, detail.Transactions, loc, headerStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r *domain.MonthlyReport, headerStyle int) error {
	top := ""
	if r.TopSpendingCategory != nil {
		top = string(*r.TopSpendingCategory)
	}

	rows := [][]interface{}{
		{"Month", r.Period.String()},
		{"Total Income", money(r.TotalIncome)},
		{"Total Expenses", money(r.TotalExpenses)},
		{"Balance", money(r.Balance)},
		{"Top Spending Category", top},
		{"Transactions", r.TransactionCount},
		{},
		{"Expenses by Category", "Amount"},
	}
	for _, c := range r.CategoryExpenses.Categories() {
		v, _ := r.CategoryExpenses.Get(c)
		rows = append(rows, []interface{}{string(c), money(v)})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Income by Category", "Amount"})
	for _, c := range r.CategoryIncome.Categories() {
		v, _ := r.CategoryIncome.Get(c)
		rows = append(rows, []interface{}{string(c), money(v)})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
		if row[0] == "Expenses by Category" || row[0] == "Income by Category" {
			end, _ := excelize.CoordinatesToCellName(2, i+1)
			if err := f.SetCellStyle(summarySheet, cell, end, headerStyle); err != nil {
				return fmt.Errorf("failed to style summary row %d: %w", i+1, err)
			}
		}
	}
	return f.SetColWidth(summarySheet, "A", "A", 24)
}

func writeTransactionsSheet(f *excelize.File, txns []domain.Transaction, loc *time.Location, headerStyle int) error {
	header := make([]interface{}, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(transactionsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write transactions header: %w", err)
	}
	if err := f.SetCellStyle(transactionsSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("failed to style transactions header: %w", err)
	}

	for i, t := range txns {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			t.OccurredAt.In(loc).Format(dateLayout),
			string(t.Kind),
			string(t.Category),
			money(t.Amount),
			t.Description,
		}
		if err := f.SetSheetRow(transactionsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write transaction row %d: %w", i+2, err)
		}
	}
	return f.SetColWidth(transactionsSheet, "E", "E", 40)
}

// money converts an amount to a spreadsheet number rounded to cents.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
