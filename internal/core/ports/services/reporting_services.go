package services

import (
	"context"
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// MonthlyReport summarizes one month of the owner's transactions
	MonthlyReport(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlyReport, error)

	// MonthlyReportDetail returns the monthly report along with its transactions, newest first
	MonthlyReportDetail(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlyReportDetail, error)

	// ExportTransactions returns the owner's transactions between from and to
	// (either bound may be nil), newest first
	ExportTransactions(ctx context.Context, ownerID string, from, to *time.Time) ([]domain.Transaction, error)
}
