package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/finsight/internal/core/analytics"
	"github.com/SscSPs/finsight/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(transactionRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.ReportingService {
	svc := &reportingService{transactionRepo: transactionRepo}
	svc.apply(options)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// MonthlyReport generates the totals and category breakdown for one month
func (s *reportingService) MonthlyReport(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlyReport, error) {
	summary, _, err := s.summarizePeriod(ctx, s.transactionRepo, ownerID, period)
	if err != nil {
		return nil, err
	}

	report := analytics.BuildMonthlyReport(summary)
	s.LogInfo(ctx, "Monthly report generated successfully",
		slog.String("period", period.String()),
		slog.Int("transaction_count", report.TransactionCount))
	return &report, nil
}

// MonthlyReportDetail generates the monthly report along with the
// transactions it covers, newest first
func (s *reportingService) MonthlyReportDetail(ctx context.Context, ownerID string, period domain.Period) (*domain.MonthlyReportDetail, error) {
	summary, txns, err := s.summarizePeriod(ctx, s.transactionRepo, ownerID, period)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Transaction, len(txns))
	copy(rows, txns)
	analytics.SortNewestFirst(rows)

	detail := &domain.MonthlyReportDetail{
		MonthlyReport: analytics.BuildMonthlyReport(summary),
		Transactions:  rows,
	}
	s.LogInfo(ctx, "Monthly report detail generated successfully",
		slog.String("period", period.String()),
		slog.Int("transaction_count", len(rows)))
	return detail, nil
}

// ExportTransactions returns every transaction between from and to, newest first
func (s *reportingService) ExportTransactions(ctx context.Context, ownerID string, from, to *time.Time) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, ownerID, domain.TransactionFilter{From: from, To: to})
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for export")
		return nil, s.storeError("list transactions for export", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	analytics.SortNewestFirst(txns)

	s.LogInfo(ctx, "Transactions exported successfully", slog.Int("row_count", len(txns)))
	return txns, nil
}
