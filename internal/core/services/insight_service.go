package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finsight/internal/core/analytics"
	"github.com/SscSPs/finsight/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// insightWindow is the number of months an insight request looks at: the
// requested month and the two before it.
const insightWindow = 3

type insightService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewInsightService creates a new insight service with the provided options
func NewInsightService(transactionRepo portsrepo.TransactionReader, options ...ServiceOption) portssvc.InsightService {
	svc := &insightService{transactionRepo: transactionRepo}
	svc.apply(options)
	return svc
}

var _ portssvc.InsightService = (*insightService)(nil)

// GenerateInsights summarizes the requested month and its two predecessors
// concurrently. A failed fetch for any of them fails the whole request.
func (s *insightService) GenerateInsights(ctx context.Context, ownerID string, period domain.Period) (*domain.InsightReport, error) {
	periods := domain.TrailingPeriods(period, insightWindow)
	summaries := make([]domain.PeriodSummary, len(periods))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range periods {
		i, p := i, p
		g.Go(func() error {
			summary, _, err := s.summarizePeriod(gctx, s.transactionRepo, ownerID, p)
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	current := summaries[0]
	previous := domain.SomeSummary(summaries[1])
	twoAgo := domain.SomeSummary(summaries[2])

	report := &domain.InsightReport{
		Period:   period,
		Insights: analytics.GenerateInsights(current, previous, twoAgo),
		Current:  current,
		Previous: previous,
		Trends:   analytics.Trends(current, previous),
	}

	s.LogInfo(ctx, "Insights generated successfully",
		slog.String("period", period.String()),
		slog.Int("insight_count", len(report.Insights)))
	return report, nil
}
