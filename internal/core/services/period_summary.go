package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finsight/internal/core/analytics"
	"github.com/SscSPs/finsight/internal/core/domain"
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
)

// summarizePeriod fetches the owner's transactions for period and aggregates
// them. An empty month is a valid zero summary.
func (s *BaseService) summarizePeriod(ctx context.Context, repo portsrepo.TransactionReader, ownerID string, period domain.Period) (domain.PeriodSummary, []domain.Transaction, error) {
	rng := period.Range(s.location())
	txns, err := repo.ListTransactionsInRange(ctx, ownerID, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for period",
			slog.String("owner_id", ownerID),
			slog.String("period", period.String()))
		return domain.PeriodSummary{}, nil, s.storeError("list transactions for "+period.String(), err)
	}
	return analytics.Aggregate(txns, period, rng), txns, nil
}
