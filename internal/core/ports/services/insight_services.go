package services

import (
	"context"

	"github.com/SscSPs/finsight/internal/core/domain"
)

// InsightService analyses a month of activity against the two months before it.
type InsightService interface {
	GenerateInsights(ctx context.Context, ownerID string, period domain.Period) (*domain.InsightReport, error)
}
