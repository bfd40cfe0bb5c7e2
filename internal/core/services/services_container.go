package services

import (
	portsrepo "github.com/SscSPs/finsight/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight/internal/core/ports/services"
	"github.com/SscSPs/finsight/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	opts := []ServiceOption{WithLocation(cfg.ReportLocation)}

	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo, opts...),
		Budget:      NewBudgetService(repos.BudgetRepo, repos.TransactionRepo, opts...),
		Insight:     NewInsightService(repos.TransactionRepo, opts...),
		Reporting:   NewReportingService(repos.TransactionRepo, opts...),
	}
}
