package mapping

import (
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/models"
)

// ToModelBudget converts a domain.Budget to a models.Budget
func ToModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		OwnerID:     d.OwnerID,
		Category:    string(d.Category),
		Amount:      d.Amount,
		Period:      string(d.Period),
		Month:       d.Month,
		Year:        d.Year,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBudget converts a models.Budget to a domain.Budget
func ToDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:    m.BudgetID,
		OwnerID:     m.OwnerID,
		Category:    domain.Category(m.Category),
		Amount:      m.Amount,
		Period:      domain.BudgetPeriod(m.Period),
		Month:       m.Month,
		Year:        m.Year,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBudgetSlice converts a slice of models.Budget to a slice of domain.Budget
func ToDomainBudgetSlice(ms []models.Budget) []domain.Budget {
	ds := make([]domain.Budget, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
