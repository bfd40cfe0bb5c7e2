package mapping

import (
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/models"
)

// ToModelTransaction converts a domain.Transaction to a models.Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		OwnerID:       d.OwnerID,
		Kind:          models.TransactionKind(d.Kind),
		Amount:        d.Amount,
		Category:      string(d.Category),
		Description:   d.Description,
		OccurredAt:    d.OccurredAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a models.Transaction to a domain.Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		OwnerID:       m.OwnerID,
		Kind:          domain.TransactionKind(m.Kind),
		Amount:        m.Amount,
		Category:      domain.Category(m.Category),
		Description:   m.Description,
		OccurredAt:    m.OccurredAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of models.Transaction to a slice of domain.Transaction
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
