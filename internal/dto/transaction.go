package dto

import (
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for recording a transaction.
type CreateTransactionRequest struct {
	Type        string           `json:"type" binding:"required,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Category    string           `json:"category" binding:"required,category"`
	Description string           `json:"description" binding:"max=500"`
	Date        time.Time        `json:"date" binding:"required"`
}

// UpdateTransactionRequest defines the payload for changing a transaction.
// Omitted fields keep their stored values.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category" binding:"omitempty,category"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Date        *time.Time       `json:"date"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	DateRangeQuery
	Type      string `form:"type" binding:"omitempty,oneof=income expense"`
	Category  string `form:"category" binding:"omitempty,category"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ToFilter converts the query parameters into a store filter, resolving
// bare dates in loc.
func (p ListTransactionsParams) ToFilter(loc *time.Location) (domain.TransactionFilter, error) {
	from, to, err := p.DateRangeQuery.Resolve(loc)
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	filter := domain.TransactionFilter{From: from, To: to, Limit: p.Limit}
	if p.Type != "" {
		kind := domain.TransactionKind(p.Type)
		filter.Kind = &kind
	}
	if p.Category != "" {
		cat := domain.Category(p.Category)
		filter.Category = &cat
	}
	if p.NextToken != "" {
		cursor, err := pagination.DecodeCursor(p.NextToken)
		if err != nil {
			return domain.TransactionFilter{}, BindingError(err)
		}
		filter.After = &cursor
	}
	return filter, nil
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Type:          string(txn.Kind),
		Amount:        txn.Amount,
		Category:      string(txn.Category),
		Description:   txn.Description,
		Date:          txn.OccurredAt,
		CreatedAt:     txn.CreatedAt,
		LastUpdatedAt: txn.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a page of transactions, attaching the
// token for the following page when there is one.
func ToListTransactionsResponse(txns []domain.Transaction, next *domain.TransactionCursor) ListTransactionsResponse {
	resp := ListTransactionsResponse{Transactions: make([]TransactionResponse, len(txns))}
	for i := range txns {
		resp.Transactions[i] = ToTransactionResponse(&txns[i])
	}
	if next != nil {
		token := pagination.EncodeCursor(*next)
		resp.NextToken = &token
	}
	return resp
}
