package dto

import (
	"time"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the payload for creating or upserting a budget.
// Month and year default to the current period; period defaults to monthly.
type CreateBudgetRequest struct {
	Category string           `json:"category" binding:"required,budgetcategory"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Period   string           `json:"period" binding:"omitempty,oneof=weekly monthly"`
	Month    *int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year     *int             `json:"year" binding:"omitempty,min=1,max=9999"`
}

// UpdateBudgetRequest defines the payload for changing a budget's amount.
type UpdateBudgetRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID      string          `json:"budgetID"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Period        string          `json:"period"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// BudgetProgressResponse is a budget with the spend recorded against it.
type BudgetProgressResponse struct {
	BudgetResponse
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		Category:      string(b.Category),
		Amount:        b.Amount,
		Period:        string(b.Period),
		Month:         b.Month,
		Year:          b.Year,
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToBudgetProgressResponse converts a domain.BudgetProgress, rounding the
// computed figures to two decimals.
func ToBudgetProgressResponse(p *domain.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		BudgetResponse: ToBudgetResponse(&p.Budget),
		Spent:          utils.RoundCurrency(p.Spent),
		Remaining:      utils.RoundCurrency(p.Remaining),
		Percentage:     p.Percentage.Round(utils.CurrencyPrecision),
	}
}

// ToBudgetProgressResponses converts a slice of domain.BudgetProgress.
func ToBudgetProgressResponses(progress []domain.BudgetProgress) []BudgetProgressResponse {
	responses := make([]BudgetProgressResponse, len(progress))
	for i := range progress {
		responses[i] = ToBudgetProgressResponse(&progress[i])
	}
	return responses
}
