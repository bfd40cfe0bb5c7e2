package analytics

import (
	"fmt"

	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/utils"
	"github.com/shopspring/decimal"
)

var (
	topCategoryShareThreshold = decimal.NewFromInt(40)
	savingsRateThreshold      = decimal.RequireFromString("0.3")
	deviationThreshold        = decimal.RequireFromString("0.25")
	categorySpikeThreshold    = decimal.NewFromInt(50)
	two                       = decimal.NewFromInt(2)
)

// GenerateInsights evaluates the rule set against the current period and up to
// two preceding periods. Rules run in a fixed order and each contributes zero
// or more insights.
func GenerateInsights(current domain.PeriodSummary, previous, twoAgo domain.OptionalSummary) []domain.Insight {
	insights := []domain.Insight{}

	if prev, ok := previous.Get(); ok {
		insights = appendIf(insights, spendingTrend(current, prev))
	}
	insights = appendIf(insights, topCategoryShare(current))
	insights = appendIf(insights, balanceAnalysis(current))
	if prev, ok := previous.Get(); ok {
		if older, ok := twoAgo.Get(); ok {
			insights = appendIf(insights, unusualSpending(current, prev, older))
		}
		insights = append(insights, categorySpikes(current, prev)...)
	}
	return insights
}

func appendIf(list []domain.Insight, in *domain.Insight) []domain.Insight {
	if in == nil {
		return list
	}
	return append(list, *in)
}

// SpendingChangePercent is the expense delta against prev as a percentage
// rounded to one decimal, or zero when prev had no expenses.
func SpendingChangePercent(current, prev domain.PeriodSummary) decimal.Decimal {
	if !prev.Expenses.IsPositive() {
		return decimal.Zero
	}
	delta := current.Expenses.Sub(prev.Expenses)
	return utils.RoundPercentage(delta.Div(prev.Expenses).Mul(hundred))
}

func spendingTrend(current, prev domain.PeriodSummary) *domain.Insight {
	delta := current.Expenses.Sub(prev.Expenses)
	pct := utils.FormatPercentage(SpendingChangePercent(current, prev).Abs())
	amount := utils.FormatCurrency(delta.Abs())

	switch delta.Sign() {
	case 1:
		return &domain.Insight{
			Type:       domain.InsightWarning,
			Title:      "Spending Increased",
			Message:    fmt.Sprintf("Your spending increased by %s%% compared to last month ($%s more).", pct, amount),
			Suggestion: "Review your expenses and identify areas where you can cut back.",
		}
	case -1:
		return &domain.Insight{
			Type:       domain.InsightSuccess,
			Title:      "Great Savings!",
			Message:    fmt.Sprintf("You reduced your spending by %s%% compared to last month (saved $%s).", pct, amount),
			Suggestion: "Keep up the good work! Consider setting a savings goal.",
		}
	}
	return nil
}

func topCategoryShare(current domain.PeriodSummary) *domain.Insight {
	top, amount, ok := TopCategory(current.CategoryExpenses)
	if !ok || !current.Expenses.IsPositive() {
		return nil
	}
	share := amount.Div(current.Expenses).Mul(hundred)
	if !share.GreaterThan(topCategoryShareThreshold) {
		return nil
	}
	return &domain.Insight{
		Type:  domain.InsightInfo,
		Title: "Top Spending Category",
		Message: fmt.Sprintf("%s accounts for %s%% of your total expenses ($%s).",
			top, utils.FormatPercentage(share), utils.FormatCurrency(amount)),
		Suggestion: fmt.Sprintf("Consider creating a budget for %s to better manage your spending.", top),
	}
}

func balanceAnalysis(current domain.PeriodSummary) *domain.Insight {
	if current.Balance.IsNegative() {
		return &domain.Insight{
			Type:       domain.InsightError,
			Title:      "Negative Balance",
			Message:    fmt.Sprintf("Your expenses exceed your income by $%s this month.", utils.FormatCurrency(current.Balance.Abs())),
			Suggestion: "Immediate action needed: Reduce expenses or increase income to avoid debt.",
		}
	}
	if !current.Balance.IsPositive() || !current.Income.IsPositive() {
		return nil
	}
	rate := current.Balance.Div(current.Income)
	if !rate.GreaterThan(savingsRateThreshold) {
		return nil
	}
	return &domain.Insight{
		Type:       domain.InsightSuccess,
		Title:      "Excellent Savings Rate",
		Message:    fmt.Sprintf("You're saving %s%% of your income this month.", utils.FormatPercentage(rate.Mul(hundred))),
		Suggestion: "Consider investing your savings or setting up an emergency fund.",
	}
}

func unusualSpending(current, prev, older domain.PeriodSummary) *domain.Insight {
	avg := prev.Expenses.Add(older.Expenses).Div(two)
	if !avg.IsPositive() {
		return nil
	}
	deviation := current.Expenses.Sub(avg).Abs().Div(avg)
	if !deviation.GreaterThan(deviationThreshold) {
		return nil
	}
	return &domain.Insight{
		Type:       domain.InsightWarning,
		Title:      "Unusual Spending Pattern",
		Message:    fmt.Sprintf("Your spending this month is %s%% different from your average.", utils.FormatPercentage(deviation.Mul(hundred))),
		Suggestion: "Review your transactions to ensure all expenses are accounted for and expected.",
	}
}

func categorySpikes(current, prev domain.PeriodSummary) []domain.Insight {
	var out []domain.Insight
	for _, c := range current.CategoryExpenses.Categories() {
		prevAmount, ok := prev.CategoryExpenses.Get(c)
		if !ok || !prevAmount.IsPositive() {
			continue
		}
		curAmount, _ := current.CategoryExpenses.Get(c)
		change := curAmount.Sub(prevAmount).Div(prevAmount).Mul(hundred)
		if !change.GreaterThan(categorySpikeThreshold) {
			continue
		}
		out = append(out, domain.Insight{
			Type:       domain.InsightWarning,
			Title:      fmt.Sprintf("%s Spending Spike", c),
			Message:    fmt.Sprintf("Your %s spending increased by %s%% compared to last month.", c, utils.FormatPercentage(change)),
			Suggestion: fmt.Sprintf("Review your %s expenses and see if this increase is expected.", c),
		})
	}
	return out
}
