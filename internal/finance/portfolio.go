package finance

import (
	"smartguider/internal/models"

	"github.com/shopspring/decimal"
)

// HoldingSummary aggregates the investments of one type.
type HoldingSummary struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Portfolio sums a user's investments.
type Portfolio struct {
	TotalInvested     float64                                  `json:"total_invested"`
	TotalCurrentValue float64                                  `json:"total_current_value"`
	TotalGainLoss     float64                                  `json:"total_gain_loss"`
	GainLossPercent   float64                                  `json:"gain_loss_percent"`
	HoldingsByType    map[models.InvestmentType]HoldingSummary `json:"holdings_by_type"`
}

// GainLoss returns current value minus purchase price.
func GainLoss(inv models.Investment) float64 {
	return decimal.NewFromFloat(inv.CurrentValue).Sub(decimal.NewFromFloat(inv.PurchasePrice)).InexactFloat64()
}

// SummarizePortfolio totals investments. GainLossPercent is 0 when
// nothing has been invested.
func SummarizePortfolio(investments []models.Investment) Portfolio {
	var invested, current decimal.Decimal
	byType := make(map[models.InvestmentType]decimal.Decimal)
	counts := make(map[models.InvestmentType]int)

	for i := range investments {
		inv := &investments[i]
		value := decimal.NewFromFloat(inv.CurrentValue)
		invested = invested.Add(decimal.NewFromFloat(inv.PurchasePrice))
		current = current.Add(value)
		byType[inv.Type] = byType[inv.Type].Add(value)
		counts[inv.Type]++
	}

	holdings := make(map[models.InvestmentType]HoldingSummary, len(byType))
	for t, v := range byType {
		holdings[t] = HoldingSummary{Value: v.InexactFloat64(), Count: counts[t]}
	}

	gain := current.Sub(invested)
	return Portfolio{
		TotalInvested:     invested.InexactFloat64(),
		TotalCurrentValue: current.InexactFloat64(),
		TotalGainLoss:     gain.InexactFloat64(),
		GainLossPercent:   PercentOf(gain.InexactFloat64(), invested.InexactFloat64()),
		HoldingsByType:    holdings,
	}
}

// GoalProgress is the share of the target already saved. Values above
// 100 are returned unchanged.
func GoalProgress(goal models.SavingsGoal) float64 {
	return PercentOf(goal.CurrentAmount, goal.TargetAmount)
}

// AnnualIncome is twelve months of salary plus any one-time bonus.
func AnnualIncome(u *models.User) float64 {
	if u == nil {
		return 0
	}
	total := decimal.NewFromFloat(u.Income()).Mul(decimal.NewFromInt(12))
	if u.Bonus != nil {
		total = total.Add(decimal.NewFromFloat(u.Bonus.Amount))
	}
	return total.InexactFloat64()
}
