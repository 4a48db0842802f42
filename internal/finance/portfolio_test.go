package finance

import (
	"testing"

	"smartguider/internal/models"
)

func TestSummarizePortfolio(t *testing.T) {
	investments := []models.Investment{
		{Name: "Index fund", Type: models.InvestmentTypeMutualFunds, PurchasePrice: 10000, CurrentValue: 12500},
		{Name: "Bluechip", Type: models.InvestmentTypeStocks, PurchasePrice: 5000, CurrentValue: 4000},
		{Name: "Smallcap", Type: models.InvestmentTypeStocks, PurchasePrice: 5000, CurrentValue: 6000},
	}

	p := SummarizePortfolio(investments)
	approx(t, "invested", p.TotalInvested, 20000)
	approx(t, "current", p.TotalCurrentValue, 22500)
	approx(t, "gain", p.TotalGainLoss, 2500)
	approx(t, "gain percent", p.GainLossPercent, 12.5)

	stocks := p.HoldingsByType[models.InvestmentTypeStocks]
	if stocks.Count != 2 {
		t.Errorf("expected 2 stock holdings, got %d", stocks.Count)
	}
	approx(t, "stocks value", stocks.Value, 10000)

	approx(t, "single loss", GainLoss(investments[1]), -1000)
}

func TestSummarizePortfolio_Empty(t *testing.T) {
	p := SummarizePortfolio(nil)
	if p.GainLossPercent != 0 || p.TotalInvested != 0 {
		t.Errorf("expected zero portfolio, got %+v", p)
	}
	if len(p.HoldingsByType) != 0 {
		t.Errorf("expected no holdings")
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name string
		goal models.SavingsGoal
		want float64
	}{
		{"no target", models.SavingsGoal{TargetAmount: 0, CurrentAmount: 100}, 0},
		{"quarter", models.SavingsGoal{TargetAmount: 40000, CurrentAmount: 10000}, 25},
		{"overshoot kept", models.SavingsGoal{TargetAmount: 1000, CurrentAmount: 1500}, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approx(t, "progress", GoalProgress(tt.goal), tt.want)
		})
	}
}

func TestAnnualIncome(t *testing.T) {
	u := &models.User{Salary: 50000}
	approx(t, "salary only", AnnualIncome(u), 600000)

	u.Bonus = &models.Bonus{Amount: 75000, Type: models.BonusTypePerformanceBonus}
	approx(t, "with bonus", AnnualIncome(u), 675000)

	approx(t, "nil user", AnnualIncome(nil), 0)
}
