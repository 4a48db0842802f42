package finance

import (
	"time"

	"smartguider/internal/models"
)

// AIDateLayout is ISO-8601 in UTC with millisecond precision.
const AIDateLayout = "2006-01-02T15:04:05.000Z07:00"

// ExpenseSample is the per-expense shape sent for spending analysis.
type ExpenseSample struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// SpendingAnalysisInput feeds the spending-behaviour analysis.
type SpendingAnalysisInput struct {
	Expenses []ExpenseSample `json:"expenses"`
	Income   float64         `json:"income"`
}

// MonthlySummaryInput feeds the budget-rule summary.
type MonthlySummaryInput struct {
	Needs       float64 `json:"needs"`
	Wants       float64 `json:"wants"`
	Savings     float64 `json:"savings"`
	TotalIncome float64 `json:"totalIncome"`
}

// AdviceInput feeds the personalised advice flow.
type AdviceInput struct {
	SpendingAnalysis string           `json:"spendingAnalysis"`
	FinancialGoals   string           `json:"financialGoals"`
	TaxRegime        models.TaxRegime `json:"taxRegime"`
	Salary           float64          `json:"salary"`
}

// BuildSpendingAnalysisInput converts expenses into the analysis payload,
// keeping their order.
func BuildSpendingAnalysisInput(expenses []models.Expense, income float64) SpendingAnalysisInput {
	samples := make([]ExpenseSample, 0, len(expenses))
	for i := range expenses {
		samples = append(samples, ExpenseSample{
			Category: expenses[i].Category,
			Amount:   expenses[i].Amount,
			Date:     FormatAIDate(expenses[i].Date),
		})
	}
	return SpendingAnalysisInput{Expenses: samples, Income: income}
}

// BuildMonthlySummaryInput extracts the summary payload from a budget result.
func BuildMonthlySummaryInput(r BudgetResult) MonthlySummaryInput {
	return MonthlySummaryInput{
		Needs:       r.Needs.Amount,
		Wants:       r.Wants.Amount,
		Savings:     r.Savings.Amount,
		TotalIncome: r.Income,
	}
}

// BuildAdviceInput assembles the advice payload. An empty regime means new.
func BuildAdviceInput(analysis, goals string, regime models.TaxRegime, salary float64) AdviceInput {
	if regime == "" {
		regime = models.TaxRegimeNew
	}
	return AdviceInput{
		SpendingAnalysis: analysis,
		FinancialGoals:   goals,
		TaxRegime:        regime,
		Salary:           salary,
	}
}

// FormatAIDate renders t in UTC using AIDateLayout.
func FormatAIDate(t time.Time) string {
	return t.UTC().Format(AIDateLayout)
}
