package ai

import (
	"fmt"
	"strings"

	"smartguider/internal/models"
)

const analyzeSpendingPrompt = `You review personal spending for a budgeting app.
You receive the user's expenses (category, amount, ISO date) and monthly income as JSON.
Reply with a JSON object {"summary": string, "insights": [string], "financialHealthScore": integer 0-100}.
The summary is two or three sentences. Give three to five concrete insights about patterns,
large categories and savings opportunities. Score 100 for excellent habits and 0 for critical trouble.`

const summarizeMonthPrompt = `You explain a month of spending against the 50/30/20 budgeting rule
(50% needs, 30% wants, 20% savings). You receive {"needs","wants","savings","totalIncome"} as JSON.
Reply with a JSON object {"summary": string} of at most four sentences that compares each bucket
to its target share of income and ends with one practical suggestion.`

const advicePrompt = `You are a personal finance advisor for salaried users in India.
You receive the user's spending analysis, their financial goals, their income-tax regime
("old" or "new") and monthly salary as JSON.
Reply with a JSON object {"advice": string}. Give actionable advice on budgeting, saving
and investing toward the stated goals. Tailor tax-saving suggestions to the regime: under
the old regime mention deductions such as 80C and 80D where relevant, under the new regime
focus on investing without relying on deductions.`

func parseExpensePrompt() string {
	return fmt.Sprintf(`You turn a short free-text note about a purchase into an expense record.
Reply with a JSON object {"description": string, "amount": number, "category": string, "type": "need" | "want"}.
category must be one of: %s. Use "need" for essentials and "want" for discretionary spending.
Omit any field you cannot determine. Do not invent an amount.`, strings.Join(models.ExpenseCategories, ", "))
}
