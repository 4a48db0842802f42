package finance

import (
	"fmt"
	"math"
)

// ReportKind identifies which observation a Report makes.
type ReportKind string

const (
	ReportNoIncome   ReportKind = "no_income"
	ReportNoExpenses ReportKind = "no_expenses"
	ReportNeedsHigh  ReportKind = "needs_high"
	ReportWantsHigh  ReportKind = "wants_high"
	ReportSavingsLow ReportKind = "savings_low"
	ReportAligned    ReportKind = "aligned"
)

// Report is a single headline about the month's budget.
type Report struct {
	Kind    ReportKind `json:"kind"`
	Message string     `json:"message"`
}

// BuildReport picks the most pressing observation from r. Checks run in
// order: missing income, missing spending, needs over target, wants over
// target, savings under target.
func BuildReport(r BudgetResult) Report {
	switch {
	case r.Income <= 0:
		return Report{
			Kind:    ReportNoIncome,
			Message: "Set your monthly income in settings to see how your spending lines up with your budget.",
		}
	case r.TotalSpent == 0:
		return Report{
			Kind:    ReportNoExpenses,
			Message: "No expenses recorded this month yet. Add some to get a budget report.",
		}
	case r.Needs.Status == StatusAboveTarget:
		return Report{
			Kind: ReportNeedsHigh,
			Message: fmt.Sprintf("Needs take %d%% of your income against a %d%% target. Look for essentials you can trim.",
				round(r.Needs.Percent), r.Needs.Target),
		}
	case r.Wants.Status == StatusAboveTarget:
		return Report{
			Kind: ReportWantsHigh,
			Message: fmt.Sprintf("Wants take %d%% of your income against a %d%% target. Cutting back here frees up savings.",
				round(r.Wants.Percent), r.Wants.Target),
		}
	case r.Savings.Status == StatusBelowTarget:
		return Report{
			Kind: ReportSavingsLow,
			Message: fmt.Sprintf("You are saving %d%% of your income against a %d%% target.",
				round(r.Savings.Percent), r.Savings.Target),
		}
	default:
		return Report{
			Kind: ReportAligned,
			Message: fmt.Sprintf("Your spending is in line with your %d/%d/%d budget.",
				r.Split.Needs, r.Split.Wants, r.Split.Savings),
		}
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
