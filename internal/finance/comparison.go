package finance

import (
	"math"

	"smartguider/internal/models"
)

// MonthTotals are the needs, wants and derived savings of one month.
type MonthTotals struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// SeriesPoint is one bar group of the comparison chart.
type SeriesPoint struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// MonthlyComparison lays the current month next to the previous one.
type MonthlyComparison struct {
	HasPriorData  bool          `json:"has_prior_data"`
	Series        []SeriesPoint `json:"series"`
	CurrentLabel  string        `json:"current_label,omitempty"`
	PreviousLabel string        `json:"previous_label,omitempty"`
}

// BuildMonthlyComparison pairs the two months bucket by bucket. Prior data
// counts as present when any previous bucket is non-zero.
func BuildMonthlyComparison(current, previous MonthTotals) MonthlyComparison {
	return MonthlyComparison{
		HasPriorData: previous.Needs != 0 || previous.Wants != 0 || previous.Savings != 0,
		Series: []SeriesPoint{
			{Name: "Needs", Current: current.Needs, Previous: previous.Needs},
			{Name: "Wants", Current: current.Wants, Previous: previous.Wants},
			{Name: "Savings", Current: current.Savings, Previous: previous.Savings},
		},
	}
}

// SummarizeWindow aggregates the expenses in w and derives that month's
// savings from income.
func SummarizeWindow(expenses []models.Expense, w Window, income float64) MonthTotals {
	t := AggregateByTypeAndWindow(expenses, w)
	return MonthTotals{
		Needs:   t.Needs,
		Wants:   t.Wants,
		Savings: math.Max(0, income-t.Spent()),
	}
}

// CompareMonths runs SummarizeWindow over both windows and builds the
// labelled comparison.
func CompareMonths(expenses []models.Expense, ws Windows, income float64) MonthlyComparison {
	c := BuildMonthlyComparison(
		SummarizeWindow(expenses, ws.Current(), income),
		SummarizeWindow(expenses, ws.Previous(), income),
	)
	c.CurrentLabel = MonthLabel(ws.CurrentStart)
	c.PreviousLabel = MonthLabel(ws.PreviousStart)
	return c
}
