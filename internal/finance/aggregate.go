package finance

import (
	"sort"

	"smartguider/internal/models"

	"github.com/shopspring/decimal"
)

// TypeTotals are the windowed expense sums by classification. Records
// with a missing or unknown type land in Unclassified, never in Needs or
// Wants. Total covers every windowed record.
type TypeTotals struct {
	Needs        float64 `json:"needs"`
	Wants        float64 `json:"wants"`
	Unclassified float64 `json:"unclassified"`
	Total        float64 `json:"total"`
}

// Spent returns needs + wants, the figure the budget engine works with.
func (t TypeTotals) Spent() float64 {
	return decimal.NewFromFloat(t.Needs).Add(decimal.NewFromFloat(t.Wants)).InexactFloat64()
}

// AggregateByTypeAndWindow sums the expenses dated inside w by type.
func AggregateByTypeAndWindow(expenses []models.Expense, w Window) TypeTotals {
	var needs, wants, other decimal.Decimal
	for i := range expenses {
		e := &expenses[i]
		if !w.Contains(e.Date) {
			continue
		}
		amount := decimal.NewFromFloat(e.Amount)
		switch e.Type {
		case models.ExpenseTypeNeed:
			needs = needs.Add(amount)
		case models.ExpenseTypeWant:
			wants = wants.Add(amount)
		default:
			other = other.Add(amount)
		}
	}

	return TypeTotals{
		Needs:        needs.InexactFloat64(),
		Wants:        wants.InexactFloat64(),
		Unclassified: other.InexactFloat64(),
		Total:        needs.Add(wants).Add(other).InexactFloat64(),
	}
}

// AggregateByCategory sums every expense by category string. It ignores
// both the time window and the need/want split.
func AggregateByCategory(expenses []models.Expense) map[string]float64 {
	sums := make(map[string]decimal.Decimal)
	for i := range expenses {
		e := &expenses[i]
		sums[e.Category] = sums[e.Category].Add(decimal.NewFromFloat(e.Amount))
	}

	out := make(map[string]float64, len(sums))
	for k, v := range sums {
		out[k] = v.InexactFloat64()
	}
	return out
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CategoryBreakdown returns AggregateByCategory as a slice ordered by
// total descending, then category name.
func CategoryBreakdown(expenses []models.Expense) []CategoryTotal {
	sums := AggregateByCategory(expenses)
	out := make([]CategoryTotal, 0, len(sums))
	for k, v := range sums {
		out = append(out, CategoryTotal{Category: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}
