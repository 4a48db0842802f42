package finance

import (
	"smartguider/internal/models"

	"github.com/shopspring/decimal"
)

// TargetTolerance is the band, in percentage points, within which a
// bucket counts as on track.
const TargetTolerance = 5.0

// BucketStatus describes how a bucket compares to its target.
type BucketStatus string

const (
	StatusOnTrack     BucketStatus = "on_track"
	StatusAboveTarget BucketStatus = "above_target"
	StatusBelowTarget BucketStatus = "below_target"
)

// Bucket is one of needs, wants or savings measured against income.
type Bucket struct {
	Amount  float64      `json:"amount"`
	Percent float64      `json:"percent"`
	Target  int          `json:"target"`
	Delta   float64      `json:"delta"`
	Status  BucketStatus `json:"status"`
}

// BudgetResult is the month's spending laid against the budget split.
type BudgetResult struct {
	Income     float64            `json:"income"`
	TotalSpent float64            `json:"total_spent"`
	Split      models.BudgetSplit `json:"split"`
	Needs      Bucket             `json:"needs"`
	Wants      Bucket             `json:"wants"`
	Savings    Bucket             `json:"savings"`
}

// ComputeBudget derives savings, percentages of income and adherence
// status. A nil split means 50/30/20; a split that does not add up to
// 100 is used as given.
func ComputeBudget(income, needsTotal, wantsTotal float64, split *models.BudgetSplit) BudgetResult {
	s := models.SplitOrDefault(split)
	spent := decimal.NewFromFloat(needsTotal).Add(decimal.NewFromFloat(wantsTotal))
	totalSpent := spent.InexactFloat64()
	savings := decimal.Max(decimal.Zero, decimal.NewFromFloat(income).Sub(spent)).InexactFloat64()

	needs := newBucket(needsTotal, income, s.Needs)
	wants := newBucket(wantsTotal, income, s.Wants)
	save := newBucket(savings, income, s.Savings)

	if needs.Delta > TargetTolerance {
		needs.Status = StatusAboveTarget
	}
	if wants.Delta > TargetTolerance {
		wants.Status = StatusAboveTarget
	}
	if save.Delta < -TargetTolerance {
		save.Status = StatusBelowTarget
	}

	return BudgetResult{
		Income:     income,
		TotalSpent: totalSpent,
		Split:      s,
		Needs:      needs,
		Wants:      wants,
		Savings:    save,
	}
}

func newBucket(amount, income float64, target int) Bucket {
	pct := PercentOf(amount, income)
	return Bucket{
		Amount:  amount,
		Percent: pct,
		Target:  target,
		Delta:   pct - float64(target),
		Status:  StatusOnTrack,
	}
}

// PercentOf returns part as a percentage of whole, or 0 when whole is not
// positive.
func PercentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part * 100 / whole
}

// SpentShareOfIncome is the share of income already spent. With no
// income any spending counts as the whole of it.
func SpentShareOfIncome(totalSpent, income float64) float64 {
	if income <= 0 {
		return 100
	}
	return totalSpent * 100 / income
}
