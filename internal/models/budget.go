package models

// Default split used when a user has not configured one.
const (
	DefaultNeedsPercent   = 50
	DefaultWantsPercent   = 30
	DefaultSavingsPercent = 20
)

// BudgetSplit is the percentage of income a user plans to put toward
// needs, wants and savings. Each value is in [0,100]; the settings
// endpoint requires the three to add up to 100.
type BudgetSplit struct {
	Needs   int `json:"needs"`
	Wants   int `json:"wants"`
	Savings int `json:"savings"`
}

// DefaultBudgetSplit returns the 50/30/20 split.
func DefaultBudgetSplit() BudgetSplit {
	return BudgetSplit{
		Needs:   DefaultNeedsPercent,
		Wants:   DefaultWantsPercent,
		Savings: DefaultSavingsPercent,
	}
}

// Sum returns needs + wants + savings.
func (b BudgetSplit) Sum() int {
	return b.Needs + b.Wants + b.Savings
}

// SplitOrDefault returns *b, or the 50/30/20 split when b is nil.
func SplitOrDefault(b *BudgetSplit) BudgetSplit {
	if b == nil {
		return DefaultBudgetSplit()
	}
	return *b
}
