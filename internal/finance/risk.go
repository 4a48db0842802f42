package finance

import (
	"time"

	"smartguider/internal/models"
)

// RiskState classifies the month-end projection.
type RiskState string

const (
	RiskInsufficientData RiskState = "insufficient_data"
	RiskOnTrack          RiskState = "on_track"
	RiskOverspending     RiskState = "overspending_risk"
	RiskDebt             RiskState = "debt_risk"
)

// RiskProjection extrapolates month-to-date spending to the whole month.
// DetailAmount is how far the projection exceeds the income (debt risk)
// or the spending limit (overspending risk), and 0 otherwise.
type RiskProjection struct {
	State             RiskState `json:"state"`
	DetailAmount      float64   `json:"detail_amount"`
	DaysPassed        int       `json:"days_passed"`
	DaysInMonth       int       `json:"days_in_month"`
	DailyAverage      float64   `json:"daily_average"`
	ProjectedSpending float64   `json:"projected_spending"`
	SpendingLimit     float64   `json:"spending_limit"`
}

// ProjectMonthEndRisk projects totalSpent at the current daily pace to the
// end of now's month. The spending limit is the needs plus wants share of
// income. Without income, or before anything has been spent, the state is
// RiskInsufficientData.
func ProjectMonthEndRisk(income, totalSpent float64, split *models.BudgetSplit, now time.Time) RiskProjection {
	s := models.SplitOrDefault(split)
	p := RiskProjection{
		State:         RiskInsufficientData,
		DaysPassed:    now.Day(),
		DaysInMonth:   DaysInMonth(now),
		SpendingLimit: income * float64(s.Needs+s.Wants) / 100,
	}

	if income <= 0 || totalSpent <= 0 {
		return p
	}

	p.DailyAverage = totalSpent / float64(p.DaysPassed)
	p.ProjectedSpending = p.DailyAverage * float64(p.DaysInMonth)

	switch {
	case p.ProjectedSpending > income:
		p.State = RiskDebt
		p.DetailAmount = p.ProjectedSpending - income
	case p.ProjectedSpending > p.SpendingLimit:
		p.State = RiskOverspending
		p.DetailAmount = p.ProjectedSpending - p.SpendingLimit
	default:
		p.State = RiskOnTrack
	}
	return p
}
