package models

import "time"

// GoalCategory groups savings goals. Both the short form names
// (Emergency, Gold, Investments) and the longer descriptive set are
// accepted.
type GoalCategory string

const (
	GoalCategoryEmergency     GoalCategory = "Emergency"
	GoalCategoryGold          GoalCategory = "Gold"
	GoalCategoryInvestments   GoalCategory = "Investments"
	GoalCategoryTravel        GoalCategory = "Travel"
	GoalCategoryGadget        GoalCategory = "Gadget"
	GoalCategoryEmergencyFund GoalCategory = "Emergency Fund"
	GoalCategoryInvestment    GoalCategory = "Investment"
	GoalCategoryDownPayment   GoalCategory = "Down Payment"
	GoalCategoryEducation     GoalCategory = "Education"
	GoalCategoryOther         GoalCategory = "Other"
)

// SavingsGoal is a target amount the user is saving toward. CurrentAmount
// is entered by the user and never derived.
type SavingsGoal struct {
	Base
	UserID        string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string       `gorm:"not null" json:"name"`
	Category      GoalCategory `gorm:"not null" json:"category"`
	TargetAmount  float64      `gorm:"not null" json:"target_amount"`
	CurrentAmount float64      `gorm:"not null;default:0" json:"current_amount"`
	Deadline      time.Time    `gorm:"not null" json:"deadline"`
}
