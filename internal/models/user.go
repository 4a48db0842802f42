package models

import "time"

// TaxRegime is the income-tax regime the user files under.
type TaxRegime string

const (
	TaxRegimeOld TaxRegime = "old"
	TaxRegimeNew TaxRegime = "new"
)

// BonusType describes where a one-time bonus came from.
type BonusType string

const (
	BonusTypePromotionHike    BonusType = "Promotion Hike"
	BonusTypePerformanceBonus BonusType = "Performance Bonus"
	BonusTypeJoiningBonus     BonusType = "Joining Bonus"
	BonusTypeOther            BonusType = "Other"
)

// Bonus is a one-time addition to the user's yearly income.
type Bonus struct {
	Amount float64   `json:"amount"`
	Type   BonusType `json:"type"`
}

// User represents the user model in the database. It doubles as the
// financial profile: salary, tax regime, budget split and bonus.
type User struct {
	Base
	Email               string        `gorm:"uniqueIndex;not null" json:"email"`
	Password            string        `gorm:"not null" json:"-"`
	Name                string        `json:"name"`
	PhotoURL            string        `json:"photo_url,omitempty"`
	Salary              float64       `gorm:"not null;default:0" json:"salary"`
	TaxRegime           TaxRegime     `gorm:"size:8" json:"tax_regime,omitempty"`
	Budget              *BudgetSplit  `gorm:"type:text;serializer:json" json:"budget,omitempty"`
	Bonus               *Bonus        `gorm:"type:text;serializer:json" json:"bonus,omitempty"`
	IsActive            bool          `gorm:"default:true" json:"is_active"`
	RefreshTokenHash    string        `gorm:"size:64" json:"-"`
	FailedLoginAttempts int           `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time    `json:"-"`
	LastLoginAt         *time.Time    `json:"last_login_at,omitempty"`
	Expenses            []Expense     `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	SavingsGoals        []SavingsGoal `gorm:"foreignKey:UserID" json:"savings_goals,omitempty"`
	Investments         []Investment  `gorm:"foreignKey:UserID" json:"investments,omitempty"`
}

// Income returns the monthly salary, treating a negative value as unset.
func (u *User) Income() float64 {
	if u == nil || u.Salary < 0 {
		return 0
	}
	return u.Salary
}
