package models

import "time"

// ExpenseType classifies an expense as a need or a want.
type ExpenseType string

const (
	ExpenseTypeNeed ExpenseType = "need"
	ExpenseTypeWant ExpenseType = "want"
)

// Valid reports whether t is need or want.
func (t ExpenseType) Valid() bool {
	return t == ExpenseTypeNeed || t == ExpenseTypeWant
}

// Expense is a single spending record owned by one user.
type Expense struct {
	Base
	UserID      string      `gorm:"type:uuid;not null;index" json:"user_id"`
	Category    string      `gorm:"not null" json:"category"`
	Amount      float64     `gorm:"not null" json:"amount"`
	Date        time.Time   `gorm:"not null;index" json:"date"`
	Type        ExpenseType `gorm:"size:8" json:"type"`
	Description string      `json:"description,omitempty"`
	Emoji       string      `json:"emoji,omitempty"`
}
