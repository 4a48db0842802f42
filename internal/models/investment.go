package models

import "time"

// InvestmentType represents the kind of asset held.
type InvestmentType string

const (
	InvestmentTypeStocks      InvestmentType = "Stocks"
	InvestmentTypeMutualFunds InvestmentType = "Mutual Funds"
	InvestmentTypeETFs        InvestmentType = "ETFs"
	InvestmentTypeCrypto      InvestmentType = "Crypto"
	InvestmentTypeBonds       InvestmentType = "Bonds"
	InvestmentTypeRealEstate  InvestmentType = "Real Estate"
	InvestmentTypeOther       InvestmentType = "Other"
)

// Investment represents a holding recorded by the user. CurrentValue is
// updated by hand; gain or loss is derived and never stored.
type Investment struct {
	Base
	UserID        string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string         `gorm:"not null" json:"name"`
	Type          InvestmentType `gorm:"not null" json:"type"`
	PurchaseDate  time.Time      `gorm:"not null" json:"purchase_date"`
	Quantity      *float64       `json:"quantity,omitempty"`
	PurchasePrice float64        `gorm:"not null" json:"purchase_price"`
	CurrentValue  float64        `gorm:"not null;default:0" json:"current_value"`
}
