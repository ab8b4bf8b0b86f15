package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money spent on a property
type Expense struct {
	BaseModel
	PropertyID  uint            `json:"property_id" gorm:"not null;index"`
	Property    *Property       `json:"-" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Description string          `json:"description" gorm:"size:500;not null"`
	Category    string          `json:"category" gorm:"size:100;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Date        time.Time       `json:"date" gorm:"not null;index"`
	Recurring   bool            `json:"recurring" gorm:"not null;default:false"`
	Notes       *string         `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}
