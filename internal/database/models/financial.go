package models

import "github.com/shopspring/decimal"

// Financial is a budgeted income or cost line of a property
type Financial struct {
	BaseModel
	PropertyID uint            `json:"property_id" gorm:"not null;index"`
	Property   *Property       `json:"-" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Category   string          `json:"category" gorm:"size:100;not null"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Recurring  bool            `json:"recurring" gorm:"not null;default:false"`
}

// TableName returns the table name for Financial
func (Financial) TableName() string {
	return "financials"
}
