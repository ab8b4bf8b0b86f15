package models

import "github.com/shopspring/decimal"

// Property is a building or lot under management
type Property struct {
	BaseModel
	Name        string          `json:"name" gorm:"size:200;not null"`
	Address     string          `json:"address" gorm:"size:300;not null"`
	Country     string          `json:"country" gorm:"size:100;not null"`
	City        string          `json:"city" gorm:"size:100;not null"`
	PostalCode  string          `json:"postal_code" gorm:"size:20;not null"`
	Type        string          `json:"type" gorm:"size:100;not null"`
	TotalUnits  int             `json:"total_units" gorm:"not null"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" gorm:"type:numeric(12,2);not null"`
	Status      PropertyStatus  `json:"status" gorm:"size:20;not null;index"`
	Notes       *string         `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for Property
func (Property) TableName() string {
	return "properties"
}
