package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant is a lease holder occupying a unit of a property
type Tenant struct {
	BaseModel
	PropertyID  uint            `json:"property_id" gorm:"not null;index"`
	Property    *Property       `json:"property,omitempty" gorm:"foreignKey:PropertyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	UnitNumber  string          `json:"unit_number" gorm:"size:50;not null"`
	Name        string          `json:"name" gorm:"size:200;not null"`
	Email       *string         `json:"email" gorm:"size:255"`
	Phone       *string         `json:"phone" gorm:"size:50"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" gorm:"type:numeric(12,2);not null"`
	LeaseStart  time.Time       `json:"lease_start" gorm:"not null"`
	LeaseEnd    *time.Time      `json:"lease_end"`
	Status      TenantStatus    `json:"status" gorm:"size:20;not null;index"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
