package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money received from a tenant
type Payment struct {
	BaseModel
	TenantID uint            `json:"tenant_id" gorm:"not null;index"`
	Tenant   *Tenant         `json:"-" gorm:"foreignKey:TenantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:numeric(12,2);not null"`
	Method   *string         `json:"method" gorm:"size:50"`
	Date     time.Time       `json:"date" gorm:"not null;index"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
