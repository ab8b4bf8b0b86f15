package models

import (
	"time"
)

// BaseModel provides the generated integer key and server-set timestamps shared by all records
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every model in dependency order for auto-migration
func All() []interface{} {
	return []interface{}{
		&Property{},
		&Tenant{},
		&Expense{},
		&Payment{},
		&Financial{},
	}
}
