package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrInvalidStatus is returned when a status outside the entity's enum reaches a write
var ErrInvalidStatus = errors.New("invalid status")

// updateByID runs a single UPDATE and maps "no row matched" to gorm.ErrRecordNotFound
func updateByID(ctx context.Context, db *gorm.DB, model interface{}, id uint, updates map[string]interface{}) error {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// syncSequence moves a postgres serial sequence past explicitly inserted IDs.
// Other dialects derive the next ID from the table itself.
func syncSequence(ctx context.Context, db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	sql := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM "%[1]s"))`,
		table,
	)
	return db.WithContext(ctx).Exec(sql).Error
}
