package testutils

import (
	"fmt"
	"testing"

	"property-manager-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a private, migrated in-memory database for one test.
// The database disappears when the test's cleanup closes the pool.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("sqlite:file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
