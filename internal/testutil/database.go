package testutil

import (
	"testing"

	"sales-service/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB returns an isolated in-memory SQLite database with the schema applied
// and foreign keys enforced. The pool is pinned to one connection because each
// in-memory connection is its own database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), logger.Silent)
	require.NoError(t, err, "failed to open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.MigrateModels(db), "failed to migrate schema")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// AssertRowCount asserts the number of rows in a table
func AssertRowCount(t *testing.T, db *gorm.DB, table string, expected int64) {
	t.Helper()

	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	require.Equal(t, expected, count, "unexpected row count in %s", table)
}
