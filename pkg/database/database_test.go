package database

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestOpenMigratePingClose(t *testing.T) {
	db, err := Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), logger.Silent)
	require.NoError(t, err)

	require.NoError(t, MigrateModels(db))
	for _, table := range []string{"clients", "products", "orders", "order_details"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	assert.NoError(t, Ping(context.Background(), db))
	require.NoError(t, Close(db))
	assert.Error(t, Ping(context.Background(), db))
}

func TestMigrateModelsRequiresConnection(t *testing.T) {
	assert.Error(t, MigrateModels(nil))
}
