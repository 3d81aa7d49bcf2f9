// Package dbtest provides a migrated in-memory sqlite database for tests.
package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nurpe/apper-api/internal/config"
	"github.com/nurpe/apper-api/internal/db"
)

// New returns a fresh database per call; it is closed when the test ends.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.New(config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on",
		MaxOpenConns: 1,
	}, zerolog.Nop())
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}
