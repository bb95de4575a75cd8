// Package sqlitetest opens throwaway in-memory cache databases for tests in other packages.
package sqlitetest

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"smokebreak/config"
	"smokebreak/internal/infra/persistence/sqlite"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var seq atomic.Int64

// NewDB opens a private migrated in-memory database that is closed when the test ends.
func NewDB(t testing.TB) (*gorm.DB, *sqlite.ChangeFeed) {
	t.Helper()

	feed := sqlite.NewChangeFeed()
	cfg := &config.SQLiteConfig{
		Path:        fmt.Sprintf("file:sqlitetest_%d?mode=memory&cache=shared", seq.Add(1)),
		BusyTimeout: time.Second,
	}

	db, err := sqlite.Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), false, feed)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db, feed
}
