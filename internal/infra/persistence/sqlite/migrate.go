package sqlite

import (
	"database/sql"
	"embed"
	"log/slog"

	"smokebreak/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies all pending up migrations to the database.
// The migrate instance is not closed because that would close sqlDB too.
func Migrate(sqlDB *sql.DB, logger *slog.Logger) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to apply migrations")
	}

	if logger != nil {
		version, dirty, verr := m.Version()
		if verr == nil {
			logger.Info("SQLite schema ready", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		}
	}

	return nil
}
