// Package sqlite contains the local cache store: GORM repositories over an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"smokebreak/config"
	"smokebreak/internal/domain/lifecycle"
	"smokebreak/internal/errors"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond

	// SQLite allows a single writer; more open connections only add SQLITE_BUSY retries.
	defaultMaxOpenConns = 1
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Feed   *ChangeFeed
}

// New opens the local cache database, applies migrations and wires the change feed.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.SQLite, params.Logger, params.Config.Env.Debug, params.Feed)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open creates the GORM handle, runs the embedded migrations and registers the change feed callbacks.
// feed may be nil when no observers are needed.
func Open(cfg *config.SQLiteConfig, logger *slog.Logger, debug bool, feed *ChangeFeed) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("sqlite configuration is required")
	}

	db, err := gorm.Open(sqlite.Open(buildDSN(cfg, false)), &gorm.Config{
		// Explicit transactions go through txManager.Execute.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(logger, debug, cfg.SlowQueryThreshold),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := Migrate(sqlDB, logger); err != nil {
		return nil, err
	}

	if cfg.ReadReplicas > 0 && !isMemoryDSN(cfg.Path) {
		replicas := make([]gorm.Dialector, 0, cfg.ReadReplicas)
		for range cfg.ReadReplicas {
			replicas = append(replicas, sqlite.Open(buildDSN(cfg, true)))
		}

		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}).SetConnMaxLifetime(cfg.ConnMaxLifetime)

		if err := db.Use(resolver); err != nil {
			return nil, errors.Wrap(err, "failed to register SQLite read replicas")
		}
	}

	if feed != nil {
		if err := feed.Register(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// buildDSN turns the configured path into a go-sqlite3 URI with foreign keys enforced.
// A path that already starts with "file:" keeps its own query parameters.
func buildDSN(cfg *config.SQLiteConfig, readOnly bool) string {
	path := cfg.Path
	params := url.Values{}

	if strings.HasPrefix(path, "file:") {
		rest := strings.TrimPrefix(path, "file:")
		if idx := strings.IndexByte(rest, '?'); idx >= 0 {
			if existing, err := url.ParseQuery(rest[idx+1:]); err == nil {
				params = existing
			}
			rest = rest[:idx]
		}
		path = rest
	}

	params.Set("_foreign_keys", "1")
	if cfg.BusyTimeout > 0 {
		params.Set("_busy_timeout", strconv.FormatInt(cfg.BusyTimeout.Milliseconds(), 10))
	}
	if !isMemoryDSN(cfg.Path) {
		params.Set("_journal_mode", "WAL")
	}
	if readOnly {
		params.Set("mode", "ro")
	}

	return "file:" + path + "?" + params.Encode()
}

func isMemoryDSN(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "SQLite writer contention detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "SQLite writer wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
