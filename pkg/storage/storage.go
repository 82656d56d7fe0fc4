package storage

import (
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// Supported driver identifiers. Postgres callers must register their own
// database/sql driver under the "postgres" name.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DefaultSQLiteDSN keeps the whole store in memory, which suits local runs
// and tests.
const DefaultSQLiteDSN = "file::memory:?cache=shared"

// Config captures the runtime configuration for the article store.
type Config struct {
	Driver string `json:"driver"`
	DSN    string `json:"dsn"`
}

// Open builds a bun.DB for the configured driver. SQLite is the default when
// no driver is set.
func Open(cfg Config) (*bun.DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	dsn := cfg.DSN
	if dsn == "" && driver == DriverSQLite {
		dsn = DefaultSQLiteDSN
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage open (%s): %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		db := bun.NewDB(sqlDB, sqlitedialect.New())
		db.SetMaxOpenConns(1)
		return db, nil
	case DriverPostgres:
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		_ = sqlDB.Close()
		return nil, fmt.Errorf("storage open: unsupported driver %q", driver)
	}
}
