package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/sqlite/*.sql server/postgres/*.sql
var embedMigrations embed.FS

// goose keeps its base FS and dialect in package globals
var gooseMu sync.Mutex

var errNilDB = errors.New("db is nil")

// MigrateClient applies the client fallback schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, "sqlite3", "client")
}

// MigrateServer applies the vault service schema for driver ("sqlite3" or
// "pgx").
func MigrateServer(db *sql.DB, driver string) error {
	switch driver {
	case "pgx":
		return migrate(db, "pgx", "server/postgres")
	case "sqlite3", "":
		return migrate(db, "sqlite3", "server/sqlite")
	default:
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
