package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DriverSQLite keeps the plan in a local file; DriverPostgres points both
// participants' machines at one shared database.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Open connects to the plan database. For SQLite the DSN is a file path
// (tilde expanded, parent directories created); for Postgres it is a
// regular connection string.
func Open(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverSQLite:
		if strings.HasPrefix(dsn, "~") {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			dsn = homeDir + dsn[1:]
		}
		dbDir := filepath.Dir(dsn)
		if dbDir != "." {
			if err := os.MkdirAll(dbDir, 0755); err != nil {
				return nil, err
			}
		}
		return sql.Open(DriverSQLite, dsn)

	case DriverPostgres:
		return sql.Open(DriverPostgres, dsn)

	default:
		return nil, fmt.Errorf("unknown store driver: %s", driver)
	}
}

// EnsureSchema creates the plan tables if they don't exist. Item ids and
// creation stamps are assigned by the core, so no autoincrement column is
// needed and the schema stays identical across both drivers.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			status TEXT NOT NULL,
			energy TEXT NOT NULL,
			solo BOOLEAN NOT NULL DEFAULT FALSE,
			approved_by TEXT NOT NULL DEFAULT '',
			created_at BIGINT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS day_config (
			id INTEGER PRIMARY KEY,
			day_start TEXT NOT NULL,
			day_end TEXT NOT NULL,
			energy_mode TEXT NOT NULL,
			current_user_id TEXT NOT NULL
		)
	`)
	return err
}

// rebind rewrites ? placeholders to $1..$N for the Postgres driver.
// Queries in this package are written with ? throughout.
func rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
