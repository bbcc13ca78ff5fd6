package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the local CRM database and applies
// the schema. It backs single-node installs and the CLI.
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return db, nil
}

// busyTimeoutMillis lets the scheduler, the CLI and HTTP writes wait for
// each other's locks instead of failing with SQLITE_BUSY.
const busyTimeoutMillis = 5000

// withPragmas appends the per-connection pragmas understood by
// modernc.org/sqlite to dsn, keeping any query parameters it already has.
func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(" + strconv.Itoa(busyTimeoutMillis) + ")&_pragma=journal_mode(WAL)"
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS quotes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    valid_until TEXT,
    status TEXT NOT NULL,
    total_value REAL NOT NULL DEFAULT 0,
    owner_id TEXT NOT NULL,
    board_id TEXT NOT NULL,
    stage_id TEXT NOT NULL DEFAULT '',
    contact_id TEXT NOT NULL DEFAULT '',
    customer_name TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_quotes_valid_until ON quotes(valid_until);
CREATE INDEX IF NOT EXISTS idx_quotes_board_id ON quotes(board_id);

CREATE TABLE IF NOT EXISTS pipeline_stages (
    id TEXT PRIMARY KEY,
    board_id TEXT NOT NULL,
    name TEXT NOT NULL,
    position INTEGER NOT NULL DEFAULT 0,
    system_role TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_pipeline_stages_board_id ON pipeline_stages(board_id);

CREATE TABLE IF NOT EXISTS recurring_services (
    id TEXT PRIMARY KEY,
    description TEXT NOT NULL DEFAULT '',
    contact_id TEXT NOT NULL DEFAULT '',
    contact_name TEXT NOT NULL DEFAULT '',
    start_date TEXT NOT NULL DEFAULT '',
    contract_months INTEGER,
    amount REAL NOT NULL DEFAULT 0,
    frequency TEXT NOT NULL DEFAULT 'monthly',
    active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS contacts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    fantasy_name TEXT NOT NULL DEFAULT '',
    person_type TEXT NOT NULL DEFAULT 'individual',
    scope TEXT NOT NULL DEFAULT 'client',
    phone TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS catalog_items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    unit_price REAL NOT NULL DEFAULT 0,
    active INTEGER NOT NULL DEFAULT 1
);
`)
	return err
}
