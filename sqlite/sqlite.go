// Package sqlite provides SQLite-based storage for bitsearch search history.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// schema is applied on every Open; all statements are idempotent.
const schema = `
	CREATE TABLE IF NOT EXISTS results (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		link TEXT NOT NULL,
		link_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		size TEXT NOT NULL DEFAULT '-1',
		seeds TEXT NOT NULL DEFAULT '-1',
		leech TEXT NOT NULL DEFAULT '-1',
		engine_url TEXT NOT NULL DEFAULT '',
		desc_link TEXT NOT NULL DEFAULT '',
		pub_date TEXT NOT NULL DEFAULT '-1',
		fetched_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_results_query ON results(query);
	CREATE INDEX IF NOT EXISTS idx_results_link_hash ON results(link_hash);
`

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; a second connection would only wait on locks.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := configure(conn, db.path); err != nil {
		conn.Close()
		return err
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	db.db = conn
	return nil
}

// configure applies connection pragmas. WAL lets `history` read while a
// `search --save` is writing; it is unavailable for in-memory databases.
func configure(conn *sql.DB, path string) error {
	pragmas := []string{"PRAGMA busy_timeout = 5000"}
	if path != memoryPath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}

	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}
