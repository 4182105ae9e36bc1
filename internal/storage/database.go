package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Mode selects how Open treats an existing database file.
type Mode string

const (
	// ModeDurable keeps an existing database file and migrates it in place.
	ModeDurable Mode = "durable"
	// ModeEphemeral deletes any existing database file before opening,
	// so every process starts from an empty store.
	ModeEphemeral Mode = "ephemeral"
)

// ParseMode converts a configuration string into a Mode.
// An empty string selects ModeDurable.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeDurable:
		return ModeDurable, nil
	case ModeEphemeral:
		return ModeEphemeral, nil
	default:
		return "", fmt.Errorf("unknown database mode %q (want %q or %q)", s, ModeDurable, ModeEphemeral)
	}
}

// New opens a SQLite database connection at the given path.
// It sets connection pool settings and verifies the connection.
func New(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate creates the KnowledgeBase and Note tables.
// It is idempotent and can be run multiple times safely.
// Neither table carries a UNIQUE constraint on its natural key; uniqueness
// is checked by the store before inserting.
func Migrate(ctx context.Context, db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS KnowledgeBase (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS Note (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			directory TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_knowledgebase_name ON KnowledgeBase (name);`,
		`CREATE INDEX IF NOT EXISTS idx_note_directory_title ON Note (directory, title);`,
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

// Open opens the database at path according to mode and runs migrations.
// With ModeEphemeral an existing file at path is removed first.
func Open(ctx context.Context, path string, mode Mode) (*sql.DB, error) {
	if mode == ModeEphemeral {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove existing database %s: %w", path, err)
		}
	}

	db, err := New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
