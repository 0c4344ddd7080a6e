package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a note is not in the store.
var ErrNotFound = errors.New("not found")

// DB wraps the SQLite database holding imported notes and their
// moderation status.
type DB struct {
	db *sql.DB
}

// Open creates or opens the note database and runs migrations.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY,
			type TEXT NOT NULL,
			timestamp INTEGER NOT NULL DEFAULT 0,
			read INTEGER NOT NULL DEFAULT 0,
			comment_status TEXT NOT NULL DEFAULT '',
			raw TEXT NOT NULL,
			imported_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_timestamp ON notes(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_read ON notes(read)`,

		`CREATE TABLE IF NOT EXISTS comment_status (
			note_id INTEGER PRIMARY KEY REFERENCES notes(id) ON DELETE CASCADE,
			status TEXT NOT NULL,
			changed_at INTEGER NOT NULL,
			origin TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_comment_status_changed ON comment_status(changed_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("executing migration: %w\nSQL: %s", err, m)
		}
	}
	return nil
}
