// Package sqliterepo persists the catalog snapshot in a single-row SQLite
// table. An alternative to the Badger backend for users who want their data
// in a file standard tools can open.
package sqliterepo

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository is a SQLite-backed snapshot repository.
type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or opens the SQLite database at path.
// It configures WAL mode, sets pragmas, and ensures the schema exists.
func Open(path string, logger *slog.Logger) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("exec schema: %w", err)
	}

	if logger != nil {
		logger.Info("SQLite database opened successfully", "path", path)
	}

	return &Repository{db: db, logger: logger}, nil
}

// Load returns the stored snapshot bytes, or nil when nothing has been
// stored yet.
func (r *Repository) Load(ctx context.Context) ([]byte, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, "SELECT data FROM snapshot WHERE id = 1").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return raw, nil
}

// Save durably replaces the stored snapshot.
func (r *Repository) Save(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshot (id, data, updated_at)
		VALUES (1, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		raw)
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	if r.logger != nil {
		r.logger.Info("Closing database connection")
	}
	return r.db.Close()
}
