// Package badgerrepo persists the catalog snapshot in a Badger database.
// The whole snapshot lives under one key; Badger gives us durable synced
// writes without an external database process.
package badgerrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

var snapshotKey = []byte("snapshot")

// Repository is a Badger-backed snapshot repository.
type Repository struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) the Badger database at path.
func Open(path string, logger *slog.Logger) (*Repository, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return &Repository{db: db, logger: logger}, nil
}

// Load returns the stored snapshot bytes, or nil when nothing has been
// stored yet.
func (r *Repository) Load(_ context.Context) ([]byte, error) {
	var raw []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return raw, nil
}

// Save durably replaces the stored snapshot.
func (r *Repository) Save(_ context.Context, raw []byte) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, raw)
	})
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Close gracefully closes the database.
func (r *Repository) Close() error {
	if r.logger != nil {
		r.logger.Info("Closing database connection")
	}
	return r.db.Close()
}
