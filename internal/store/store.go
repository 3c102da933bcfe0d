// Package store owns the catalog state: the cosmetics and makeup-look
// collections, the user alias tables, and the UI view-mode fields.
//
// The store is the sole writer. Every mutation clones the current snapshot,
// applies the change, persists the result through the injected Repository,
// and only then publishes the new snapshot. Readers never observe a
// half-applied mutation, and "apply" and "persist" form one logical step.
package store

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/migrate"
)

// Store is the owner of all catalog state.
type Store struct {
	mu     sync.RWMutex
	state  *domain.Snapshot
	repo   Repository
	logger *slog.Logger
}

// New opens the store: loads the stored snapshot through the migration
// engine, or starts empty when nothing is stored. A snapshot that cannot be
// read degrades to empty rather than failing startup.
func New(ctx context.Context, repo Repository, logger *slog.Logger) (*Store, error) {
	raw, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var state *domain.Snapshot
	if raw == nil {
		state = domain.NewSnapshot()
	} else {
		state = migrate.Run(raw, logger)
	}

	s := &Store{
		state:  state,
		repo:   repo,
		logger: logger,
	}

	if logger != nil {
		logger.Info("catalog store opened",
			"cosmetics", len(state.Cosmetics),
			"makeup_looks", len(state.MakeupLooks),
			"schema_version", state.SchemaVersion)
	}

	return s, nil
}

// Close closes the underlying repository.
func (s *Store) Close() error {
	return s.repo.Close()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Restore atomically replaces the entire state with the given snapshot and
// persists it. On persist failure the previous state stays in place.
func (s *Store) Restore(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := snap.Clone()
	next.Normalize()
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.state = next

	if s.logger != nil {
		s.logger.Info("catalog state restored",
			"cosmetics", len(next.Cosmetics),
			"makeup_looks", len(next.MakeupLooks))
	}
	return nil
}

// mutate runs apply against a clone of the current state, persists the
// result, then publishes it. The write lock spans the whole sequence so no
// two mutations' persist steps interleave.
func (s *Store) mutate(ctx context.Context, apply func(next *domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := apply(next); err != nil {
		return err
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// persist serializes and saves a snapshot. Callers hold the write lock.
func (s *Store) persist(ctx context.Context, snap *domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "marshal snapshot")
	}
	if err := s.repo.Save(ctx, raw); err != nil {
		if s.logger != nil {
			s.logger.Error("failed to persist snapshot", "error", err)
		}
		return errors.Wrap(err, errors.CodeInternal, "persist snapshot")
	}
	return nil
}

// truncatePhotos enforces the photo cap. Extra payloads are dropped, never
// an error.
func truncatePhotos(photos []string) []string {
	if len(photos) > domain.MaxPhotos {
		return photos[:domain.MaxPhotos]
	}
	return photos
}
