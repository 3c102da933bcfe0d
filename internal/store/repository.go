package store

import (
	"context"
	"sync"
)

// Repository persists the raw snapshot blob. The store marshals state itself
// so repositories stay byte-oriented and migration can run on load against
// snapshots of unknown shape.
type Repository interface {
	// Load returns the stored snapshot bytes, or nil when nothing has been
	// stored yet.
	Load(ctx context.Context) ([]byte, error)
	// Save durably replaces the stored snapshot.
	Save(ctx context.Context, raw []byte) error
	Close() error
}

// MemoryRepository is an in-memory Repository for tests.
type MemoryRepository struct {
	mu  sync.Mutex
	raw []byte

	// SaveErr, when set, is returned by every Save call. Lets tests exercise
	// persist-failure paths.
	SaveErr error
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load implements Repository.
func (r *MemoryRepository) Load(_ context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.raw == nil {
		return nil, nil
	}
	out := make([]byte, len(r.raw))
	copy(out, r.raw)
	return out, nil
}

// Save implements Repository.
func (r *MemoryRepository) Save(_ context.Context, raw []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.raw = make([]byte, len(raw))
	copy(r.raw, raw)
	return nil
}

// Close implements Repository.
func (r *MemoryRepository) Close() error { return nil }

// Seed pre-loads raw snapshot bytes, as if a previous session had saved them.
func (r *MemoryRepository) Seed(raw []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.raw = make([]byte, len(raw))
	copy(r.raw, raw)
}

// Stored returns a copy of the last saved bytes, or nil.
func (r *MemoryRepository) Stored() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.raw == nil {
		return nil
	}
	out := make([]byte, len(r.raw))
	copy(out, r.raw)
	return out
}
