package store

import (
	"context"

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/id"
)

// ListMakeupLooks returns a copy of all makeup looks in insertion order.
func (s *Store) ListMakeupLooks() []domain.MakeupLook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.MakeupLook, len(s.state.MakeupLooks))
	for i, m := range s.state.MakeupLooks {
		out[i] = m.Clone()
	}
	return out
}

// GetMakeupLook returns the makeup look with the given ID.
func (s *Store) GetMakeupLook(lookID string) (domain.MakeupLook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.state.MakeupLooks {
		if m.ID == lookID {
			return m.Clone(), nil
		}
	}
	return domain.MakeupLook{}, errors.NotFoundf("makeup look %s not found", lookID)
}

// AddMakeupLook appends a new makeup look with a freshly assigned ID and
// returns the stored record. Referenced cosmetic IDs are kept as given;
// references are not validated against the cosmetics collection.
func (s *Store) AddMakeupLook(ctx context.Context, m domain.MakeupLook) (domain.MakeupLook, error) {
	newID, err := id.Generate("look")
	if err != nil {
		return domain.MakeupLook{}, errors.Wrap(err, errors.CodeInternal, "generate look id")
	}

	record := m.Clone()
	record.ID = newID
	record.Photo = truncatePhotos(record.Photo)

	err = s.mutate(ctx, func(next *domain.Snapshot) error {
		next.MakeupLooks = append(next.MakeupLooks, record.Clone())
		return nil
	})
	if err != nil {
		return domain.MakeupLook{}, err
	}
	return record, nil
}

// UpdateMakeupLook replaces the look with a matching ID in place. Unknown IDs
// are a no-op, mirroring UpdateCosmetic.
func (s *Store) UpdateMakeupLook(ctx context.Context, m domain.MakeupLook) error {
	record := m.Clone()
	record.Photo = truncatePhotos(record.Photo)

	return s.mutate(ctx, func(next *domain.Snapshot) error {
		for i, existing := range next.MakeupLooks {
			if existing.ID == record.ID {
				next.MakeupLooks[i] = record
				return nil
			}
		}
		if s.logger != nil {
			s.logger.Debug("update for unknown makeup look ignored", "look_id", record.ID)
		}
		return nil
	})
}

// DeleteMakeupLook removes the look. Referenced cosmetics are untouched.
func (s *Store) DeleteMakeupLook(ctx context.Context, lookID string) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		kept := next.MakeupLooks[:0]
		for _, m := range next.MakeupLooks {
			if m.ID != lookID {
				kept = append(kept, m)
			}
		}
		next.MakeupLooks = kept
		return nil
	})
}
