package store

import (
	"context"

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/id"
)

// ListCosmetics returns a copy of all cosmetics in insertion order.
func (s *Store) ListCosmetics() []domain.Cosmetic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Cosmetic, len(s.state.Cosmetics))
	for i, c := range s.state.Cosmetics {
		out[i] = c.Clone()
	}
	return out
}

// GetCosmetic returns the cosmetic with the given ID.
func (s *Store) GetCosmetic(cosmeticID string) (domain.Cosmetic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Cosmetics {
		if c.ID == cosmeticID {
			return c.Clone(), nil
		}
	}
	return domain.Cosmetic{}, errors.NotFoundf("cosmetic %s not found", cosmeticID)
}

// AddCosmetic appends a new cosmetic with a freshly assigned ID and returns
// the stored record.
func (s *Store) AddCosmetic(ctx context.Context, c domain.Cosmetic) (domain.Cosmetic, error) {
	newID, err := id.Generate("cos")
	if err != nil {
		return domain.Cosmetic{}, errors.Wrap(err, errors.CodeInternal, "generate cosmetic id")
	}

	record := c.Clone()
	record.ID = newID
	record.PersonalColor = record.PersonalColor.OrNeutral()
	record.Photo = truncatePhotos(record.Photo)

	err = s.mutate(ctx, func(next *domain.Snapshot) error {
		next.Cosmetics = append(next.Cosmetics, record.Clone())
		return nil
	})
	if err != nil {
		return domain.Cosmetic{}, err
	}
	return record, nil
}

// UpdateCosmetic replaces the cosmetic with a matching ID in place. When no
// record has that ID the call is a no-op: nothing is created and no error is
// returned.
func (s *Store) UpdateCosmetic(ctx context.Context, c domain.Cosmetic) error {
	record := c.Clone()
	record.PersonalColor = record.PersonalColor.OrNeutral()
	record.Photo = truncatePhotos(record.Photo)

	return s.mutate(ctx, func(next *domain.Snapshot) error {
		for i, existing := range next.Cosmetics {
			if existing.ID == record.ID {
				next.Cosmetics[i] = record
				return nil
			}
		}
		if s.logger != nil {
			s.logger.Debug("update for unknown cosmetic ignored", "cosmetic_id", record.ID)
		}
		return nil
	})
}

// DeleteCosmetic removes the cosmetic and prunes its ID from every makeup
// look's usedCosmetics list. Looks themselves are never deleted, even when
// the list becomes empty. Deleting an unknown ID is a no-op.
func (s *Store) DeleteCosmetic(ctx context.Context, cosmeticID string) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		kept := next.Cosmetics[:0]
		for _, c := range next.Cosmetics {
			if c.ID != cosmeticID {
				kept = append(kept, c)
			}
		}
		next.Cosmetics = kept

		for i := range next.MakeupLooks {
			used := next.MakeupLooks[i].UsedCosmetics
			pruned := used[:0]
			for _, ref := range used {
				if ref != cosmeticID {
					pruned = append(pruned, ref)
				}
			}
			next.MakeupLooks[i].UsedCosmetics = pruned
		}
		return nil
	})
}
