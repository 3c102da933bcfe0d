package store

import (
	"context"

	"github.com/cosmezukan/cosme-server/internal/alias"
	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/errors"
)

// dupKey is the identity a cosmetic is compared on. Brand, category, and
// color are resolved through the alias tables first, so "ディオール" and "Dior"
// collide; name and color number fold directly. Purchase date, expiry date,
// and remaining amount never participate.
type dupKey struct {
	brand       string
	name        string
	category    string
	color       string
	colorNumber string
}

func (s *Store) dupKeyOf(c domain.Cosmetic) dupKey {
	return dupKey{
		brand:       alias.ResolveOrFold(c.Brand, alias.SeedBrands, s.state.UserBrands),
		name:        alias.Fold(c.Name),
		category:    alias.ResolveOrFold(c.Category, alias.SeedCategories, s.state.UserCategories),
		color:       alias.ResolveOrFold(c.Color, alias.SeedColors, s.state.UserColors),
		colorNumber: alias.Fold(c.ColorNumber),
	}
}

// CheckDuplicateCosmetic reports whether a candidate matches an existing
// cosmetic after alias normalization. The first match in storage order wins.
func (s *Store) CheckDuplicateCosmetic(candidate domain.Cosmetic) (domain.Cosmetic, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := s.dupKeyOf(candidate)
	for _, existing := range s.state.Cosmetics {
		if s.dupKeyOf(existing) == key {
			return existing.Clone(), true
		}
	}
	return domain.Cosmetic{}, false
}

// UpdateCosmeticWithDuplicate records a repurchase: the existing record takes
// the candidate's fields, keeps its own ID and photos, and its purchase count
// goes up by one.
func (s *Store) UpdateCosmeticWithDuplicate(ctx context.Context, existingID string, candidate domain.Cosmetic) (domain.Cosmetic, error) {
	var updated domain.Cosmetic
	err := s.mutate(ctx, func(next *domain.Snapshot) error {
		for i, existing := range next.Cosmetics {
			if existing.ID != existingID {
				continue
			}
			record := candidate.Clone()
			record.ID = existing.ID
			record.Photo = existing.Photo
			record.PurchaseCount = existing.PurchaseCount + 1
			record.PersonalColor = record.PersonalColor.OrNeutral()
			next.Cosmetics[i] = record
			updated = record.Clone()
			return nil
		}
		return errors.NotFoundf("cosmetic %s not found", existingID)
	})
	if err != nil {
		return domain.Cosmetic{}, err
	}
	return updated, nil
}

// DominantPersonalColor tallies the personal colors of the given cosmetic IDs
// and returns the strict majority class. Ties, empty input, and unknown IDs
// all land on neutral.
func (s *Store) DominantPersonalColor(cosmeticIDs []string) domain.PersonalColor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[string]domain.PersonalColor, len(s.state.Cosmetics))
	for _, c := range s.state.Cosmetics {
		byID[c.ID] = c.PersonalColor.OrNeutral()
	}

	counts := map[domain.PersonalColor]int{}
	for _, cosmeticID := range cosmeticIDs {
		if pc, ok := byID[cosmeticID]; ok {
			counts[pc]++
		}
	}

	best := domain.PersonalColorNeutral
	bestCount := 0
	tied := false
	for _, pc := range []domain.PersonalColor{domain.PersonalColorBlue, domain.PersonalColorYellow, domain.PersonalColorNeutral} {
		switch {
		case counts[pc] > bestCount:
			best, bestCount, tied = pc, counts[pc], false
		case counts[pc] == bestCount && counts[pc] > 0:
			tied = true
		}
	}
	if tied || bestCount == 0 {
		return domain.PersonalColorNeutral
	}
	return best
}
