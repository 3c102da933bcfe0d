package store

import (
	"context"

	"github.com/cosmezukan/cosme-server/internal/alias"
	"github.com/cosmezukan/cosme-server/internal/domain"
)

// AddUserBrand upserts an entry into the user brand table.
func (s *Store) AddUserBrand(ctx context.Context, entry domain.BrandAlias) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		next.UserBrands = alias.UpsertName(next.UserBrands, entry)
		return nil
	})
}

// AddUserCategory upserts an entry into the user category table.
func (s *Store) AddUserCategory(ctx context.Context, entry domain.CategoryAlias) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		next.UserCategories = alias.UpsertName(next.UserCategories, entry)
		return nil
	})
}

// AddUserColor upserts an entry into the user color table. On merge the
// incoming personal-color classification wins.
func (s *Store) AddUserColor(ctx context.Context, entry domain.ColorAlias) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		next.UserColors = alias.UpsertColor(next.UserColors, entry)
		return nil
	})
}

// UserBrands returns a copy of the user brand table.
func (s *Store) UserBrands() []domain.BrandAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.BrandAlias, len(s.state.UserBrands))
	for i, e := range s.state.UserBrands {
		out[i] = e.Clone()
	}
	return out
}

// UserCategories returns a copy of the user category table.
func (s *Store) UserCategories() []domain.CategoryAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CategoryAlias, len(s.state.UserCategories))
	for i, e := range s.state.UserCategories {
		out[i] = e.Clone()
	}
	return out
}

// UserColors returns a copy of the user color table.
func (s *Store) UserColors() []domain.ColorAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ColorAlias, len(s.state.UserColors))
	for i, e := range s.state.UserColors {
		out[i] = e.Clone()
	}
	return out
}

// CombinedBrands merges the seed table and the user table into one view,
// at most one entry per canonical name. User entries take precedence. The
// view is built fresh on every call.
func (s *Store) CombinedBrands() []domain.BrandAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return combineNameTables(alias.SeedBrands, s.state.UserBrands)
}

// CombinedCategories merges the seed and user category tables, user entries
// taking precedence.
func (s *Store) CombinedCategories() []domain.CategoryAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return combineNameTables(alias.SeedCategories, s.state.UserCategories)
}

// CombinedColors merges the seed and user color tables, user entries taking
// precedence.
func (s *Store) CombinedColors() []domain.ColorAlias {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ColorAlias, 0, len(alias.SeedColors)+len(s.state.UserColors))
	index := make(map[string]int, len(alias.SeedColors))
	for _, e := range alias.SeedColors {
		index[alias.Fold(e.CanonicalName)] = len(out)
		out = append(out, e.Clone())
	}
	for _, e := range s.state.UserColors {
		if i, ok := index[alias.Fold(e.CanonicalName)]; ok {
			out[i] = e.Clone()
			continue
		}
		index[alias.Fold(e.CanonicalName)] = len(out)
		out = append(out, e.Clone())
	}
	return out
}

func combineNameTables(seed, user []domain.NameAlias) []domain.NameAlias {
	out := make([]domain.NameAlias, 0, len(seed)+len(user))
	index := make(map[string]int, len(seed))
	for _, e := range seed {
		index[alias.Fold(e.CanonicalName)] = len(out)
		out = append(out, e.Clone())
	}
	for _, e := range user {
		if i, ok := index[alias.Fold(e.CanonicalName)]; ok {
			out[i] = e.Clone()
			continue
		}
		index[alias.Fold(e.CanonicalName)] = len(out)
		out = append(out, e.Clone())
	}
	return out
}

// SetMakeupListViewMode persists the makeup list view mode.
func (s *Store) SetMakeupListViewMode(ctx context.Context, mode string) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		next.MakeupListViewMode = mode
		return nil
	})
}

// SetCosmeticListViewMode persists the cosmetics list view mode.
func (s *Store) SetCosmeticListViewMode(ctx context.Context, mode string) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		next.CosmeticListViewMode = mode
		return nil
	})
}

// SetLookbookIndex persists the lookbook page cursor.
func (s *Store) SetLookbookIndex(ctx context.Context, index int) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		if index < 0 {
			index = 0
		}
		next.LookbookIndex = index
		return nil
	})
}

// SetLookbookPhotoIndex persists the lookbook photo cursor.
func (s *Store) SetLookbookPhotoIndex(ctx context.Context, index int) error {
	return s.mutate(ctx, func(next *domain.Snapshot) error {
		if index < 0 {
			index = 0
		}
		next.LookbookPhotoIndex = index
		return nil
	})
}
