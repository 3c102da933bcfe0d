package service

import (
	"context"
	"log/slog"

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/store"
	"github.com/cosmezukan/cosme-server/internal/validation"
)

func invalidViewMode(mode string) error {
	return errors.Validationf("unknown view mode %q", mode)
}

// NameAliasInput is the request payload for a user brand or category entry.
type NameAliasInput struct {
	CanonicalName string   `json:"canonicalName" validate:"required"`
	Aliases       []string `json:"aliases,omitempty"`
}

// ColorAliasInput is the request payload for a user color entry.
type ColorAliasInput struct {
	CanonicalName string   `json:"canonicalName" validate:"required"`
	Aliases       []string `json:"aliases,omitempty"`
	PersonalColor string   `json:"personalColor,omitempty" validate:"omitempty,oneof=blue yellow neutral"`
}

// ViewModeInput is the request payload for a view mode change.
type ViewModeInput struct {
	Mode string `json:"mode" validate:"required"`
}

// LookbookCursorInput is the request payload for the lookbook cursors.
type LookbookCursorInput struct {
	Index      *int `json:"index,omitempty" validate:"omitempty,gte=0"`
	PhotoIndex *int `json:"photoIndex,omitempty" validate:"omitempty,gte=0"`
}

// AliasTables is the combined seed-plus-user view of all three tables.
type AliasTables struct {
	Brands     []domain.BrandAlias    `json:"brands"`
	Categories []domain.CategoryAlias `json:"categories"`
	Colors     []domain.ColorAlias    `json:"colors"`
}

// ViewSettings is the persisted UI state.
type ViewSettings struct {
	MakeupListViewMode   string `json:"makeupListViewMode"`
	CosmeticListViewMode string `json:"cosmeticListViewMode"`
	LookbookIndex        int    `json:"lookbookIndex"`
	LookbookPhotoIndex   int    `json:"lookbookPhotoIndex"`
}

// Allowed view modes per screen. The makeup list has the lookbook and
// collage presentations on top of the shared grid and list.
var (
	makeupViewModes   = map[string]bool{domain.ViewModeGrid: true, domain.ViewModeList: true, domain.ViewModeLookbook: true, domain.ViewModeCollage: true}
	cosmeticViewModes = map[string]bool{domain.ViewModeGrid: true, domain.ViewModeList: true}
)

// SettingsService handles alias tables and UI view state.
type SettingsService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(s *store.Store, v *validation.Validator, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: s, validator: v, logger: logger}
}

// AliasTables returns the combined seed and user tables, user entries taking
// precedence.
func (s *SettingsService) AliasTables(_ context.Context) AliasTables {
	return AliasTables{
		Brands:     s.store.CombinedBrands(),
		Categories: s.store.CombinedCategories(),
		Colors:     s.store.CombinedColors(),
	}
}

// AddBrand upserts a user brand entry.
func (s *SettingsService) AddBrand(ctx context.Context, in NameAliasInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	return s.store.AddUserBrand(ctx, domain.BrandAlias{
		CanonicalName: in.CanonicalName,
		Aliases:       in.Aliases,
	})
}

// AddCategory upserts a user category entry.
func (s *SettingsService) AddCategory(ctx context.Context, in NameAliasInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	return s.store.AddUserCategory(ctx, domain.CategoryAlias{
		CanonicalName: in.CanonicalName,
		Aliases:       in.Aliases,
	})
}

// AddColor upserts a user color entry. A missing personal color defaults to
// neutral.
func (s *SettingsService) AddColor(ctx context.Context, in ColorAliasInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	return s.store.AddUserColor(ctx, domain.ColorAlias{
		CanonicalName: in.CanonicalName,
		Aliases:       in.Aliases,
		PersonalColor: domain.PersonalColor(in.PersonalColor).OrNeutral(),
	})
}

// ViewSettings returns the persisted UI state.
func (s *SettingsService) ViewSettings(_ context.Context) ViewSettings {
	snap := s.store.Snapshot()
	return ViewSettings{
		MakeupListViewMode:   snap.MakeupListViewMode,
		CosmeticListViewMode: snap.CosmeticListViewMode,
		LookbookIndex:        snap.LookbookIndex,
		LookbookPhotoIndex:   snap.LookbookPhotoIndex,
	}
}

// SetMakeupListViewMode persists the makeup list presentation.
func (s *SettingsService) SetMakeupListViewMode(ctx context.Context, in ViewModeInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	if !makeupViewModes[in.Mode] {
		return invalidViewMode(in.Mode)
	}
	return s.store.SetMakeupListViewMode(ctx, in.Mode)
}

// SetCosmeticListViewMode persists the cosmetics list presentation.
func (s *SettingsService) SetCosmeticListViewMode(ctx context.Context, in ViewModeInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	if !cosmeticViewModes[in.Mode] {
		return invalidViewMode(in.Mode)
	}
	return s.store.SetCosmeticListViewMode(ctx, in.Mode)
}

// SetLookbookCursor persists whichever lookbook cursors the input carries.
func (s *SettingsService) SetLookbookCursor(ctx context.Context, in LookbookCursorInput) error {
	if err := s.validator.Validate(in); err != nil {
		return err
	}
	if in.Index != nil {
		if err := s.store.SetLookbookIndex(ctx, *in.Index); err != nil {
			return err
		}
	}
	if in.PhotoIndex != nil {
		if err := s.store.SetLookbookPhotoIndex(ctx, *in.PhotoIndex); err != nil {
			return err
		}
	}
	return nil
}
