package service

import (
	"context"
	"log/slog"

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/photo"
	"github.com/cosmezukan/cosme-server/internal/store"
	"github.com/cosmezukan/cosme-server/internal/validation"
)

// LookInput is the request payload for creating or updating a makeup look.
type LookInput struct {
	Title         string   `json:"title,omitempty"`
	Photo         []string `json:"photo,omitempty"`
	UsedCosmetics []string `json:"usedCosmetics,omitempty"`
	Situation     string   `json:"situation,omitempty"`
	Season        string   `json:"season,omitempty" validate:"omitempty,oneof=spring summer autumn winter all"`
	Tags          []string `json:"tags,omitempty"`
	Memo          string   `json:"memo,omitempty"`
}

// LookResult is a stored look plus whether the photo cap dropped any
// payloads.
type LookResult struct {
	Look            domain.MakeupLook `json:"look"`
	PhotosTruncated bool              `json:"photosTruncated,omitempty"`
}

// LookPersonalColor is the dominant personal color of a look's cosmetics.
type LookPersonalColor struct {
	LookID        string               `json:"lookId"`
	PersonalColor domain.PersonalColor `json:"personalColor"`
}

// LookService handles makeup look operations.
type LookService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewLookService creates a LookService.
func NewLookService(s *store.Store, v *validation.Validator, logger *slog.Logger) *LookService {
	return &LookService{store: s, validator: v, logger: logger}
}

func (s *LookService) toDomain(in LookInput) (domain.MakeupLook, bool) {
	capped := photo.Cap(in.Photo)
	return domain.MakeupLook{
		Title:         in.Title,
		Photo:         capped.Photos,
		UsedCosmetics: in.UsedCosmetics,
		Situation:     in.Situation,
		Season:        domain.Season(in.Season),
		Tags:          in.Tags,
		Memo:          in.Memo,
	}, capped.Truncated
}

// List returns all makeup looks.
func (s *LookService) List(_ context.Context) []domain.MakeupLook {
	return s.store.ListMakeupLooks()
}

// Get returns one look by ID.
func (s *LookService) Get(_ context.Context, lookID string) (domain.MakeupLook, error) {
	return s.store.GetMakeupLook(lookID)
}

// Create validates and stores a new makeup look. Cosmetic references are
// stored as given; they may point at items that are later deleted.
func (s *LookService) Create(ctx context.Context, in LookInput) (*LookResult, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	record, truncated := s.toDomain(in)
	added, err := s.store.AddMakeupLook(ctx, record)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("makeup look created", "look_id", added.ID, "title", added.Title)
	}
	return &LookResult{Look: added, PhotosTruncated: truncated}, nil
}

// Update validates and replaces an existing look. Updating an unknown ID is
// a silent no-op.
func (s *LookService) Update(ctx context.Context, lookID string, in LookInput) (*LookResult, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	record, truncated := s.toDomain(in)
	record.ID = lookID
	if err := s.store.UpdateMakeupLook(ctx, record); err != nil {
		return nil, err
	}
	return &LookResult{Look: record, PhotosTruncated: truncated}, nil
}

// Delete removes a look. Referenced cosmetics are untouched.
func (s *LookService) Delete(ctx context.Context, lookID string) error {
	if err := s.store.DeleteMakeupLook(ctx, lookID); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("makeup look deleted", "look_id", lookID)
	}
	return nil
}

// DominantPersonalColor returns the majority personal-color class of a
// look's cosmetics. Ties and empty looks come back neutral.
func (s *LookService) DominantPersonalColor(_ context.Context, lookID string) (*LookPersonalColor, error) {
	look, err := s.store.GetMakeupLook(lookID)
	if err != nil {
		return nil, err
	}
	return &LookPersonalColor{
		LookID:        look.ID,
		PersonalColor: s.store.DominantPersonalColor(look.UsedCosmetics),
	}, nil
}
