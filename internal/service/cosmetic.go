// Package service implements the application operations on top of the
// catalog store: input validation, alias classification, duplicate handling,
// and the photo cap.
package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/cosmezukan/cosme-server/internal/alias"
	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/photo"
	"github.com/cosmezukan/cosme-server/internal/store"
	"github.com/cosmezukan/cosme-server/internal/validation"
)

// CosmeticInput is the request payload for creating or updating a cosmetic.
type CosmeticInput struct {
	Brand           string   `json:"brand" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Category        string   `json:"category" validate:"required"`
	Color           string   `json:"color,omitempty"`
	ColorNumber     string   `json:"colorNumber,omitempty"`
	RemainingAmount string   `json:"remainingAmount,omitempty"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	PurchaseDate    string   `json:"purchaseDate,omitempty" validate:"calendardate"`
	ExpiryDate      string   `json:"expiryDate,omitempty" validate:"calendardate"`
	PersonalColor   string   `json:"personalColor,omitempty" validate:"omitempty,oneof=blue yellow neutral"`
	Photo           []string `json:"photo,omitempty"`
	Memo            string   `json:"memo,omitempty"`
}

// CosmeticResult is a stored cosmetic plus whether the photo cap dropped
// any payloads.
type CosmeticResult struct {
	Cosmetic        domain.Cosmetic `json:"cosmetic"`
	PhotosTruncated bool            `json:"photosTruncated,omitempty"`
}

// DuplicateResult reports the outcome of a duplicate check.
type DuplicateResult struct {
	Duplicate bool             `json:"duplicate"`
	Existing  *domain.Cosmetic `json:"existing,omitempty"`
}

// ExpiringCosmetic pairs a cosmetic with its days-to-expiry.
type ExpiringCosmetic struct {
	Cosmetic      domain.Cosmetic `json:"cosmetic"`
	DaysRemaining int             `json:"daysRemaining"`
}

// CosmeticService handles cosmetic operations.
type CosmeticService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewCosmeticService creates a CosmeticService.
func NewCosmeticService(s *store.Store, v *validation.Validator, logger *slog.Logger) *CosmeticService {
	return &CosmeticService{store: s, validator: v, logger: logger}
}

// toDomain builds the domain record. A missing personal color is classified
// from the color input through the alias tables.
func (s *CosmeticService) toDomain(in CosmeticInput) (domain.Cosmetic, bool) {
	pc := domain.PersonalColor(in.PersonalColor)
	if in.PersonalColor == "" {
		pc = alias.PersonalColorFor(in.Color, s.store.UserColors())
	}

	capped := photo.Cap(in.Photo)
	return domain.Cosmetic{
		Brand:           in.Brand,
		Name:            in.Name,
		Category:        in.Category,
		Color:           in.Color,
		ColorNumber:     in.ColorNumber,
		RemainingAmount: in.RemainingAmount,
		Price:           in.Price,
		PurchaseDate:    in.PurchaseDate,
		ExpiryDate:      in.ExpiryDate,
		PersonalColor:   pc.OrNeutral(),
		Photo:           capped.Photos,
		Memo:            in.Memo,
	}, capped.Truncated
}

// List returns all cosmetics.
func (s *CosmeticService) List(_ context.Context) []domain.Cosmetic {
	return s.store.ListCosmetics()
}

// Get returns one cosmetic by ID.
func (s *CosmeticService) Get(_ context.Context, cosmeticID string) (domain.Cosmetic, error) {
	return s.store.GetCosmetic(cosmeticID)
}

// Create validates and stores a new cosmetic.
func (s *CosmeticService) Create(ctx context.Context, in CosmeticInput) (*CosmeticResult, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	record, truncated := s.toDomain(in)
	// A new item counts as its own first purchase.
	record.PurchaseCount = 1
	added, err := s.store.AddCosmetic(ctx, record)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("cosmetic created", "cosmetic_id", added.ID, "brand", added.Brand, "name", added.Name)
	}
	return &CosmeticResult{Cosmetic: added, PhotosTruncated: truncated}, nil
}

// Update validates and replaces an existing cosmetic. Updating an unknown ID
// is a silent no-op.
func (s *CosmeticService) Update(ctx context.Context, cosmeticID string, in CosmeticInput) (*CosmeticResult, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	record, truncated := s.toDomain(in)
	record.ID = cosmeticID
	if existing, err := s.store.GetCosmetic(cosmeticID); err == nil {
		record.PurchaseCount = existing.PurchaseCount
	}
	if err := s.store.UpdateCosmetic(ctx, record); err != nil {
		return nil, err
	}
	return &CosmeticResult{Cosmetic: record, PhotosTruncated: truncated}, nil
}

// Delete removes a cosmetic and prunes every look reference to it.
func (s *CosmeticService) Delete(ctx context.Context, cosmeticID string) error {
	if err := s.store.DeleteCosmetic(ctx, cosmeticID); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("cosmetic deleted", "cosmetic_id", cosmeticID)
	}
	return nil
}

// CheckDuplicate reports whether the input matches an already-owned item
// after alias normalization.
func (s *CosmeticService) CheckDuplicate(_ context.Context, in CosmeticInput) (*DuplicateResult, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	candidate, _ := s.toDomain(in)
	existing, found := s.store.CheckDuplicateCosmetic(candidate)
	if !found {
		return &DuplicateResult{}, nil
	}
	return &DuplicateResult{Duplicate: true, Existing: &existing}, nil
}

// RecordRepurchase merges the input into the existing duplicate: photos are
// kept and the purchase count goes up by one.
func (s *CosmeticService) RecordRepurchase(ctx context.Context, existingID string, in CosmeticInput) (*CosmeticResult, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	record, _ := s.toDomain(in)
	updated, err := s.store.UpdateCosmeticWithDuplicate(ctx, existingID, record)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("repurchase recorded",
			"cosmetic_id", updated.ID, "purchase_count", updated.PurchaseCount)
	}
	return &CosmeticResult{Cosmetic: updated}, nil
}

// ExpiringSoon returns cosmetics whose expiry date falls within the given
// number of days, already-expired items included, soonest first.
func (s *CosmeticService) ExpiringSoon(_ context.Context, now time.Time, withinDays int) []ExpiringCosmetic {
	var out []ExpiringCosmetic
	for _, c := range s.store.ListCosmetics() {
		days, ok := c.ExpiryDaysRemaining(now)
		if !ok || days > withinDays {
			continue
		}
		out = append(out, ExpiringCosmetic{Cosmetic: c, DaysRemaining: days})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DaysRemaining < out[j].DaysRemaining })
	return out
}
