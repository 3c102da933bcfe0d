package store_test

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmezukan/cosme-server/internal/domain"
	"github.com/cosmezukan/cosme-server/internal/errors"
	"github.com/cosmezukan/cosme-server/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, *store.MemoryRepository) {
	t.Helper()
	repo := store.NewMemoryRepository()
	s, err := store.New(context.Background(), repo, nil)
	require.NoError(t, err)
	return s, repo
}

func TestNew_EmptyRepositoryStartsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Empty(t, s.ListCosmetics())
	assert.Empty(t, s.ListMakeupLooks())

	snap := s.Snapshot()
	assert.Equal(t, domain.CurrentSchemaVersion, snap.SchemaVersion)
	assert.Equal(t, domain.ViewModeGrid, snap.MakeupListViewMode)
}

func TestNew_LegacySnapshotIsMigrated(t *testing.T) {
	repo := store.NewMemoryRepository()
	repo.Seed([]byte(`{
		"cosmetics": [{"id": "c1", "brand": "Dior", "name": "999", "category": "Lips", "color": "Red", "personalColor": "warm"}],
		"userBrands": ["hince"]
	}`))

	s, err := store.New(context.Background(), repo, nil)
	require.NoError(t, err)

	cosmetics := s.ListCosmetics()
	require.Len(t, cosmetics, 1)
	assert.Equal(t, domain.PersonalColorNeutral, cosmetics[0].PersonalColor)

	brands := s.UserBrands()
	require.Len(t, brands, 1)
	assert.Equal(t, "hince", brands[0].CanonicalName)
}

func TestNew_CorruptSnapshotDegradesToEmpty(t *testing.T) {
	repo := store.NewMemoryRepository()
	repo.Seed([]byte("{definitely not json"))

	s, err := store.New(context.Background(), repo, nil)
	require.NoError(t, err)
	assert.Empty(t, s.ListCosmetics())
}

func TestAddCosmetic(t *testing.T) {
	s, repo := newTestStore(t)

	added, err := s.AddCosmetic(context.Background(), domain.Cosmetic{
		Brand:    "Dior",
		Name:     "Addict Lip Glow",
		Category: "Lips",
		Color:    "Pink",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(added.ID, "cos-"), "id %q", added.ID)
	assert.Equal(t, domain.PersonalColorNeutral, added.PersonalColor)

	got, err := s.GetCosmetic(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	// Persisted, not just in memory.
	var stored domain.Snapshot
	require.NoError(t, json.Unmarshal(repo.Stored(), &stored))
	require.Len(t, stored.Cosmetics, 1)
	assert.Equal(t, added.ID, stored.Cosmetics[0].ID)
}

func TestAddCosmetic_TruncatesPhotosAtCap(t *testing.T) {
	s, _ := newTestStore(t)

	photos := make([]string, domain.MaxPhotos+3)
	for i := range photos {
		photos[i] = fmt.Sprintf("data:image/webp;base64,photo%d", i)
	}

	added, err := s.AddCosmetic(context.Background(), domain.Cosmetic{
		Brand: "b", Name: "n", Category: "c", Color: "x",
		Photo: photos,
	})
	require.NoError(t, err)
	require.Len(t, added.Photo, domain.MaxPhotos)
	// First photos survive, the tail is dropped.
	assert.Equal(t, photos[:domain.MaxPhotos], added.Photo)
}

func TestUpdateCosmetic_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.UpdateCosmetic(context.Background(), domain.Cosmetic{
		ID: "cos-nope", Brand: "b", Name: "n", Category: "c", Color: "x",
	})
	require.NoError(t, err)
	assert.Empty(t, s.ListCosmetics())
}

func TestUpdateCosmetic_ReplacesInPlace(t *testing.T) {
	s, _ := newTestStore(t)

	first, err := s.AddCosmetic(context.Background(), domain.Cosmetic{Brand: "a", Name: "1", Category: "c", Color: "x"})
	require.NoError(t, err)
	second, err := s.AddCosmetic(context.Background(), domain.Cosmetic{Brand: "b", Name: "2", Category: "c", Color: "x"})
	require.NoError(t, err)

	first.Memo = "updated"
	require.NoError(t, s.UpdateCosmetic(context.Background(), first))

	cosmetics := s.ListCosmetics()
	require.Len(t, cosmetics, 2)
	// Order unchanged.
	assert.Equal(t, first.ID, cosmetics[0].ID)
	assert.Equal(t, "updated", cosmetics[0].Memo)
	assert.Equal(t, second.ID, cosmetics[1].ID)
}

func TestDeleteCosmetic_PrunesLookReferences(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	target, err := s.AddCosmetic(ctx, domain.Cosmetic{Brand: "Dior", Name: "999", Category: "Lips", Color: "Red"})
	require.NoError(t, err)
	other, err := s.AddCosmetic(ctx, domain.Cosmetic{Brand: "hince", Name: "Mood", Category: "Cheeks", Color: "Coral"})
	require.NoError(t, err)

	lookBoth, err := s.AddMakeupLook(ctx, domain.MakeupLook{
		Title:         "date night",
		UsedCosmetics: []string{target.ID, other.ID},
	})
	require.NoError(t, err)
	lookOnly, err := s.AddMakeupLook(ctx, domain.MakeupLook{
		Title:         "only the target",
		UsedCosmetics: []string{target.ID},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCosmetic(ctx, target.ID))

	_, err = s.GetCosmetic(target.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	gotBoth, err := s.GetMakeupLook(lookBoth.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other.ID}, gotBoth.UsedCosmetics)

	// The look survives with an empty reference list.
	gotOnly, err := s.GetMakeupLook(lookOnly.ID)
	require.NoError(t, err)
	assert.Empty(t, gotOnly.UsedCosmetics)
}

func TestMutation_PersistFailureLeavesStateUnchanged(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddCosmetic(ctx, domain.Cosmetic{Brand: "b", Name: "n", Category: "c", Color: "x"})
	require.NoError(t, err)
	before := repo.Stored()

	repo.SaveErr = fmt.Errorf("disk full")
	_, err = s.AddCosmetic(ctx, domain.Cosmetic{Brand: "b2", Name: "n2", Category: "c", Color: "x"})
	require.Error(t, err)

	// In-memory state and persisted bytes both untouched.
	cosmetics := s.ListCosmetics()
	require.Len(t, cosmetics, 1)
	assert.Equal(t, added.ID, cosmetics[0].ID)
	assert.Equal(t, before, repo.Stored())
}

func TestMakeupLookLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	look, err := s.AddMakeupLook(ctx, domain.MakeupLook{
		Title:  "summer festival",
		Season: domain.SeasonSummer,
		Tags:   []string{"glitter"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(look.ID, "look-"), "id %q", look.ID)

	look.Memo = "bring blotting paper"
	require.NoError(t, s.UpdateMakeupLook(ctx, look))

	got, err := s.GetMakeupLook(look.ID)
	require.NoError(t, err)
	assert.Equal(t, "bring blotting paper", got.Memo)

	require.NoError(t, s.DeleteMakeupLook(ctx, look.ID))
	_, err = s.GetMakeupLook(look.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestUpdateMakeupLook_UnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.UpdateMakeupLook(context.Background(), domain.MakeupLook{ID: "look-nope", Title: "ghost"})
	require.NoError(t, err)
	assert.Empty(t, s.ListMakeupLooks())
}

func TestCheckDuplicateCosmetic_MatchesThroughAliases(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	existing, err := s.AddCosmetic(ctx, domain.Cosmetic{
		Brand:    "Dior",
		Name:     "Addict Lip Glow",
		Category: "Lips",
		Color:    "Pink",
	})
	require.NoError(t, err)

	// Same product entered via the Japanese brand alias and different casing.
	dup, found := s.CheckDuplicateCosmetic(domain.Cosmetic{
		Brand:    "ディオール",
		Name:     "ADDICT LIP GLOW",
		Category: "リップ",
		Color:    "ピンク",
	})
	require.True(t, found)
	assert.Equal(t, existing.ID, dup.ID)
}

func TestCheckDuplicateCosmetic_ColorNumberDistinguishes(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCosmetic(ctx, domain.Cosmetic{
		Brand: "Dior", Name: "Rouge", Category: "Lips", Color: "Red", ColorNumber: "999",
	})
	require.NoError(t, err)

	_, found := s.CheckDuplicateCosmetic(domain.Cosmetic{
		Brand: "Dior", Name: "Rouge", Category: "Lips", Color: "Red", ColorNumber: "888",
	})
	assert.False(t, found)

	_, found = s.CheckDuplicateCosmetic(domain.Cosmetic{
		Brand: "Dior", Name: "Rouge", Category: "Lips", Color: "Red",
	})
	assert.False(t, found, "absent color number must not match a present one")
}

func TestCheckDuplicateCosmetic_IgnoresPurchaseFields(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	price := 4620.0
	existing, err := s.AddCosmetic(ctx, domain.Cosmetic{
		Brand: "Dior", Name: "Rouge", Category: "Lips", Color: "Red",
		PurchaseDate:    "2025-01-02",
		ExpiryDate:      "2026-01-02",
		RemainingAmount: "half",
		Price:           &price,
	})
	require.NoError(t, err)

	dup, found := s.CheckDuplicateCosmetic(domain.Cosmetic{
		Brand: "Dior", Name: "Rouge", Category: "Lips", Color: "Red",
		PurchaseDate:    "2026-08-29",
		RemainingAmount: "full",
	})
	require.True(t, found)
	assert.Equal(t, existing.ID, dup.ID)
}

func TestUpdateCosmeticWithDuplicate(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	existing, err := s.AddCosmetic(ctx, domain.Cosmetic{
		Brand: "Dior", Name: "Rouge", Category: "Lips", Color: "Red",
		Photo: []string{"data:image/webp;base64,original"},
	})
	require.NoError(t, err)

	updated, err := s.UpdateCosmeticWithDuplicate(ctx, existing.ID, domain.Cosmetic{
		Brand: "Dior", Name: "Rouge", Category: "Lips", Color: "Red",
		PurchaseDate: "2026-08-29",
		Memo:         "repurchase",
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, updated.ID)
	assert.Equal(t, existing.Photo, updated.Photo, "existing photos survive the merge")
	assert.Equal(t, existing.PurchaseCount+1, updated.PurchaseCount)
	assert.Equal(t, "2026-08-29", updated.PurchaseDate)
	assert.Equal(t, "repurchase", updated.Memo)

	_, err = s.UpdateCosmeticWithDuplicate(ctx, "cos-nope", domain.Cosmetic{})
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestDominantPersonalColor(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	add := func(pc domain.PersonalColor) string {
		t.Helper()
		c, err := s.AddCosmetic(ctx, domain.Cosmetic{
			Brand: "b", Name: string(pc), Category: "c", Color: "x", PersonalColor: pc,
		})
		require.NoError(t, err)
		return c.ID
	}

	blue1 := add(domain.PersonalColorBlue)
	blue2 := add(domain.PersonalColorBlue)
	yellow := add(domain.PersonalColorYellow)

	assert.Equal(t, domain.PersonalColorBlue,
		s.DominantPersonalColor([]string{blue1, blue2, yellow}))

	// Tie lands on neutral.
	assert.Equal(t, domain.PersonalColorNeutral,
		s.DominantPersonalColor([]string{blue1, yellow}))

	// Empty input and unknown IDs land on neutral.
	assert.Equal(t, domain.PersonalColorNeutral, s.DominantPersonalColor(nil))
	assert.Equal(t, domain.PersonalColorNeutral,
		s.DominantPersonalColor([]string{"cos-ghost"}))
}

func TestUserAliasTables(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AddUserBrand(ctx, domain.BrandAlias{
		CanonicalName: "Ohora", Aliases: []string{"オホーラ"},
	}))
	require.NoError(t, s.AddUserColor(ctx, domain.ColorAlias{
		CanonicalName: "Terracotta", Aliases: []string{"テラコッタ"},
		PersonalColor: domain.PersonalColorYellow,
	}))

	brands := s.UserBrands()
	require.Len(t, brands, 1)
	assert.Equal(t, []string{"Ohora", "オホーラ"}, brands[0].Aliases)

	// The combined view carries seeds plus the user entry.
	combined := s.CombinedBrands()
	assert.Greater(t, len(combined), 1)
	assert.Equal(t, "Ohora", combined[len(combined)-1].CanonicalName)
}

func TestCombinedTables_UserEntryOverridesSeed(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Pink is a seed color; the user reclassifies it.
	require.NoError(t, s.AddUserColor(ctx, domain.ColorAlias{
		CanonicalName: "Pink", Aliases: []string{"Pink"},
		PersonalColor: domain.PersonalColorYellow,
	}))

	var got *domain.ColorAlias
	seen := map[string]int{}
	for _, e := range s.CombinedColors() {
		seen[e.CanonicalName]++
		if e.CanonicalName == "Pink" {
			entry := e
			got = &entry
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, 1, seen["Pink"], "one entry per canonical name")
	assert.Equal(t, domain.PersonalColorYellow, got.PersonalColor)
}

func TestViewModeAndCursorPersistence(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetMakeupListViewMode(ctx, domain.ViewModeLookbook))
	require.NoError(t, s.SetCosmeticListViewMode(ctx, domain.ViewModeList))
	require.NoError(t, s.SetLookbookIndex(ctx, 3))
	require.NoError(t, s.SetLookbookPhotoIndex(ctx, 2))

	// A store reopened from the same repository sees the view state.
	reopened, err := store.New(ctx, repo, nil)
	require.NoError(t, err)
	snap := reopened.Snapshot()
	assert.Equal(t, domain.ViewModeLookbook, snap.MakeupListViewMode)
	assert.Equal(t, domain.ViewModeList, snap.CosmeticListViewMode)
	assert.Equal(t, 3, snap.LookbookIndex)
	assert.Equal(t, 2, snap.LookbookPhotoIndex)
}

func TestRestore_ReplacesEntireState(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddCosmetic(ctx, domain.Cosmetic{Brand: "old", Name: "old", Category: "c", Color: "x"})
	require.NoError(t, err)

	incoming := domain.NewSnapshot()
	incoming.Cosmetics = []domain.Cosmetic{{
		ID: "cos-restored", Brand: "new", Name: "new", Category: "c", Color: "x",
		PersonalColor: domain.PersonalColorBlue,
	}}

	require.NoError(t, s.Restore(ctx, incoming))

	cosmetics := s.ListCosmetics()
	require.Len(t, cosmetics, 1)
	assert.Equal(t, "cos-restored", cosmetics[0].ID)
}

func TestRestore_PersistFailureKeepsPriorState(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddCosmetic(ctx, domain.Cosmetic{Brand: "keep", Name: "keep", Category: "c", Color: "x"})
	require.NoError(t, err)
	before := repo.Stored()

	repo.SaveErr = fmt.Errorf("disk full")
	err = s.Restore(ctx, domain.NewSnapshot())
	require.Error(t, err)

	cosmetics := s.ListCosmetics()
	require.Len(t, cosmetics, 1)
	assert.Equal(t, added.ID, cosmetics[0].ID)
	assert.Equal(t, before, repo.Stored())
}

func TestSnapshot_ReturnsDeepCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	added, err := s.AddCosmetic(ctx, domain.Cosmetic{Brand: "b", Name: "n", Category: "c", Color: "x"})
	require.NoError(t, err)

	snap := s.Snapshot()
	snap.Cosmetics[0].Name = "mutated"

	got, err := s.GetCosmetic(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "n", got.Name)
}
