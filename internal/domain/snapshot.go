package domain

// CurrentSchemaVersion is the schema version written into every persisted
// snapshot. Older versions are upgraded by the migrate package on load.
const CurrentSchemaVersion = 2

// View modes for the two list screens.
const (
	ViewModeGrid     = "grid"
	ViewModeList     = "list"
	ViewModeLookbook = "lookbook"
	ViewModeCollage  = "collage"
)

// Snapshot is the full persisted state of the catalog: both record
// collections, the three user alias tables, and the UI view-mode fields.
// Persistence, backup, and restore all treat it as one atomic blob.
type Snapshot struct {
	Cosmetics            []Cosmetic      `json:"cosmetics"`
	MakeupLooks          []MakeupLook    `json:"makeupLooks"`
	UserColors           []ColorAlias    `json:"userColors"`
	UserBrands           []BrandAlias    `json:"userBrands"`
	UserCategories       []CategoryAlias `json:"userCategories"`
	MakeupListViewMode   string          `json:"makeupListViewMode"`
	CosmeticListViewMode string          `json:"cosmeticListViewMode"`
	LookbookIndex        int             `json:"lookbookIndex"`
	LookbookPhotoIndex   int             `json:"lookbookPhotoIndex"`
	SchemaVersion        int             `json:"schemaVersion"`
}

// NewSnapshot returns an empty snapshot at the current schema version.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Cosmetics:            []Cosmetic{},
		MakeupLooks:          []MakeupLook{},
		UserColors:           []ColorAlias{},
		UserBrands:           []BrandAlias{},
		UserCategories:       []CategoryAlias{},
		MakeupListViewMode:   ViewModeGrid,
		CosmeticListViewMode: ViewModeGrid,
		SchemaVersion:        CurrentSchemaVersion,
	}
}

// Clone returns a deep copy. Mutations operate on a clone so readers never
// observe a snapshot mid-change.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Cosmetics:            make([]Cosmetic, len(s.Cosmetics)),
		MakeupLooks:          make([]MakeupLook, len(s.MakeupLooks)),
		UserColors:           make([]ColorAlias, len(s.UserColors)),
		UserBrands:           make([]BrandAlias, len(s.UserBrands)),
		UserCategories:       make([]CategoryAlias, len(s.UserCategories)),
		MakeupListViewMode:   s.MakeupListViewMode,
		CosmeticListViewMode: s.CosmeticListViewMode,
		LookbookIndex:        s.LookbookIndex,
		LookbookPhotoIndex:   s.LookbookPhotoIndex,
		SchemaVersion:        s.SchemaVersion,
	}
	for i, c := range s.Cosmetics {
		out.Cosmetics[i] = c.Clone()
	}
	for i, m := range s.MakeupLooks {
		out.MakeupLooks[i] = m.Clone()
	}
	for i, a := range s.UserColors {
		out.UserColors[i] = a.Clone()
	}
	for i, a := range s.UserBrands {
		out.UserBrands[i] = a.Clone()
	}
	for i, a := range s.UserCategories {
		out.UserCategories[i] = a.Clone()
	}
	return out
}

// Normalize fills zero-value view state with defaults. Called after decoding
// snapshots from disk or restore payloads.
func (s *Snapshot) Normalize() {
	if s.Cosmetics == nil {
		s.Cosmetics = []Cosmetic{}
	}
	if s.MakeupLooks == nil {
		s.MakeupLooks = []MakeupLook{}
	}
	if s.UserColors == nil {
		s.UserColors = []ColorAlias{}
	}
	if s.UserBrands == nil {
		s.UserBrands = []BrandAlias{}
	}
	if s.UserCategories == nil {
		s.UserCategories = []CategoryAlias{}
	}
	if s.MakeupListViewMode == "" {
		s.MakeupListViewMode = ViewModeGrid
	}
	if s.CosmeticListViewMode == "" {
		s.CosmeticListViewMode = ViewModeGrid
	}
	if s.LookbookIndex < 0 {
		s.LookbookIndex = 0
	}
	if s.LookbookPhotoIndex < 0 {
		s.LookbookPhotoIndex = 0
	}
}
