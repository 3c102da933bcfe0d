package domain

// NameAlias maps a canonical spelling to the set of accepted input spellings.
// The canonical name itself is always part of the alias list by construction.
// Canonical names are case-insensitively unique within a table.
type NameAlias struct {
	CanonicalName string   `json:"canonicalName"`
	Aliases       []string `json:"aliases"`
}

// Canonical returns the canonical spelling.
func (a NameAlias) Canonical() string { return a.CanonicalName }

// Spellings returns every accepted spelling.
func (a NameAlias) Spellings() []string { return a.Aliases }

// Clone returns a deep copy.
func (a NameAlias) Clone() NameAlias {
	out := a
	if a.Aliases != nil {
		out.Aliases = append([]string(nil), a.Aliases...)
	}
	return out
}

// BrandAlias and CategoryAlias share the NameAlias shape; the distinct names
// keep call sites readable.
type (
	BrandAlias    = NameAlias
	CategoryAlias = NameAlias
)

// ColorAlias is a NameAlias that additionally classifies the color's
// personal-color compatibility. The classification is overwritten by the most
// recent upsert, not preserved from the original entry.
type ColorAlias struct {
	CanonicalName string        `json:"canonicalName"`
	Aliases       []string      `json:"aliases"`
	PersonalColor PersonalColor `json:"personalColor"`
}

// Canonical returns the canonical spelling.
func (a ColorAlias) Canonical() string { return a.CanonicalName }

// Spellings returns every accepted spelling.
func (a ColorAlias) Spellings() []string { return a.Aliases }

// Clone returns a deep copy.
func (a ColorAlias) Clone() ColorAlias {
	out := a
	if a.Aliases != nil {
		out.Aliases = append([]string(nil), a.Aliases...)
	}
	return out
}
