// Package alias resolves free-text brand/category/color input to canonical
// names and maintains the user-extensible alias tables.
//
// Lookups search the built-in seed table first, then the user table; the
// combined view is built fresh on every read so late-arriving user entries
// are always visible.
package alias

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"

	"github.com/cosmezukan/cosme-server/internal/domain"
)

// Entry is any alias-table row: a canonical spelling plus accepted spellings.
type Entry interface {
	Canonical() string
	Spellings() []string
}

// Fold normalizes a spelling for comparison: trims space, folds full-width
// and half-width forms (ﾃﾞｨｵｰﾙ == ディオール, Ｄｉｏｒ == Dior), applies NFKC,
// and lowercases. Comparison only; stored values keep their original casing.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	s = width.Fold.String(s)
	s = norm.NFKC.String(s)
	return strings.ToLower(s)
}

// Resolve scans every alias in the given tables, in order, and returns the
// canonical name of the first entry whose alias list contains a folded match.
// Entries with an empty canonical name are skipped, not fatal.
func Resolve[E Entry](input string, tables ...[]E) (string, bool) {
	folded := Fold(input)
	if folded == "" {
		return "", false
	}
	for _, table := range tables {
		for _, entry := range table {
			if strings.TrimSpace(entry.Canonical()) == "" {
				continue
			}
			for _, spelling := range entry.Spellings() {
				if Fold(spelling) == folded {
					return entry.Canonical(), true
				}
			}
		}
	}
	return "", false
}

// ResolveOrFold resolves input to a canonical name, falling back to the
// folded raw input when no table matches. Used by duplicate detection so
// unresolved values still compare case-insensitively.
func ResolveOrFold[E Entry](input string, tables ...[]E) string {
	if canonical, ok := Resolve(input, tables...); ok {
		return Fold(canonical)
	}
	return Fold(input)
}

// mergeSpellings unions incoming spellings into existing: folded de-dup,
// first-seen casing wins, existing order preserved, new ones appended.
func mergeSpellings(existing, incoming []string) []string {
	out := make([]string, 0, len(existing)+len(incoming))
	seen := make(map[string]bool, len(existing)+len(incoming))
	for _, s := range existing {
		key := Fold(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	for _, s := range incoming {
		key := Fold(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// withCanonical guarantees the canonical name appears in the alias list.
func withCanonical(canonical string, aliases []string) []string {
	return mergeSpellings([]string{canonical}, aliases)
}

// UpsertName applies an entry to a brand or category table. If an entry with
// a folded-equal canonical name exists, the alias lists are unioned;
// otherwise the entry is appended. Entries with an empty canonical name are
// ignored. The input table is not modified.
func UpsertName(table []domain.NameAlias, entry domain.NameAlias) []domain.NameAlias {
	if strings.TrimSpace(entry.CanonicalName) == "" {
		return table
	}
	key := Fold(entry.CanonicalName)
	out := make([]domain.NameAlias, len(table))
	for i, existing := range table {
		out[i] = existing.Clone()
		if Fold(existing.CanonicalName) == key {
			out[i].Aliases = mergeSpellings(
				withCanonical(existing.CanonicalName, existing.Aliases),
				entry.Aliases,
			)
			// Merge found: copy the remainder untouched.
			for j := i + 1; j < len(table); j++ {
				out[j] = table[j].Clone()
			}
			return out
		}
	}
	appended := entry.Clone()
	appended.Aliases = withCanonical(appended.CanonicalName, appended.Aliases)
	return append(out, appended)
}

// UpsertColor is UpsertName for the color table. A merge additionally
// overwrites the personal-color classification with the incoming value.
func UpsertColor(table []domain.ColorAlias, entry domain.ColorAlias) []domain.ColorAlias {
	if strings.TrimSpace(entry.CanonicalName) == "" {
		return table
	}
	key := Fold(entry.CanonicalName)
	out := make([]domain.ColorAlias, len(table))
	for i, existing := range table {
		out[i] = existing.Clone()
		if Fold(existing.CanonicalName) == key {
			out[i].Aliases = mergeSpellings(
				withCanonical(existing.CanonicalName, existing.Aliases),
				entry.Aliases,
			)
			out[i].PersonalColor = entry.PersonalColor.OrNeutral()
			for j := i + 1; j < len(table); j++ {
				out[j] = table[j].Clone()
			}
			return out
		}
	}
	appended := entry.Clone()
	appended.Aliases = withCanonical(appended.CanonicalName, appended.Aliases)
	appended.PersonalColor = appended.PersonalColor.OrNeutral()
	return append(out, appended)
}

// PersonalColorFor returns the personal-color class of a color input,
// resolving through the seed table then the user table. Unresolved colors
// are neutral.
func PersonalColorFor(input string, userColors []domain.ColorAlias) domain.PersonalColor {
	folded := Fold(input)
	if folded == "" {
		return domain.PersonalColorNeutral
	}
	for _, table := range [][]domain.ColorAlias{SeedColors, userColors} {
		for _, entry := range table {
			for _, spelling := range entry.Spellings() {
				if Fold(spelling) == folded {
					return entry.PersonalColor.OrNeutral()
				}
			}
		}
	}
	return domain.PersonalColorNeutral
}
