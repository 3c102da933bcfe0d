// Package migrate upgrades persisted snapshots across schema versions.
//
// The engine is an ordered list of steps, each gated on the snapshot version
// being below the version that introduced it. A snapshot already at the
// current version passes through unchanged, so running the engine twice is
// the same as running it once.
package migrate

import (
	"bytes"
	"encoding/json/v2"
	"fmt"
	"log/slog"

	"github.com/cosmezukan/cosme-server/internal/domain"
)

// Step is a single schema upgrade applied to the raw decoded snapshot.
type Step struct {
	// Introduced is the schema version this step brings a snapshot up to.
	// The step runs only when the input version is below it.
	Introduced int
	Name       string
	Apply      func(state map[string]any)
}

// steps must stay ordered by Introduced.
//
//nolint:gochecknoglobals // The migration table is the package's reason to exist
var steps = []Step{
	{Introduced: 1, Name: "structured-alias-tables", Apply: coerceAliasTables},
	{Introduced: 2, Name: "normalize-personal-colors", Apply: normalizePersonalColors},
}

// Run upgrades a raw persisted snapshot to the current schema version.
// Malformed input never propagates an error past this point: the engine
// degrades to an empty snapshot instead.
func Run(raw []byte, logger *slog.Logger) *domain.Snapshot {
	snap, err := Parse(raw)
	if err != nil {
		if logger != nil {
			logger.Warn("stored snapshot unreadable, starting empty", "error", err)
		}
		return domain.NewSnapshot()
	}
	return snap
}

// Parse upgrades a raw snapshot and returns an error for malformed input
// instead of degrading. The restore path uses this so a bad backup file can
// fail atomically without touching current state.
func Parse(raw []byte) (*domain.Snapshot, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("empty snapshot payload")
	}

	var state map[string]any
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("snapshot payload is not an object")
	}

	version := versionOf(state)
	for _, step := range steps {
		if version < step.Introduced {
			step.Apply(state)
		}
	}
	state["schemaVersion"] = domain.CurrentSchemaVersion

	upgraded, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("re-encode snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(upgraded, &snap); err != nil {
		return nil, fmt.Errorf("decode upgraded snapshot: %w", err)
	}
	snap.Normalize()
	snap.SchemaVersion = domain.CurrentSchemaVersion
	return &snap, nil
}

// versionOf reads schemaVersion from the raw state. Missing or invalid
// values mean version 0, so every step applies.
func versionOf(state map[string]any) int {
	switch v := state["schemaVersion"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

// coerceAliasTables (v0 -> v1) rewrites the three user alias tables into
// structured entries. Legacy snapshots stored bare strings; color entries
// may carry the old {name, personalColor} shape.
func coerceAliasTables(state map[string]any) {
	state["userBrands"] = coerceNameTable(state["userBrands"])
	state["userCategories"] = coerceNameTable(state["userCategories"])
	state["userColors"] = coerceColorTable(state["userColors"])
}

func coerceNameTable(raw any) []any {
	list, ok := raw.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			if v == "" {
				continue
			}
			out = append(out, map[string]any{
				"canonicalName": v,
				"aliases":       []any{v},
			})
		case map[string]any:
			canonical, _ := v["canonicalName"].(string)
			if canonical == "" {
				continue
			}
			if _, ok := v["aliases"].([]any); !ok {
				v["aliases"] = []any{canonical}
			}
			out = append(out, v)
		default:
			// Malformed entry: skipped, not fatal.
		}
	}
	return out
}

func coerceColorTable(raw any) []any {
	list, ok := raw.([]any)
	if !ok {
		return []any{}
	}
	out := make([]any, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			if v == "" {
				continue
			}
			out = append(out, map[string]any{
				"canonicalName": v,
				"aliases":       []any{v},
				"personalColor": string(domain.PersonalColorNeutral),
			})
		case map[string]any:
			canonical, _ := v["canonicalName"].(string)
			if canonical == "" {
				// Legacy {name, personalColor} shape.
				canonical, _ = v["name"].(string)
			}
			if canonical == "" {
				continue
			}
			entry := map[string]any{"canonicalName": canonical}
			if aliases, ok := v["aliases"].([]any); ok {
				entry["aliases"] = aliases
			} else {
				entry["aliases"] = []any{canonical}
			}
			pc, _ := v["personalColor"].(string)
			entry["personalColor"] = string(domain.PersonalColor(pc).OrNeutral())
			out = append(out, entry)
		default:
		}
	}
	return out
}

// normalizePersonalColors (v1 -> v2) rewrites any cosmetic personalColor
// outside {blue, yellow, neutral} to neutral. All other fields untouched.
func normalizePersonalColors(state map[string]any) {
	list, ok := state["cosmetics"].([]any)
	if !ok {
		return
	}
	for _, item := range list {
		cosmetic, ok := item.(map[string]any)
		if !ok {
			continue
		}
		pc, _ := cosmetic["personalColor"].(string)
		if !domain.PersonalColor(pc).Valid() {
			cosmetic["personalColor"] = string(domain.PersonalColorNeutral)
		}
	}
}
