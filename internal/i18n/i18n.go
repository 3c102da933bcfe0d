// Package i18n serves the bilingual UI dictionary. English and Japanese
// dictionaries are compiled in; locale negotiation follows Accept-Language
// with a configurable default.
package i18n

import (
	"embed"
	"encoding/json/v2"
	"fmt"

	"golang.org/x/text/language"

	"github.com/cosmezukan/cosme-server/internal/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

// supported locales, in matcher priority order. The first entry is the
// fallback when negotiation fails entirely.
var supported = []language.Tag{language.English, language.Japanese}

// Bundle holds the compiled-in dictionaries.
type Bundle struct {
	defaultTag language.Tag
	matcher    language.Matcher
	dicts      map[language.Tag]map[string]string
}

// NewBundle loads the embedded dictionaries. defaultLocale ("en" or "ja")
// wins when the client expresses no preference.
func NewBundle(defaultLocale string) (*Bundle, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	dicts := make(map[language.Tag]map[string]string, len(supported))
	for _, tag := range supported {
		raw, err := localeFS.ReadFile("locales/" + tag.String() + ".json")
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", tag, err)
		}
		var dict map[string]string
		if err := json.Unmarshal(raw, &dict); err != nil {
			return nil, fmt.Errorf("decode locale %s: %w", tag, err)
		}
		dicts[tag] = dict
	}

	return &Bundle{
		defaultTag: defaultTag,
		matcher:    language.NewMatcher(supported),
		dicts:      dicts,
	}, nil
}

// Resolve negotiates a supported locale from an Accept-Language header.
// An empty header yields the configured default.
func (b *Bundle) Resolve(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return b.resolveTag(b.defaultTag)
	}
	tag, _ := language.MatchStrings(b.matcher, acceptLanguage)
	return b.resolveTag(tag)
}

// resolveTag maps a matcher result back onto one of the supported base tags.
func (b *Bundle) resolveTag(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, s := range supported {
		sb, _ := s.Base()
		if sb == base {
			return s
		}
	}
	return language.English
}

// Dictionary returns the full dictionary for a locale. The returned map is
// shared; callers must not modify it.
func (b *Bundle) Dictionary(tag language.Tag) map[string]string {
	if dict, ok := b.dicts[b.resolveTag(tag)]; ok {
		return dict
	}
	return b.dicts[language.English]
}

// T translates a key for the given locale, falling back to English, then to
// the key itself. Missing keys are never an error.
func (b *Bundle) T(tag language.Tag, key string) string {
	if v, ok := b.Dictionary(tag)[key]; ok {
		return v
	}
	if v, ok := b.dicts[language.English][key]; ok {
		return v
	}
	return key
}

// PersonalColorLabel returns the localized label for a personal-color class.
func (b *Bundle) PersonalColorLabel(tag language.Tag, pc domain.PersonalColor) string {
	return b.T(tag, "personalColor."+string(pc.OrNeutral()))
}
