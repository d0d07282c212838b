// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package normalize backfills a catalog so that every required locale of
// every key has a translated, non-empty unit.
package normalize

import (
	"github.com/rs/zerolog/log"

	"codeberg.org/chillnote/i18nkit/catalog"
	"codeberg.org/chillnote/i18nkit/i18n"
)

// Options configures Catalog.
type Options struct {
	Locales i18n.LocaleSet
	// FallbackLocale supplies the value copied into missing units.
	// Empty means i18n.BaseLocale.
	FallbackLocale string
}

// Stats counts the changes made by Catalog.
type Stats struct {
	Keys         int
	UnitsCreated int
	ValuesFilled int
	StatesFixed  int
}

// Changed reports whether the catalog was modified.
func (s Stats) Changed() bool {
	return s.UnitsCreated+s.ValuesFilled+s.StatesFixed > 0
}

// Catalog returns a normalized copy of in; in is not modified.
//
// For every entry and required locale a missing or malformed unit is
// created, an empty value is set to the fallback, and an absent or new
// state becomes translated. The fallback is the fallback locale's value
// when non-empty, otherwise the key itself. Then every remaining unit of
// the entry in state new, required or not, is marked translated without
// touching its value.
//
// Normalizing a normalized catalog changes nothing.
func Catalog(in *catalog.Catalog, opts Options) (*catalog.Catalog, Stats) {
	fallbackLocale := opts.FallbackLocale
	if fallbackLocale == "" {
		fallbackLocale = i18n.BaseLocale
	}

	out := in.Clone()
	stats := Stats{Keys: out.Len()}

	for _, key := range out.Keys() {
		entry, _ := out.Entry(key)
		fallback := fallbackValue(entry, fallbackLocale)

		for _, locale := range opts.Locales {
			unit, ok := entry.Unit(locale)
			if !ok {
				entry.ResetUnit(locale)

				stats.UnitsCreated++
			}

			if unit.Value == "" {
				entry.SetValue(locale, fallback)

				stats.ValuesFilled++
			}

			if !unit.HasState || unit.State == catalog.StateNew {
				entry.SetState(locale, catalog.StateTranslated)

				stats.StatesFixed++
			}
		}

		for _, locale := range entry.Locales() {
			unit, ok := entry.Unit(locale)
			if ok && unit.HasState && unit.State == catalog.StateNew {
				entry.SetState(locale, catalog.StateTranslated)

				stats.StatesFixed++
			}
		}
	}

	log.Debug().
		Str("sys", "normalize").
		Int("keys", stats.Keys).
		Int("created", stats.UnitsCreated).
		Int("filled", stats.ValuesFilled).
		Int("fixed", stats.StatesFixed).
		Msg("Normalized catalog")

	return out, stats
}

func fallbackValue(entry *catalog.Entry, locale string) string {
	if unit, ok := entry.Unit(locale); ok && unit.Value != "" {
		return unit.Value
	}

	return entry.Key()
}
