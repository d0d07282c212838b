// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// BaseLocale is the default fallback locale of a catalog.
const BaseLocale = "en"

var (
	errEmptyLocaleSet  = errors.New("locale set is empty")
	errDuplicateLocale = errors.New("duplicate locale")
	errInvalidLocale   = errors.New("invalid locale identifier")
)

// LocaleSet is an ordered, duplicate-free list of locale identifiers
// that every catalog entry must cover.
//
// The zero value is an empty set. Construct validated sets with
// [ParseLocaleSet]; tests may build a LocaleSet literal directly.
type LocaleSet []string

// ParseLocale parses id as a BCP 47 tag.
func ParseLocale(id string) (language.Tag, error) {
	if id == "" {
		return language.Und, fmt.Errorf("%w: empty", errInvalidLocale)
	}

	tag, err := language.Parse(id)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %w", errInvalidLocale, id, err)
	}

	return tag, nil
}

// ParseLocaleSet validates ids and returns them as a LocaleSet in the
// given order.
//
// Two identifiers that canonicalise to the same tag (for example "pt-BR"
// and "pt_br") are rejected as duplicates. Identifiers that are valid but
// not in canonical form are kept verbatim and logged, since the catalog
// compares locale keys byte for byte.
func ParseLocaleSet(ids []string) (LocaleSet, error) {
	if len(ids) == 0 {
		return nil, errEmptyLocaleSet
	}

	seen := make(map[string]string, len(ids))
	out := make(LocaleSet, 0, len(ids))

	for _, id := range ids {
		tag, err := ParseLocale(id)
		if err != nil {
			return nil, err
		}

		canonical := tag.String()
		if prev, ok := seen[canonical]; ok {
			return nil, fmt.Errorf("%w: %q and %q", errDuplicateLocale, prev, id)
		}

		seen[canonical] = id

		if canonical != id {
			log.Warn().
				Str("sys", "i18n").
				Str("locale", id).
				Str("canonical", canonical).
				Msg("Locale identifier is not in canonical form; catalog keys must match it exactly")
		}

		out = append(out, id)
	}

	return out, nil
}

// Contains reports whether id is a member of the set.
func (s LocaleSet) Contains(id string) bool {
	return slices.Contains(s, id)
}
