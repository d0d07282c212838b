// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package reconcile cross-references extracted literals with a catalog.
package reconcile

import (
	"iter"

	"github.com/rs/zerolog/log"

	"codeberg.org/chillnote/i18nkit/catalog"
	"codeberg.org/chillnote/i18nkit/extract"
	"codeberg.org/chillnote/i18nkit/i18n"
)

// KeySet is the set of catalog keys. *catalog.Catalog implements it.
type KeySet interface {
	Has(key string) bool
}

// Row is one line of the string inventory.
type Row struct {
	extract.Literal
	InCatalog bool
	Risk      Risk
}

// Inventory pairs every literal with its catalog coverage and risk, in
// extraction order. Literals are not deduplicated. It stops at the first
// extraction error.
func Inventory(literals iter.Seq2[extract.Literal, error], keys KeySet) ([]Row, error) {
	var rows []Row

	for lit, err := range literals {
		if err != nil {
			return nil, err
		}

		rows = append(rows, Row{
			Literal:   lit,
			InCatalog: keys.Has(lit.Key),
			Risk:      Classify(lit.Key),
		})
	}

	log.Debug().
		Str("sys", "reconcile").
		Int("rows", len(rows)).
		Int("missing", len(Missing(rows))).
		Msg("Built inventory")

	return rows, nil
}

// Missing returns the rows whose key is not in the catalog.
func Missing(rows []Row) []Row {
	var out []Row

	for _, r := range rows {
		if !r.InCatalog {
			out = append(out, r)
		}
	}

	return out
}

// CheckCatalog returns a *CoverageError for every catalog key and required
// locale pair that is missing, still new, or has no value. A pair without
// a unit gets only the missing-locale error.
func CheckCatalog(cat *catalog.Catalog, locales i18n.LocaleSet) []error {
	var errs []error

	for _, key := range cat.Keys() {
		entry, _ := cat.Entry(key)

		for _, locale := range locales {
			unit, ok := entry.Unit(locale)
			if !ok {
				errs = append(errs, &CoverageError{Key: key, Locale: locale, Kind: MissingLocale})

				continue
			}

			if unit.HasState && unit.State == catalog.StateNew {
				errs = append(errs, &CoverageError{Key: key, Locale: locale, Kind: StateNew})
			}

			if unit.Value == "" {
				errs = append(errs, &CoverageError{Key: key, Locale: locale, Kind: EmptyValue})
			}
		}
	}

	return errs
}

// CheckLiterals returns an *OrphanLiteralError for every static literal
// whose key is not in keys. Dynamic literals are exempt. The second result
// is the extraction error that stopped the scan, if any.
func CheckLiterals(literals iter.Seq2[extract.Literal, error], keys KeySet, tag string) ([]error, error) {
	var errs []error

	for lit, err := range literals {
		if err != nil {
			return errs, err
		}

		if lit.Dynamic || keys.Has(lit.Key) {
			continue
		}

		errs = append(errs, &OrphanLiteralError{Tag: tag, Literal: lit})
	}

	return errs, nil
}
