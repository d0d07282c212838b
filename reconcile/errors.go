// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package reconcile

import (
	"fmt"

	"codeberg.org/chillnote/i18nkit/extract"
)

// CoverageKind names what is wrong with a catalog key for one locale.
type CoverageKind string

const (
	MissingLocale CoverageKind = "missing-locale"
	StateNew      CoverageKind = "state-new"
	EmptyValue    CoverageKind = "empty-value"
)

// CoverageError is a required locale of a catalog key that is not ready
// to ship.
type CoverageError struct {
	Key    string
	Locale string
	Kind   CoverageKind
}

func (e *CoverageError) Error() string {
	switch e.Kind {
	case MissingLocale:
		return fmt.Sprintf(`[catalog] key="%s" missing locale="%s"`, e.Key, e.Locale)
	case StateNew:
		return fmt.Sprintf(`[catalog] key="%s" locale="%s" state=new`, e.Key, e.Locale)
	case EmptyValue:
		return fmt.Sprintf(`[catalog] key="%s" locale="%s" empty value`, e.Key, e.Locale)
	default:
		return fmt.Sprintf(`[catalog] key="%s" locale="%s" %s`, e.Key, e.Locale, e.Kind)
	}
}

// OrphanLiteralError is a static literal in source that has no catalog
// entry.
type OrphanLiteralError struct {
	// Tag prefixes the message, usually the source language.
	Tag     string
	Literal extract.Literal
}

func (e *OrphanLiteralError) Error() string {
	return fmt.Sprintf(`[%s] %s:%d literal not in catalog: "%s"`,
		e.Tag, e.Literal.File, e.Literal.Line, e.Literal.Key)
}
