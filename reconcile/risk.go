// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package reconcile

import (
	"strings"
	"unicode/utf8"

	"codeberg.org/chillnote/i18nkit/extract"
)

// Risk is the translation risk of a literal.
type Risk string

const (
	RiskHigh   Risk = "high"
	RiskMedium Risk = "medium"
	RiskLow    Risk = "low"
)

// LongLiteral is the length in code points above which a literal is at
// least medium risk.
const LongLiteral = 48

// formatMarkers make a literal high risk.
var formatMarkers = []string{extract.InterpolationMarker, "%@", "%lld"}

// Classify returns the risk of literal. Placeholders win over length.
func Classify(literal string) Risk {
	for _, marker := range formatMarkers {
		if strings.Contains(literal, marker) {
			return RiskHigh
		}
	}

	if utf8.RuneCountInString(literal) > LongLiteral {
		return RiskMedium
	}

	return RiskLow
}
