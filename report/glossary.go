// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	_ "embed"
	"io"
)

//go:embed glossary_v1.md
var glossary []byte

// WriteGlossary writes the translator glossary.
func WriteGlossary(w io.Writer) error {
	_, err := w.Write(glossary)

	return err
}
