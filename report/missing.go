// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"codeberg.org/chillnote/i18nkit/reconcile"
)

// MaxMissingRows caps the table of the missing keys report.
const MaxMissingRows = 400

var cellEscaper = strings.NewReplacer("|", `\|`)

// WriteMissing writes the Markdown missing keys report. The total counts
// every row of missing; the table lists at most MaxMissingRows of them.
func WriteMissing(w io.Writer, missing []reconcile.Row) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Missing Localization Keys Report v1")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "- Total missing literals: %d\n", len(missing))

	shown := missing
	if len(shown) > MaxMissingRows {
		shown = shown[:MaxMissingRows]
		fmt.Fprintf(bw, "- Showing first %d entries\n", MaxMissingRows)
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Key | File | Line | Dynamic |")
	fmt.Fprintln(bw, "| --- | --- | ---: | :---: |")

	for _, r := range shown {
		dynamic := "no"
		if r.Dynamic {
			dynamic = "yes"
		}

		fmt.Fprintf(bw, "| `%s` | `%s` | %d | %s |\n", cellEscaper.Replace(r.Key), r.File, r.Line, dynamic)
	}

	return bw.Flush()
}
