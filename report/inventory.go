// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"codeberg.org/chillnote/i18nkit/reconcile"
)

var inventoryHeader = []string{"key", "file", "line", "context", "is_dynamic", "in_catalog", "risk"}

// WriteInventory writes rows as CSV with a header row.
func WriteInventory(w io.Writer, rows []reconcile.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(inventoryHeader); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			r.Key,
			r.File,
			strconv.Itoa(r.Line),
			r.Context,
			strconv.FormatBool(r.Dynamic),
			strconv.FormatBool(r.InCatalog),
			string(r.Risk),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
