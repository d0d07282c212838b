// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package report renders the localization reports.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"codeberg.org/chillnote/i18nkit/core/fileutil"
	"codeberg.org/chillnote/i18nkit/reconcile"
)

// Report file names inside the reports directory.
const (
	InventoryFile = "string_inventory_v1.csv"
	MissingFile   = "missing_keys_report_v1.md"
	GlossaryFile  = "glossary_v1.md"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

type document struct {
	name   string
	render func(w io.Writer) error
}

// Generate writes the inventory, the missing keys report and the glossary
// into dir and returns their paths in that order. Every document is
// rendered before the first file is written.
func Generate(dir string, rows []reconcile.Row) ([]string, error) {
	docs := []document{
		{InventoryFile, func(w io.Writer) error { return WriteInventory(w, rows) }},
		{MissingFile, func(w io.Writer) error { return WriteMissing(w, reconcile.Missing(rows)) }},
		{GlossaryFile, WriteGlossary},
	}

	rendered := make([][]byte, len(docs))

	for i, doc := range docs {
		var buf bytes.Buffer
		if err := doc.render(&buf); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", doc.name, err)
		}

		rendered[i] = buf.Bytes()
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	paths := make([]string, 0, len(docs))

	for i, doc := range docs {
		path := filepath.Join(dir, doc.name)
		if err := fileutil.WriteAtomic(path, rendered[i], filePermissions); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", doc.name, err)
		}

		log.Debug().
			Str("sys", "report").
			Str("path", path).
			Int("bytes", len(rendered[i])).
			Msg("Wrote report")

		paths = append(paths, path)
	}

	return paths, nil
}
