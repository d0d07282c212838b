// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/chillnote/i18nkit/extract"
	"codeberg.org/chillnote/i18nkit/reconcile"
)

func row(key string, line int, inCatalog bool) reconcile.Row {
	lit := extract.Literal{
		Key:     key,
		File:    "chillnote/Views/NoteView.swift",
		Line:    line,
		Context: "Text",
		Dynamic: extract.IsDynamic(key),
	}

	return reconcile.Row{Literal: lit, InCatalog: inCatalog, Risk: reconcile.Classify(key)}
}

func TestWriteInventory(t *testing.T) {
	t.Parallel()

	rows := []reconcile.Row{
		row("Save", 3, true),
		row(`Deleted \(count) notes`, 8, false),
		row("Say \"hi\", friend", 9, false),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteInventory(&buf, rows))

	want := "key,file,line,context,is_dynamic,in_catalog,risk\n" +
		"Save,chillnote/Views/NoteView.swift,3,Text,false,true,low\n" +
		`Deleted \(count) notes,chillnote/Views/NoteView.swift,8,Text,true,false,high` + "\n" +
		`"Say ""hi"", friend",chillnote/Views/NoteView.swift,9,Text,false,false,low` + "\n"
	assert.Equal(t, want, buf.String())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Say \"hi\", friend", records[3][0])
}

func TestWriteMissing(t *testing.T) {
	t.Parallel()

	missing := []reconcile.Row{
		row("a|b", 4, false),
		row(`Hi \(name)`, 5, false),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMissing(&buf, missing))

	want := "# Missing Localization Keys Report v1\n" +
		"\n" +
		"- Total missing literals: 2\n" +
		"\n" +
		"| Key | File | Line | Dynamic |\n" +
		"| --- | --- | ---: | :---: |\n" +
		"| `a\\|b` | `chillnote/Views/NoteView.swift` | 4 | no |\n" +
		"| `Hi \\(name)` | `chillnote/Views/NoteView.swift` | 5 | yes |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMissing_Cap(t *testing.T) {
	t.Parallel()

	missing := make([]reconcile.Row, 450)
	for i := range missing {
		missing[i] = row(fmt.Sprintf("key %d", i), i+1, false)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMissing(&buf, missing))

	out := buf.String()
	assert.Contains(t, out, "- Total missing literals: 450\n")
	assert.Contains(t, out, "- Showing first 400 entries\n")
	assert.Contains(t, out, "`key 399`")
	assert.NotContains(t, out, "`key 400`")

	tableRows := strings.Count(out, "| `key ")
	assert.Equal(t, MaxMissingRows, tableRows)
}

func TestWriteGlossary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteGlossary(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# ChillNote Glossary v1\n"))
	assert.Contains(t, out, "- Recycle Bin: 回收站\n")
	assert.True(t, strings.HasSuffix(out, "- 错误提示：先说问题，再给动作建议。\n"))
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "docs", "i18n")
	rows := []reconcile.Row{row("Save", 1, true), row("Orphan", 2, false)}

	paths, err := Generate(dir, rows)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, InventoryFile),
		filepath.Join(dir, MissingFile),
		filepath.Join(dir, GlossaryFile),
	}, paths)

	missing, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(missing), "- Total missing literals: 1\n")
	assert.Contains(t, string(missing), "`Orphan`")
	assert.NotContains(t, string(missing), "`Save`")

	info, err := os.Stat(paths[0])
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// A second run overwrites in place.
	_, err = Generate(dir, rows[:1])
	require.NoError(t, err)

	missing, err = os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Contains(t, string(missing), "- Total missing literals: 0\n")
}
