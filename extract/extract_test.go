// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gobwas/glob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()

	x, err := New(Options{
		Extension:    ".swift",
		Constructors: []string{"Text", "Button", "Label", "TextField"},
		Modifiers:    []string{"alert", "navigationTitle", "accessibilityLabel", "accessibilityHint"},
	})
	require.NoError(t, err)

	return x
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// TestScanFile_TextOnLine3 checks key, line, context and dynamic flag of a plain Text literal.
func TestScanFile_TextOnLine3(t *testing.T) {
	t.Parallel()

	x := newTestExtractor(t)
	src := "import SwiftUI\n\nText(\"Hello\")\n"

	got := x.ScanFile("View.swift", []byte(src))

	require.Len(t, got, 1)
	assert.Equal(t, Literal{Key: "Hello", File: "View.swift", Line: 3, Context: "Text", Dynamic: false}, got[0])
}

func TestScanFile(t *testing.T) {
	t.Parallel()

	x := newTestExtractor(t)

	tests := []struct {
		name string
		src  string
		want []Literal
	}{
		{
			name: "modifier context",
			src:  `List {}.navigationTitle("Notes")`,
			want: []Literal{{Key: "Notes", File: "f.swift", Line: 1, Context: ModifierContext}},
		},
		{
			name: "accessibility hint",
			src:  "Image(\"x\")\n  .accessibilityHint(\"Opens settings\")",
			want: []Literal{{Key: "Opens settings", File: "f.swift", Line: 2, Context: ModifierContext}},
		},
		{
			name: "dynamic literal",
			src:  `Text("Deleted \(count) notes")`,
			want: []Literal{{Key: `Deleted \(count) notes`, File: "f.swift", Line: 1, Context: "Text", Dynamic: true}},
		},
		{
			name: "escaped quote and newline",
			src:  `Button("Say \"hi\"\nnow") {}`,
			want: []Literal{{Key: "Say \"hi\"\nnow", File: "f.swift", Line: 1, Context: "Button"}},
		},
		{
			name: "whitespace before literal",
			src:  "Label(\n    \"Tags\", systemImage: \"tag\")",
			want: []Literal{{Key: "Tags", File: "f.swift", Line: 1, Context: "Label"}},
		},
		{
			name: "empty literal skipped",
			src:  `TextField("", text: $name)`,
			want: nil,
		},
		{
			name: "identifier suffix is not a construct",
			src:  `RichText("nope")`,
			want: nil,
		},
		{
			name: "second argument not matched",
			src:  `Text(verbatim: "raw")`,
			want: nil,
		},
		{
			name: "several literals keep source order",
			src:  "Text(\"A\")\nText(\"B\").alert(\"C\")",
			want: []Literal{
				{Key: "A", File: "f.swift", Line: 1, Context: "Text"},
				{Key: "B", File: "f.swift", Line: 2, Context: "Text"},
				{Key: "C", File: "f.swift", Line: 2, Context: ModifierContext},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, x.ScanFile("f.swift", []byte(tt.src)))
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb", Unescape(`a\nb`))
	assert.Equal(t, `say "x"`, Unescape(`say \"x\"`))
	// other escapes are left alone
	assert.Equal(t, `tab\there`, Unescape(`tab\there`))
}

func TestNew_NoConstructs(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Extension: ".swift"})
	assert.Error(t, err)
}

func TestNew_ModifiersOnly(t *testing.T) {
	t.Parallel()

	x, err := New(Options{Extension: ".swift", Modifiers: []string{"alert"}})
	require.NoError(t, err)

	got := x.ScanFile("f.swift", []byte(`Text("a").alert("b")`))
	assert.Equal(t, []Literal{{Key: "b", File: "f.swift", Line: 1, Context: ModifierContext}}, got)
}

func TestLiterals(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "One.swift"), `Text("One")`)
	writeFile(t, filepath.Join(root, "b", "Two.swift"), "\nButton(\"Two\") {}")
	writeFile(t, filepath.Join(root, "b", "notes.md"), `Text("ignored")`)

	x := newTestExtractor(t)

	collect := func() []Literal {
		var out []Literal

		for lit, err := range x.Literals(root) {
			require.NoError(t, err)

			out = append(out, lit)
		}

		return out
	}

	first := collect()
	require.Len(t, first, 2)
	assert.Equal(t, "One", first[0].Key)
	assert.Equal(t, filepath.Join(root, "a", "One.swift"), first[0].File)
	assert.Equal(t, "Two", first[1].Key)
	assert.Equal(t, 2, first[1].Line)

	// The sequence is restartable.
	assert.Equal(t, first, collect())
}

func TestLiterals_EarlyBreak(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "V.swift"), "Text(\"a\")\nText(\"b\")\nText(\"c\")")

	x := newTestExtractor(t)
	n := 0

	for _, err := range x.Literals(root) {
		require.NoError(t, err)

		n++
		if n == 2 {
			break
		}
	}

	assert.Equal(t, 2, n)
}

func TestLiterals_Exclude(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App", "Main.swift"), `Text("kept")`)
	writeFile(t, filepath.Join(root, "Preview Content", "Mock.swift"), `Text("skipped")`)

	x, err := New(Options{
		Extension:    ".swift",
		Constructors: []string{"Text"},
		Exclude:      []glob.Glob{glob.MustCompile("Preview Content", '/')},
	})
	require.NoError(t, err)

	var keys []string

	for lit, err := range x.Literals(root) {
		require.NoError(t, err)

		keys = append(keys, lit.Key)
	}

	assert.Equal(t, []string{"kept"}, keys)
}

func TestLiterals_InvalidUTF8(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	bad := filepath.Join(root, "Bad.swift")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe, 'T'}, 0o644))

	x := newTestExtractor(t)

	var gotErr error

	for _, err := range x.Literals(root) {
		if err != nil {
			gotErr = err
		}
	}

	var readErr *SourceReadError

	require.True(t, errors.As(gotErr, &readErr))
	assert.Equal(t, bad, readErr.Path)
}

func TestLiterals_MissingRoot(t *testing.T) {
	t.Parallel()

	x := newTestExtractor(t)

	var gotErr error

	for _, err := range x.Literals(filepath.Join(t.TempDir(), "missing")) {
		gotErr = err
	}

	var readErr *SourceReadError

	assert.True(t, errors.As(gotErr, &readErr))
}
