// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

//go:build integration

/*
To run these tests, specify `-tags=integration` when running `go test`.
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commandTestCase is one invocation of the binary.
type commandTestCase struct {
	Args             []string
	ExpectedExitCode int

	// files expected to exist afterwards, relative to the project
	Files []string
}

// newProject lays out a project with the default directory structure and
// makes it the working directory, so that no configuration is needed.
func newProject(t *testing.T) {
	t.Helper()

	dir := t.TempDir()

	files := map[string]string{
		"chillnote/Resources/Localizable.xcstrings": `{
  "sourceLanguage": "en",
  "strings": {
    "Notes": {
      "localizations": {
        "en": {
          "stringUnit": {
            "state": "translated",
            "value": "Notes"
          }
        }
      }
    },
    "Recycle Bin": {}
  },
  "version": "1.0"
}
`,
		"chillnote/Views/HomeView.swift": `import SwiftUI

struct HomeView: View {
    var body: some View {
        NavigationStack {
            List {}
                .navigationTitle("Notes")
        }
        Label("Recycle Bin", systemImage: "trash")
    }
}
`,
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	t.Chdir(dir)
}

// TestWorkflow runs the commands in the order a developer would.
func TestWorkflow(t *testing.T) {
	newProject(t)

	testCases := []commandTestCase{
		// Recycle Bin has no units and Notes lacks seven locales
		{Args: []string{"lint"}, ExpectedExitCode: 1},
		{Args: []string{"normalize", "--dry-run"}, ExpectedExitCode: 1},
		{Args: []string{"report", "-v"}, ExpectedExitCode: 0, Files: []string{
			"docs/i18n/string_inventory_v1.csv",
			"docs/i18n/missing_keys_report_v1.md",
			"docs/i18n/glossary_v1.md",
		}},
		{Args: []string{"normalize"}, ExpectedExitCode: 0},
		{Args: []string{"normalize", "--dry-run"}, ExpectedExitCode: 0},
		{Args: []string{"lint"}, ExpectedExitCode: 0},
		{Args: []string{"lint", "extra"}, ExpectedExitCode: 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.ExpectedExitCode, run(tc.Args), "i18nkit %v", tc.Args)

		for _, file := range tc.Files {
			assert.FileExists(t, file)
		}
	}
}

// TestConfigFile checks that a configuration file in the working
// directory is picked up.
func TestConfigFile(t *testing.T) {
	newProject(t)

	cfg := "catalog:\n  requiredLocales: [en]\nreports:\n  dir: out\n"
	require.NoError(t, os.WriteFile("i18nkit.yml", []byte(cfg), 0o644))

	require.Equal(t, 0, run([]string{"normalize"}))
	assert.Equal(t, 0, run([]string{"lint"}))
	assert.Equal(t, 0, run([]string{"report"}))
	assert.FileExists(t, "out/glossary_v1.md")
}
