// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Package cli implements the i18nkit command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"codeberg.org/chillnote/i18nkit/catalog"
	"codeberg.org/chillnote/i18nkit/config"
	"codeberg.org/chillnote/i18nkit/core/audit"
	"codeberg.org/chillnote/i18nkit/extract"
)

// Process exit codes.
const (
	ExitOK     = 0
	ExitIssues = 1
	ExitFatal  = 2
)

// ExitError ends a command with a specific exit code. Whatever the user
// needs to know has already been printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// app carries the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
}

// NewRootCommand returns the i18nkit command tree. Command results are
// printed to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "i18nkit",
		Short: "Localization coverage for Xcode string catalogs",
		Long: `i18nkit cross-references the user-facing literals of a source tree
with an Xcode string catalog (.xcstrings).

Commands:
  lint       - report missing, new or empty translations and orphan literals
  report     - write the string inventory, missing keys report and glossary
  normalize  - backfill every required locale of every catalog key`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "configuration file (default: "+config.DefaultFile+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.lintCommand(), a.reportCommand(), a.normalizeCommand())

	return root
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, out io.Writer) int {
	root := NewRootCommand(out)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	log.Error().Err(err).Msg("i18nkit failed")

	return ExitFatal
}

func (a *app) loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile, a.cfgFile != "")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	a.cfg = cfg

	return nil
}

func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	var cat *catalog.Catalog

	err := audit.Track(ctx, "load", func(context.Context) (int, error) {
		var err error

		cat, err = catalog.Load(a.cfg.Catalog.Path)
		if err != nil {
			return 0, err
		}

		return cat.Len(), nil
	})

	return cat, err
}

func (a *app) extractor() (*extract.Extractor, error) {
	return extract.New(extract.Options{
		Extension:    a.cfg.Source.Extension,
		Constructors: a.cfg.Source.Constructors,
		Modifiers:    a.cfg.Source.Modifiers,
		Exclude:      a.cfg.Source.ExcludeGlobs,
	})
}

// sourceTag prefixes orphan literal messages, "swift" for ".swift".
func (a *app) sourceTag() string {
	return strings.TrimPrefix(a.cfg.Source.Extension, ".")
}
