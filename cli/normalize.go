// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/chillnote/i18nkit/core/audit"
	"codeberg.org/chillnote/i18nkit/normalize"
)

func (a *app) normalizeCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Backfill missing translations in the catalog",
		Long: `Gives every catalog key a translated unit for every required locale.
Missing values are copied from the fallback locale, or from the key itself
when the fallback locale has no value. Units left in state "new" are
marked translated.

With --dry-run the catalog is not written and the command exits 1 when it
would change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runNormalize(cmd, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing the catalog")

	return cmd
}

func (a *app) runNormalize(cmd *cobra.Command, dryRun bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	path := a.cfg.Catalog.Path

	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	normalized, stats := normalize.Catalog(cat, normalize.Options{
		Locales:        a.cfg.Catalog.RequiredLocales,
		FallbackLocale: a.cfg.Catalog.FallbackLocale,
	})

	if dryRun {
		if !stats.Changed() {
			fmt.Fprintf(out, "Catalog %s is normalized (%d keys)\n", path, stats.Keys)

			return nil
		}

		fmt.Fprintf(out, "Would normalize %d keys in %s: %d units to create, %d values to fill, %d states to fix\n",
			stats.Keys, path, stats.UnitsCreated, stats.ValuesFilled, stats.StatesFixed)

		return &ExitError{Code: ExitIssues}
	}

	err = audit.Track(ctx, "save", func(context.Context) (int, error) {
		return stats.Keys, normalized.Save(path)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Normalized %d keys in %s\n", stats.Keys, path)

	return nil
}
