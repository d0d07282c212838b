// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"codeberg.org/chillnote/i18nkit/core/audit"
	"codeberg.org/chillnote/i18nkit/reconcile"
	"codeberg.org/chillnote/i18nkit/report"
)

func (a *app) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Write the localization reports",
		Long: `Writes into the reports directory:

  ` + report.InventoryFile + `   every extracted literal with catalog coverage and risk
  ` + report.MissingFile + `  literals without a catalog key
  ` + report.GlossaryFile + `            terminology and style rules for translators`,
		Args: cobra.NoArgs,
		RunE: a.runReport,
	}
}

func (a *app) runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	x, err := a.extractor()
	if err != nil {
		return err
	}

	var rows []reconcile.Row

	err = audit.Track(ctx, "extract", func(context.Context) (int, error) {
		rows, err = reconcile.Inventory(x.Literals(a.cfg.Source.Root), cat)

		return len(rows), err
	})
	if err != nil {
		return err
	}

	var paths []string

	err = audit.Track(ctx, "write", func(context.Context) (int, error) {
		paths, err = report.Generate(a.cfg.Reports.Dir, rows)

		return len(paths), err
	})
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", path)
	}

	return nil
}
