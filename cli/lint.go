// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"codeberg.org/chillnote/i18nkit/core/audit"
	"codeberg.org/chillnote/i18nkit/reconcile"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func (a *app) lintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check catalog coverage and orphan literals",
		Long: `Checks that every catalog key has a translated, non-empty unit for every
required locale, and that every static literal in the source tree has a
catalog key. Literals with interpolations are not checked.

Exits 0 when no issue is found and 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: a.runLint,
	}
}

func (a *app) runLint(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return err
	}

	x, err := a.extractor()
	if err != nil {
		return err
	}

	var issues []error

	err = audit.Track(ctx, "check", func(context.Context) (int, error) {
		issues = reconcile.CheckCatalog(cat, a.cfg.Catalog.RequiredLocales)

		orphans, err := reconcile.CheckLiterals(x.Literals(a.cfg.Source.Root), cat, a.sourceTag())
		issues = append(issues, orphans...)

		return len(issues), err
	})
	if err != nil {
		return err
	}

	if !printLintResult(cmd.OutOrStdout(), issues) {
		return &ExitError{Code: ExitIssues}
	}

	return nil
}

// printLintResult prints issues followed by a summary line and reports
// whether the check passed.
func printLintResult(w io.Writer, issues []error) bool {
	if len(issues) == 0 {
		passColor.Fprintln(w, "PASS: i18n checks succeeded.")

		return true
	}

	for _, issue := range issues {
		fmt.Fprintln(w, issue)
	}

	fmt.Fprintln(w)
	failColor.Fprintf(w, "FAIL: %d i18n issue(s) found.\n", len(issues))

	return false
}
