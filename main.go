// Copyright 2025, the i18nkit contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
i18nkit checks and maintains the localization catalog of the ChillNote app.
*/
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/chillnote/i18nkit/cli"
	"codeberg.org/chillnote/i18nkit/core/audit"
)

// main is the entry point of the application.
func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command line and returns the exit code.
func run(args []string) int {
	audit.SetDefaultLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx, args, os.Stdout)
}
