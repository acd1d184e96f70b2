// Package main provides the entry point for the genusbatch CLI tool.
package main

import (
	"os"

	"github.com/plantkeeper/genusbatch/cmd/genusbatch/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Context with signal handling so an operator can stop a run cleanly;
	// the run log keeps everything processed up to that point.
	ctx, cancel := app.ContextWithSignals()
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
