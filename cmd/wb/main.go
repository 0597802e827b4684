// Package main provides the wb CLI, a project-bookmarking tool. It tracks
// subdirectories of a configured root as projects, attaches tags and
// timestamps to them, and opens them by spawning a command inside.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
