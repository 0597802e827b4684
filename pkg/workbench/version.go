// Package workbench exposes build-level metadata shared by the CLI.
package workbench

// Version is the current workbench release.
const Version = "0.1.0"
