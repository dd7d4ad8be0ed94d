// Package main hosts the img2rle CLI entrypoint and command graph.
//
// The root command encodes one image into run-length text on stdout.
// Subcommands inspect an image's grid statistics and scaffold or validate
// configuration. Configuration resolution, flag overrides, and logger setup
// live in commandContext so individual commands stay declarative.
package main
