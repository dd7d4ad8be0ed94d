// Package logging assembles the structured slog loggers img2rle uses for
// diagnostics.
//
// Encoded output owns stdout, so every handler built here writes to stderr
// by default. The console format renders a compact single-line layout
// (colourised when stderr is a terminal); the json format uses slog's JSON
// handler with short keys. When a log file is configured, records are
// mirrored to it as JSON regardless of the terminal format.
package logging
