// Package config loads, normalizes, and validates img2rle configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and applies the IMG2RLE_THRESHOLD and IMG2RLE_LOG_LEVEL
// environment overrides. Command-line flags are applied by the CLI on top of
// the loaded Config.
package config
