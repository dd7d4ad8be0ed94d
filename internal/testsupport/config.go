package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"img2rle/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// WithThreshold overrides the luminance threshold.
func WithThreshold(threshold int) ConfigOption {
	return func(c *config.Config) {
		c.Grid.Threshold = threshold
	}
}

// WithoutTrailingNewline disables the newline after the terminator.
func WithoutTrailingNewline() ConfigOption {
	return func(c *config.Config) {
		c.Output.TrailingNewline = false
	}
}

// WithDevelopmentLogging turns on caller locations for every log record.
func WithDevelopmentLogging() ConfigOption {
	return func(c *config.Config) {
		c.Logging.Development = true
	}
}

// WriteConfig writes a TOML config built from defaults plus opts into a
// fresh temp directory and returns its path.
func WriteConfig(t testing.TB, opts ...ConfigOption) string {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
