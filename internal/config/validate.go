package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGrid(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGrid() error {
	if c.Grid.Threshold < 0 || c.Grid.Threshold > 255 {
		return fmt.Errorf("grid.threshold must be between 0 and 255, got %d", c.Grid.Threshold)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.LockTimeoutSeconds < 0 {
		return errors.New("output.lock_timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
