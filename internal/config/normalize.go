package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeGrid(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeGrid() error {
	value, ok := os.LookupEnv("IMG2RLE_THRESHOLD")
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	threshold, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("IMG2RLE_THRESHOLD: %w", err)
	}
	c.Grid.Threshold = threshold
	return nil
}

func (c *Config) normalizeOutput() error {
	var err error
	if c.Output.Path, err = expandPath(strings.TrimSpace(c.Output.Path)); err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	if c.Output.LockTimeoutSeconds == 0 {
		c.Output.LockTimeoutSeconds = defaultLockTimeoutSecs
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("IMG2RLE_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
