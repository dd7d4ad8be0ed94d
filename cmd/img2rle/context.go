package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"img2rle/internal/config"
	"img2rle/internal/logging"
)

type commandFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	threshold  int
	outputPath string
	jsonOutput bool
	noNewline  bool
}

type commandContext struct {
	flags *commandFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *commandFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the config file once and layers command-line flags on top.
func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyFlags(cmd, cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	if flagChanged(cmd, "threshold") {
		cfg.Grid.Threshold = c.flags.threshold
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if format := strings.TrimSpace(c.flags.logFormat); format != "" {
		cfg.Logging.Format = strings.ToLower(format)
	}
	if path := strings.TrimSpace(c.flags.outputPath); path != "" {
		expanded, err := config.ExpandPath(path)
		if err != nil {
			return fmt.Errorf("resolve output path: %w", err)
		}
		cfg.Output.Path = expanded
	}
	if c.flags.noNewline {
		cfg.Output.TrailingNewline = false
	}
	return cfg.Validate()
}

// logger builds a run-scoped logger writing to the command's stderr. Callers
// must invoke the returned close function once they stop logging.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	base, closeLog, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	logger, _ := logging.WithRunID(base)
	return logger, closeLog, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		return true
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil && f.Changed {
		return true
	}
	return false
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
