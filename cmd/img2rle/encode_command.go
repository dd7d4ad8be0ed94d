package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"img2rle/internal/imagegrid"
	"img2rle/internal/logging"
	"img2rle/internal/output"
	"img2rle/internal/preflight"
	"img2rle/internal/rle"
)

func runEncode(cmd *cobra.Command, ctx *commandContext, path string) (err error) {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeLog())
	}()

	// Failures surface as the "Error:" line in main; the records below only
	// show up when debugging so the default stderr stays a single line.
	inputLogger := logging.NewComponentLogger(logger, "imagegrid")
	if err := preflight.FirstFailure(preflight.RunAll(path)); err != nil {
		inputLogger.Debug("preflight failed", logging.FieldPath, path, logging.Error(err))
		return err
	}

	grid, err := imagegrid.Load(path, cfg.ThresholdByte())
	if err != nil {
		inputLogger.Debug("load image failed", logging.FieldPath, path, logging.Error(err))
		return err
	}
	inputLogger.Info("processing image",
		logging.FieldPath, path,
		"width", grid.Width(),
		"height", grid.Height(),
		"format", grid.Format(),
	)

	started := time.Now()
	encoded := rle.Encode(grid)
	logging.NewComponentLogger(logger, "rle").Debug("encoded grid",
		"bytes", len(encoded),
		"threshold", cfg.Grid.Threshold,
		"elapsed", time.Since(started),
	)

	doc := output.Document{
		Path:   path,
		Width:  grid.Width(),
		Height: grid.Height(),
		Format: grid.Format(),
		RLE:    encoded,
	}
	opts := output.Options{
		Path:            cfg.Output.Path,
		TrailingNewline: cfg.Output.TrailingNewline,
		JSON:            ctx.flags.jsonOutput,
		LockTimeout:     time.Duration(cfg.Output.LockTimeoutSeconds) * time.Second,
	}
	outputLogger := logging.NewComponentLogger(logger, "output")
	if err := output.Write(cmd.Context(), cmd.OutOrStdout(), opts, doc); err != nil {
		outputLogger.Debug("write output failed", "output", opts.Path, logging.Error(err))
		return err
	}
	if opts.Path != "" {
		outputLogger.Info("wrote output", "output", opts.Path)
	}
	return nil
}
