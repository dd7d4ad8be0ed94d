package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errUsage reports a missing image path argument.
var errUsage = errors.New("missing image path")

type usageError struct {
	program string
}

func (e usageError) Error() string { return fmt.Sprintf("Usage: %s <image_path>", e.program) }

func (e usageError) Unwrap() error { return errUsage }

// requireImagePath accepts one or more arguments; only the first is used.
func requireImagePath(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageError{program: cmd.CommandPath()}
	}
	return nil
}

func newRootCommand() *cobra.Command {
	flags := &commandFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "img2rle <image_path>",
		Short:         "Encode an image as run-length text",
		Long:          "Classify every pixel of an image as alive (luminance >= threshold) or dead and print the grid as run-length text: b alive, o dead, $ row end, ! stream end.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          requireImagePath,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, ctx, args[0])
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	persistent.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	persistent.StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")
	persistent.IntVarP(&flags.threshold, "threshold", "t", 0, "Luminance threshold (0-255) at which a pixel is alive")

	rootCmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Write output to a file instead of stdout")
	rootCmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Wrap the encoded text in a JSON document")
	rootCmd.Flags().BoolVar(&flags.noNewline, "no-newline", false, "Do not print a newline after the terminator")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
