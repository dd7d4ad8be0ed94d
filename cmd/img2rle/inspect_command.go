package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"img2rle/internal/imagegrid"
	"img2rle/internal/preflight"
	"img2rle/internal/rle"
)

type inspectReport struct {
	Path          string  `json:"path"`
	Format        string  `json:"format"`
	FileBytes     int64   `json:"file_bytes"`
	Threshold     int     `json:"threshold"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Cells         int     `json:"cells"`
	AliveCells    int     `json:"alive_cells"`
	DeadCells     int     `json:"dead_cells"`
	Runs          int     `json:"runs"`
	CollapsedRows int     `json:"collapsed_rows"`
	DeadRows      int     `json:"dead_rows"`
	EncodedBytes  int     `json:"encoded_bytes"`
	BytesPerCell  float64 `json:"bytes_per_cell"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect <image_path>",
		Short: "Show grid statistics for an image without printing the encoding",
		Args:  requireImagePath,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}
			path := args[0]

			checks := preflight.RunAll(path)
			if err := preflight.FirstFailure(checks); err != nil {
				if !jsonOutput {
					fmt.Fprint(cmd.OutOrStdout(), renderChecks(cmd.OutOrStdout(), checks))
				}
				return err
			}

			grid, err := imagegrid.Load(path, cfg.ThresholdByte())
			if err != nil {
				return err
			}
			report := buildInspectReport(path, grid, cfg.Grid.Threshold)

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderInspectReport(out, report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	return cmd
}

func buildInspectReport(path string, grid *imagegrid.Grid, threshold int) inspectReport {
	stats := rle.Stats(grid)
	encoded := rle.Encode(grid)

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	return inspectReport{
		Path:          path,
		Format:        grid.Format(),
		FileBytes:     size,
		Threshold:     threshold,
		Width:         stats.Width,
		Height:        stats.Height,
		Cells:         stats.Cells,
		AliveCells:    stats.AliveCells,
		DeadCells:     stats.DeadCells,
		Runs:          stats.Runs,
		CollapsedRows: stats.CollapsedRows,
		DeadRows:      stats.DeadRows,
		EncodedBytes:  len(encoded),
		BytesPerCell:  float64(len(encoded)) / float64(stats.Cells),
	}
}

func renderInspectReport(w any, r inspectReport) string {
	p := message.NewPrinter(language.English)
	rows := [][]string{
		{"Path", r.Path},
		{"Format", r.Format},
		{"File size", humanize.IBytes(uint64(r.FileBytes))},
		{"Threshold", p.Sprintf("%d", r.Threshold)},
		{"Dimensions", p.Sprintf("%d x %d", r.Width, r.Height)},
		{"Cells", p.Sprintf("%d", r.Cells)},
		{"Alive cells", p.Sprintf("%d (%.1f%%)", r.AliveCells, percent(r.AliveCells, r.Cells))},
		{"Dead cells", p.Sprintf("%d (%.1f%%)", r.DeadCells, percent(r.DeadCells, r.Cells))},
		{"Runs", p.Sprintf("%d", r.Runs)},
		{"Collapsed rows", p.Sprintf("%d", r.CollapsedRows)},
		{"All-dead rows", p.Sprintf("%d", r.DeadRows)},
		{"Encoded size", humanize.IBytes(uint64(r.EncodedBytes))},
		{"Bytes per cell", p.Sprintf("%.3f", r.BytesPerCell)},
	}
	return renderTable(w, []string{"Property", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderChecks(w any, checks []preflight.Result) string {
	rows := make([][]string, 0, len(checks))
	for _, check := range checks {
		rows = append(rows, []string{check.Name, passFail(check.Passed), check.Detail})
	}
	return renderTable(w, []string{"Check", "Status", "Detail"}, rows, nil) + "\n"
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

func passFail(passed bool) string {
	if passed {
		return "ok"
	}
	return "FAIL"
}
