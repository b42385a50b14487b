package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/chartfile"
	"github.com/gogpu/ggchart/internal/replay"
)

func newReplayCmd(root *rootFlags) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Replay scripted input against a chart and write snapshots",
		Long: `Replay a YAML script of pointer, wheel, resize and key events against a
chart without opening a window. Snapshot steps write PNG files to --out.

The chart is taken from --chart, else from the script's "chart" key
(relative to the script), else the built-in sample.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runReplay(ctx, root, args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", ".", "snapshot directory")
	return cmd
}

func runReplay(ctx context.Context, root *rootFlags, scriptPath, out string) error {
	script, err := chartfile.LoadScript(scriptPath)
	if err != nil {
		return err
	}

	chartPath := root.chart
	if chartPath == "" && script.Chart != "" {
		chartPath = script.Chart
		if !filepath.IsAbs(chartPath) {
			chartPath = filepath.Join(filepath.Dir(scriptPath), chartPath)
		}
		if !fileExists(chartPath) {
			return fmt.Errorf("%s: chart %s not found", scriptPath, chartPath)
		}
	}
	cfg, opts, err := loadChart(chartPath)
	if err != nil {
		return err
	}

	r := &replay.Runner{Config: cfg, Options: opts, OutDir: out}
	res, err := r.Run(ctx, script)
	if err != nil {
		return err
	}
	for _, p := range res.Snapshots {
		ggchart.Logger().Info("ggchart: snapshot", "file", p)
	}
	ggchart.Logger().Info("ggchart: replay finished", "steps", len(script.Steps), "frames", res.Frames, "viewport", res.Viewport.String())
	return nil
}
