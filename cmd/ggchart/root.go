package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/chartfile"
	"github.com/gogpu/ggchart/internal/sample"
)

type rootFlags struct {
	chart    string
	logLevel string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "ggchart",
		Short:        "Interactive multi-axis time charts",
		Long:         `Render, replay and display multi-series charts with independent Y axes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return installLogger(cmd.ErrOrStderr(), f.logLevel)
		},
	}
	cmd.PersistentFlags().StringVarP(&f.chart, "chart", "c", "", "YAML chart file (default: built-in weather sample)")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newRenderCmd(f),
		newReplayCmd(f),
		newViewCmd(f),
		newSampleCmd(),
	)
	return cmd
}

// installLogger routes library logs through charmbracelet/log.
func installLogger(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "ggchart",
	})
	ggchart.SetLogger(slog.New(handler))
	return nil
}

// loadChart returns the chart at path, or the built-in sample for "".
func loadChart(path string) (ggchart.Config, []ggchart.Option, error) {
	if path == "" {
		return sample.Config(), nil, nil
	}
	c, err := chartfile.Load(path)
	if err != nil {
		return ggchart.Config{}, nil, err
	}
	cfg, err := c.Config()
	if err != nil {
		return ggchart.Config{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	opts, err := c.Options()
	if err != nil {
		return ggchart.Config{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, opts, nil
}

func newSampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Write the built-in sample chart as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return chartfile.FromConfig(sample.Config()).Encode(cmd.OutOrStdout())
		},
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
