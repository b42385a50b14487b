package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/integration/ebitenchart"
)

func newViewCmd(root *rootFlags) *cobra.Command {
	var (
		width int
		tps   int
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the chart in an interactive window",
		Long: `Open the chart in a resizable window.

Drag to pan, scroll to zoom around the pointer. Press S to switch to
area selection, Escape to leave it and R to reset the zoom.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, opts, err := loadChart(root.chart)
			if err != nil {
				return err
			}
			return ebitenchart.Run(cfg,
				ebitenchart.WithWindowWidth(width),
				ebitenchart.WithTPS(tps),
				ebitenchart.WithSessionOptions(opts...),
			)
		},
	}
	cmd.Flags().IntVar(&width, "width", 1000, "initial window width")
	cmd.Flags().IntVar(&tps, "tps", 60, "refresh rate")
	return cmd
}
