package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/surface"
)

type renderFlags struct {
	out      string
	width    int
	height   int
	emphasis string
	hover    []float64
	zoom     int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(root, f)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "chart.png", "output PNG file")
	cmd.Flags().IntVar(&f.width, "width", 1000, "image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", 500, "image height in pixels")
	cmd.Flags().StringVar(&f.emphasis, "emphasis", "", "axis emphasis: dim or hovered (overrides the chart file)")
	cmd.Flags().Float64SliceVar(&f.hover, "hover", nil, "hover the pointer at X,Y before rendering")
	cmd.Flags().IntVar(&f.zoom, "zoom", 0, "wheel notches at the plot centre; negative zooms out")
	return cmd
}

func runRender(root *rootFlags, f *renderFlags) error {
	cfg, opts, err := loadChart(root.chart)
	if err != nil {
		return err
	}
	switch f.emphasis {
	case "":
	case "dim":
		opts = append(opts, ggchart.WithEmphasis(ggchart.EmphasisDimOthers))
	case "hovered":
		opts = append(opts, ggchart.WithEmphasis(ggchart.EmphasisHoveredOnly))
	default:
		return fmt.Errorf("--emphasis: unknown policy %q", f.emphasis)
	}
	if f.hover != nil && len(f.hover) != 2 {
		return fmt.Errorf("--hover: want X,Y, got %d values", len(f.hover))
	}

	canvas, err := surface.New(f.width, f.height)
	if err != nil {
		return err
	}
	defer func() { _ = canvas.Close() }()

	s, err := ggchart.Mount(canvas, cfg.Series, cfg.Axes, f.width, f.height, opts...)
	if err != nil {
		return err
	}
	defer s.Close()
	s.SetTitles(cfg.Title, cfg.XTitle)

	if f.zoom != 0 {
		l := s.Frame().Layout
		centre := ggchart.Pt(l.Plot.X0+l.Plot.Width/2, l.Plot.Y0+l.Plot.Height/2)
		delta := -1.0
		n := f.zoom
		if n < 0 {
			delta, n = 1, -n
		}
		for range n {
			s.Wheel(delta, centre)
		}
	}
	if f.hover != nil {
		s.PointerMove(ggchart.Pt(f.hover[0], f.hover[1]), 0)
	}

	s.Flush()
	if err := canvas.SavePNG(f.out); err != nil {
		return err
	}
	ggchart.Logger().Info("ggchart: chart rendered", "file", f.out, "width", f.width, "height", f.height, "viewport", s.Viewport().String())
	return nil
}
