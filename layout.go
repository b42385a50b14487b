// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

// Margins is the space reserved around the plot area for titles, axes and
// the legend.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargins leave room for four stacked right-hand axes.
var DefaultMargins = Margins{Top: 50, Right: 180, Bottom: 40, Left: 60}

// Layout is the pixel geometry of one frame. It is recomputed from the
// current surface size on every redraw.
type Layout struct {
	Width, Height int
	Margins       Margins
	Plot          Rect
}

// NewLayout derives the plot area of a width x height surface.
func NewLayout(width, height int, m Margins) Layout {
	return Layout{
		Width:   width,
		Height:  height,
		Margins: m,
		Plot: Rect{
			X0:     m.Left,
			Y0:     m.Top,
			Width:  float64(width) - m.Left - m.Right,
			Height: float64(height) - m.Top - m.Bottom,
		},
	}
}

// Valid reports whether there is anything to draw.
func (l Layout) Valid() bool {
	return l.Width > 0 && l.Height > 0 && !l.Plot.Empty()
}

// Bounds returns the whole surface rectangle.
func (l Layout) Bounds() Rect {
	return Rect{Width: float64(l.Width), Height: float64(l.Height)}
}

// AxisX returns the pixel column of a Y axis line.
func (l Layout) AxisX(a *YAxis) float64 {
	if a.Position == AxisRight {
		return l.Plot.X1() + a.Offset
	}
	return l.Plot.X0 - a.Offset
}
