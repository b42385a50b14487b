// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

// XScale maps ordinal sample indices to pixel columns through the viewport.
//
// The index domain is normalized to [0, 1] first; the viewport then stretches
// it by Scale and shifts it by OffsetX before it is mapped onto the plot width.
type XScale struct {
	Plot       Rect
	Viewport   Viewport
	PointCount int
}

func (s XScale) span() float64 {
	return float64(max(s.PointCount-1, 1))
}

// Pixel returns the column of data index x.
func (s XScale) Pixel(x float64) float64 {
	u := (x/s.span())*s.Viewport.scale() + s.Viewport.OffsetX
	return s.Plot.X0 + u*s.Plot.Width
}

// Data returns the fractional data index displayed at column px.
func (s XScale) Data(px float64) float64 {
	return s.Normalized(s.Unit(px)) * s.span()
}

// Unit returns px as a fraction of the plot width, 0 at the left edge.
func (s XScale) Unit(px float64) float64 {
	if s.Plot.Width == 0 {
		return 0
	}
	return (px - s.Plot.X0) / s.Plot.Width
}

// Normalized converts a plot-width fraction into the normalized [0, 1]
// data domain under the current viewport.
func (s XScale) Normalized(u float64) float64 {
	return (u - s.Viewport.OffsetX) / s.Viewport.scale()
}

// Visible reports whether column px lies within the plot area.
func (s XScale) Visible(px float64) bool {
	return px >= s.Plot.X0 && px <= s.Plot.X1()
}

// YScale maps axis values to pixel rows. Values outside [Min, Max] map
// outside the plot area and are not clamped.
type YScale struct {
	Plot     Rect
	Min, Max float64
}

// NewYScale returns the scale of axis a within plot.
func NewYScale(plot Rect, a *YAxis) YScale {
	return YScale{Plot: plot, Min: a.Min, Max: a.Max}
}

// Pixel returns the row of value v.
// A degenerate domain maps every value to the vertical middle of the plot.
func (s YScale) Pixel(v float64) float64 {
	d := s.Max - s.Min
	if d == 0 {
		return s.Plot.Y0 + s.Plot.Height/2
	}
	return s.Plot.Y1() - ((v-s.Min)/d)*s.Plot.Height
}

// Value returns the value displayed at row py.
func (s YScale) Value(py float64) float64 {
	if s.Plot.Height == 0 {
		return s.Min
	}
	return s.Min + (s.Plot.Y1()-py)/s.Plot.Height*(s.Max-s.Min)
}
