// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "math"

// DefaultHitThreshold is the largest vertical distance, in pixels, at which
// a pointer still hovers a series.
const DefaultHitThreshold = 30.0

// HitTester finds the series under a pointer for one frame's geometry.
type HitTester struct {
	Config    *Config
	Layout    Layout
	Viewport  Viewport
	Threshold float64
}

// XScale returns the frame's X scale.
func (h *HitTester) XScale() XScale {
	return XScale{Plot: h.Layout.Plot, Viewport: h.Viewport, PointCount: h.Config.PointCount()}
}

// Nearest returns the index of the series closest to p, in surface pixels.
//
// Legend entries take priority over line proximity. Inside the plot area
// the series value is interpolated at the pointer's fractional data index
// and compared by vertical pixel distance; the earliest series wins ties.
func (h *HitTester) Nearest(p Point) (int, bool) {
	for _, e := range LegendEntries(h.Layout, len(h.Config.Series)) {
		if e.Bounds.Contains(p) {
			return e.Series, true
		}
	}
	if !h.Layout.Plot.Contains(p) {
		return -1, false
	}

	dataX := h.XScale().Data(p.X)
	threshold := h.Threshold
	if threshold <= 0 {
		threshold = DefaultHitThreshold
	}

	best, bestDist := -1, math.Inf(1)
	for i := range h.Config.Series {
		s := &h.Config.Series[i]
		v, ok := Interpolate(s, dataX)
		if !ok {
			continue
		}
		axis, ok := h.Config.Axis(s.AxisID)
		if !ok {
			continue
		}
		d := math.Abs(NewYScale(h.Layout.Plot, axis).Pixel(v) - p.Y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist >= threshold {
		return -1, false
	}
	return best, true
}

// Interpolate returns the series value at fractional index x, linearly
// interpolated between the bracketing samples. ok is false when x falls
// outside the series.
func Interpolate(s *DataSeries, x float64) (v float64, ok bool) {
	if math.IsNaN(x) {
		return 0, false
	}
	lo, hi := math.Floor(x), math.Ceil(x)
	if lo < 0 || hi >= float64(len(s.Points)) {
		return 0, false
	}
	i0, i1 := int(lo), int(hi)
	if i0 == i1 {
		return s.Points[i0].Y, true
	}
	t := x - lo
	return s.Points[i0].Y + (s.Points[i1].Y-s.Points[i0].Y)*t, true
}
