// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

// Legend geometry. Entries run left to right above the plot area.
const (
	legendSpacing   = 120.0 // distance between entry origins
	legendChipWidth = 20.0  // sample line length
	legendLabelGap  = 5.0   // chip to label
	legendRise      = 20.0  // baseline distance above the plot
	legendHalfH     = 8.0   // half height of the hit rectangle
)

// LegendEntry is the screen geometry of one legend item.
type LegendEntry struct {
	Series int
	Origin Point // left end of the chip line
	Bounds Rect  // hover target: chip and label
}

// Label returns the label baseline origin.
func (e LegendEntry) Label() Point {
	return Point{X: e.Origin.X + legendChipWidth + legendLabelGap, Y: e.Origin.Y + 4}
}

// LegendEntries lays out one entry per series. The geometry depends only on
// the layout and the series count so that hit-testing works without fonts.
func LegendEntries(l Layout, seriesCount int) []LegendEntry {
	entries := make([]LegendEntry, seriesCount)
	y := l.Plot.Y0 - legendRise
	for i := range entries {
		x := l.Plot.X0 + float64(i)*legendSpacing
		entries[i] = LegendEntry{
			Series: i,
			Origin: Point{X: x, Y: y},
			Bounds: Rect{
				X0:     x,
				Y0:     y - legendHalfH,
				Width:  legendSpacing - 10,
				Height: 2 * legendHalfH,
			},
		}
	}
	return entries
}
