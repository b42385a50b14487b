// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

const (
	// MinSelectionWidth is the narrowest rubber band, in pixels, that zooms.
	// Anything narrower is treated as an accidental click.
	MinSelectionWidth = 20.0

	// minSelectionSpan bounds the zoom factor a selection can produce.
	minSelectionSpan = 1e-6
)

// Selection is the rubber-band state machine: Idle (Active == false) and
// Selecting (Active == true). Start and End are surface pixels.
type Selection struct {
	Active     bool
	Start, End Point
}

// Begin enters Selecting with a zero-size band at p.
func (s *Selection) Begin(p Point) {
	*s = Selection{Active: true, Start: p, End: p}
}

// Update moves the free corner of the band. It reports whether the band
// changed.
func (s *Selection) Update(p Point) bool {
	if !s.Active || s.End == p {
		return false
	}
	s.End = p
	return true
}

// Cancel returns to Idle without zooming.
func (s *Selection) Cancel() {
	s.Active = false
}

// Rect returns the band rectangle, independent of drag direction.
func (s *Selection) Rect() Rect {
	return RectFromPoints(s.Start, s.End)
}

// Commit returns to Idle and computes the viewport that zooms into the
// selected horizontal span. ok is false when there was no selection or the
// band was narrower than MinSelectionWidth; vp is then unchanged.
//
// The band edges are mapped through the current viewport before the new
// one is solved, so on an already zoomed chart the selected data fills the
// plot. Applying offset = 0.5 - centre*scale to the raw plot fractions
// agrees with this only at DefaultViewport: from {2, 0} a band over
// fractions [0.1, 0.4] yields offset -1/3 here and -7/6 that way.
func (s *Selection) Commit(xs XScale) (vp Viewport, ok bool) {
	if !s.Active {
		return xs.Viewport, false
	}
	s.Active = false

	r := s.Rect()
	if r.Width < MinSelectionWidth || xs.Plot.Width <= 0 {
		return xs.Viewport, false
	}
	lo := xs.Normalized(xs.Unit(r.X0))
	hi := xs.Normalized(xs.Unit(r.X1()))
	return xs.Viewport.ZoomTo(lo, hi), true
}
