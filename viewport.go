// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "fmt"

// Zoom constants.
const (
	// WheelStep is the scale change of one wheel notch.
	WheelStep = 0.1

	// MinScale is the smallest zoom factor: the full data extent.
	MinScale = 1.0
)

// Viewport is the horizontal zoom/pan transform applied to the normalized
// X domain. Scale never drops below MinScale; OffsetX is unconstrained, so
// content can be panned fully out of view.
type Viewport struct {
	Scale   float64
	OffsetX float64
}

// DefaultViewport shows the full data extent.
func DefaultViewport() Viewport {
	return Viewport{Scale: MinScale}
}

// String implements fmt.Stringer.
func (v Viewport) String() string {
	return fmt.Sprintf("{scale=%.3f offset=%.3f}", v.Scale, v.OffsetX)
}

func (v Viewport) scale() float64 {
	if v.Scale < MinScale {
		return MinScale
	}
	return v.Scale
}

// Zoom applies one wheel notch. A positive deltaY (wheel pulled toward the
// user) zooms out, a negative one zooms in; zero is a no-op. anchor is the
// pointer position as a fraction of the plot width; the data under it keeps
// its pixel column.
func (v Viewport) Zoom(deltaY, anchor float64) Viewport {
	var step float64
	switch {
	case deltaY > 0:
		step = -WheelStep
	case deltaY < 0:
		step = WheelStep
	default:
		return v
	}

	old := v.scale()
	next := max(MinScale, old+step)
	if next == old {
		return v
	}
	n := (anchor - v.OffsetX) / old
	return Viewport{Scale: next, OffsetX: anchor - n*next}
}

// Reset discards zoom and pan.
func (Viewport) Reset() Viewport { return DefaultViewport() }

// Pan shifts the content by dx surface pixels.
func (v Viewport) Pan(dx float64, surfaceWidth int) Viewport {
	if surfaceWidth <= 0 {
		return v
	}
	v.OffsetX += dx / float64(surfaceWidth)
	return v
}

// ZoomTo returns the viewport that fills the plot with the span between
// normalized data positions lo and hi, centred.
func (v Viewport) ZoomTo(lo, hi float64) Viewport {
	if lo > hi {
		lo, hi = hi, lo
	}
	width := max(hi-lo, minSelectionSpan)
	next := max(MinScale, 1/width)
	return Viewport{Scale: next, OffsetX: 0.5 - (lo+hi)/2*next}
}
