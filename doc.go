// Package ggchart renders interactive multi-series time charts with several
// independent Y axes onto a gg drawing context.
//
// # Overview
//
// A chart is a set of DataSeries, each bound to one YAxis with a fixed value
// domain. Axes sit left or right of the plot area and can be stacked with
// an outward Offset. The X domain is the ordinal sample index, normalized to
// [0, 1] and transformed by a Viewport (zoom Scale, pan OffsetX) before it
// is mapped onto the plot width.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggchart"
//	    "github.com/gogpu/ggchart/surface"
//	)
//
//	canvas, _ := surface.New(1000, 500)
//	s, err := ggchart.Mount(canvas, series, axes, 1000, 500)
//	if err != nil {
//	    return err // errors.Is(err, ggchart.ErrInvalidConfig)
//	}
//	s.Wheel(-1, ggchart.Pt(400, 250))      // zoom in around the pointer
//	s.PointerMove(ggchart.Pt(400, 200), 0) // hover: highlight + tooltip
//	s.Flush()                              // draw once for all of the above
//	canvas.SavePNG("chart.png")
//
// # Interaction
//
// A Session owns the viewport and an explicit InteractionState and changes
// them only through its input methods:
//
//   - PointerMove hovers: the nearest series within the hit threshold (or
//     the legend entry under the pointer) is highlighted, the rest dimmed.
//   - PointerDown/PointerMove/PointerUp with the primary button pan, or, in
//     selection mode, draw a rubber band that zooms to the selected span.
//   - Wheel zooms one step around the pointer, never below MinScale.
//   - ResetZoom returns to DefaultViewport.
//
// Points are host client coordinates; the surface's PixelRatio converts
// them to backing-store pixels.
//
// # Redraw
//
// Input methods never draw, except for selection feedback. They mark the
// session dirty and the host draws once per display refresh: either by
// calling Session.Flush, or through a Scheduler (see package redraw) that
// coalesces many sessions into one tick.
//
// # Logging
//
// The package is silent by default. SetLogger installs a *slog.Logger;
// viewport changes and selection commits are logged at debug level.
package ggchart
