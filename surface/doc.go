// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the drawing surface a chart session renders to.
//
// A Canvas owns a gg.Context (the backing store) and remembers the size at
// which the host displays it. When the two differ, for example on a HiDPI
// display, PixelRatio converts host pointer coordinates into backing-store
// pixels:
//
//	gg.Context (draw) -> backing store -> host display
//
// # Usage
//
//	canvas, err := surface.New(800, 500)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//	canvas.SetDisplaySize(400, 250) // CSS-style size, device pixel ratio 2
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. It is owned by the goroutine that
// drives its session.
package surface
