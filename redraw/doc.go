// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package redraw coalesces chart redraws into one per display refresh.
//
// Input handlers mark sessions dirty with Request; the host calls Tick once
// per refresh (a window's update callback, or Run in headless mode) and
// every dirty session is redrawn exactly once with its latest state:
//
//	sched := redraw.New()
//	s, _ := ggchart.Mount(canvas, series, axes, 800, 500, ggchart.WithScheduler(sched))
//	s.PointerMove(ggchart.Pt(120, 200), 0)
//	s.Wheel(-1, ggchart.Pt(120, 200))
//	sched.Tick() // one redraw
//
// Everything runs on the ticking goroutine. Events produced elsewhere are
// handed over with Post.
package redraw
