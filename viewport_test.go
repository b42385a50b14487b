// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "testing"

func TestViewportZoomDirection(t *testing.T) {
	v := DefaultViewport()

	in := v.Zoom(-1, 0.5)
	if !approxEqual(in.Scale, 1.1) {
		t.Errorf("zoom in: Scale = %v, want 1.1", in.Scale)
	}
	out := in.Zoom(1, 0.5)
	if !approxEqual(out.Scale, 1) {
		t.Errorf("zoom out: Scale = %v, want 1", out.Scale)
	}
	if got := v.Zoom(0, 0.5); got != v {
		t.Errorf("zero delta changed viewport: %v", got)
	}
}

func TestViewportZoomFloor(t *testing.T) {
	v := DefaultViewport()
	for range 20 {
		v = v.Zoom(3, 0.3)
		if v.Scale < MinScale {
			t.Fatalf("Scale = %v dropped below %v", v.Scale, MinScale)
		}
	}
	if v != DefaultViewport() {
		t.Errorf("zooming out at the floor moved the viewport: %v", v)
	}
}

func TestViewportZoomKeepsAnchor(t *testing.T) {
	xs := XScale{Plot: Rect{X0: 60, Width: 560}, PointCount: 24}
	tests := []struct {
		name   string
		start  Viewport
		delta  float64
		anchor float64
	}{
		{"centre in", DefaultViewport(), -1, 0.5},
		{"left in", DefaultViewport(), -120, 0.1},
		{"right out", Viewport{Scale: 3, OffsetX: -1.2}, 1, 0.9},
		{"panned in", Viewport{Scale: 1.5, OffsetX: 0.3}, -1, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs.Viewport = tt.start
			before := xs.Normalized(tt.anchor)
			xs.Viewport = tt.start.Zoom(tt.delta, tt.anchor)
			after := xs.Normalized(tt.anchor)
			if !approxEqual(before, after) {
				t.Errorf("data under anchor moved from %v to %v", before, after)
			}
		})
	}
}

func TestViewportPan(t *testing.T) {
	v := Viewport{Scale: 2, OffsetX: 0.1}
	got := v.Pan(80, 800)
	if !approxEqual(got.OffsetX, 0.2) || got.Scale != 2 {
		t.Errorf("Pan() = %v, want {2, 0.2}", got)
	}
	if got := v.Pan(80, 0); got != v {
		t.Errorf("Pan with zero width = %v, want unchanged", got)
	}
	// Panning is unbounded.
	far := DefaultViewport()
	for range 50 {
		far = far.Pan(-800, 800)
	}
	if far.OffsetX != -50 {
		t.Errorf("OffsetX = %v, want -50", far.OffsetX)
	}
}

func TestViewportZoomTo(t *testing.T) {
	got := DefaultViewport().ZoomTo(0.25, 0.75)
	if !approxEqual(got.Scale, 2) || !approxEqual(got.OffsetX, -0.5) {
		t.Errorf("ZoomTo(0.25, 0.75) = %v, want {2, -0.5}", got)
	}
	if rev := DefaultViewport().ZoomTo(0.75, 0.25); rev != got {
		t.Errorf("reversed span = %v, want %v", rev, got)
	}
	// A span wider than the data never zooms out past MinScale.
	if wide := DefaultViewport().ZoomTo(-1, 2); wide.Scale != MinScale {
		t.Errorf("wide span Scale = %v, want %v", wide.Scale, MinScale)
	}
}

func TestSelectionCommit(t *testing.T) {
	xs := XScale{Plot: Rect{X0: 60, Width: 560}, Viewport: DefaultViewport(), PointCount: 5}

	var sel Selection
	sel.Begin(Pt(480, 100))
	sel.Update(Pt(200, 300))
	vp, ok := sel.Commit(xs)
	if !ok {
		t.Fatal("Commit() ok = false, want true")
	}
	if !approxEqual(vp.Scale, 2) || !approxEqual(vp.OffsetX, -0.5) {
		t.Errorf("Commit() = %v, want {2, -0.5}", vp)
	}
	if sel.Active {
		t.Error("selection still active after Commit")
	}

	// The selected columns now span the plot.
	xs.Viewport = vp
	if got := xs.Pixel(1); !approxEqual(got, 60) {
		t.Errorf("Pixel(1) = %v, want 60", got)
	}
	if got := xs.Pixel(3); !approxEqual(got, 620) {
		t.Errorf("Pixel(3) = %v, want 620", got)
	}
}

func TestSelectionCommitComposes(t *testing.T) {
	xs := XScale{Plot: Rect{X0: 60, Width: 560}, Viewport: Viewport{Scale: 2, OffsetX: -0.5}, PointCount: 5}
	lo, hi := xs.Data(200), xs.Data(480)

	var sel Selection
	sel.Begin(Pt(200, 100))
	sel.Update(Pt(480, 100))
	vp, ok := sel.Commit(xs)
	if !ok {
		t.Fatal("Commit() ok = false")
	}
	xs.Viewport = vp
	if got := xs.Data(60); !approxEqual(got, lo) {
		t.Errorf("left edge shows %v, want %v", got, lo)
	}
	if got := xs.Data(620); !approxEqual(got, hi) {
		t.Errorf("right edge shows %v, want %v", got, hi)
	}
}

func TestSelectionTooNarrow(t *testing.T) {
	xs := XScale{Plot: Rect{X0: 60, Width: 560}, Viewport: Viewport{Scale: 1.5, OffsetX: 0.1}, PointCount: 5}
	var sel Selection
	sel.Begin(Pt(300, 100))
	sel.Update(Pt(319, 400))
	vp, ok := sel.Commit(xs)
	if ok {
		t.Error("Commit() ok = true for a 19px band")
	}
	if vp != xs.Viewport {
		t.Errorf("viewport changed to %v", vp)
	}
	if sel.Active {
		t.Error("selection still active")
	}
}

func TestSelectionIdle(t *testing.T) {
	var sel Selection
	if sel.Update(Pt(1, 1)) {
		t.Error("Update() on an idle selection reported a change")
	}
	if _, ok := sel.Commit(XScale{}); ok {
		t.Error("Commit() on an idle selection succeeded")
	}
	sel.Begin(Pt(5, 5))
	sel.Cancel()
	if sel.Active {
		t.Error("Cancel() left the selection active")
	}
}

func TestViewportReset(t *testing.T) {
	v := Viewport{Scale: 3.5, OffsetX: -1.2}.Reset()
	if v != DefaultViewport() {
		t.Fatalf("Reset() = %v, want %v", v, DefaultViewport())
	}
	if again := v.Reset(); again != v {
		t.Errorf("second Reset() = %v, want %v", again, v)
	}
}

func TestSelectionCommitWhileZoomed(t *testing.T) {
	xs := XScale{Plot: Rect{X0: 60, Width: 560}, Viewport: Viewport{Scale: 2}, PointCount: 5}

	// Fractions 0.1 and 0.4 of the plot width are data positions 0.05 and 0.2.
	var sel Selection
	sel.Begin(Pt(116, 100))
	sel.Update(Pt(284, 100))
	vp, ok := sel.Commit(xs)
	if !ok {
		t.Fatal("Commit() ok = false")
	}
	if !approxEqual(vp.Scale, 1/0.15) || !approxEqual(vp.OffsetX, -1.0/3) {
		t.Errorf("Commit() = %v, want {6.667, -0.333}", vp)
	}
	xs.Viewport = vp
	if got := xs.Unit(xs.Pixel(0.125 * 4)); !approxEqual(got, 0.5) {
		t.Errorf("band centre at plot fraction %v, want 0.5", got)
	}
}
