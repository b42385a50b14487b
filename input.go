// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

// Input transitions. Points are host client coordinates; every method
// converts them to backing-store pixels first and no-ops while no surface
// is attached.

// PointerDown starts a selection (selection mode) or a pan.
func (s *Session) PointerDown(p Point, b Buttons) {
	if !s.attached() || b&ButtonPrimary == 0 {
		return
	}
	sp := s.toSurface(p)
	l := s.layout()

	if s.st.SelectionMode {
		if !l.Bounds().Contains(sp) {
			return
		}
		s.st.Selection.Begin(sp)
		s.st.Tooltip = nil
		s.redrawNow()
		return
	}

	s.st.Panning = true
	s.st.PanAnchor = sp
	if s.st.Tooltip != nil {
		s.st.Tooltip = nil
		s.request()
	}
}

// PointerMove drags the selection band, pans, or updates the hover.
func (s *Session) PointerMove(p Point, _ Buttons) {
	if !s.attached() {
		return
	}
	sp := s.toSurface(p)

	switch {
	case s.st.Selection.Active:
		// Band feedback is drawn synchronously, not on the next refresh.
		if s.st.Selection.Update(sp) {
			s.redrawNow()
		}
	case s.st.Panning:
		dx := sp.X - s.st.PanAnchor.X
		s.st.PanAnchor = sp
		w, _ := s.surface.Size()
		s.setViewport(s.vp.Pan(dx, w), "panned")
	default:
		s.hover(sp)
	}
}

// PointerUp ends a pan, or commits the selection as a zoom.
func (s *Session) PointerUp(p Point, _ Buttons) {
	if !s.attached() {
		return
	}
	s.st.Panning = false
	if !s.st.Selection.Active {
		return
	}

	s.st.Selection.Update(s.toSurface(p))
	band := s.st.Selection.Rect()
	vp, ok := s.st.Selection.Commit(s.xScale(s.layout()))
	if !ok {
		Logger().Debug("ggchart: selection discarded", "width", band.Width)
		s.request()
		return
	}
	Logger().Debug("ggchart: selection committed", "x0", band.X0, "x1", band.X1())
	s.setViewport(vp, "zoomed to selection")
	s.request()
}

// PointerLeave cancels any drag and clears the hover.
func (s *Session) PointerLeave() {
	if !s.attached() {
		return
	}
	s.st.Panning = false
	s.st.Selection.Cancel()
	s.st.Hovered = -1
	s.st.Tooltip = nil
	s.request()
}

// Wheel zooms one step around the pointer. Positive deltaY zooms out.
func (s *Session) Wheel(deltaY float64, p Point) {
	if !s.attached() {
		return
	}
	sp := s.toSurface(p)
	xs := s.xScale(s.layout())
	s.setViewport(s.vp.Zoom(deltaY, xs.Unit(sp.X)), "zoomed")
}

// Resize resizes the surface backing store. Changes within ResizeThreshold
// on both axes are ignored, as are non-positive sizes.
func (s *Session) Resize(width, height int) {
	if !s.attached() || width <= 0 || height <= 0 {
		return
	}
	w, h := s.surface.Size()
	if absInt(width-w) <= ResizeThreshold && absInt(height-h) <= ResizeThreshold {
		return
	}
	if err := s.surface.Resize(width, height); err != nil {
		Logger().Warn("ggchart: resize failed", "width", width, "height", height, "err", err)
		return
	}
	s.request()
}

// SetSelectionMode switches between pan and area-selection dragging.
// Turning it off cancels a selection in progress.
func (s *Session) SetSelectionMode(on bool) {
	if s.st.SelectionMode == on {
		return
	}
	s.st.SelectionMode = on
	s.st.Panning = false
	if !on {
		s.st.Selection.Cancel()
	}
	s.request()
}

// ResetZoom restores the full data extent.
func (s *Session) ResetZoom() {
	Logger().Debug("ggchart: viewport reset", "from", s.vp.String())
	s.setViewport(s.vp.Reset(), "reset")
}

// hover hit-tests sp and updates the hovered series and tooltip.
func (s *Session) hover(sp Point) {
	l := s.layout()
	ht := HitTester{Config: &s.cfg, Layout: l, Viewport: s.vp, Threshold: s.opts.threshold}
	idx, ok := ht.Nearest(sp)

	var tt *Tooltip
	if ok && l.Plot.Contains(sp) {
		dataX := ht.XScale().Data(sp.X)
		if v, in := Interpolate(&s.cfg.Series[idx], dataX); in {
			tt = &Tooltip{Pos: sp, Series: idx, DataX: dataX, Value: v}
		}
	}
	if !ok {
		idx = -1
	}

	if idx == s.st.Hovered && tt == nil && s.st.Tooltip == nil {
		return
	}
	s.st.Hovered = idx
	s.st.Tooltip = tt
	s.request()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
