// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"

	"github.com/gogpu/gg"
)

// ResizeThreshold is the size change, in pixels, below which Resize is
// ignored. It keeps continuous window drags from flooding the renderer.
const ResizeThreshold = 5

// Surface is the drawing target a session renders to. surface.Canvas is the
// standard implementation.
type Surface interface {
	// Context returns the drawing context, or nil when none is available.
	Context() *gg.Context

	// Size returns the backing store size in pixels.
	Size() (width, height int)

	// Resize changes the backing store size.
	Resize(width, height int) error

	// PixelRatio returns backing pixels per host (client) pixel.
	PixelRatio() (sx, sy float64)

	// MarkDirty tells the host new pixels are ready.
	MarkDirty()
}

// Buttons is the set of pressed pointer buttons.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// InteractionState is everything the pointer has done to a session.
type InteractionState struct {
	Hovered       int // series index, -1 for none
	Panning       bool
	PanAnchor     Point
	SelectionMode bool
	Selection     Selection
	Tooltip       *Tooltip
}

// Cursor is the pointer shape a host should show.
type Cursor int

const (
	CursorGrab Cursor = iota
	CursorGrabbing
	CursorCell
	CursorCrosshair
)

// Session is one interactive chart bound to one surface. It owns the
// viewport and interaction state and mutates them only through its input
// methods. A Session is not safe for concurrent use; see package redraw for
// how hosts hand events to the refresh goroutine.
type Session struct {
	cfg      Config
	opts     options
	renderer *Renderer

	surface Surface
	vp      Viewport
	st      InteractionState
	dirty   bool // a redraw is owed and no scheduler holds it
	closed  bool
}

// NewSession validates cfg and returns an unmounted session. Input methods
// are no-ops until Attach.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		cfg:      cfg,
		opts:     o,
		renderer: newRenderer(&o),
		vp:       DefaultViewport(),
		st:       InteractionState{Hovered: -1},
	}, nil
}

// Mount creates a session for series and axes and attaches it to surf at
// width x height pixels.
func Mount(surf Surface, series []DataSeries, axes []YAxis, width, height int, opts ...Option) (*Session, error) {
	s, err := NewSession(Config{Series: series, Axes: axes}, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Attach(surf, width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// SetTitles sets the chart and X axis captions.
func (s *Session) SetTitles(title, xTitle string) {
	s.cfg.Title, s.cfg.XTitle = title, xTitle
	s.request()
}

// Attach binds the session to surf, sizing its backing store to
// width x height, and schedules the first frame.
func (s *Session) Attach(surf Surface, width, height int) error {
	if surf == nil {
		return nil
	}
	if w, h := surf.Size(); width > 0 && height > 0 && (w != width || h != height) {
		if err := surf.Resize(width, height); err != nil {
			return fmt.Errorf("ggchart: attach: %w", err)
		}
	}
	s.surface = surf
	s.closed = false
	w, h := surf.Size()
	Logger().Info("ggchart: session mounted", "width", w, "height", h,
		"series", len(s.cfg.Series), "axes", len(s.cfg.Axes))
	s.request()
	return nil
}

// Close detaches the surface and cancels any pending redraw.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.dirty = false
	if s.opts.scheduler != nil {
		s.opts.scheduler.Cancel(s)
	}
	s.surface = nil
	Logger().Info("ggchart: session closed")
}

func (s *Session) attached() bool {
	return !s.closed && s.surface != nil
}

// Config returns the chart configuration.
func (s *Session) Config() *Config {
	return &s.cfg
}

// Viewport returns the current zoom and pan.
func (s *Session) Viewport() Viewport {
	return s.vp
}

// HoveredSeries returns the hovered series index.
func (s *Session) HoveredSeries() (int, bool) {
	return s.st.Hovered, s.st.Hovered >= 0
}

// SelectionMode reports whether dragging draws a zoom selection.
func (s *Session) SelectionMode() bool {
	return s.st.SelectionMode
}

// Cursor returns the pointer shape matching the current interaction.
func (s *Session) Cursor() Cursor {
	switch {
	case s.st.Selection.Active:
		return CursorCrosshair
	case s.st.SelectionMode:
		return CursorCell
	case s.st.Panning:
		return CursorGrabbing
	default:
		return CursorGrab
	}
}

// layout derives this event's geometry from the surface's current size.
func (s *Session) layout() Layout {
	w, h := s.surface.Size()
	return NewLayout(w, h, s.opts.margins)
}

func (s *Session) xScale(l Layout) XScale {
	return XScale{Plot: l.Plot, Viewport: s.vp, PointCount: s.cfg.PointCount()}
}

// toSurface converts host client coordinates to backing-store pixels.
func (s *Session) toSurface(p Point) Point {
	sx, sy := s.surface.PixelRatio()
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Frame returns a snapshot of the state the next redraw will render.
func (s *Session) Frame() Frame {
	f := Frame{
		Config:    &s.cfg,
		Viewport:  s.vp,
		Hovered:   s.st.Hovered,
		Selection: s.st.Selection,
		Tooltip:   s.st.Tooltip,
	}
	if s.attached() {
		f.Layout = s.layout()
	}
	return f
}

// Redraw renders the current state onto the surface. Schedulers call it
// once per refresh.
func (s *Session) Redraw() {
	if !s.attached() {
		return
	}
	s.dirty = false
	dc := s.surface.Context()
	if dc == nil {
		return
	}
	f := s.Frame()
	s.renderer.Render(dc, &f)
	s.surface.MarkDirty()
}

// Flush draws the changes made since the last frame. Hosts that run
// without a Scheduler call it once per display refresh; it reports whether
// a frame was drawn. With a Scheduler installed there is never anything to
// flush.
func (s *Session) Flush() bool {
	if !s.dirty || !s.attached() {
		return false
	}
	s.Redraw()
	return true
}

// request marks the session dirty, through the scheduler when one is
// installed.
func (s *Session) request() {
	if !s.attached() {
		return
	}
	if s.opts.scheduler != nil {
		s.opts.scheduler.Request(s)
		return
	}
	s.dirty = true
}

// redrawNow draws synchronously, superseding any pending request.
func (s *Session) redrawNow() {
	if s.opts.scheduler != nil {
		s.opts.scheduler.Cancel(s)
	}
	s.Redraw()
}

func (s *Session) setViewport(vp Viewport, reason string) {
	if vp == s.vp {
		return
	}
	s.vp = vp
	Logger().Debug("ggchart: viewport "+reason, "viewport", vp.String())
	s.request()
}
