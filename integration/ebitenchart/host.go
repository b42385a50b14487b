// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenchart

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/redraw"
	"github.com/gogpu/ggchart/surface"
)

// MinHeight is the smallest chart height the host lays out.
const MinHeight = 400

// ChartHeight returns the chart height for a window width.
func ChartHeight(width int) int {
	return max(MinHeight, width/2)
}

// Input is one polled snapshot of the pointer and keyboard.
type Input struct {
	Cursor  ggchart.Point
	Inside  bool // cursor over the chart
	Buttons ggchart.Buttons
	WheelY  float64 // positive zooms out

	Reset           bool
	ToggleSelection bool
	ExitSelection   bool
}

// Host is an ebiten.Game that displays one chart session.
type Host struct {
	session *ggchart.Session
	canvas  *surface.Canvas
	sched   *redraw.Scheduler
	poll    func(width, height int) Input

	img    *ebiten.Image
	shape  ebiten.CursorShapeType
	inside bool
	cursor ggchart.Point
	held   ggchart.Buttons
}

// Compile-time check.
var _ ebiten.Game = (*Host)(nil)

// NewHost creates a session for cfg on a width-wide canvas.
func NewHost(cfg ggchart.Config, width int, opts ...ggchart.Option) (*Host, error) {
	canvas, err := surface.New(width, ChartHeight(width))
	if err != nil {
		return nil, fmt.Errorf("ebitenchart: %w", err)
	}
	sched := redraw.New()
	opts = append([]ggchart.Option{ggchart.WithScheduler(sched)}, opts...)
	s, err := ggchart.NewSession(cfg, opts...)
	if err != nil {
		_ = canvas.Close()
		return nil, err
	}
	w, h := canvas.Size()
	if err := s.Attach(canvas, w, h); err != nil {
		_ = canvas.Close()
		return nil, err
	}
	return &Host{session: s, canvas: canvas, sched: sched, poll: pollEbiten}, nil
}

// Session returns the hosted session.
func (h *Host) Session() *ggchart.Session {
	return h.session
}

// Scheduler returns the scheduler ticked by Update. Other goroutines hand
// work to the session through the scheduler's Post method.
func (h *Host) Scheduler() *redraw.Scheduler {
	return h.sched
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	w, ht := h.canvas.Size()
	h.apply(h.poll(w, ht))
	h.sched.Tick()
	h.updateCursor()
	return nil
}

// apply feeds the difference between the previous and current input
// snapshot to the session.
func (h *Host) apply(in Input) {
	switch {
	case in.Reset:
		h.session.ResetZoom()
	case in.ToggleSelection:
		h.session.SetSelectionMode(!h.session.SelectionMode())
	case in.ExitSelection:
		h.session.SetSelectionMode(false)
	}

	if !in.Inside {
		if h.inside {
			h.session.PointerLeave()
			h.inside = false
		}
		h.held = in.Buttons
		return
	}
	if !h.inside {
		// Buttons pressed outside the window do not start a drag.
		h.inside = true
		h.held = in.Buttons
		h.cursor = in.Cursor
		h.session.PointerMove(in.Cursor, 0)
	}

	pressed := in.Buttons &^ h.held
	released := h.held &^ in.Buttons

	if in.Cursor != h.cursor {
		h.session.PointerMove(in.Cursor, h.held)
		h.cursor = in.Cursor
	}
	if pressed&ggchart.ButtonPrimary != 0 {
		h.session.PointerDown(in.Cursor, in.Buttons)
	}
	if released&ggchart.ButtonPrimary != 0 {
		h.session.PointerUp(in.Cursor, in.Buttons)
	}
	h.held = in.Buttons

	if in.WheelY != 0 {
		h.session.Wheel(in.WheelY, in.Cursor)
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	w, ht := h.canvas.Size()
	if h.img == nil || h.img.Bounds().Dx() != w || h.img.Bounds().Dy() != ht {
		if h.img != nil {
			h.img.Deallocate()
		}
		h.img = ebiten.NewImage(w, ht)
		h.canvas.MarkDirty()
	}
	if h.canvas.TakeDirty() {
		h.img.WritePixels(h.canvas.RGBA().Pix)
	}
	screen.Fill(color.White)
	screen.DrawImage(h.img, nil)
}

// Layout implements ebiten.Game. The chart is as wide as the window and
// ChartHeight tall; ebiten letterboxes the rest.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 {
		h.session.Resize(outsideWidth, ChartHeight(outsideWidth))
	}
	return h.canvas.Size()
}

// Close releases the session and canvas.
func (h *Host) Close() error {
	h.session.Close()
	if h.img != nil {
		h.img.Deallocate()
		h.img = nil
	}
	return h.canvas.Close()
}

func (h *Host) updateCursor() {
	shape := cursorShape(h.session.Cursor())
	if shape != h.shape {
		ebiten.SetCursorShape(shape)
		h.shape = shape
	}
}

func cursorShape(c ggchart.Cursor) ebiten.CursorShapeType {
	switch c {
	case ggchart.CursorGrabbing:
		return ebiten.CursorShapeMove
	case ggchart.CursorCell, ggchart.CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	default:
		return ebiten.CursorShapeDefault
	}
}

// pollEbiten reads the input state. width and height are the logical
// screen size, in which ebiten reports the cursor.
func pollEbiten(width, height int) Input {
	x, y := ebiten.CursorPosition()
	in := Input{Cursor: ggchart.Pt(float64(x), float64(y))}
	in.Inside = ebiten.IsFocused() && x >= 0 && y >= 0 && x < width && y < height

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.Buttons |= ggchart.ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		in.Buttons |= ggchart.ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		in.Buttons |= ggchart.ButtonMiddle
	}

	// Ebiten reports wheel-up as positive; wheel-up zooms in.
	_, dy := ebiten.Wheel()
	in.WheelY = -dy

	in.Reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.ToggleSelection = inpututil.IsKeyJustPressed(ebiten.KeyS)
	in.ExitSelection = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}
