// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package replay drives a chart session from a scripted sequence of input
// events without a window, writing PNG snapshots along the way.
package replay

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/chartfile"
	"github.com/gogpu/ggchart/redraw"
	"github.com/gogpu/ggchart/surface"
)

// Result summarizes a replay.
type Result struct {
	Snapshots []string // written files, in script order
	Frames    uint64   // scheduler frames that redrew the chart
	Viewport  ggchart.Viewport
}

// Runner replays scripts against one chart configuration.
type Runner struct {
	Config  ggchart.Config
	Options []ggchart.Option
	OutDir  string // snapshot directory; created on demand
}

// Run executes script. Every snapshot first flushes pending redraws, so it
// captures the state after all preceding steps. ctx is checked between
// steps.
func (r *Runner) Run(ctx context.Context, script *chartfile.Script) (*Result, error) {
	canvas, err := surface.New(script.Width, script.Height)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	defer func() { _ = canvas.Close() }()
	if script.Scale != 1 {
		canvas.SetDisplaySize(
			int(float64(script.Width)/script.Scale+0.5),
			int(float64(script.Height)/script.Scale+0.5),
		)
	}

	sched := redraw.New()
	opts := append([]ggchart.Option{ggchart.WithScheduler(sched)}, r.Options...)
	s, err := ggchart.NewSession(r.Config, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	if err := s.Attach(canvas, script.Width, script.Height); err != nil {
		return nil, err
	}

	res := &Result{}
	for i, st := range script.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := r.step(s, sched, canvas, st, res); err != nil {
			return res, fmt.Errorf("replay: step %d (%s): %w", i, st.Op, err)
		}
	}
	sched.Tick()
	res.Frames = sched.Frames()
	res.Viewport = s.Viewport()
	return res, nil
}

func (r *Runner) step(s *ggchart.Session, sched *redraw.Scheduler, canvas *surface.Canvas, st chartfile.Step, res *Result) error {
	at := ggchart.Pt(st.X, st.Y)
	switch st.Op {
	case chartfile.OpDown:
		s.PointerDown(at, ggchart.ButtonPrimary)
	case chartfile.OpMove:
		var b ggchart.Buttons
		if st.Held {
			b = ggchart.ButtonPrimary
		}
		s.PointerMove(at, b)
	case chartfile.OpUp:
		s.PointerUp(at, 0)
	case chartfile.OpLeave:
		s.PointerLeave()
	case chartfile.OpWheel:
		s.Wheel(st.Delta, at)
	case chartfile.OpResize:
		s.Resize(st.Width, st.Height)
	case chartfile.OpSelection:
		s.SetSelectionMode(st.On)
	case chartfile.OpReset:
		s.ResetZoom()
	case chartfile.OpTick:
		sched.Tick()
	case chartfile.OpSnapshot:
		sched.Tick()
		path, err := r.snapshot(canvas, st.File)
		if err != nil {
			return err
		}
		res.Snapshots = append(res.Snapshots, path)
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

func (r *Runner) snapshot(canvas *surface.Canvas, name string) (string, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.OutDir, name)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("snapshot dir: %w", err)
	}
	if err := canvas.SavePNG(path); err != nil {
		return "", err
	}
	w, h := canvas.Size()
	ggchart.Logger().Info("replay: snapshot written", "path", path, "width", w, "height", h)
	return path, nil
}
