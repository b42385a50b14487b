// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenchart

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/ggchart"
)

// RunOption configures Run.
type RunOption func(*runOptions)

type runOptions struct {
	width   int
	tps     int
	title   string
	session []ggchart.Option
}

// WithWindowWidth sets the initial window width. The default is 1000.
func WithWindowWidth(w int) RunOption {
	return func(o *runOptions) {
		if w > 0 {
			o.width = w
		}
	}
}

// WithTPS sets the update (and redraw) rate. The default is 60.
func WithTPS(tps int) RunOption {
	return func(o *runOptions) {
		if tps > 0 {
			o.tps = tps
		}
	}
}

// WithWindowTitle overrides the window title, which defaults to the chart
// title.
func WithWindowTitle(title string) RunOption {
	return func(o *runOptions) {
		o.title = title
	}
}

// WithSessionOptions passes options to the hosted session.
func WithSessionOptions(opts ...ggchart.Option) RunOption {
	return func(o *runOptions) {
		o.session = append(o.session, opts...)
	}
}

// Run opens a resizable window showing cfg and blocks until it closes.
func Run(cfg ggchart.Config, opts ...RunOption) error {
	o := runOptions{width: 1000, tps: 60, title: cfg.Title}
	for _, opt := range opts {
		opt(&o)
	}
	if o.title == "" {
		o.title = "ggchart"
	}

	h, err := NewHost(cfg, o.width, o.session...)
	if err != nil {
		return err
	}
	defer func() { _ = h.Close() }()

	ebiten.SetWindowTitle(o.title)
	ebiten.SetWindowSize(o.width, ChartHeight(o.width))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(o.tps)
	ggchart.Logger().Info("ebitenchart: window opened", "width", o.width, "tps", o.tps)
	return ebiten.RunGame(h)
}
