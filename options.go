// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"golang.org/x/text/language"

	"github.com/gogpu/gg/text"
)

// Emphasis selects how axes react to hovering.
type Emphasis int

const (
	// EmphasisDimOthers draws every axis. An axis is highlighted when nothing
	// is hovered or when the hovered series is bound to it; others are dimmed.
	EmphasisDimOthers Emphasis = iota

	// EmphasisHoveredOnly draws only the axis of the hovered series. With
	// nothing hovered a single neutral axis is drawn instead.
	EmphasisHoveredOnly
)

// Option configures a Session during creation.
//
// Example:
//
//	s, err := ggchart.NewSession(cfg,
//	    ggchart.WithXTicks(6),
//	    ggchart.WithEmphasis(ggchart.EmphasisHoveredOnly),
//	)
type Option func(*options)

// Fonts are the faces the renderer draws text with. Nil faces skip the
// corresponding text.
type Fonts struct {
	Title         text.Face // chart title
	AxisTitle     text.Face // dimmed axis titles
	AxisTitleBold text.Face // highlighted axis titles
	Label         text.Face // tick labels, dimmed legend labels, tooltip body
	LabelBold     text.Face // highlighted legend labels, tooltip heading
}

type options struct {
	margins   Margins
	xTicks    int
	yTicks    int
	threshold float64
	emphasis  Emphasis
	scheduler Scheduler
	fonts     *Fonts
	locale    language.Tag
	timeBase  int
	timeStep  int
	wallClock bool
}

func defaultOptions() options {
	return options{
		margins:   DefaultMargins,
		xTicks:    5,
		yTicks:    5,
		threshold: DefaultHitThreshold,
		emphasis:  EmphasisDimOthers,
		locale:    language.English,
		timeBase:  12 * 60,
		timeStep:  15,
	}
}

// WithMargins overrides DefaultMargins.
func WithMargins(m Margins) Option {
	return func(o *options) {
		o.margins = m
	}
}

// WithXTicks sets the number of X intervals. Ticks are drawn at n+1
// evenly spaced ordinal positions.
func WithXTicks(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.xTicks = n
		}
	}
}

// WithYTicks sets the number of intervals of every Y axis.
func WithYTicks(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.yTicks = n
		}
	}
}

// WithHitThreshold sets the hover distance in pixels.
func WithHitThreshold(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.threshold = px
		}
	}
}

// WithEmphasis selects the axis emphasis policy.
func WithEmphasis(e Emphasis) Option {
	return func(o *options) {
		o.emphasis = e
	}
}

// WithScheduler attaches the session to a redraw scheduler. Without one,
// every state change redraws immediately.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithFonts replaces the embedded Go fonts.
func WithFonts(f Fonts) Option {
	return func(o *options) {
		o.fonts = &f
	}
}

// WithLocale sets the locale used to format tick and tooltip values.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithTimeBase sets the clock label of the first X tick, in minutes after
// midnight, and the minutes between ticks, and switches the labels to wall
// clock arithmetic: minutes carry into the hour and hours wrap at midnight.
// Without it the axis uses the fixed 12:MM labels, MM = tick*15, which run
// past 59 on the last tick.
func WithTimeBase(startMinutes, stepMinutes int) Option {
	return func(o *options) {
		o.wallClock = true
		o.timeBase = startMinutes
		if stepMinutes > 0 {
			o.timeStep = stepMinutes
		}
	}
}

// Redrawer is anything a Scheduler can redraw. *Session implements it.
type Redrawer interface {
	Redraw()
}

// Scheduler coalesces redraw requests into one redraw per display refresh.
// See package redraw for the implementation.
type Scheduler interface {
	// Request marks r dirty. Repeated requests before the next refresh
	// produce a single redraw.
	Request(r Redrawer)

	// Cancel drops a pending redraw of r.
	Cancel(r Redrawer)
}
