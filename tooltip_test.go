// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"testing"

	"golang.org/x/text/language"
)

func TestTimeAxisTicks(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want []string
	}{
		{"default", nil, []string{"12:00", "12:15", "12:30", "12:45", "12:60", "12:75"}},
		{"wall clock", []Option{WithTimeBase(12*60, 15)}, []string{"12:00", "12:15", "12:30", "12:45", "13:00", "13:15"}},
		{"wraps midnight", []Option{WithTimeBase(23*60+30, 10)}, []string{"23:30", "23:40", "23:50", "00:00", "00:10", "00:20"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			r := newRenderer(&o)
			for i, w := range tt.want {
				if got := r.clock.Tick(i); got != w {
					t.Errorf("Tick(%d) = %q, want %q", i, got, w)
				}
			}
		})
	}
}

func TestTimeAxisAt(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		wall bool
		want string
	}{
		{0, 24, false, "12:00"},
		{23, 24, false, "12:75"},
		{23, 24, true, "13:15"},
		{2, 5, false, "12:38"}, // half way, 37.5 minutes rounds up
		{0, 1, false, "12:00"},
	}
	for _, tt := range tests {
		ta := timeAxis{base: 12 * 60, step: 15, ticks: 5, wall: tt.wall}
		if got := ta.At(tt.x, tt.n); got != tt.want {
			t.Errorf("At(%v, %d) wall=%v = %q, want %q", tt.x, tt.n, tt.wall, got, tt.want)
		}
	}
}

func TestClockWraps(t *testing.T) {
	if got := clock(23*60 + 50 + 15); got != "00:05" {
		t.Errorf("clock() = %q, want 00:05", got)
	}
	if got := clock(-10); got != "23:50" {
		t.Errorf("clock(-10) = %q, want 23:50", got)
	}
}

func TestNumbersFixed(t *testing.T) {
	en := newNumbers(language.English)
	if got := en.Fixed(3.14159, 2); got != "3.14" {
		t.Errorf("Fixed(3.14159, 2) = %q, want 3.14", got)
	}
	if got := en.Fixed(20, 1); got != "20.0" {
		t.Errorf("Fixed(20, 1) = %q, want 20.0", got)
	}
	de := newNumbers(language.German)
	if got := de.Fixed(3.5, 1); got != "3,5" {
		t.Errorf("German Fixed(3.5, 1) = %q, want 3,5", got)
	}
}

func TestTooltipBox(t *testing.T) {
	l := NewLayout(800, 600, DefaultMargins)
	tests := []struct {
		name string
		at   Point
		want Rect
	}{
		{"free", Pt(300, 300), Rect{X0: 312, Y0: 248, Width: 100, Height: 40}},
		{"right edge", Pt(780, 300), Rect{X0: 700, Y0: 248, Width: 100, Height: 40}},
		{"top edge", Pt(300, 10), Rect{X0: 312, Y0: 0, Width: 100, Height: 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TooltipBox(l, tt.at, 100, 40); got != tt.want {
				t.Errorf("TooltipBox() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
