// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// testSurface is a bare gg.Context surface that counts presented frames.
type testSurface struct {
	dc       *gg.Context
	w, h     int
	sx, sy   float64
	dirty    int
	resizes  int
	failNext error
}

func newTestSurface(w, h int) *testSurface {
	return &testSurface{dc: gg.NewContext(w, h), w: w, h: h, sx: 1, sy: 1}
}

func (s *testSurface) Context() *gg.Context { return s.dc }
func (s *testSurface) Size() (int, int) { return s.w, s.h }
func (s *testSurface) PixelRatio() (float64, float64) { return s.sx, s.sy }
func (s *testSurface) MarkDirty() { s.dirty++ }

func (s *testSurface) Resize(w, h int) error {
	if err := s.failNext; err != nil {
		s.failNext = nil
		return err
	}
	if err := s.dc.Resize(w, h); err != nil {
		return err
	}
	s.w, s.h = w, h
	s.resizes++
	return nil
}

// countingScheduler records requests without ever redrawing on its own.
type countingScheduler struct {
	pending  map[Redrawer]bool
	requests int
}

func newCountingScheduler() *countingScheduler {
	return &countingScheduler{pending: make(map[Redrawer]bool)}
}

func (c *countingScheduler) Request(r Redrawer) {
	c.requests++
	c.pending[r] = true
}

func (c *countingScheduler) Cancel(r Redrawer) {
	delete(c.pending, r)
}

func (c *countingScheduler) tick() {
	for r := range c.pending {
		delete(c.pending, r)
		r.Redraw()
	}
}

// testConfig has two five-point series rising and falling on separate axes
// of domain [0, 100]. With an 800x600 surface and DefaultMargins the plot is
// x in [60, 620], y in [50, 560], and data index i sits at column 60+140*i.
func testConfig() Config {
	rise := make([]DataPoint, 5)
	fall := make([]DataPoint, 5)
	for i := range rise {
		rise[i] = DataPoint{X: float64(i), Y: float64(10 + 10*i)}
		fall[i] = DataPoint{X: float64(i), Y: float64(90 - 10*i)}
	}
	return Config{
		Title:  "Test",
		XTitle: "Hour",
		Series: []DataSeries{
			{Name: "rise", Color: "#ff7300", AxisID: 1, Points: rise},
			{Name: "fall", Color: "#387908", AxisID: 2, Points: fall},
		},
		Axes: []YAxis{
			{ID: 1, Title: "Rise", Color: "#ff7300", Min: 0, Max: 100, Position: AxisLeft},
			{ID: 2, Title: "Fall", Color: "#387908", Min: 0, Max: 100, Position: AxisRight},
		},
	}
}

func newTestSession(t *testing.T, opts ...Option) (*Session, *testSurface) {
	t.Helper()
	surf := newTestSurface(800, 600)
	t.Cleanup(func() { _ = surf.dc.Close() })

	s, err := NewSession(testConfig(), opts...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if err := s.Attach(surf, 800, 600); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	t.Cleanup(s.Close)
	return s, surf
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
