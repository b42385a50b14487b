// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package redraw

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/ggchart"
)

// ErrInvalidRate is returned by Run for a non-positive refresh rate.
var ErrInvalidRate = errors.New("redraw: invalid refresh rate")

// Scheduler implements ggchart.Scheduler.
//
// Request, Cancel and Tick must be called from the goroutine that drives the
// display refresh. Post is the only method safe to call from elsewhere.
type Scheduler struct {
	dirty []ggchart.Redrawer
	index map[ggchart.Redrawer]int

	mu     sync.Mutex
	posted []func()

	frames uint64
}

// New returns an empty scheduler.
func New() *Scheduler {
	return &Scheduler{index: make(map[ggchart.Redrawer]int)}
}

// Request marks r dirty. A target is redrawn at most once per Tick no
// matter how often it was requested.
func (s *Scheduler) Request(r ggchart.Redrawer) {
	if r == nil {
		return
	}
	if _, ok := s.index[r]; ok {
		return
	}
	s.index[r] = len(s.dirty)
	s.dirty = append(s.dirty, r)
}

// Cancel drops a pending redraw of r.
func (s *Scheduler) Cancel(r ggchart.Redrawer) {
	i, ok := s.index[r]
	if !ok {
		return
	}
	delete(s.index, r)
	s.dirty[i] = nil
}

// Pending reports whether r is waiting for the next Tick.
func (s *Scheduler) Pending(r ggchart.Redrawer) bool {
	_, ok := s.index[r]
	return ok
}

// Post queues fn to run at the start of the next Tick, on the ticking
// goroutine. It is safe for concurrent use.
func (s *Scheduler) Post(fn func()) {
	s.mu.Lock()
	s.posted = append(s.posted, fn)
	s.mu.Unlock()
}

// Tick is one display refresh: posted functions run first, then every
// dirty target is redrawn once, in request order. It returns the number of
// redraws performed.
func (s *Scheduler) Tick() int {
	s.mu.Lock()
	posted := s.posted
	s.posted = nil
	s.mu.Unlock()
	for _, fn := range posted {
		fn()
	}

	if len(s.dirty) == 0 {
		return 0
	}
	// Targets requested during a redraw wait for the next tick.
	drain := s.dirty
	s.dirty = nil
	clear(s.index)

	n := 0
	for _, r := range drain {
		if r == nil {
			continue
		}
		r.Redraw()
		n++
	}
	if n == 0 {
		return 0
	}
	s.frames++
	ggchart.Logger().Debug("redraw: frame drained", "frame", s.frames, "targets", n)
	return n
}

// Frames returns the number of ticks that redrew at least one target.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Run ticks at hz until ctx is cancelled. It is the headless counterpart of
// a window's refresh callback and returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, hz int) error {
	if hz <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, hz)
	}
	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Tick()
		}
	}
}
