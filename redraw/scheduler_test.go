// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package redraw

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/ggchart"
)

type counter struct {
	n     int
	order *[]string
	name  string
}

func (c *counter) Redraw() {
	c.n++
	if c.order != nil {
		*c.order = append(*c.order, c.name)
	}
}

// Compile-time check.
var _ ggchart.Scheduler = (*Scheduler)(nil)

func TestSchedulerCoalesces(t *testing.T) {
	s := New()
	c := &counter{}
	for range 10 {
		s.Request(c)
	}
	if !s.Pending(c) {
		t.Error("Pending() = false after Request")
	}
	if got := s.Tick(); got != 1 {
		t.Errorf("Tick() = %d, want 1", got)
	}
	if c.n != 1 {
		t.Errorf("redraws = %d, want 1", c.n)
	}
	if got := s.Tick(); got != 0 {
		t.Errorf("idle Tick() = %d, want 0", got)
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

func TestSchedulerOrder(t *testing.T) {
	var order []string
	a := &counter{name: "a", order: &order}
	b := &counter{name: "b", order: &order}
	s := New()
	s.Request(b)
	s.Request(a)
	s.Request(b)
	s.Tick()
	if len(order) != 2 || order[0] != "b" || order[1] != "a" {
		t.Errorf("order = %v, want [b a]", order)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := New()
	c := &counter{}
	s.Request(c)
	s.Cancel(c)
	if s.Pending(c) {
		t.Error("Pending() = true after Cancel")
	}
	if got := s.Tick(); got != 0 {
		t.Errorf("Tick() = %d, want 0", got)
	}
	if s.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", s.Frames())
	}

	// A cancelled target can be requested again.
	s.Request(c)
	s.Tick()
	if c.n != 1 {
		t.Errorf("redraws = %d, want 1", c.n)
	}
	s.Cancel(nil)
	s.Request(nil)
}

type rerequester struct {
	s *Scheduler
	n int
}

func (r *rerequester) Redraw() {
	r.n++
	r.s.Request(r)
}

func TestSchedulerRequestDuringRedraw(t *testing.T) {
	s := New()
	r := &rerequester{s: s}
	s.Request(r)
	s.Tick()
	if r.n != 1 {
		t.Fatalf("redraws = %d, want 1", r.n)
	}
	if !s.Pending(r) {
		t.Error("request made during a redraw should wait for the next tick")
	}
	s.Tick()
	if r.n != 2 {
		t.Errorf("redraws = %d, want 2", r.n)
	}
}

func TestSchedulerPost(t *testing.T) {
	s := New()
	c := &counter{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Post(func() { s.Request(c) })
		}()
	}
	wg.Wait()

	if got := s.Tick(); got != 1 {
		t.Errorf("Tick() = %d, want 1", got)
	}
	if c.n != 1 {
		t.Errorf("redraws = %d, want 1", c.n)
	}
}

func TestSchedulerRun(t *testing.T) {
	s := New()
	if err := s.Run(context.Background(), 0); !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Run(0) = %v, want ErrInvalidRate", err)
	}

	c := &counter{}
	done := make(chan struct{})
	s.Post(func() {
		s.Request(c)
		close(done)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx, 120) }()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("posted function never ran")
	}
	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}
