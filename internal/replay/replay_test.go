// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package replay

import (
	"context"
	"errors"
	"image/png"
	"math"
	"os"
	"testing"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/chartfile"
	"github.com/gogpu/ggchart/internal/sample"
)

func newRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{Config: sample.Config(), OutDir: t.TempDir()}
}

func TestRunSelectionZoom(t *testing.T) {
	// 1000x600 with DefaultMargins: plot columns [60, 820], width 760.
	// The band [250, 630] is normalized [0.25, 0.75].
	script := &chartfile.Script{
		Width: 1000, Height: 600, Scale: 1,
		Steps: []chartfile.Step{
			{Op: chartfile.OpSnapshot, File: "before.png"},
			{Op: chartfile.OpSelection, On: true},
			{Op: chartfile.OpDown, X: 250, Y: 100},
			{Op: chartfile.OpMove, X: 400, Y: 300, Held: true},
			{Op: chartfile.OpUp, X: 630, Y: 300},
			{Op: chartfile.OpSnapshot, File: "after/zoomed.png"},
		},
	}
	res, err := newRunner(t).Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if math.Abs(res.Viewport.Scale-2) > 1e-9 || math.Abs(res.Viewport.OffsetX+0.5) > 1e-9 {
		t.Errorf("Viewport = %v, want {2, -0.5}", res.Viewport)
	}
	if len(res.Snapshots) != 2 {
		t.Fatalf("Snapshots = %v, want 2", res.Snapshots)
	}
	for _, path := range res.Snapshots {
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open snapshot: %v", err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 600 {
			t.Errorf("%s is %v, want 1000x600", path, b)
		}
	}
	if res.Frames == 0 {
		t.Error("Frames = 0")
	}
}

func TestRunWheelAndReset(t *testing.T) {
	script := &chartfile.Script{
		Width: 800, Height: 400, Scale: 1,
		Steps: []chartfile.Step{
			{Op: chartfile.OpWheel, X: 300, Y: 200, Delta: -1},
			{Op: chartfile.OpWheel, X: 300, Y: 200, Delta: -1},
			{Op: chartfile.OpTick},
		},
	}
	res, err := newRunner(t).Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if math.Abs(res.Viewport.Scale-1.2) > 1e-9 {
		t.Errorf("Scale = %v, want 1.2", res.Viewport.Scale)
	}

	script.Steps = append(script.Steps, chartfile.Step{Op: chartfile.OpReset})
	res, err = newRunner(t).Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Viewport != ggchart.DefaultViewport() {
		t.Errorf("Viewport = %v, want default", res.Viewport)
	}
}

func TestRunScaledPan(t *testing.T) {
	// Scripted coordinates are display pixels at a device pixel ratio of 2.
	script := &chartfile.Script{
		Width: 800, Height: 400, Scale: 2,
		Steps: []chartfile.Step{
			{Op: chartfile.OpDown, X: 150, Y: 100},
			{Op: chartfile.OpMove, X: 190, Y: 100, Held: true},
			{Op: chartfile.OpUp, X: 190, Y: 100},
		},
	}
	res, err := newRunner(t).Run(context.Background(), script)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// 40 display pixels are 80 surface pixels of 800.
	if math.Abs(res.Viewport.OffsetX-0.1) > 1e-9 {
		t.Errorf("OffsetX = %v, want 0.1", res.Viewport.OffsetX)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	script := &chartfile.Script{Width: 100, Height: 100, Scale: 1, Steps: []chartfile.Step{{Op: chartfile.OpTick}}}
	if _, err := newRunner(t).Run(ctx, script); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	r := &Runner{OutDir: t.TempDir()}
	script := &chartfile.Script{Width: 100, Height: 100, Scale: 1}
	if _, err := r.Run(context.Background(), script); !errors.Is(err, ggchart.ErrInvalidConfig) {
		t.Errorf("Run() = %v, want ErrInvalidConfig", err)
	}
}
