// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/gogpu/gg"
)

// Common errors returned by Canvas operations.
var (
	// ErrClosed is returned when operations are attempted on a closed canvas.
	ErrClosed = errors.New("surface: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")
)

// Canvas wraps gg.Context as a chart drawing surface.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx      *gg.Context
	width    int // backing store
	height   int
	displayW int // as shown by the host
	displayH int
	dirty    bool
	closed   bool
}

// New creates a width x height canvas displayed at the same size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:      gg.NewContext(width, height),
		width:    width,
		height:   height,
		displayW: width,
		displayH: height,
		dirty:    true,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int) *Canvas {
	c, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context, or nil once the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Size returns the backing store dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// DisplaySize returns the size at which the host shows the canvas.
func (c *Canvas) DisplaySize() (width, height int) {
	return c.displayW, c.displayH
}

// SetDisplaySize records the size at which the host shows the canvas.
// Non-positive values reset it to the backing size.
func (c *Canvas) SetDisplaySize(width, height int) {
	if width <= 0 || height <= 0 {
		width, height = c.width, c.height
	}
	c.displayW, c.displayH = width, height
}

// PixelRatio returns backing-store pixels per display pixel on each axis.
func (c *Canvas) PixelRatio() (sx, sy float64) {
	if c.displayW <= 0 || c.displayH <= 0 {
		return 1, 1
	}
	return float64(c.width) / float64(c.displayW), float64(c.height) / float64(c.displayH)
}

// Resize changes the backing store dimensions, clearing the canvas. The
// display size follows proportionally.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}

	sx, sy := c.PixelRatio()
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("surface: context resize failed: %w", err)
	}
	c.width, c.height = width, height
	c.displayW = int(float64(width)/sx + 0.5)
	c.displayH = int(float64(height)/sy + 0.5)
	c.dirty = true
	return nil
}

// MarkDirty flags new content for the host.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether content changed since the last TakeDirty.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// TakeDirty reports and clears the dirty flag. Hosts call it once per
// refresh to decide whether to upload pixels.
func (c *Canvas) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Draw calls fn with the gg context and marks the canvas dirty.
func (c *Canvas) Draw(fn func(*gg.Context)) error {
	if c.closed {
		return ErrClosed
	}
	fn(c.ctx)
	c.dirty = true
	return nil
}

// RGBA returns a copy of the canvas pixels.
func (c *Canvas) RGBA() *image.RGBA {
	img := c.ctx.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrClosed
	}
	return c.ctx.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("surface: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.ctx.Close()
}
