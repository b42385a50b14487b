// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X0, Y0        float64
	Width, Height float64
}

// RectFromPoints returns the rectangle spanned by two corners given in any order.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X0:     min(a.X, b.X),
		Y0:     min(a.Y, b.Y),
		Width:  abs(b.X - a.X),
		Height: abs(b.Y - a.Y),
	}
}

// X1 returns the right edge.
func (r Rect) X1() float64 { return r.X0 + r.Width }

// Y1 returns the bottom edge.
func (r Rect) Y1() float64 { return r.Y0 + r.Height }

// Contains reports whether p lies inside r. All edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1() && p.Y >= r.Y0 && p.Y <= r.Y1()
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
