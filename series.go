// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"errors"
	"strings"

	"github.com/gogpu/gg"
)

// DataPoint is one sample. X is the ordinal sample index, not wall-clock time.
type DataPoint struct {
	X, Y float64
}

// DataSeries is a named line bound to one Y axis.
// Series are read-only once handed to a session.
type DataSeries struct {
	Name   string
	Color  string // RGB hex, "#rrggbb" or "#rgb"
	AxisID int
	Points []DataPoint
}

// AxisPosition places a Y axis on one side of the plot area.
type AxisPosition int

const (
	AxisLeft AxisPosition = iota
	AxisRight
)

// String implements fmt.Stringer.
func (p AxisPosition) String() string {
	if p == AxisRight {
		return "right"
	}
	return "left"
}

// YAxis is a fixed linear value domain drawn at one side of the plot.
// Offset moves the axis outward so that several axes can stack on one side.
type YAxis struct {
	ID       int
	Title    string
	Color    string
	Min, Max float64
	Position AxisPosition
	Offset   float64
}

// Config is the static chart description a session renders.
type Config struct {
	Title  string
	XTitle string
	Series []DataSeries
	Axes   []YAxis
}

// PointCount returns the length of the longest series. The X scale maps
// ordinal indices 0..PointCount-1 onto the normalized [0, 1] domain.
func (c *Config) PointCount() int {
	n := 0
	for i := range c.Series {
		n = max(n, len(c.Series[i].Points))
	}
	return n
}

// Axis returns the axis with the given ID.
func (c *Config) Axis(id int) (*YAxis, bool) {
	for i := range c.Axes {
		if c.Axes[i].ID == id {
			return &c.Axes[i], true
		}
	}
	return nil, false
}

// SeriesOn returns the indices of the series bound to the axis, in
// declaration order.
func (c *Config) SeriesOn(axisID int) []int {
	var idx []int
	for i := range c.Series {
		if c.Series[i].AxisID == axisID {
			idx = append(idx, i)
		}
	}
	return idx
}

// Validate reports every configuration problem at once. The returned error
// matches ErrInvalidConfig with errors.Is.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Series) == 0 {
		errs = append(errs, configErr(ErrNoSeries, "series"))
	}

	seen := make(map[int]bool, len(c.Axes))
	for i, a := range c.Axes {
		if seen[a.ID] {
			errs = append(errs, configErr(ErrDuplicateAxis, "axes[%d].id", i))
		}
		seen[a.ID] = true
		if !(a.Max > a.Min) {
			errs = append(errs, configErr(ErrDegenerateDomain, "axes[%d] (min=%g, max=%g)", i, a.Min, a.Max))
		}
		if !validHex(a.Color) {
			errs = append(errs, configErr(ErrInvalidColor, "axes[%d].color %q", i, a.Color))
		}
	}

	for i, s := range c.Series {
		if len(s.Points) == 0 {
			errs = append(errs, configErr(ErrEmptySeries, "series[%d] %q", i, s.Name))
		}
		if !seen[s.AxisID] {
			errs = append(errs, configErr(ErrUnknownAxis, "series[%d].axisId %d", i, s.AxisID))
		}
		if !validHex(s.Color) {
			errs = append(errs, configErr(ErrInvalidColor, "series[%d].color %q", i, s.Color))
		}
	}
	return errors.Join(errs...)
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// withAlpha parses an RGB hex color and applies opacity.
func withAlpha(hex string, alpha float64) gg.RGBA {
	c := gg.Hex(hex)
	c.A = alpha
	return c
}
