// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Tooltip is the hover callout: which series, where, and the value
// interpolated at the pointer's fractional data index.
type Tooltip struct {
	Pos    Point
	Series int
	DataX  float64
	Value  float64
}

// timeAxis produces the synthetic clock labels of the X axis. Labels derive
// from the tick index alone: tick i reads base + i*step minutes. Unless wall
// is set the minutes are appended to the base hour without carrying, so the
// default axis reads 12:00 through 12:75.
type timeAxis struct {
	base  int // minutes after midnight
	step  int // minutes per tick
	ticks int
	wall  bool
}

const minutesPerDay = 24 * 60

func clock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func (t timeAxis) label(minutes int) string {
	if t.wall {
		return clock(t.base + minutes)
	}
	return fmt.Sprintf("%02d:%02d", t.base/60, t.base%60+minutes)
}

// Tick returns the label of tick i.
func (t timeAxis) Tick(i int) string {
	return t.label(i * t.step)
}

// At returns the label of fractional data index x in a series of n points.
func (t timeAxis) At(x float64, n int) string {
	frac := x / float64(max(n-1, 1))
	return t.label(int(math.Round(frac * float64(t.ticks*t.step))))
}

// numbers formats values for the locale of the chart.
type numbers struct {
	p *message.Printer
}

func newNumbers(tag language.Tag) numbers {
	return numbers{p: message.NewPrinter(tag)}
}

// Fixed formats v with prec decimals.
func (n numbers) Fixed(v float64, prec int) string {
	return n.p.Sprint(number.Decimal(v, number.MinFractionDigits(prec), number.MaxFractionDigits(prec)))
}
