// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	lru "github.com/hashicorp/golang-lru"
)

// Frame is the snapshot one draw pass renders.
type Frame struct {
	Config    *Config
	Layout    Layout
	Viewport  Viewport
	Hovered   int // -1 when nothing is hovered
	Selection Selection
	Tooltip   *Tooltip
}

// XScale returns the frame's X scale.
func (f *Frame) XScale() XScale {
	return XScale{Plot: f.Layout.Plot, Viewport: f.Viewport, PointCount: f.Config.PointCount()}
}

// SeriesHighlighted reports whether series i draws at full strength.
func (f *Frame) SeriesHighlighted(i int) bool {
	return f.Hovered < 0 || f.Hovered == i
}

// AxisHighlighted reports whether the axis belongs to the hovered series,
// or nothing is hovered.
func (f *Frame) AxisHighlighted(a *YAxis) bool {
	if f.Hovered < 0 || f.Hovered >= len(f.Config.Series) {
		return true
	}
	return f.Config.Series[f.Hovered].AxisID == a.ID
}

// SeriesPath returns the pixel positions of the samples of series i that
// fall within the plot columns, in order. Samples outside are dropped, so
// the drawn line stops at the viewport edge.
func (f *Frame) SeriesPath(i int) []Point {
	s := &f.Config.Series[i]
	axis, ok := f.Config.Axis(s.AxisID)
	if !ok {
		return nil
	}
	xs := f.XScale()
	ys := NewYScale(f.Layout.Plot, axis)
	pts := make([]Point, 0, len(s.Points))
	for _, p := range s.Points {
		px := xs.Pixel(p.X)
		if !xs.Visible(px) {
			continue
		}
		pts = append(pts, Point{X: px, Y: ys.Pixel(p.Y)})
	}
	return pts
}

// Drawing style.
var (
	plotBackground = gg.RGBA2(1, 1, 1, 0.9)
	selectionFill  = gg.RGBA{R: 66.0 / 255, G: 133.0 / 255, B: 244.0 / 255, A: 0.25}
	selectionEdge  = gg.RGBA{R: 25.0 / 255, G: 118.0 / 255, B: 210.0 / 255, A: 0.9}
	selectionMark  = gg.RGBA{R: 25.0 / 255, G: 118.0 / 255, B: 210.0 / 255, A: 1}
	neutralAxis    = gg.RGBA2(0.45, 0.45, 0.45, 1)
	tooltipFill    = gg.RGBA2(1, 1, 1, 0.95)
)

const (
	dimmedAlpha  = 0.3
	tickLength   = 5.0
	cornerMarker = 6.0
	measureCache = 512
)

// Renderer draws frames. It holds immutable style, a text measurement
// cache and the first drawing error of the frame in progress; all chart
// state arrives in the Frame. A Renderer draws one frame at a time.
type Renderer struct {
	fonts    Fonts
	emphasis Emphasis
	xTicks   int
	yTicks   int
	clock    timeAxis
	nums     numbers
	measured *lru.Cache
	err      error
}

func newRenderer(o *options) *Renderer {
	r := &Renderer{
		emphasis: o.emphasis,
		xTicks:   o.xTicks,
		yTicks:   o.yTicks,
		clock:    timeAxis{base: o.timeBase, step: o.timeStep, ticks: o.xTicks, wall: o.wallClock},
		nums:     newNumbers(o.locale),
	}
	if o.fonts != nil {
		r.fonts = *o.fonts
	} else if f, err := DefaultFonts(); err == nil {
		r.fonts = f
	} else {
		Logger().Warn("ggchart: text disabled", "err", err)
	}
	// lru.New only fails for a non-positive size.
	r.measured, _ = lru.New(measureCache)
	return r
}

type measureKey struct {
	bold bool
	s    string
}

// measure returns the advance width and line height of s in the label face.
func (r *Renderer) measure(bold bool, s string) (w, h float64) {
	face := r.fonts.Label
	if bold {
		face = r.fonts.LabelBold
	}
	if face == nil {
		return 0, 0
	}
	key := measureKey{bold: bold, s: s}
	if v, ok := r.measured.Get(key); ok {
		wh := v.([2]float64)
		return wh[0], wh[1]
	}
	w, h = text.Measure(s, face)
	r.measured.Add(key, [2]float64{w, h})
	return w, h
}

// check keeps the first fill or stroke error of the frame.
func (r *Renderer) check(err error) {
	if r.err == nil {
		r.err = err
	}
}

// finish reports the frame's first drawing error, if any, and resets it.
func (r *Renderer) finish() {
	if r.err != nil {
		Logger().Debug("ggchart: frame drawn with errors", "err", r.err)
		r.err = nil
	}
}

// Render clears dc and draws f. Nothing is drawn for an invalid layout.
func (r *Renderer) Render(dc *gg.Context, f *Frame) {
	if dc == nil || f == nil || f.Config == nil {
		return
	}
	dc.Clear()
	if !f.Layout.Valid() {
		return
	}
	defer r.finish()

	plot := f.Layout.Plot
	setColor(dc, plotBackground)
	dc.DrawRectangle(plot.X0, plot.Y0, plot.Width, plot.Height)
	r.check(dc.Fill())

	if f.Config.Title != "" && r.fonts.Title != nil {
		dc.SetFont(r.fonts.Title)
		setColor(dc, gg.Black)
		dc.DrawStringAnchored(f.Config.Title, float64(f.Layout.Width)/2, 25, 0.5, 0)
	}

	r.drawXAxis(dc, f)
	r.drawYAxes(dc, f)
	r.drawLegend(dc, f)
	if f.Selection.Active {
		r.drawSelection(dc, f.Selection.Rect())
	}
	if f.Tooltip != nil {
		r.drawTooltip(dc, f)
	}
}

func (r *Renderer) drawXAxis(dc *gg.Context, f *Frame) {
	plot := f.Layout.Plot
	setColor(dc, gg.Black)
	dc.SetLineWidth(1)
	dc.DrawLine(plot.X0, plot.Y1(), plot.X1(), plot.Y1())
	r.check(dc.Stroke())

	xs := f.XScale()
	span := float64(max(f.Config.PointCount()-1, 1))
	if r.fonts.Label != nil {
		dc.SetFont(r.fonts.Label)
	}
	for i := 0; i <= r.xTicks; i++ {
		px := xs.Pixel(float64(i) * span / float64(r.xTicks))
		if !xs.Visible(px) {
			continue
		}
		dc.DrawLine(px, plot.Y1(), px, plot.Y1()+tickLength)
		r.check(dc.Stroke())
		if r.fonts.Label != nil {
			dc.DrawStringAnchored(r.clock.Tick(i), px, plot.Y1()+20, 0.5, 0)
		}
	}
	if f.Config.XTitle != "" && r.fonts.Label != nil {
		dc.DrawStringAnchored(f.Config.XTitle, plot.X0+plot.Width/2, plot.Y1()+35, 0.5, 0)
	}
}

func (r *Renderer) drawYAxes(dc *gg.Context, f *Frame) {
	if r.emphasis == EmphasisHoveredOnly && (f.Hovered < 0 || f.Hovered >= len(f.Config.Series)) {
		r.drawNeutralAxis(dc, f)
	}
	for ai := range f.Config.Axes {
		axis := &f.Config.Axes[ai]
		hi := f.AxisHighlighted(axis)
		if r.emphasis == EmphasisDimOthers || (f.Hovered >= 0 && hi) {
			r.drawYAxis(dc, f, axis, hi)
		}
		for _, si := range f.Config.SeriesOn(axis.ID) {
			r.drawSeries(dc, f, si)
		}
	}
}

func (r *Renderer) drawYAxis(dc *gg.Context, f *Frame, axis *YAxis, highlighted bool) {
	plot := f.Layout.Plot
	x := f.Layout.AxisX(axis)
	alpha, width := dimmedAlpha, 1.0
	if highlighted {
		alpha, width = 1, 2
	}
	col := withAlpha(axis.Color, alpha)

	setColor(dc, col)
	dc.SetLineWidth(width)
	dc.DrawLine(x, plot.Y0, x, plot.Y1())
	r.check(dc.Stroke())

	title := r.fonts.AxisTitle
	if highlighted {
		title = r.fonts.AxisTitleBold
	}
	if title != nil && axis.Title != "" {
		dy := 15.0
		if axis.Position == AxisLeft {
			dy = -25
		}
		midY := plot.Y0 + plot.Height/2
		dc.Push()
		dc.RotateAbout(-math.Pi/2, x, midY)
		dc.SetFont(title)
		dc.DrawStringAnchored(axis.Title, x, midY+dy, 0.5, 0)
		dc.Pop()
	}

	dir, ax := 1.0, 0.0
	if axis.Position == AxisLeft {
		dir, ax = -1, 1
	}
	dc.SetLineWidth(1)
	if r.fonts.Label != nil {
		dc.SetFont(r.fonts.Label)
	}
	for i := 0; i <= r.yTicks; i++ {
		t := float64(i) / float64(r.yTicks)
		y := plot.Y1() - t*plot.Height
		dc.DrawLine(x, y, x+dir*tickLength, y)
		r.check(dc.Stroke())
		if r.fonts.Label != nil {
			v := axis.Min + t*(axis.Max-axis.Min)
			dc.DrawStringAnchored(r.nums.Fixed(v, 1), x+dir*10, y+4, ax, 0)
		}
	}
}

// drawNeutralAxis is the placeholder axis of EmphasisHoveredOnly when no
// series is hovered: a grey line with unlabelled ticks.
func (r *Renderer) drawNeutralAxis(dc *gg.Context, f *Frame) {
	plot := f.Layout.Plot
	setColor(dc, neutralAxis)
	dc.SetLineWidth(1)
	dc.DrawLine(plot.X0, plot.Y0, plot.X0, plot.Y1())
	r.check(dc.Stroke())
	for i := 0; i <= r.yTicks; i++ {
		y := plot.Y1() - float64(i)/float64(r.yTicks)*plot.Height
		dc.DrawLine(plot.X0, y, plot.X0-tickLength, y)
		r.check(dc.Stroke())
	}
}

func (r *Renderer) drawSeries(dc *gg.Context, f *Frame, i int) {
	pts := f.SeriesPath(i)
	if len(pts) == 0 {
		return
	}
	alpha, width, radius := dimmedAlpha, 1.5, 3.0
	if f.SeriesHighlighted(i) {
		alpha, width, radius = 1, 3, 4
	}
	col := withAlpha(f.Config.Series[i].Color, alpha)
	setColor(dc, col)

	if len(pts) > 1 {
		dc.SetLineWidth(width)
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		r.check(dc.Stroke())
	}
	for _, p := range pts {
		dc.DrawCircle(p.X, p.Y, radius)
		r.check(dc.Fill())
	}
}

func (r *Renderer) drawLegend(dc *gg.Context, f *Frame) {
	for _, e := range LegendEntries(f.Layout, len(f.Config.Series)) {
		s := &f.Config.Series[e.Series]
		hi := f.SeriesHighlighted(e.Series)
		alpha, width, face := dimmedAlpha, 1.0, r.fonts.Label
		if hi {
			alpha, width, face = 1, 2, r.fonts.LabelBold
		}
		setColor(dc, withAlpha(s.Color, alpha))
		dc.SetLineWidth(width)
		dc.DrawLine(e.Origin.X, e.Origin.Y, e.Origin.X+legendChipWidth, e.Origin.Y)
		r.check(dc.Stroke())
		dc.DrawCircle(e.Origin.X+legendChipWidth/2, e.Origin.Y, 3)
		r.check(dc.Fill())
		if face != nil {
			dc.SetFont(face)
			lp := e.Label()
			dc.DrawString(s.Name, lp.X, lp.Y)
		}
	}
}

func (r *Renderer) drawSelection(dc *gg.Context, band Rect) {
	setColor(dc, selectionFill)
	dc.DrawRectangle(band.X0, band.Y0, band.Width, band.Height)
	r.check(dc.Fill())

	setColor(dc, selectionEdge)
	dc.SetLineWidth(3)
	dc.DrawRectangle(band.X0, band.Y0, band.Width, band.Height)
	r.check(dc.Stroke())

	setColor(dc, selectionMark)
	const h = cornerMarker / 2
	for _, c := range [4]Point{
		{band.X0, band.Y0}, {band.X1(), band.Y0},
		{band.X0, band.Y1()}, {band.X1(), band.Y1()},
	} {
		dc.DrawRectangle(c.X-h, c.Y-h, cornerMarker, cornerMarker)
		r.check(dc.Fill())
	}
}

// TooltipBox returns the callout rectangle for a content size, placed up
// and to the right of the pointer and clamped inside the surface.
func TooltipBox(l Layout, at Point, w, h float64) Rect {
	x := at.X + 12
	y := at.Y - 12 - h
	x = math.Max(0, math.Min(x, float64(l.Width)-w))
	y = math.Max(0, math.Min(y, float64(l.Height)-h))
	return Rect{X0: x, Y0: y, Width: w, Height: h}
}

func (r *Renderer) drawTooltip(dc *gg.Context, f *Frame) {
	tt := f.Tooltip
	if tt.Series < 0 || tt.Series >= len(f.Config.Series) {
		return
	}
	s := &f.Config.Series[tt.Series]
	heading := s.Name
	body := r.clock.At(tt.DataX, f.Config.PointCount()) + "  " + r.nums.Fixed(tt.Value, 2)

	if axis, ok := f.Config.Axis(s.AxisID); ok {
		y := NewYScale(f.Layout.Plot, axis).Pixel(tt.Value)
		setColor(dc, withAlpha(s.Color, 1))
		dc.DrawCircle(tt.Pos.X, y, 5)
		r.check(dc.Fill())
	}

	const pad, lineH = 8.0, 16.0
	w1, _ := r.measure(true, heading)
	w2, _ := r.measure(false, body)
	box := TooltipBox(f.Layout, tt.Pos, math.Max(w1, w2)+2*pad, 2*lineH+pad)

	setColor(dc, tooltipFill)
	dc.DrawRoundedRectangle(box.X0, box.Y0, box.Width, box.Height, 4)
	r.check(dc.Fill())
	setColor(dc, withAlpha(s.Color, 1))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(box.X0, box.Y0, box.Width, box.Height, 4)
	r.check(dc.Stroke())

	setColor(dc, gg.Black)
	if r.fonts.LabelBold != nil {
		dc.SetFont(r.fonts.LabelBold)
		dc.DrawString(heading, box.X0+pad, box.Y0+pad+lineH-4)
	}
	if r.fonts.Label != nil {
		dc.SetFont(r.fonts.Label)
		dc.DrawString(body, box.X0+pad, box.Y0+pad+2*lineH-4)
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
