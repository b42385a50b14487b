// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package chartfile reads chart descriptions and replay scripts from YAML.
//
// A chart file:
//
//	title: Station 4
//	xTitle: Hour
//	emphasis: hovered
//	time: {start: "06:00", step: 30}
//	axes:
//	  - {id: 1, title: Temperature, color: "#ff7f0e", min: 0, max: 40}
//	  - {id: 2, title: Wind, color: "#1f77b4", min: 0, max: 25, position: right}
//	series:
//	  - {name: Temperature, color: "#ff7f0e", axis: 1, values: [18.5, 22.3, 25.8]}
//	  - {name: Wind, color: "#1f77b4", axis: 2, values: [5.2, 7.8, 10.3]}
package chartfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
)

// ErrFormat is returned for well-formed YAML with invalid content.
var ErrFormat = errors.New("chartfile: invalid file")

// Chart is the YAML form of a chart.
type Chart struct {
	Title    string   `yaml:"title"`
	XTitle   string   `yaml:"xTitle"`
	Emphasis string   `yaml:"emphasis,omitempty"` // "dim" (default) or "hovered"
	Locale   string   `yaml:"locale,omitempty"`
	Time     *Time    `yaml:"time,omitempty"`
	Axes     []Axis   `yaml:"axes"`
	Series   []Series `yaml:"series"`
}

// Time configures the clock labels of the X axis.
type Time struct {
	Start string `yaml:"start"` // "HH:MM"
	Step  int    `yaml:"step"`  // minutes per tick
}

// Axis is the YAML form of ggchart.YAxis.
type Axis struct {
	ID       int     `yaml:"id"`
	Title    string  `yaml:"title"`
	Color    string  `yaml:"color"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Position string  `yaml:"position,omitempty"` // "left" (default) or "right"
	Offset   float64 `yaml:"offset,omitempty"`
}

// Series is the YAML form of ggchart.DataSeries. Values are the samples at
// X = 0, 1, 2, ...
type Series struct {
	Name   string    `yaml:"name"`
	Color  string    `yaml:"color"`
	Axis   int       `yaml:"axis"`
	Values []float64 `yaml:"values"`
}

// Load reads a chart file.
func Load(path string) (*Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a chart. Unknown keys are rejected.
func Parse(data []byte) (*Chart, error) {
	var c Chart
	if err := decodeStrict(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Encode writes c as YAML.
func (c *Chart) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("chartfile: encode: %w", err)
	}
	return enc.Close()
}

// FromConfig converts a chart configuration to its YAML form.
func FromConfig(cfg ggchart.Config) *Chart {
	c := &Chart{Title: cfg.Title, XTitle: cfg.XTitle}
	for _, a := range cfg.Axes {
		c.Axes = append(c.Axes, Axis{
			ID: a.ID, Title: a.Title, Color: a.Color,
			Min: a.Min, Max: a.Max,
			Position: a.Position.String(), Offset: a.Offset,
		})
	}
	for _, s := range cfg.Series {
		values := make([]float64, len(s.Points))
		for i, p := range s.Points {
			values[i] = p.Y
		}
		c.Series = append(c.Series, Series{Name: s.Name, Color: s.Color, Axis: s.AxisID, Values: values})
	}
	return c
}

// Config converts the chart to a validated ggchart.Config.
func (c *Chart) Config() (ggchart.Config, error) {
	cfg := ggchart.Config{Title: c.Title, XTitle: c.XTitle}
	for i, a := range c.Axes {
		pos, err := parsePosition(a.Position)
		if err != nil {
			return ggchart.Config{}, fmt.Errorf("%w: axes[%d]: %w", ErrFormat, i, err)
		}
		cfg.Axes = append(cfg.Axes, ggchart.YAxis{
			ID: a.ID, Title: a.Title, Color: a.Color,
			Min: a.Min, Max: a.Max,
			Position: pos, Offset: a.Offset,
		})
	}
	for _, s := range c.Series {
		pts := make([]ggchart.DataPoint, len(s.Values))
		for i, v := range s.Values {
			pts[i] = ggchart.DataPoint{X: float64(i), Y: v}
		}
		cfg.Series = append(cfg.Series, ggchart.DataSeries{Name: s.Name, Color: s.Color, AxisID: s.Axis, Points: pts})
	}
	if err := cfg.Validate(); err != nil {
		return ggchart.Config{}, err
	}
	return cfg, nil
}

// Options returns the session options the chart file asks for.
func (c *Chart) Options() ([]ggchart.Option, error) {
	var opts []ggchart.Option
	switch strings.ToLower(c.Emphasis) {
	case "", "dim":
	case "hovered":
		opts = append(opts, ggchart.WithEmphasis(ggchart.EmphasisHoveredOnly))
	default:
		return nil, fmt.Errorf("%w: emphasis %q", ErrFormat, c.Emphasis)
	}
	if c.Locale != "" {
		tag, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: locale %q: %w", ErrFormat, c.Locale, err)
		}
		opts = append(opts, ggchart.WithLocale(tag))
	}
	if c.Time != nil {
		start, err := parseClock(c.Time.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: time.start: %w", ErrFormat, err)
		}
		opts = append(opts, ggchart.WithTimeBase(start, c.Time.Step))
	}
	return opts, nil
}

func parsePosition(s string) (ggchart.AxisPosition, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return ggchart.AxisLeft, nil
	case "right":
		return ggchart.AxisRight, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// parseClock parses "HH:MM" into minutes after midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock %q out of range", s)
	}
	return h*60 + m, nil
}

func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", ErrFormat)
		}
		return fmt.Errorf("chartfile: %w", err)
	}
	return nil
}
