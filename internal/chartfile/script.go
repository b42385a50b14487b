// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package chartfile

import (
	"fmt"
	"os"
)

// Op is a replay step kind.
type Op string

// Replay operations.
const (
	OpDown      Op = "down"      // primary button pressed at (x, y)
	OpMove      Op = "move"      // pointer moved to (x, y), button held if Held
	OpUp        Op = "up"        // primary button released at (x, y)
	OpLeave     Op = "leave"     // pointer left the surface
	OpWheel     Op = "wheel"     // wheel notch of Delta at (x, y)
	OpResize    Op = "resize"    // surface resized to Width x Height
	OpSelection Op = "selection" // selection mode set to On
	OpReset     Op = "reset"     // zoom reset
	OpTick      Op = "tick"      // display refresh
	OpSnapshot  Op = "snapshot"  // write the surface to File
)

// Step is one scripted input event.
type Step struct {
	Op     Op      `yaml:"op"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Held   bool    `yaml:"held,omitempty"`
	Delta  float64 `yaml:"delta,omitempty"`
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	On     bool    `yaml:"on,omitempty"`
	File   string  `yaml:"file,omitempty"`
}

// Script is a replay script. Width and Height size the surface; Scale is
// the device pixel ratio between the surface and the scripted coordinates.
type Script struct {
	Chart  string  `yaml:"chart,omitempty"` // chart file, relative to the script
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale,omitempty"`
	Steps  []Step  `yaml:"steps"`
}

// LoadScript reads a replay script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and checks a replay script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := decodeStrict(data, &s); err != nil {
		return nil, err
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: surface size %dx%d", ErrFormat, s.Width, s.Height)
	}
	if s.Scale == 0 {
		s.Scale = 1
	}
	if s.Scale < 0 {
		return nil, fmt.Errorf("%w: scale %g", ErrFormat, s.Scale)
	}
	for i, st := range s.Steps {
		if err := st.check(); err != nil {
			return nil, fmt.Errorf("%w: steps[%d]: %w", ErrFormat, i, err)
		}
	}
	return &s, nil
}

func (st Step) check() error {
	switch st.Op {
	case OpDown, OpMove, OpUp, OpLeave, OpSelection, OpReset, OpTick:
		return nil
	case OpWheel:
		if st.Delta == 0 {
			return fmt.Errorf("wheel without delta")
		}
	case OpResize:
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize to %dx%d", st.Width, st.Height)
		}
	case OpSnapshot:
		if st.File == "" {
			return fmt.Errorf("snapshot without file")
		}
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}
