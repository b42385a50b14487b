// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in pixels.
const (
	titleSize = 18
	axisSize  = 14
	labelSize = 12
)

var (
	goFontsOnce sync.Once
	goFonts     Fonts
	goFontsErr  error
)

// DefaultFonts returns faces built from the embedded Go fonts. The font
// sources are parsed once per process.
func DefaultFonts() (Fonts, error) {
	goFontsOnce.Do(func() {
		regular, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			goFontsErr = fmt.Errorf("ggchart: load regular font: %w", err)
			return
		}
		bold, err := text.NewFontSource(gobold.TTF)
		if err != nil {
			goFontsErr = fmt.Errorf("ggchart: load bold font: %w", err)
			return
		}
		goFonts = Fonts{
			Title:         bold.Face(titleSize),
			AxisTitle:     regular.Face(axisSize),
			AxisTitleBold: bold.Face(axisSize),
			Label:         regular.Face(labelSize),
			LabelBold:     bold.Face(labelSize),
		}
	})
	return goFonts, goFontsErr
}
