// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every configuration error returned by
// NewSession, Mount and Config.Validate.
var ErrInvalidConfig = errors.New("ggchart: invalid configuration")

// Configuration problems. Each is reported inside a *ConfigError.
var (
	// ErrNoSeries is returned when a configuration carries no series at all.
	ErrNoSeries = errors.New("ggchart: no series")

	// ErrEmptySeries is returned for a series without data points.
	ErrEmptySeries = errors.New("ggchart: series has no points")

	// ErrUnknownAxis is returned when a series references an axis ID that
	// is not configured.
	ErrUnknownAxis = errors.New("ggchart: series references unknown axis")

	// ErrDuplicateAxis is returned when two axes share an ID.
	ErrDuplicateAxis = errors.New("ggchart: duplicate axis id")

	// ErrDegenerateDomain is returned for an axis whose max does not exceed
	// its min. Rendering such an axis would divide by zero.
	ErrDegenerateDomain = errors.New("ggchart: degenerate axis domain")

	// ErrInvalidColor is returned for a color that is not RGB hex.
	ErrInvalidColor = errors.New("ggchart: invalid color")
)

// ConfigError describes one invalid field of a Config.
type ConfigError struct {
	Field string // e.g. "series[2].axisId"
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap exposes both the specific problem and ErrInvalidConfig so that
// errors.Is works against either.
func (e *ConfigError) Unwrap() []error {
	return []error{e.Err, ErrInvalidConfig}
}

func configErr(err error, format string, args ...any) error {
	return &ConfigError{Field: fmt.Sprintf(format, args...), Err: err}
}
