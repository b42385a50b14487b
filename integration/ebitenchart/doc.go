// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenchart runs a chart session in a desktop window using
// Ebitengine.
//
// Host implements ebiten.Game. Every Update it polls the mouse and keyboard,
// turns the changes into session input (pointer down/move/up, leave, wheel)
// and ticks the redraw scheduler; Draw uploads the canvas when it changed.
//
// # Usage
//
//	err := ebitenchart.Run(cfg, ebitenchart.WithWindowWidth(1000))
//
// # Keys
//
//	S       toggle selection (rubber-band zoom) mode
//	Escape  leave selection mode
//	R       reset zoom
//
// The window height follows the width: max(400, width/2).
package ebitenchart
