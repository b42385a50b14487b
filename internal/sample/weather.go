// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sample holds the built-in weather data set used by the CLI when
// no chart file is given.
package sample

import "github.com/gogpu/ggchart"

// Chart captions.
const (
	Title  = "Monitoramento Meteorológico Interativo"
	XTitle = "Hora"
)

var (
	temperature = []float64{18.5, 22.3, 25.8, 29.1, 27.6, 24.2, 20.5, 19.8, 23.4, 28.7, 33.2, 30.9, 26.3, 21.7, 19.3}
	speed       = []float64{5.2, 7.8, 10.3, 12.7, 15.4, 13.9, 11.5, 8.6, 6.1, 9.8, 14.2, 17.5, 16.1, 12.8, 8.9}
	direction   = []float64{45, 90, 135, 180, 225, 270, 315, 360, 315, 270, 225, 180, 135, 90, 45}
	windA       = []float64{320, 280, 240, 200, 160, 120, 80, 40, 80, 120, 160, 200, 240, 280, 320}
	windB       = []float64{180, 220, 260, 300, 340, 300, 260, 220, 180, 140, 100, 60, 100, 140, 180}
)

func points(ys []float64) []ggchart.DataPoint {
	pts := make([]ggchart.DataPoint, len(ys))
	for i, y := range ys {
		pts[i] = ggchart.DataPoint{X: float64(i), Y: y}
	}
	return pts
}

// Series returns fresh copies of the five sample series.
func Series() []ggchart.DataSeries {
	return []ggchart.DataSeries{
		{Name: "Temperatura (°C)", Color: "#ff7f0e", AxisID: 1, Points: points(temperature)},
		{Name: "Velocidade (m/s)", Color: "#1f77b4", AxisID: 2, Points: points(speed)},
		{Name: "Direção (°)", Color: "#2ca02c", AxisID: 3, Points: points(direction)},
		{Name: "aVento (°)", Color: "#fffaaa", AxisID: 4, Points: points(windA)},
		{Name: "bVento (°)", Color: "#8fcffc", AxisID: 5, Points: points(windB)},
	}
}

// Axes returns the sample axes: temperature on the left, the rest stacked
// on the right.
func Axes() []ggchart.YAxis {
	return []ggchart.YAxis{
		{ID: 1, Title: "Temperatura (°C)", Color: "#ff7f0e", Min: 0, Max: 40, Position: ggchart.AxisLeft},
		{ID: 2, Title: "Velocidade (m/s)", Color: "#1f77b4", Min: 0, Max: 25, Position: ggchart.AxisRight},
		{ID: 3, Title: "Direção (°)", Color: "#2ca02c", Min: 0, Max: 360, Position: ggchart.AxisRight, Offset: 50},
		{ID: 4, Title: "aVento (°)", Color: "#fffaaa", Min: 0, Max: 360, Position: ggchart.AxisRight, Offset: 100},
		{ID: 5, Title: "bVento (°)", Color: "#8fcffc", Min: 0, Max: 360, Position: ggchart.AxisRight, Offset: 150},
	}
}

// Config returns the complete sample chart.
func Config() ggchart.Config {
	return ggchart.Config{
		Title:  Title,
		XTitle: XTitle,
		Series: Series(),
		Axes:   Axes(),
	}
}
