// Command ggchart renders, replays and displays interactive multi-axis charts.
//
// Usage:
//
//	ggchart render -o chart.png                 # built-in sample
//	ggchart render --chart station.yaml --hover 400,200 -o hover.png
//	ggchart replay script.yaml --out snapshots/
//	ggchart view --chart station.yaml
//	ggchart sample > station.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
