// Package model defines shared data structures.
package model

// Config defines practice settings shared by the CLI and the TUI.
type Config struct {
	Lang     string
	Words    int
	CapsPct  float64
	PunctPct float64
	PunctSet string
}
