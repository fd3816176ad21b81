package config

import (
	"time"

	"github.com/xtding233/panic-lab/internal/sim"
)

const (
	DefaultInput         = "input.txt"
	DefaultFormat        = "text"
	DefaultCardSize      = 70
	DefaultLogLevel      = "info"
	DefaultWatchInterval = time.Second
)

// Defaults returns the built-in bottom layer.
func Defaults() RawConfig {
	experiments := sim.DefaultExperiments
	maxSteps := sim.DefaultMaxSteps
	cardSize := DefaultCardSize
	watch := false
	interval := DefaultWatchInterval
	return RawConfig{
		Simulation: SimulationConfig{Experiments: &experiments, MaxSteps: &maxSteps},
		Input:      InputConfig{Path: DefaultInput},
		Output:     &OutputConfig{Format: DefaultFormat, Board: &BoardConfig{CardSize: &cardSize}},
		Log:        &LogConfig{Level: DefaultLogLevel},
		Watch:      &WatchConfig{Enabled: &watch, Interval: &interval},
	}
}
