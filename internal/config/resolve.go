// resolve.go
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvConfig carries PANICLAB_* environment variables. Unset variables stay nil.
type EnvConfig struct {
	ConfigPaths []string `env:"PANICLAB_CONFIG" envSeparator:","`
	Input       *string  `env:"PANICLAB_INPUT"`
	Experiments *int     `env:"PANICLAB_EXPERIMENTS"`
	Seed        *uint64  `env:"PANICLAB_SEED"`
	MaxSteps    *int     `env:"PANICLAB_MAX_STEPS"`
	Format      *string  `env:"PANICLAB_FORMAT"`
	Board       *string  `env:"PANICLAB_BOARD"`
	Pie         *string  `env:"PANICLAB_PIE"`
	LogLevel    *string  `env:"PANICLAB_LOG_LEVEL"`
}

// ParseEnv loads EnvConfig from the environment.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Overrides carries explicitly passed command-line flags.
type Overrides struct {
	Input         *string
	Experiments   *int
	Seed          *uint64
	MaxSteps      *int
	Format        *string
	Board         *string
	Pie           *string
	CardSize      *int
	LogLevel      *string
	Watch         *bool
	WatchInterval *time.Duration
}

func (e EnvConfig) raw() RawConfig {
	return Overrides{
		Input:       e.Input,
		Experiments: e.Experiments,
		Seed:        e.Seed,
		MaxSteps:    e.MaxSteps,
		Format:      e.Format,
		Board:       e.Board,
		Pie:         e.Pie,
		LogLevel:    e.LogLevel,
	}.raw()
}

func (o Overrides) raw() RawConfig {
	var r RawConfig
	r.Simulation = SimulationConfig{Experiments: o.Experiments, Seed: o.Seed, MaxSteps: o.MaxSteps}
	if o.Input != nil {
		r.Input.Path = *o.Input
	}
	if o.Format != nil || o.Board != nil || o.Pie != nil || o.CardSize != nil {
		r.Output = &OutputConfig{
			Board: &BoardConfig{Path: o.Board, CardSize: o.CardSize},
			Pie:   o.Pie,
		}
		if o.Format != nil {
			r.Output.Format = *o.Format
		}
	}
	if o.LogLevel != nil {
		r.Log = &LogConfig{Level: *o.LogLevel}
	}
	if o.Watch != nil || o.WatchInterval != nil {
		r.Watch = &WatchConfig{Enabled: o.Watch, Interval: o.WatchInterval}
	}
	return r
}

// Resolve merges defaults <- files <- env <- flags, validates the result and
// normalizes it into Settings.
func Resolve(files RawConfig, e EnvConfig, o Overrides) (Settings, error) {
	merged := mergeRaw(Defaults(), files)
	merged = mergeRaw(merged, e.raw())
	merged = mergeRaw(merged, o.raw())
	if err := ValidateRaw(merged); err != nil {
		return Settings{}, err
	}
	return normalize(merged), nil
}

// normalize assumes merged sits on top of Defaults, so every pointer is set.
func normalize(r RawConfig) Settings {
	s := Settings{
		Input:         r.Input.Path,
		Experiments:   *r.Simulation.Experiments,
		Seed:          r.Simulation.Seed,
		MaxSteps:      *r.Simulation.MaxSteps,
		Format:        r.Output.Format,
		BoardPath:     deref(r.Output.Board.Path),
		PiePath:       deref(r.Output.Pie),
		CardSize:      *r.Output.Board.CardSize,
		LogLevel:      r.Log.Level,
		Watch:         *r.Watch.Enabled,
		WatchInterval: *r.Watch.Interval,
		Version:       r.Version,
	}
	if s.Format == "" {
		s.Format = DefaultFormat
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
