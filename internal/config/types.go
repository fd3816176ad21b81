// types.go
package config

import "time"

// Raw config loaded from YAML, the environment or flags. Nil/empty fields
// mean "not set at this layer".
type RawConfig struct {
	Version    string           `yaml:"version"`
	Simulation SimulationConfig `yaml:"simulation"`
	Input      InputConfig      `yaml:"input"`
	Output     *OutputConfig    `yaml:"output,omitempty"`
	Log        *LogConfig       `yaml:"log,omitempty"`
	Watch      *WatchConfig     `yaml:"watch,omitempty"`
	Notes      string           `yaml:"notes,omitempty"`
}

type SimulationConfig struct {
	Experiments *int    `yaml:"experiments"`
	Seed        *uint64 `yaml:"seed,omitempty"`
	MaxSteps    *int    `yaml:"max_steps,omitempty"`
}
type InputConfig struct {
	Path string `yaml:"path"`
}
type OutputConfig struct {
	Format string       `yaml:"format"` // "text" | "yaml" | "json"
	Board  *BoardConfig `yaml:"board,omitempty"`
	Pie    *string      `yaml:"pie,omitempty"`
}

// BoardConfig.Path is a pointer so a later layer can disable the render
// with an explicit empty path.
type BoardConfig struct {
	Path     *string `yaml:"path"`
	CardSize *int    `yaml:"card_size,omitempty"`
}
type LogConfig struct {
	Level string `yaml:"level"`
}
type WatchConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Interval *time.Duration `yaml:"interval,omitempty"`
}

// Settings are the normalized values the command runs with.
type Settings struct {
	Input         string
	Experiments   int
	Seed          *uint64 // nil: unseeded, not reproducible
	MaxSteps      int
	Format        string
	BoardPath     string // empty: no board render
	PiePath       string // empty: no pie chart
	CardSize      int
	LogLevel      string
	Watch         bool
	WatchInterval time.Duration
	Version       string // effective config version for tracing
}
