package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Loader reads YAML config files and merges them in the order given, later
// files overriding earlier ones.
type Loader struct {
	mu    sync.RWMutex
	cache map[string]RawConfig // key: file path
}

// NewLoader creates a config loader with an empty cache.
func NewLoader() *Loader {
	return &Loader{cache: make(map[string]RawConfig)}
}

// Load reads one file, using the cache when possible.
func (l *Loader) Load(path string) (RawConfig, error) {
	l.mu.RLock()
	if cfg, ok := l.cache[path]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	cfg, err := readYAML(path)
	if err != nil {
		return RawConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	l.mu.Lock()
	l.cache[path] = cfg
	l.mu.Unlock()
	return cfg, nil
}

// LoadMerged loads every path and merges them: paths[0] <- paths[1] <- ...
// It returns the merged RawConfig (without normalization).
func (l *Loader) LoadMerged(paths ...string) (RawConfig, error) {
	var merged RawConfig
	for _, p := range paths {
		if p == "" {
			continue
		}
		cfg, err := l.Load(p)
		if err != nil {
			return RawConfig{}, err
		}
		merged = mergeRaw(merged, cfg)
	}
	return merged, nil
}

// Invalidate clears loader's cache. Call after the watcher detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML decodes a YAML file into RawConfig. Unknown keys are rejected; an
// empty file is an empty config.
func readYAML(path string) (RawConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, err
	}
	var cfg RawConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return RawConfig{}, nil
		}
		return RawConfig{}, err
	}
	return cfg, nil
}

// mergeRaw performs a deep merge: 'b' overrides 'a' where non-zero/non-nil.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	// top-level scalars
	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}

	// simulation
	if b.Simulation.Experiments != nil {
		out.Simulation.Experiments = b.Simulation.Experiments
	}
	if b.Simulation.Seed != nil {
		out.Simulation.Seed = b.Simulation.Seed
	}
	if b.Simulation.MaxSteps != nil {
		out.Simulation.MaxSteps = b.Simulation.MaxSteps
	}

	// input
	if b.Input.Path != "" {
		out.Input.Path = b.Input.Path
	}

	// output
	switch {
	case out.Output == nil && b.Output != nil:
		c := *b.Output
		if b.Output.Board != nil {
			board := *b.Output.Board
			c.Board = &board
		}
		out.Output = &c
	case out.Output != nil && b.Output != nil:
		c := *out.Output
		if b.Output.Format != "" {
			c.Format = b.Output.Format
		}
		if b.Output.Pie != nil {
			c.Pie = b.Output.Pie
		}
		switch {
		case c.Board == nil && b.Output.Board != nil:
			board := *b.Output.Board
			c.Board = &board
		case c.Board != nil && b.Output.Board != nil:
			board := *c.Board
			if b.Output.Board.Path != nil {
				board.Path = b.Output.Board.Path
			}
			if b.Output.Board.CardSize != nil {
				board.CardSize = b.Output.Board.CardSize
			}
			c.Board = &board
		}
		out.Output = &c
	}

	// log
	if b.Log != nil && b.Log.Level != "" {
		out.Log = &LogConfig{Level: b.Log.Level}
	}

	// watch
	switch {
	case out.Watch == nil && b.Watch != nil:
		c := *b.Watch
		out.Watch = &c
	case out.Watch != nil && b.Watch != nil:
		c := *out.Watch
		if b.Watch.Enabled != nil {
			c.Enabled = b.Watch.Enabled
		}
		if b.Watch.Interval != nil {
			c.Interval = b.Watch.Interval
		}
		out.Watch = &c
	}

	return out
}
