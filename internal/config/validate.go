package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks semantic constraints of a RawConfig.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	// simulation
	if cfg.Simulation.Experiments != nil && *cfg.Simulation.Experiments < 1 {
		errs = append(errs, "simulation.experiments must be >= 1")
	}
	if cfg.Simulation.MaxSteps != nil && *cfg.Simulation.MaxSteps < 1 {
		errs = append(errs, "simulation.max_steps must be >= 1")
	}

	// output
	if cfg.Output != nil {
		switch cfg.Output.Format {
		case "", "text", "yaml", "json":
		default:
			errs = append(errs, "output.format must be one of: text, yaml, json")
		}
		if cfg.Output.Board != nil && cfg.Output.Board.CardSize != nil && *cfg.Output.Board.CardSize < 8 {
			errs = append(errs, "output.board.card_size must be >= 8")
		}
	}

	// log
	if cfg.Log != nil {
		switch strings.ToLower(cfg.Log.Level) {
		case "", "debug", "info", "warn", "warning", "error":
		default:
			errs = append(errs, fmt.Sprintf("log.level %q must be one of: debug, info, warn, error", cfg.Log.Level))
		}
	}

	// watch
	if cfg.Watch != nil && cfg.Watch.Interval != nil && *cfg.Watch.Interval <= 0 {
		errs = append(errs, "watch.interval must be > 0")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
