package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/xtding233/panic-lab/internal/config"
)

// Config holds everything needed to (re)resolve the command settings.
type Config struct {
	ConfigPaths []string
	Env         config.EnvConfig
	Overrides   config.Overrides
	Settings    config.Settings

	loader *config.Loader
}

// ParseConfig parses env and flags, loads the YAML config files and resolves
// the final settings. Only flags present in args override lower layers.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return Config{}, err
	}

	var (
		input, format, board, pie, logLevel, configPaths string
		experiments, maxSteps, cardSize             int
		seed                                        uint64
		watch                                       bool
		watchInterval                               time.Duration
	)
	fs.StringVar(&input, "input", config.DefaultInput, "path to the ring file")
	fs.StringVar(&input, "i", config.DefaultInput, "shorthand for -input")
	fs.IntVar(&experiments, "experiments", 0, "number of random experiments to run (default 10000)")
	fs.IntVar(&experiments, "n", 0, "shorthand for -experiments")
	fs.Uint64Var(&seed, "seed", 0, "RNG seed for reproducible runs (unseeded when omitted)")
	fs.IntVar(&maxSteps, "max-steps", 0, "step budget per traversal (default 100)")
	fs.StringVar(&format, "format", config.DefaultFormat, "report format: text, yaml or json")
	fs.StringVar(&board, "board", "", "write a PNG board render to this path")
	fs.StringVar(&pie, "pie", "", "write a PNG pie chart of the win chances to this path")
	fs.IntVar(&cardSize, "card-size", config.DefaultCardSize, "card tile size in pixels for the board render")
	fs.StringVar(&configPaths, "config", "", "comma-separated YAML config files, later files win")
	fs.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&watch, "watch", false, "re-run whenever the ring or config files change")
	fs.DurationVar(&watchInterval, "watch-interval", config.DefaultWatchInterval, "poll interval for -watch")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var o config.Overrides
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input", "i":
			o.Input = &input
		case "experiments", "n":
			o.Experiments = &experiments
		case "seed":
			o.Seed = &seed
		case "max-steps":
			o.MaxSteps = &maxSteps
		case "format":
			o.Format = &format
		case "board":
			o.Board = &board
		case "pie":
			o.Pie = &pie
		case "card-size":
			o.CardSize = &cardSize
		case "log-level":
			o.LogLevel = &logLevel
		case "watch":
			o.Watch = &watch
		case "watch-interval":
			o.WatchInterval = &watchInterval
		}
	})

	cfg := Config{
		ConfigPaths: e.ConfigPaths,
		Env:         e,
		Overrides:   o,
		loader:      config.NewLoader(),
	}
	if configPaths != "" {
		cfg.ConfigPaths = splitList(configPaths)
	}
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolve reloads the config files and recomputes Settings.
func (c *Config) resolve() error {
	if c.loader == nil {
		c.loader = config.NewLoader()
	}
	files, err := c.loader.LoadMerged(c.ConfigPaths...)
	if err != nil {
		return err
	}
	s, err := config.Resolve(files, c.Env, c.Overrides)
	if err != nil {
		return err
	}
	c.Settings = s
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) String() string {
	s := c.Settings
	seed := "none"
	if s.Seed != nil {
		seed = fmt.Sprint(*s.Seed)
	}
	return fmt.Sprintf("input=%s experiments=%d seed=%s max_steps=%d format=%s", s.Input, s.Experiments, seed, s.MaxSteps, s.Format)
}
