package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/xtding233/panic-lab/internal/config"
	"github.com/xtding233/panic-lab/internal/parser"
	"github.com/xtding233/panic-lab/internal/report"
	"github.com/xtding233/panic-lab/internal/ring"
	"github.com/xtding233/panic-lab/internal/sim"
)

// NewLogger builds the command logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(parseLevel(level))
	return l
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Run executes one simulation, or keeps re-running it on file changes when
// watching, until ctx is cancelled.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	log := NewLogger(errOut, cfg.Settings.LogLevel)
	log.WithField("settings", cfg.String()).Debug("resolved configuration")

	if err := runOnce(cfg.Settings, out, log); err != nil {
		if !cfg.Settings.Watch {
			return err
		}
		log.WithError(err).Error("run failed")
	}
	if !cfg.Settings.Watch {
		return nil
	}

	w := config.NewFileWatcher(cfg.watchPaths(), cfg.Settings.WatchInterval)
	log.WithField("paths", w.Paths).Info("watching for changes")
	err := w.Run(ctx, func(path string) {
		log.WithField("path", path).Info("change detected; re-running")
		if slices.Contains(cfg.ConfigPaths, path) {
			input := cfg.Settings.Input
			if cfg.loader != nil {
				cfg.loader.Invalidate()
			}
			if err := cfg.resolve(); err != nil {
				log.WithError(err).Error("reload config; keeping previous settings")
			}
			log.SetLevel(parseLevel(cfg.Settings.LogLevel))
			if cfg.Settings.Input != input {
				w.SetPaths(cfg.watchPaths())
				log.WithField("paths", w.Paths).Info("input moved; watching new paths")
			}
		}
		if err := runOnce(cfg.Settings, out, log); err != nil {
			log.WithError(err).Error("run failed")
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runOnce(s config.Settings, out io.Writer, log logrus.FieldLogger) error {
	cards, diags, err := parser.ParseFile(s.Input)
	if err != nil {
		return err
	}
	for _, d := range diags {
		log.WithField("line", d.Line).Warn(d.Message)
	}
	if len(cards) == 0 {
		_, err := fmt.Fprintln(out, "No cards parsed.")
		return err
	}

	r, err := ring.Build(cards)
	if err != nil {
		return fmt.Errorf("build ring: %w", err)
	}

	rng := sim.DefaultRNG()
	if s.Seed != nil {
		rng = sim.NewSeededRNG(*s.Seed)
	}
	simulator := &sim.Simulator{MaxSteps: s.MaxSteps, Logger: log}
	res, err := simulator.Run(r, s.Experiments, rng)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	sum := sim.Summarize(r, res)

	switch s.Format {
	case "text":
		if _, err := report.WriteRankings(out, sum); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	default:
		doc := report.NewDocument(sum, report.Meta{Version: s.Version, Seed: s.Seed, MaxSteps: s.MaxSteps})
		if err := report.Encode(out, doc, s.Format); err != nil {
			return err
		}
	}

	if s.PiePath != "" {
		err := report.WritePieFile(s.PiePath, sum, report.PieOptions{})
		switch {
		case errors.Is(err, report.ErrNothingMatched):
			log.Info("no matches recorded; skipping pie chart")
		case err != nil:
			return err
		default:
			log.WithField("path", s.PiePath).Info("pie chart saved")
		}
	}

	if s.BoardPath == "" {
		return nil
	}
	err = report.WriteBoardFile(s.BoardPath, sum, report.BoardOptions{CardSize: s.CardSize})
	switch {
	case errors.Is(err, report.ErrNothingMatched):
		log.Info("no matches recorded; skipping board render")
	case err != nil:
		return err
	default:
		log.WithField("path", s.BoardPath).Info("board render saved")
	}
	return nil
}

func (c Config) watchPaths() []string {
	return append([]string{c.Settings.Input}, c.ConfigPaths...)
}
