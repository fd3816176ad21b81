package sim

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/xtding233/panic-lab/internal/card"
	"github.com/xtding233/panic-lab/internal/ring"
)

// DefaultExperiments is the trial count used when the caller gives none.
const DefaultExperiments = 10_000

// Result holds the outcome of one simulation run.
// Counts is indexed by ring position, so two identical amoeba cards at
// different positions are tallied separately.
type Result struct {
	Counts      []int
	Experiments int
}

// Count returns the number of trials that ended on ring position i.
func (r Result) Count(i int) int { return r.Counts[i] }

// Matched is the number of trials that ended on some card.
func (r Result) Matched() int {
	total := 0
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Dropped is the number of trials that exhausted the step budget.
func (r Result) Dropped() int { return r.Experiments - r.Matched() }

// Simulator runs Monte Carlo trials over a linked ring.
type Simulator struct {
	// MaxSteps bounds each traversal; <= 0 means DefaultMaxSteps.
	MaxSteps int
	Logger   logrus.FieldLogger
}

// NewSimulator returns a Simulator with the default step budget.
func NewSimulator(logger logrus.FieldLogger) *Simulator {
	return &Simulator{MaxSteps: DefaultMaxSteps, Logger: logger}
}

func (s *Simulator) maxSteps() int {
	if s == nil || s.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return s.MaxSteps
}

func (s *Simulator) logger() logrus.FieldLogger {
	if s == nil || s.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return s.Logger
}

// Run performs experiments independent trials on r and tallies, per card, how
// many trials ended there.
//
// Each trial draws from rng in a fixed order: color, pattern, eye, entry lab,
// direction. Trials run one after another, so the same seed, ring and
// experiment count always reproduce the same counts.
//
// Run fails with ErrNoEntryPoints before drawing anything if r has no lab.
func (s *Simulator) Run(r *ring.Ring, experiments int, rng RandomSource) (Result, error) {
	if r == nil {
		return Result{}, ErrNilRing
	}
	if err := validateExperiments(experiments); err != nil {
		return Result{}, err
	}
	labs := r.Labs()
	if len(labs) == 0 {
		return Result{}, ErrNoEntryPoints
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	log := s.logger()
	steps := s.maxSteps()
	log.WithFields(logrus.Fields{
		"cards":       r.Len(),
		"labs":        len(labs),
		"experiments": experiments,
		"max_steps":   steps,
	}).Debug("simulation starting")

	res := Result{Counts: make([]int, r.Len()), Experiments: experiments}
	for i := 0; i < experiments; i++ {
		cfg, entry, dir := drawTrial(rng, labs)
		if pos, ok := Traverse(r, &cfg, entry, dir, steps); ok {
			res.Counts[pos]++
		}
	}

	log.WithFields(logrus.Fields{
		"matched": res.Matched(),
		"dropped": res.Dropped(),
	}).Debug("simulation finished")
	return res, nil
}

// drawTrial samples one trial. The draw order is part of the reproducibility
// contract; do not reorder.
func drawTrial(rng RandomSource, labs []int) (card.Configuration, int, ring.Direction) {
	cfg := card.Configuration{
		Color:   card.Colors[rng.IntN(len(card.Colors))],
		Pattern: card.Patterns[rng.IntN(len(card.Patterns))],
		Eye:     card.Eyes[rng.IntN(len(card.Eyes))],
	}
	entry := labs[rng.IntN(len(labs))]
	dir := ring.Directions[rng.IntN(len(ring.Directions))]
	return cfg, entry, dir
}
