package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/panic-lab/internal/sim"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Document is the machine-readable result of one run.
type Document struct {
	Version     string  `yaml:"version,omitempty"`
	Seed        *uint64 `yaml:"seed,omitempty"`
	Experiments int     `yaml:"experiments"`
	MaxSteps    int     `yaml:"max_steps"`
	Matched     int     `yaml:"matched"`
	Dropped     int     `yaml:"dropped"`
	Cards       []Entry `yaml:"cards"`
}

// Entry is one card of the ring, in ring order.
type Entry struct {
	Position    int     `yaml:"position"`
	Line        int     `yaml:"line"`
	Kind        string  `yaml:"kind"`
	Card        string  `yaml:"card"`
	Count       int     `yaml:"count"`
	WinChance   float64 `yaml:"win_chance"`
	Probability float64 `yaml:"probability"`
	StdErr      float64 `yaml:"std_err"`
}

// Meta describes the run a summary came from.
type Meta struct {
	Version  string
	Seed     *uint64
	MaxSteps int
}

// NewDocument builds a Document from a summary.
func NewDocument(sum sim.Summary, meta Meta) Document {
	doc := Document{
		Version:     meta.Version,
		Seed:        meta.Seed,
		Experiments: sum.Experiments,
		MaxSteps:    meta.MaxSteps,
		Matched:     sum.Matched,
		Dropped:     sum.Dropped,
		Cards:       make([]Entry, len(sum.Shares)),
	}
	for i, sh := range sum.Shares {
		doc.Cards[i] = Entry{
			Position:    sh.Position,
			Line:        sh.Card.Line,
			Kind:        sh.Card.Kind.String(),
			Card:        sh.Card.String(),
			Count:       sh.Count,
			WinChance:   sh.WinChance,
			Probability: sh.Probability,
			StdErr:      sh.StdErr,
		}
	}
	return doc
}

// Encode writes doc as "yaml" or "json".
func Encode(w io.Writer, doc Document, format string) error {
	switch format {
	case "yaml":
		return encodeYAML(w, doc)
	case "json":
		return encodeJSON(w, doc)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func encodeYAML(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func encodeJSON(w io.Writer, doc Document) error {
	st, err := structpb.NewStruct(doc.fields())
	if err != nil {
		return fmt.Errorf("build json document: %w", err)
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// fields flattens doc for structpb. JSON numbers are doubles, so the seed is
// written as a decimal string to survive values above 2^53.
func (d Document) fields() map[string]any {
	cards := make([]any, len(d.Cards))
	for i, e := range d.Cards {
		cards[i] = map[string]any{
			"position":    e.Position,
			"line":        e.Line,
			"kind":        e.Kind,
			"card":        e.Card,
			"count":       e.Count,
			"win_chance":  e.WinChance,
			"probability": e.Probability,
			"std_err":     e.StdErr,
		}
	}
	m := map[string]any{
		"experiments": d.Experiments,
		"max_steps":   d.MaxSteps,
		"matched":     d.Matched,
		"dropped":     d.Dropped,
		"cards":       cards,
	}
	if d.Version != "" {
		m["version"] = d.Version
	}
	if d.Seed != nil {
		m["seed"] = strconv.FormatUint(*d.Seed, 10)
	}
	return m
}
