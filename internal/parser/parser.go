// Package parser reads ring files: one card per line, in ring order.
//
//	lab red
//	amoeba blue dotty single   # comments start with '#'
//	vent
//	evolution color+eye
//
// Lines that cannot be understood are skipped and reported as diagnostics;
// they never fail the parse.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xtding233/panic-lab/internal/card"
)

// Diagnostic describes a skipped line.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

var (
	labColors = map[string]card.LabColor{
		"red":    card.LabRed,
		"green":  card.LabGreen,
		"yellow": card.LabYellow,
	}
	amoebaColors = map[string]card.Color{
		"red":  card.Red,
		"blue": card.Blue,
	}
	patterns = map[string]card.Pattern{
		"strip":   card.Striped,
		"striped": card.Striped,
		"dot":     card.Dotty,
		"dotty":   card.Dotty,
	}
	eyes = map[string]card.Eye{
		"single": card.Single,
		"1":      card.Single,
		"double": card.Double,
		"2":      card.Double,
	}
)

// ParseFile parses the ring file at path.
func ParseFile(path string) ([]card.Card, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open ring file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads cards from r. Only read errors are returned as errors.
func Parse(r io.Reader) ([]card.Card, []Diagnostic, error) {
	var (
		cards []card.Card
		diags []Diagnostic
	)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		c, diag, ok := parseLine(scanner.Text(), line)
		if diag != nil {
			diags = append(diags, *diag)
		}
		if ok {
			cards = append(cards, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read ring file: %w", err)
	}
	return cards, diags, nil
}

// parseLine returns ok=false for blank, comment-only and invalid lines; only
// invalid lines come with a diagnostic.
func parseLine(raw string, line int) (card.Card, *Diagnostic, bool) {
	text, _, _ := strings.Cut(raw, "#")
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return card.Card{}, nil, false
	}

	kind, payload := strings.ToLower(fields[0]), fields[1:]
	switch kind {
	case "vent":
		return card.NewVent(line), nil, true
	case "lab":
		return parseLab(payload, line)
	case "amoeba":
		return parseAmoeba(payload, line)
	case "evolution":
		return parseEvolution(payload, line)
	}
	return reject(line, "unknown card type %q", strings.TrimSpace(raw))
}

func parseLab(tokens []string, line int) (card.Card, *Diagnostic, bool) {
	if len(tokens) == 0 {
		return reject(line, "lab definition missing color")
	}
	color, ok := labColors[strings.ToLower(tokens[0])]
	if !ok {
		return reject(line, "unsupported lab color %q", tokens[0])
	}
	return card.NewLab(line, color), nil, true
}

func parseAmoeba(tokens []string, line int) (card.Card, *Diagnostic, bool) {
	if len(tokens) < 3 {
		return reject(line, "amoeba definition incomplete")
	}
	color, okColor := amoebaColors[strings.ToLower(tokens[0])]
	pattern, okPattern := patterns[strings.ToLower(tokens[1])]
	eye, okEye := eyes[strings.ToLower(tokens[2])]
	if !okColor || !okPattern || !okEye {
		return reject(line, "invalid amoeba description %q", strings.Join(tokens[:3], " "))
	}
	return card.NewAmoeba(line, card.Configuration{Color: color, Pattern: pattern, Eye: eye}), nil, true
}

func parseEvolution(tokens []string, line int) (card.Card, *Diagnostic, bool) {
	if len(tokens) == 0 {
		return reject(line, "evolution definition missing payload")
	}
	var axes card.Axes
	for _, f := range featureTokens(strings.ToLower(strings.Join(tokens, " "))) {
		switch f {
		case "color":
			axes.Color = true
		case "pattern":
			axes.Pattern = true
		case "eye":
			axes.Eye = true
		}
	}
	if !axes.Any() {
		return reject(line, "evolution card without modifiers")
	}
	return card.NewEvolution(line, axes), nil, true
}

// featureTokens splits "color+eye", "color/pattern", "eye, color" and friends.
func featureTokens(blob string) []string {
	return strings.FieldsFunc(blob, func(r rune) bool {
		switch r {
		case '+', '|', '/', ',', '_', '-', ' ', '\t':
			return true
		}
		return false
	})
}

func reject(line int, format string, args ...any) (card.Card, *Diagnostic, bool) {
	return card.Card{}, &Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}, false
}
