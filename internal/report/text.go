package report

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xtding233/panic-lab/internal/sim"
)

// WriteRankings prints the amoeba cards that won at least one trial, best
// first, with their share of all matched trials. It reports whether anything
// matched.
func WriteRankings(w io.Writer, sum sim.Summary) (bool, error) {
	p := message.NewPrinter(language.English)

	if sum.Matched == 0 {
		_, err := p.Fprintln(w, "No cards were matched in any experiment.")
		return false, err
	}

	if _, err := p.Fprintf(w, "\n--- Experiment Results ---\n"); err != nil {
		return true, err
	}
	for _, sh := range sum.Rankings() {
		if _, err := p.Fprintf(w, "Line %d: %s - Win Chance: %.2f%%\n", sh.Card.Line, sh.Card, sh.WinChance*100); err != nil {
			return true, err
		}
	}
	_, err := p.Fprintf(w, "Matched %d of %d experiments (%d dropped).\n", sum.Matched, sum.Experiments, sum.Dropped)
	return true, err
}
