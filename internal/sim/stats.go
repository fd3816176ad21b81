package sim

import (
	"math"
	"sort"

	"github.com/xtding233/panic-lab/internal/card"
	"github.com/xtding233/panic-lab/internal/ring"
)

// Share is one card's slice of a Result.
type Share struct {
	Position int
	Card     card.Card
	Count    int
	// WinChance is Count over all matched trials, in [0, 1].
	WinChance float64
	// Probability is Count over all experiments; StdErr is its binomial
	// standard error sqrt(p(1-p)/n).
	Probability float64
	StdErr      float64
}

// Summary summarizes a Result against the ring it was run on.
type Summary struct {
	Experiments int
	Matched     int
	Dropped     int
	Shares      []Share // ring order, one per card
}

// Summarize computes per-card shares for res.
func Summarize(r *ring.Ring, res Result) Summary {
	matched := res.Matched()
	sum := Summary{
		Experiments: res.Experiments,
		Matched:     matched,
		Dropped:     res.Dropped(),
		Shares:      make([]Share, r.Len()),
	}
	for i := range r.Len() {
		count := res.Counts[i]
		sh := Share{Position: i, Card: r.Card(i), Count: count}
		if matched > 0 {
			sh.WinChance = float64(count) / float64(matched)
		}
		if n := res.Experiments; n > 0 {
			p := float64(count) / float64(n)
			sh.Probability = p
			sh.StdErr = math.Sqrt(p * (1 - p) / float64(n))
		}
		sum.Shares[i] = sh
	}
	return sum
}

// Rankings returns the amoeba cards that won at least one trial, most wins
// first; ties keep ring order.
func (s Summary) Rankings() []Share {
	var out []Share
	for _, sh := range s.Shares {
		if sh.Card.Kind == card.KindAmoeba && sh.Count > 0 {
			out = append(out, sh)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
