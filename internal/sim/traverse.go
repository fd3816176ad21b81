package sim

import (
	"github.com/xtding233/panic-lab/internal/card"
	"github.com/xtding233/panic-lab/internal/ring"
)

// DefaultMaxSteps bounds a single traversal. A trial that visits this many
// cards without a match is dropped.
const DefaultMaxSteps = 100

// Traverse walks r from entry in direction d, visiting at most maxSteps cards.
// Each visited card is applied to cfg (evolution cards mutate it). It returns
// the position of the first matching card, or ok=false when the budget runs
// out. r must be linked.
func Traverse(r *ring.Ring, cfg *card.Configuration, entry int, d ring.Direction, maxSteps int) (pos int, ok bool) {
	pos = entry
	for step := 0; step < maxSteps; step++ {
		if r.Card(pos).Visit(cfg) {
			return pos, true
		}
		pos = r.Next(pos, d)
	}
	return 0, false
}
