package ring

import "github.com/xtding233/panic-lab/internal/card"

// Link wires the ring. Every card first gets its positional neighbors
// (i+1 and i-1, wrapping). Then, when the ring holds two or more vents, each
// vent is rerouted relative to the vents around it:
//   - clockwise: the first non-vent card at or after nextVent+1
//   - counter-clockwise: the first non-vent card at or before prevVent-1
//
// where nextVent and prevVent are the cyclically following and preceding
// vents. A single vent keeps its positional neighbors, and so does a ring
// made only of vents: it has no lab to enter from, so nothing walks it.
func (r *Ring) Link() error {
	if r.linked {
		return ErrAlreadyLinked
	}
	n := len(r.cards)
	if n == 0 {
		return ErrEmptyRing
	}

	vents := r.Vents()

	cw := make([]int, n)
	ccw := make([]int, n)
	for i := range n {
		cw[i] = wrap(i+1, n)
		ccw[i] = wrap(i-1, n)
	}

	if len(vents) > 1 && len(vents) < n {
		for p, v := range vents {
			nextVent := vents[wrap(p+1, len(vents))]
			prevVent := vents[wrap(p-1, len(vents))]
			cw[v] = r.walkToNonVent(nextVent+1, 1)
			ccw[v] = r.walkToNonVent(prevVent-1, -1)
		}
	}

	// both relations of every card are published together, once
	r.cw, r.ccw = cw, ccw
	r.linked = true
	return nil
}

// walkToNonVent steps from start by step until it lands on a non-vent card.
// Link only calls it when at least one exists.
func (r *Ring) walkToNonVent(start, step int) int {
	n := len(r.cards)
	i := wrap(start, n)
	for r.cards[i].Kind == card.KindVent {
		i = wrap(i+step, n)
	}
	return i
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
