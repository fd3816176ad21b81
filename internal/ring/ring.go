package ring

import (
	"errors"

	"github.com/xtding233/panic-lab/internal/card"
)

var (
	ErrEmptyRing     = errors.New("ring has no cards")
	ErrAlreadyLinked = errors.New("ring neighbors already linked")
	// ErrNotLinked is the panic value for neighbor queries made before Link.
	ErrNotLinked = errors.New("ring neighbors queried before linking")
)

// Direction is the way a traversal walks around the ring.
type Direction uint8

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Directions in draw order.
var Directions = [...]Direction{Clockwise, CounterClockwise}

func (d Direction) String() string {
	if d == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}

const unset = -1

// Ring owns the cards in source order and the neighbor relations between
// them. Neighbors are positions into the card slice, so the ring never holds a
// reference cycle.
type Ring struct {
	cards  []card.Card
	cw     []int
	ccw    []int
	linked bool
}

// New stores a copy of cards with every neighbor relation unset.
// Link must run before any traversal.
func New(cards []card.Card) *Ring {
	n := len(cards)
	r := &Ring{
		cards: append([]card.Card(nil), cards...),
		cw:    make([]int, n),
		ccw:   make([]int, n),
	}
	for i := range n {
		r.cw[i] = unset
		r.ccw[i] = unset
	}
	return r
}

// Build is New followed by Link.
func Build(cards []card.Card) (*Ring, error) {
	r := New(cards)
	if err := r.Link(); err != nil {
		return nil, err
	}
	return r, nil
}

// Len returns the number of cards.
func (r *Ring) Len() int { return len(r.cards) }

// Linked reports whether Link has completed.
func (r *Ring) Linked() bool { return r.linked }

// Card returns the card at ring position i.
func (r *Ring) Card(i int) card.Card { return r.cards[i] }

// Cards returns a copy of the cards in ring order.
func (r *Ring) Cards() []card.Card { return append([]card.Card(nil), r.cards...) }

// Labs returns the positions of lab cards in ascending order.
func (r *Ring) Labs() []int { return r.positions(card.KindLab) }

// Vents returns the positions of vent cards in ascending order.
func (r *Ring) Vents() []int { return r.positions(card.KindVent) }

func (r *Ring) positions(k card.Kind) []int {
	var out []int
	for i, c := range r.cards {
		if c.Kind == k {
			out = append(out, i)
		}
	}
	return out
}

// Next returns the neighbor of position i in direction d.
// It panics with ErrNotLinked if Link has not run: that is a caller ordering
// bug, not an input problem.
func (r *Ring) Next(i int, d Direction) int {
	if !r.linked {
		panic(ErrNotLinked)
	}
	if d == Clockwise {
		return r.cw[i]
	}
	return r.ccw[i]
}
