package card

import (
	"fmt"
	"strings"
)

// Kind tags the variant carried by a Card.
type Kind uint8

const (
	KindLab Kind = iota
	KindAmoeba
	KindVent
	KindEvolution
)

var kindNames = [...]string{
	KindLab:       "Lab",
	KindAmoeba:    "Amoeba",
	KindVent:      "Vent",
	KindEvolution: "Evolution",
}

func (k Kind) String() string { return name(kindNames[:], int(k)) }

// Card is one card of the ring. Only the payload matching Kind is meaningful.
// Line is the 1-based source line the card was read from; it identifies the
// card in reports but plays no part in matching.
//
// Cards hold no neighbor links: the ring package owns the topology and refers
// to cards by position.
type Card struct {
	Kind Kind
	Line int

	Lab    LabColor      // KindLab
	Target Configuration // KindAmoeba
	Evolve Axes          // KindEvolution
}

func NewLab(line int, color LabColor) Card {
	return Card{Kind: KindLab, Line: line, Lab: color}
}

func NewAmoeba(line int, target Configuration) Card {
	return Card{Kind: KindAmoeba, Line: line, Target: target}
}

func NewVent(line int) Card {
	return Card{Kind: KindVent, Line: line}
}

func NewEvolution(line int, axes Axes) Card {
	return Card{Kind: KindEvolution, Line: line, Evolve: axes}
}

// Visit applies the card to a traveling configuration and reports whether the
// traversal stops here.
//   - Lab, Vent: never match.
//   - Amoeba: matches when cfg equals the target.
//   - Evolution: rotates the selected axes of cfg, never matches.
func (c Card) Visit(cfg *Configuration) bool {
	switch c.Kind {
	case KindLab, KindVent:
		return false
	case KindAmoeba:
		return *cfg == c.Target
	case KindEvolution:
		cfg.Evolve(c.Evolve)
		return false
	default:
		panic(fmt.Sprintf("card: unknown kind %d at line %d", c.Kind, c.Line))
	}
}

func (c Card) String() string {
	switch c.Kind {
	case KindLab:
		return "Lab(" + c.Lab.String() + ")"
	case KindAmoeba:
		return "Amoeba" + c.Target.String()
	case KindVent:
		return "Vent"
	case KindEvolution:
		return "Evolution(" + strings.Join(c.Evolve.Names(), ", ") + ")"
	default:
		return "Unknown"
	}
}
