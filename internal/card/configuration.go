package card

import "fmt"

// Configuration is a (color, pattern, eye) triple. It is either the target of
// an amoeba card or the traveling state of a single trial.
// Two configurations match when all three axes are equal, so == is the match
// predicate.
type Configuration struct {
	Color   Color
	Pattern Pattern
	Eye     Eye
}

// Axes selects which configuration axes an evolution rotates.
type Axes struct {
	Color   bool
	Pattern bool
	Eye     bool
}

// Any reports whether at least one axis is selected.
func (a Axes) Any() bool { return a.Color || a.Pattern || a.Eye }

// Names lists the selected axes in declaration order, e.g. ["Color", "Eye"].
func (a Axes) Names() []string {
	var out []string
	if a.Color {
		out = append(out, "Color")
	}
	if a.Pattern {
		out = append(out, "Pattern")
	}
	if a.Eye {
		out = append(out, "Eye")
	}
	return out
}

// Evolve mutates c in place, advancing every selected axis to its next value.
func (c *Configuration) Evolve(a Axes) {
	if a.Color {
		c.Color = c.Color.Next()
	}
	if a.Pattern {
		c.Pattern = c.Pattern.Next()
	}
	if a.Eye {
		c.Eye = c.Eye.Next()
	}
}

func (c Configuration) String() string {
	return fmt.Sprintf("(%s, %s, %s)", c.Color, c.Pattern, c.Eye)
}

// AllConfigurations returns the 8 configurations in declaration order,
// color varying slowest.
func AllConfigurations() []Configuration {
	out := make([]Configuration, 0, len(Colors)*len(Patterns)*len(Eyes))
	for _, c := range Colors {
		for _, p := range Patterns {
			for _, e := range Eyes {
				out = append(out, Configuration{Color: c, Pattern: p, Eye: e})
			}
		}
	}
	return out
}
