package card

import "testing"

func TestEvolveCyclesEachAxis(t *testing.T) {
	tests := []struct {
		name   string
		axes   Axes
		period int
	}{
		{name: "color", axes: Axes{Color: true}, period: len(Colors)},
		{name: "pattern", axes: Axes{Pattern: true}, period: len(Patterns)},
		{name: "eye", axes: Axes{Eye: true}, period: len(Eyes)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, start := range AllConfigurations() {
				cfg := start
				cfg.Evolve(tt.axes)
				if cfg == start {
					t.Fatalf("one rotation of %v left %v unchanged", tt.axes, start)
				}
				for i := 1; i < tt.period; i++ {
					cfg.Evolve(tt.axes)
				}
				if cfg != start {
					t.Fatalf("after %d rotations got %v, want %v", tt.period, cfg, start)
				}
			}
		})
	}
}

func TestEvolveOnlyTouchesSelectedAxes(t *testing.T) {
	cfg := Configuration{Color: Red, Pattern: Striped, Eye: Single}
	cfg.Evolve(Axes{Pattern: true})
	want := Configuration{Color: Red, Pattern: Dotty, Eye: Single}
	if cfg != want {
		t.Fatalf("got %v, want %v", cfg, want)
	}

	cfg.Evolve(Axes{Color: true, Pattern: true, Eye: true})
	want = Configuration{Color: Blue, Pattern: Striped, Eye: Double}
	if cfg != want {
		t.Fatalf("got %v, want %v", cfg, want)
	}

	cfg.Evolve(Axes{})
	if cfg != want {
		t.Fatalf("empty axes changed config to %v", cfg)
	}
}

func TestVisit(t *testing.T) {
	target := Configuration{Color: Blue, Pattern: Dotty, Eye: Single}
	other := Configuration{Color: Red, Pattern: Dotty, Eye: Single}

	if NewLab(1, LabRed).Visit(&target) {
		t.Fatal("lab must never match")
	}
	if NewVent(2).Visit(&target) {
		t.Fatal("vent must never match")
	}

	amoeba := NewAmoeba(3, target)
	cfg := target
	if !amoeba.Visit(&cfg) {
		t.Fatal("amoeba should match its own target")
	}
	cfg = other
	if amoeba.Visit(&cfg) {
		t.Fatal("amoeba matched a different configuration")
	}

	evo := NewEvolution(4, Axes{Color: true})
	cfg = other
	if evo.Visit(&cfg) {
		t.Fatal("evolution must never match")
	}
	if cfg != target {
		t.Fatalf("evolution should rotate color: got %v, want %v", cfg, target)
	}
}

func TestVisitUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown kind")
		}
	}()
	cfg := Configuration{}
	Card{Kind: Kind(99), Line: 7}.Visit(&cfg)
}

func TestAllConfigurations(t *testing.T) {
	all := AllConfigurations()
	if len(all) != 8 {
		t.Fatalf("expected 8 configurations, got %d", len(all))
	}
	seen := make(map[Configuration]bool)
	for _, c := range all {
		if seen[c] {
			t.Fatalf("duplicate configuration %v", c)
		}
		seen[c] = true
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{NewLab(1, LabYellow), "Lab(Yellow)"},
		{NewAmoeba(2, Configuration{Color: Blue, Pattern: Striped, Eye: Double}), "Amoeba(Blue, Striped, Double)"},
		{NewVent(3), "Vent"},
		{NewEvolution(4, Axes{Color: true, Eye: true}), "Evolution(Color, Eye)"},
	}
	for _, tt := range tests {
		if got := tt.card.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
