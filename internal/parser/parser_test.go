package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xtding233/panic-lab/internal/card"
)

const sample = `# panic lab ring
lab red
amoeba blue dotty single

VENT
evolution color+eye   # trailing comment
amoeba Red STRIPED 2 extra tokens
lab Yellow
`

func TestParse(t *testing.T) {
	cards, diags, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	want := []card.Card{
		card.NewLab(2, card.LabRed),
		card.NewAmoeba(3, card.Configuration{Color: card.Blue, Pattern: card.Dotty, Eye: card.Single}),
		card.NewVent(5),
		card.NewEvolution(6, card.Axes{Color: true, Eye: true}),
		card.NewAmoeba(7, card.Configuration{Color: card.Red, Pattern: card.Striped, Eye: card.Double}),
		card.NewLab(8, card.LabYellow),
	}
	if len(cards) != len(want) {
		t.Fatalf("got %d cards, want %d", len(cards), len(want))
	}
	for i := range want {
		if cards[i] != want[i] {
			t.Errorf("card %d: got %+v, want %+v", i, cards[i], want[i])
		}
	}
}

func TestParseDiagnostics(t *testing.T) {
	input := strings.Join([]string{
		"dragon",                // 1 unknown type
		"lab",                   // 2 missing color
		"lab purple",            // 3 bad lab color
		"amoeba red dotty",      // 4 incomplete
		"amoeba green dot 1",    // 5 bad color
		"evolution",             // 6 missing payload
		"evolution size",        // 7 no modifiers
		"amoeba red dot 1",      // 8 ok
		"evolution pattern/eye", // 9 ok
	}, "\n")

	cards, diags, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 2 || cards[0].Line != 8 || cards[1].Line != 9 {
		t.Fatalf("unexpected cards: %+v", cards)
	}

	wantLines := []int{1, 2, 3, 4, 5, 6, 7}
	if len(diags) != len(wantLines) {
		t.Fatalf("got %d diagnostics: %v", len(diags), diags)
	}
	for i, line := range wantLines {
		if diags[i].Line != line {
			t.Errorf("diagnostic %d on line %d, want %d", i, diags[i].Line, line)
		}
		if diags[i].Message == "" {
			t.Errorf("diagnostic %d has no message", i)
		}
	}
	if !strings.Contains(diags[0].String(), "line 1:") {
		t.Errorf("diagnostic string = %q", diags[0].String())
	}
}

func TestFeatureTokens(t *testing.T) {
	tests := []struct {
		in   string
		want card.Axes
	}{
		{"color", card.Axes{Color: true}},
		{"color+pattern", card.Axes{Color: true, Pattern: true}},
		{"eye | color", card.Axes{Color: true, Eye: true}},
		{"pattern,eye", card.Axes{Pattern: true, Eye: true}},
		{"color_pattern-eye", card.Axes{Color: true, Pattern: true, Eye: true}},
		{"COLOR / EYE", card.Axes{Color: true, Eye: true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, diag, ok := parseLine("evolution "+tt.in, 1)
			if !ok || diag != nil {
				t.Fatalf("rejected: %v", diag)
			}
			if c.Evolve != tt.want {
				t.Fatalf("got %+v, want %+v", c.Evolve, tt.want)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.txt")
	if err := os.WriteFile(path, []byte("lab green\namoeba blue strip double\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cards, _, err := ParseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 2 {
		t.Fatalf("got %d cards", len(cards))
	}

	if _, _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseEmpty(t *testing.T) {
	cards, diags, err := Parse(strings.NewReader("\n# only comments\n   \n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 0 || len(diags) != 0 {
		t.Fatalf("expected nothing, got %v %v", cards, diags)
	}
}
