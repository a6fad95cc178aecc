package pattern

import (
	"errors"
	"testing"

	"golife/src/life"
)

func mustDecode(t *testing.T, text string) Pattern {
	t.Helper()
	p, err := Decode([]byte(text))
	if err != nil {
		t.Fatalf("Decode(%q): %v", text, err)
	}
	return p
}

func TestDecode(t *testing.T) {
	p := mustDecode(t, "!glider\n.O.\n..O\nOOO\n")
	if p.Width != 3 || p.Height != 3 {
		t.Fatalf("decoded %vx%v, want 3x3", p.Width, p.Height)
	}
	if p.Rule != "" {
		t.Errorf("Rule = %q, want empty", p.Rule)
	}
	want := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	for y := range want {
		for x := range want[y] {
			if p.Cells[y][x] != want[y][x] {
				t.Errorf("cell (%v,%v) = %v, want %v", x, y, p.Cells[y][x], want[y][x])
			}
		}
	}
}

func TestDecodeRuleAnnotation(t *testing.T) {
	p := mustDecode(t, "! a comment\n!R B36/S23\nO.\n.O\n")
	if p.Rule != "B36/S23" {
		t.Errorf("Rule = %q, want B36/S23", p.Rule)
	}
}

func TestDecodeNoTrailingNewline(t *testing.T) {
	p := mustDecode(t, "O.\n.O")
	if p.Width != 2 || p.Height != 2 {
		t.Errorf("decoded %vx%v, want 2x2", p.Width, p.Height)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"only comments", "!foo\n!bar\n"},
		{"ragged rows", "OO\nO\n"},
		{"unknown glyph", "O.\n.x\n"},
		{"bad rule", "!R B9/S23\nO.\n..\n"},
		{"empty rows", "\n\n"},
	}
	for _, c := range cases {
		_, err := Decode([]byte(c.text))
		if err == nil {
			t.Errorf("%s: expected error, got none", c.name)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%s: error %v is not a *FormatError", c.name, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	texts := []string{
		".O.\n..O\nOOO\n",
		"!R B3/S23\nO.\n.O\n",
		"....\n....\n",
		"O\n",
	}
	for _, text := range texts {
		p := mustDecode(t, text)
		again, err := Decode(Encode(p))
		if err != nil {
			t.Fatalf("Decode(Encode(%q)): %v", text, err)
		}
		if !Equal(p, again) {
			t.Errorf("round trip of %q changed the pattern", text)
		}
	}
}

func TestEncodeCanonical(t *testing.T) {
	p := mustDecode(t, "! comment is dropped\n!R B3/S23\nO.\n.O\n")
	if got := string(Encode(p)); got != "!R B3/S23\nO.\n.O\n" {
		t.Errorf("Encode = %q", got)
	}
}

func TestApply(t *testing.T) {
	g, err := life.NewGrid(5, 5, false, life.StandardRule)
	if err != nil {
		t.Fatal(err)
	}
	//pre-existing live cells outside the pattern are overwritten
	if err := g.Set(4, 4, true); err != nil {
		t.Fatal(err)
	}

	p := mustDecode(t, "!R B36/S23\nOO\nOO\n")
	if err := Apply(p, g); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if g.LiveCells() != 4 {
		t.Errorf("LiveCells = %v, want 4", g.LiveCells())
	}
	if alive, _ := g.Get(4, 4); alive {
		t.Error("cell outside the pattern survived Apply")
	}
	if g.Rules().String() != "B36/S23" {
		t.Errorf("rule = %v, want B36/S23", g.Rules())
	}
}

func TestApplyTooLarge(t *testing.T) {
	g, err := life.NewGrid(2, 2, false, life.StandardRule)
	if err != nil {
		t.Fatal(err)
	}
	p := mustDecode(t, "OOO\nOOO\nOOO\n")
	applyErr := Apply(p, g)
	var tle *TooLargeError
	if !errors.As(applyErr, &tle) {
		t.Fatalf("Apply: error %v is not a *TooLargeError", applyErr)
	}
	//the grid must be untouched on failure
	if g.LiveCells() != 0 {
		t.Errorf("failed Apply mutated the grid: %v live cells", g.LiveCells())
	}
}

func TestFromGrid(t *testing.T) {
	g, err := life.NewGrid(3, 2, true, life.StandardRule)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(1, 0, true); err != nil {
		t.Fatal(err)
	}
	p := FromGrid(g)
	if p.Width != 3 || p.Height != 2 || p.Rule != "B3/S23" {
		t.Fatalf("FromGrid = %vx%v rule %q", p.Width, p.Height, p.Rule)
	}
	if got := string(Encode(p)); got != "!R B3/S23\n.O.\n...\n" {
		t.Errorf("Encode(FromGrid) = %q", got)
	}
}
