//Package pattern converts between grid contents and the textual
//"cells" pattern file format, and stores pattern files on disk.
package pattern

import (
	"fmt"

	"golife/src/life"
)

//Pattern is a serializable snapshot of a cell configuration,
//independent of any live session. Rule is the optional rule
//annotation in "B#/S#" form, empty when absent.
type Pattern struct {
	Width  int
	Height int
	Cells  [][]bool
	Rule   string
}

//TooLargeError reports a pattern that does not fit the target grid.
type TooLargeError struct {
	PatternWidth, PatternHeight int
	GridWidth, GridHeight       int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("pattern %vx%v exceeds %vx%v grid",
		e.PatternWidth, e.PatternHeight, e.GridWidth, e.GridHeight)
}

//FromGrid snapshots the whole grid as a Pattern, carrying its rule.
func FromGrid(g *life.Grid) Pattern {
	return Pattern{
		Width:  g.Width(),
		Height: g.Height(),
		Cells:  g.Snapshot(),
		Rule:   g.Rules().String(),
	}
}

//Apply overwrites the grid with the pattern, anchored at (0,0):
//cells outside the pattern's footprint are cleared. When the pattern
//carries a rule annotation the grid's rule set is replaced too.
//The caller resizes the grid first if the pattern does not fit.
func Apply(p Pattern, g *life.Grid) error {
	if p.Width > g.Width() || p.Height > g.Height() {
		return &TooLargeError{p.Width, p.Height, g.Width(), g.Height()}
	}
	if p.Rule != "" {
		rules, err := life.ParseRule(p.Rule)
		if err != nil {
			return err
		}
		g.SetRules(rules)
	}
	g.Clear()
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if err := g.Set(x, y, p.Cells[y][x]); err != nil {
				return err
			}
		}
	}
	return nil
}

//Equal reports whether two patterns have identical dimensions,
//cells and rule annotation.
func Equal(a, b Pattern) bool {
	if a.Width != b.Width || a.Height != b.Height || a.Rule != b.Rule {
		return false
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.Cells[y][x] != b.Cells[y][x] {
				return false
			}
		}
	}
	return true
}
