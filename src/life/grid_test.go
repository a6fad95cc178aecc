package life

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestGrid(t *testing.T, w, h int, wrap bool) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, wrap, StandardRule)
	if err != nil {
		t.Fatalf("NewGrid(%v, %v): %v", w, h, err)
	}
	return g
}

func settle(t *testing.T, g *Grid, coords [][2]int) {
	t.Helper()
	for _, c := range coords {
		if err := g.Set(c[0], c[1], true); err != nil {
			t.Fatalf("Set(%v, %v): %v", c[0], c[1], err)
		}
	}
}

func assertCells(t *testing.T, g *Grid, want [][2]int) {
	t.Helper()
	wanted := make(map[[2]int]bool, len(want))
	for _, c := range want {
		wanted[c] = true
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			alive, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%v, %v): %v", x, y, err)
			}
			if alive != wanted[[2]int{x, y}] {
				t.Errorf("cell (%v,%v) = %v, want %v", x, y, alive, wanted[[2]int{x, y}])
			}
		}
	}
}

func TestNewGridValidation(t *testing.T) {
	for _, c := range [][2]int{{0, 5}, {5, -1}, {-3, -3}, {0, 0}} {
		_, err := NewGrid(c[0], c[1], false, StandardRule)
		if err == nil {
			t.Errorf("NewGrid(%v, %v): expected error, got none", c[0], c[1])
			continue
		}
		var de *DimensionError
		if !errors.As(err, &de) {
			t.Errorf("NewGrid(%v, %v): error %v is not a *DimensionError", c[0], c[1], err)
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := newTestGrid(t, 5, 4, false)
	bad := [][2]int{{5, 0}, {0, 4}, {-1, 0}, {0, -1}}
	for _, c := range bad {
		if _, err := g.Get(c[0], c[1]); err == nil {
			t.Errorf("Get(%v, %v): expected error, got none", c[0], c[1])
		}
		err := g.Set(c[0], c[1], true)
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Errorf("Set(%v, %v): error %v is not a *BoundsError", c[0], c[1], err)
		}
	}
}

func TestNeighborCountWrap(t *testing.T) {
	//a single live cell in the far corner is a neighbor of (0,0)
	//only on the torus
	wrapped := newTestGrid(t, 5, 5, true)
	settle(t, wrapped, [][2]int{{4, 4}})
	if got := wrapped.NeighborCount(0, 0); got != 1 {
		t.Errorf("wrapped NeighborCount(0,0) = %v, want 1", got)
	}

	bounded := newTestGrid(t, 5, 5, false)
	settle(t, bounded, [][2]int{{4, 4}})
	if got := bounded.NeighborCount(0, 0); got != 0 {
		t.Errorf("bounded NeighborCount(0,0) = %v, want 0", got)
	}
}

func TestBlinkerOscillator(t *testing.T) {
	//horizontal blinker on a bounded 3x3: vertical phase after one
	//generation, original phase after two
	g := newTestGrid(t, 3, 3, false)
	horizontal := [][2]int{{0, 1}, {1, 1}, {2, 1}}
	vertical := [][2]int{{1, 0}, {1, 1}, {1, 2}}
	settle(t, g, horizontal)

	g.NextGeneration()
	assertCells(t, g, vertical)

	g.NextGeneration()
	assertCells(t, g, horizontal)
	if g.Generation() != 2 {
		t.Errorf("generation counter = %v, want 2", g.Generation())
	}
}

func TestBlinkerOscillatorWrapped(t *testing.T) {
	//on a 5x5 torus the blinker has clear space and oscillates with
	//period 2 as well
	g := newTestGrid(t, 5, 5, true)
	horizontal := [][2]int{{1, 2}, {2, 2}, {3, 2}}
	settle(t, g, horizontal)

	g.NextGeneration()
	assertCells(t, g, [][2]int{{2, 1}, {2, 2}, {2, 3}})

	g.NextGeneration()
	assertCells(t, g, horizontal)
}

func TestGliderTranslation(t *testing.T) {
	//after four generations a glider reproduces its shape shifted
	//by (+1,+1)
	g := newTestGrid(t, 10, 10, false)
	glider := [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	settle(t, g, glider)

	for i := 0; i < 4; i++ {
		g.NextGeneration()
	}

	shifted := make([][2]int, len(glider))
	for i, c := range glider {
		shifted[i] = [2]int{c[0] + 1, c[1] + 1}
	}
	assertCells(t, g, shifted)
}

//naiveNext recomputes one generation from a frozen snapshot,
//independently of the engine's buffering.
func naiveNext(snapshot [][]bool, wrap bool, rules RuleSet) [][]bool {
	h := len(snapshot)
	w := len(snapshot[0])
	out := make([][]bool, h)
	for y := range out {
		out[y] = make([]bool, w)
		for x := range out[y] {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if wrap {
						nx, ny = (nx+w)%w, (ny+h)%h
					} else if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					if snapshot[ny][nx] {
						n++
					}
				}
			}
			out[y][x] = rules.Evaluate(snapshot[y][x], n)
		}
	}
	return out
}

func TestSimultaneousUpdate(t *testing.T) {
	//the engine's output must depend only on the previous
	//generation, never on partially updated neighbors
	for _, wrap := range []bool{false, true} {
		g := newTestGrid(t, 16, 12, wrap)
		g.SetRandSource(rand.New(rand.NewSource(42)))
		g.Randomize(0.4)

		for step := 0; step < 5; step++ {
			want := naiveNext(g.Snapshot(), wrap, g.Rules())
			g.NextGeneration()
			got := g.Snapshot()
			for y := range want {
				for x := range want[y] {
					if got[y][x] != want[y][x] {
						t.Fatalf("wrap=%v step %v: cell (%v,%v) = %v, want %v",
							wrap, step, x, y, got[y][x], want[y][x])
					}
				}
			}
		}
	}
}

func TestRandomizeDensity(t *testing.T) {
	g := newTestGrid(t, 10, 10, true)

	g.Randomize(1)
	if g.LiveCells() != 100 {
		t.Errorf("Randomize(1): %v live cells, want 100", g.LiveCells())
	}

	g.Randomize(0)
	if g.LiveCells() != 0 {
		t.Errorf("Randomize(0): %v live cells, want 0", g.LiveCells())
	}
}

func TestClear(t *testing.T) {
	g := newTestGrid(t, 4, 4, true)
	settle(t, g, [][2]int{{1, 1}, {2, 2}})
	g.NextGeneration()
	g.Clear()
	if g.LiveCells() != 0 || g.Generation() != 0 {
		t.Errorf("Clear left %v live cells, generation %v", g.LiveCells(), g.Generation())
	}
	assertCells(t, g, nil)
}

func TestResize(t *testing.T) {
	g := newTestGrid(t, 4, 4, false)
	settle(t, g, [][2]int{{0, 0}, {3, 3}, {1, 2}})

	//shrink: cells outside the new bounds are discarded
	if err := g.Resize(3, 3); err != nil {
		t.Fatalf("Resize(3,3): %v", err)
	}
	assertCells(t, g, [][2]int{{0, 0}, {1, 2}})
	if g.LiveCells() != 2 {
		t.Errorf("LiveCells after shrink = %v, want 2", g.LiveCells())
	}

	//grow: the overlap is retained, new cells are dead
	if err := g.Resize(6, 5); err != nil {
		t.Fatalf("Resize(6,5): %v", err)
	}
	assertCells(t, g, [][2]int{{0, 0}, {1, 2}})

	if err := g.Resize(0, 5); err == nil {
		t.Error("Resize(0,5): expected error, got none")
	}
}

func TestSetTracksLiveCells(t *testing.T) {
	g := newTestGrid(t, 3, 3, false)
	_ = g.Set(1, 1, true)
	_ = g.Set(1, 1, true) //idempotent
	if g.LiveCells() != 1 {
		t.Errorf("LiveCells = %v, want 1", g.LiveCells())
	}
	_ = g.Set(1, 1, false)
	if g.LiveCells() != 0 {
		t.Errorf("LiveCells = %v, want 0", g.LiveCells())
	}
}

func TestCustomRule(t *testing.T) {
	//B1/S on a bounded grid: one live cell spawns its whole
	//neighborhood and dies itself
	rules, err := ParseRule("B1/S")
	if err != nil {
		t.Fatalf("ParseRule: %v", err)
	}
	g, err := NewGrid(3, 3, false, rules)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if err := g.Set(1, 1, true); err != nil {
		t.Fatal(err)
	}
	g.NextGeneration()
	assertCells(t, g, [][2]int{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	})
}
