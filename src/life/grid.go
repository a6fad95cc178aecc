package life

import (
	"fmt"
	"math/rand"
)

//DimensionError reports a non-positive grid size.
type DimensionError struct {
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid grid dimensions %vx%v: both must be positive", e.Width, e.Height)
}

//BoundsError reports a cell access outside the grid.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%v,%v) outside %vx%v grid", e.X, e.Y, e.Width, e.Height)
}

//Grid holds the cell field and applies a RuleSet to advance it.
//It is exclusively owned by one session loop; no internal locking.
type Grid struct {
	width  int
	height int
	wrap   bool
	rules  RuleSet

	//cells is the current generation, next the scratch buffer;
	//NextGeneration swaps them instead of reallocating
	cells []bool
	next  []bool

	generation int
	liveCells  int
	rand       *rand.Rand
}

//NewGrid creates a dead grid of the given dimensions.
func NewGrid(width, height int, wrap bool, rules RuleSet) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &DimensionError{width, height}
	}
	return &Grid{
		width:  width,
		height: height,
		wrap:   wrap,
		rules:  rules,
		cells:  make([]bool, width*height),
		next:   make([]bool, width*height),
	}, nil
}

func (g *Grid) Width() int      { return g.width }
func (g *Grid) Height() int     { return g.height }
func (g *Grid) Wrap() bool      { return g.wrap }
func (g *Grid) Rules() RuleSet  { return g.rules }
func (g *Grid) Generation() int { return g.generation }
func (g *Grid) LiveCells() int  { return g.liveCells }

//SetWrap switches between torus and bounded edge topology.
func (g *Grid) SetWrap(wrap bool) { g.wrap = wrap }

//SetRules replaces the rule set wholesale.
func (g *Grid) SetRules(rules RuleSet) { g.rules = rules }

//SetRandSource installs a seeded random source for Randomize.
//Without it Randomize is non-deterministic.
func (g *Grid) SetRandSource(r *rand.Rand) { g.rand = r }

//Get reports whether the cell at (x,y) is alive.
func (g *Grid) Get(x, y int) (bool, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false, &BoundsError{x, y, g.width, g.height}
	}
	return g.cells[y*g.width+x], nil
}

//Set writes the cell at (x,y). This is the sole cell-mutation
//primitive; editing and pattern loading both go through it.
func (g *Grid) Set(x, y int, alive bool) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return &BoundsError{x, y, g.width, g.height}
	}
	i := y*g.width + x
	if g.cells[i] != alive {
		if alive {
			g.liveCells++
		} else {
			g.liveCells--
		}
		g.cells[i] = alive
	}
	return nil
}

//NeighborCount counts live cells among the 8 Moore neighbors of (x,y).
//With wrap enabled coordinates are taken modulo the grid size (torus);
//without it, out-of-bounds neighbors count as dead.
func (g *Grid) NeighborCount(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if g.wrap {
				nx = (nx + g.width) % g.width
				ny = (ny + g.height) % g.height
			} else if nx < 0 || ny < 0 || nx >= g.width || ny >= g.height {
				continue
			}
			if g.cells[ny*g.width+nx] {
				count++
			}
		}
	}
	return count
}

//NextGeneration advances the grid one generation. Every cell is
//evaluated against a snapshot of the current generation: the new
//states go to the scratch buffer, which is then swapped in, so no
//cell ever observes an already-updated neighbor.
func (g *Grid) NextGeneration() {
	live := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			alive := g.rules.Evaluate(g.cells[y*g.width+x], g.NeighborCount(x, y))
			g.next[y*g.width+x] = alive
			if alive {
				live++
			}
		}
	}
	g.cells, g.next = g.next, g.cells
	g.liveCells = live
	g.generation++
}

//Randomize sets each cell alive independently with the given
//probability, clamped to [0,1], and resets the generation counter.
func (g *Grid) Randomize(density float64) {
	if density < 0 {
		density = 0
	} else if density > 1 {
		density = 1
	}
	randFloat := rand.Float64
	if g.rand != nil {
		randFloat = g.rand.Float64
	}
	live := 0
	for i := range g.cells {
		g.cells[i] = randFloat() < density
		if g.cells[i] {
			live++
		}
	}
	g.liveCells = live
	g.generation = 0
}

//Clear kills every cell and resets the counters.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
	g.liveCells = 0
	g.generation = 0
}

//Resize reallocates the field. Cells inside the overlap of the old
//and new bounds keep their value, new cells start dead, cells outside
//the new bounds are discarded.
func (g *Grid) Resize(newWidth, newHeight int) error {
	if newWidth <= 0 || newHeight <= 0 {
		return &DimensionError{newWidth, newHeight}
	}
	cells := make([]bool, newWidth*newHeight)
	live := 0
	for y := 0; y < newHeight && y < g.height; y++ {
		for x := 0; x < newWidth && x < g.width; x++ {
			if g.cells[y*g.width+x] {
				cells[y*newWidth+x] = true
				live++
			}
		}
	}
	g.width = newWidth
	g.height = newHeight
	g.cells = cells
	g.next = make([]bool, newWidth*newHeight)
	g.liveCells = live
	return nil
}

//Snapshot copies the current cell field as row-major rows.
func (g *Grid) Snapshot() [][]bool {
	rows := make([][]bool, g.height)
	b := make([]bool, g.width*g.height)
	copy(b, g.cells)
	for y := range rows {
		rows[y] = b[y*g.width : (y+1)*g.width : (y+1)*g.width]
	}
	return rows
}
