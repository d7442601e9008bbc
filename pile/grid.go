// Implements the sparse unbounded grid. Only cells that have ever held sand
// are stored; absent cells read as zero.

package pile

// Grid maps lattice cells to sand counts and tracks the bounding radius of
// every cell ever targeted by a redistribution. The radius never shrinks, so
// a dense export is always large enough to hold the full history of the pile.
type Grid struct {
	cells  map[Cell]int64
	radius int
}

// NewGrid returns an empty grid with bounding radius 0.
func NewGrid() *Grid {
	return &Grid{cells: make(map[Cell]int64)}
}

// Sand returns the sand count at c, zero for cells never stored.
func (g *Grid) Sand(c Cell) int64 {
	return g.cells[c]
}

// Set stores v at c, creating the entry if absent.
func (g *Grid) Set(c Cell, v int64) {
	g.cells[c] = v
}

// Add adds v to the sand at c, inserting the entry if absent, and returns
// the new total.
func (g *Grid) Add(c Cell, v int64) int64 {
	total := g.cells[c] + v
	g.cells[c] = total
	return total
}

// Touch records c against the bounding radius, growing it to cover c's
// absolute row and column magnitude.
func (g *Grid) Touch(c Cell) {
	if r := abs(c.Row); r > g.radius {
		g.radius = r
	}
	if r := abs(c.Col); r > g.radius {
		g.radius = r
	}
}

// Radius returns the current bounding radius.
func (g *Grid) Radius() int {
	return g.radius
}

// Len returns the number of stored cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Total returns the sum of all stored sand.
func (g *Grid) Total() int64 {
	var sum int64
	for _, sand := range g.cells {
		sum += sand
	}
	return sum
}

// Scale multiplies every stored cell's sand by k.
func (g *Grid) Scale(k int64) {
	for c, sand := range g.cells {
		g.cells[c] = sand * k
	}
}

// Each calls fn for every stored (cell, sand) pair in arbitrary order.
// fn must not mutate the grid.
func (g *Grid) Each(fn func(Cell, int64)) {
	for c, sand := range g.cells {
		fn(c, sand)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
