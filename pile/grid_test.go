package pile

import "testing"

func TestGrid_Sand_AbsentCellReadsZero(t *testing.T) {
	// GIVEN an empty grid
	g := NewGrid()

	// THEN any cell reads 0 without creating an entry
	if got := g.Sand(Cell{Row: 3, Col: -7}); got != 0 {
		t.Errorf("Sand on absent cell: got %d, want 0", got)
	}
	if g.Len() != 0 {
		t.Errorf("read created an entry: Len() = %d, want 0", g.Len())
	}
}

func TestGrid_Add_InsertsThenAccumulates(t *testing.T) {
	g := NewGrid()
	c := Cell{Row: 1, Col: 2}

	// WHEN Add is called on an absent cell and again on the same cell
	if got := g.Add(c, 5); got != 5 {
		t.Errorf("first Add: got %d, want 5", got)
	}
	if got := g.Add(c, 3); got != 8 {
		t.Errorf("second Add: got %d, want 8", got)
	}

	if g.Sand(c) != 8 || g.Len() != 1 {
		t.Errorf("after adds: Sand=%d Len=%d, want 8 and 1", g.Sand(c), g.Len())
	}
}

func TestGrid_Touch_RadiusIsMonotoneMaxMagnitude(t *testing.T) {
	g := NewGrid()

	// GIVEN a sequence of touched cells
	steps := []struct {
		cell Cell
		want int
	}{
		{Cell{0, 0}, 0},
		{Cell{2, 1}, 2},
		{Cell{1, -5}, 5},  // negative coordinates count by magnitude
		{Cell{-3, 2}, 5},  // smaller magnitudes never shrink the radius
		{Cell{0, 11}, 11},
	}
	for _, s := range steps {
		g.Touch(s.cell)
		if g.Radius() != s.want {
			t.Errorf("after Touch(%v): Radius()=%d, want %d", s.cell, g.Radius(), s.want)
		}
	}
}

func TestGrid_Scale_MultipliesEveryCell(t *testing.T) {
	g := NewGrid()
	g.Set(Cell{0, 0}, 3)
	g.Set(Cell{1, 1}, 7)

	g.Scale(2)

	if g.Sand(Cell{0, 0}) != 6 || g.Sand(Cell{1, 1}) != 14 {
		t.Errorf("after Scale(2): got %d and %d, want 6 and 14",
			g.Sand(Cell{0, 0}), g.Sand(Cell{1, 1}))
	}
	if g.Total() != 20 {
		t.Errorf("Total: got %d, want 20", g.Total())
	}
}
