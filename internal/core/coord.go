package core

import "fmt"

// Coord addresses one cell of a grid.
type Coord struct {
	Row, Col int
}

// C is a shorthand constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String formats the coordinate as "(row, col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Shape holds the outer two dimensions of a grid.
// It says nothing about the depth of multi-line cells.
type Shape struct {
	Rows, Cols int
}

// String formats the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Contains returns true if c lies in [0, Rows) x [0, Cols).
func (s Shape) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < s.Rows && c.Col >= 0 && c.Col < s.Cols
}

// Cells returns the number of cells in the grid.
func (s Shape) Cells() int {
	return s.Rows * s.Cols
}
