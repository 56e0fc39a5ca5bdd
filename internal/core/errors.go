package core

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid is returned when a grid has no rows, so not even its column
// count can be measured.
var ErrEmptyGrid = errors.New("core: grid has no rows, cannot measure its shape")

// ShapeError reports a content grid whose rows differ in length.
type ShapeError struct {
	Row  int // First offending row
	Len  int // Length of that row
	Want int // Length of row 0
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("core: grid is of inconsistent shape: row %d has %d cells, row 0 has %d",
		e.Row, e.Len, e.Want)
}

// ShapeMismatchError reports a color grid whose shape differs from the content grid.
// Colors holds the row count and the length of the first row that disagrees.
type ShapeMismatchError struct {
	Data   Shape
	Colors Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("core: data and color grids do not have the same shape: data %s, colors %s",
		e.Data, e.Colors)
}

// IndexError reports a coordinate outside the grid.
// RowOnly is set when only a row was requested; Coord.Col is then unused.
type IndexError struct {
	Coord   Coord
	Shape   Shape
	RowOnly bool
}

func (e *IndexError) Error() string {
	if e.RowOnly {
		return fmt.Sprintf("core: row %d out of range for grid of shape %s", e.Coord.Row, e.Shape)
	}
	return fmt.Sprintf("core: index %s out of range for grid of shape %s", e.Coord, e.Shape)
}
