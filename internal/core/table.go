// Package core provides the grid table renderer and its color attributes.
// It contains no external dependencies so the layout logic stays pure and testable.
package core

import (
	"fmt"
	"io"
	"os"
)

// Table owns a content grid and a color overlay of identical shape.
// Content is fixed after construction; colors change only through SetColor.
//
// A Table is not safe for concurrent use. Callers sharing one across goroutines
// must guard SetColor and rendering with the same lock.
type Table struct {
	data   [][]Cell
	colors [][]Color
	shape  Shape
}

// New creates a table from a content grid and an optional color grid.
// A nil colors grid is filled with ColorDefault.
// Both grids are copied, so later changes to the arguments do not affect the table.
func New(data [][]Cell, colors [][]Color) (*Table, error) {
	shape, err := MeasureShape(data)
	if err != nil {
		return nil, err
	}

	for i, row := range data {
		if len(row) != shape.Cols {
			return nil, &ShapeError{Row: i, Len: len(row), Want: shape.Cols}
		}
	}

	if colors == nil {
		colors = filledColors(shape, ColorDefault)
	} else if err := checkColorShape(shape, colors); err != nil {
		return nil, err
	}

	t := &Table{
		data:   make([][]Cell, shape.Rows),
		colors: make([][]Color, shape.Rows),
		shape:  shape,
	}
	for i := range data {
		t.data[i] = append([]Cell(nil), data[i]...)
		t.colors[i] = append([]Color(nil), colors[i]...)
	}
	return t, nil
}

// MeasureShape returns the row count and the length of the first row.
// It fails with ErrEmptyGrid when there is no first row to measure.
func MeasureShape(data [][]Cell) (Shape, error) {
	if len(data) == 0 {
		return Shape{}, ErrEmptyGrid
	}
	return Shape{Rows: len(data), Cols: len(data[0])}, nil
}

func checkColorShape(shape Shape, colors [][]Color) error {
	if len(colors) != shape.Rows {
		cols := 0
		if len(colors) > 0 {
			cols = len(colors[0])
		}
		return &ShapeMismatchError{Data: shape, Colors: Shape{Rows: len(colors), Cols: cols}}
	}
	for _, row := range colors {
		if len(row) != shape.Cols {
			return &ShapeMismatchError{Data: shape, Colors: Shape{Rows: len(colors), Cols: len(row)}}
		}
	}
	return nil
}

func filledColors(shape Shape, c Color) [][]Color {
	colors := make([][]Color, shape.Rows)
	for i := range colors {
		colors[i] = make([]Color, shape.Cols)
		for j := range colors[i] {
			colors[i][j] = c
		}
	}
	return colors
}

// Shape returns the number of rows and columns.
func (t *Table) Shape() Shape {
	return t.shape
}

// SetColor overwrites the color attribute of one cell.
// Out-of-range coordinates leave the table untouched and return an *IndexError.
func (t *Table) SetColor(row, col int, c Color) error {
	at := C(row, col)
	if !t.shape.Contains(at) {
		return &IndexError{Coord: at, Shape: t.shape}
	}
	t.colors[row][col] = c
	return nil
}

// ColorAt returns the color attribute of one cell.
func (t *Table) ColorAt(row, col int) (Color, error) {
	at := C(row, col)
	if !t.shape.Contains(at) {
		return ColorDefault, &IndexError{Coord: at, Shape: t.shape}
	}
	return t.colors[row][col], nil
}

// Get returns the cell at (row, col).
func (t *Table) Get(row, col int) (Cell, error) {
	return t.At(C(row, col))
}

// At returns the cell at the given coordinate.
func (t *Table) At(at Coord) (Cell, error) {
	if !t.shape.Contains(at) {
		return Cell{}, &IndexError{Coord: at, Shape: t.shape}
	}
	return t.data[at.Row][at.Col], nil
}

// RowView gives column access to one row of a table.
type RowView struct {
	table *Table
	row   int
}

// Row returns a view of row i, for row-then-column access.
func (t *Table) Row(i int) (RowView, error) {
	if i < 0 || i >= t.shape.Rows {
		return RowView{}, &IndexError{Coord: Coord{Row: i}, Shape: t.shape, RowOnly: true}
	}
	return RowView{table: t, row: i}, nil
}

// Get returns the cell in column col of this row.
func (r RowView) Get(col int) (Cell, error) {
	return r.table.At(C(r.row, col))
}

// Print writes the rendered table to standard output.
func (t *Table) Print() error {
	return t.Fprint(os.Stdout)
}

// Fprint writes the rendered table to w.
func (t *Table) Fprint(w io.Writer) error {
	if _, err := io.WriteString(w, t.String()); err != nil {
		return fmt.Errorf("core: cannot write table: %w", err)
	}
	return nil
}
