package core

import "fmt"

// Cell holds one grid value: either a scalar or a multi-line sequence whose
// elements occupy successive sub-rows of the rendered cell.
type Cell struct {
	values []any
	multi  bool
}

// Scalar creates a single-value cell. It is rendered with fmt.Sprint.
func Scalar(v any) Cell {
	return Cell{values: []any{v}}
}

// Multi creates a multi-line cell with one sub-row per element.
// An empty Multi is valid and renders blank.
func Multi(vs ...any) Cell {
	values := make([]any, len(vs))
	copy(values, vs)
	return Cell{values: values, multi: true}
}

// Lines is a convenience wrapper around Multi for string elements.
func Lines(lines ...string) Cell {
	values := make([]any, len(lines))
	for i, l := range lines {
		values[i] = l
	}
	return Cell{values: values, multi: true}
}

// IsMulti reports whether the cell is a multi-line cell.
func (c Cell) IsMulti() bool {
	return c.multi
}

// Len returns the number of elements: 1 for scalars.
func (c Cell) Len() int {
	if !c.multi {
		return 1
	}
	return len(c.values)
}

// Value returns the scalar value, or nil for multi-line cells.
func (c Cell) Value() any {
	if c.multi || len(c.values) == 0 {
		return nil
	}
	return c.values[0]
}

// Values returns a copy of the elements of the cell.
func (c Cell) Values() []any {
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}

// Text returns the textual form of a scalar cell; the zero Cell is "".
// For a multi-line cell it returns the elements in brackets.
func (c Cell) Text() string {
	if c.multi {
		return fmt.Sprint(c.values)
	}
	if len(c.values) == 0 {
		return ""
	}
	return fmt.Sprint(c.values[0])
}

// Lines returns the textual form of each element.
func (c Cell) Lines() []string {
	lines := make([]string, len(c.values))
	for i, v := range c.values {
		lines[i] = fmt.Sprint(v)
	}
	return lines
}

// line returns the text of element i and whether it exists.
func (c Cell) line(i int) (string, bool) {
	if i < 0 || i >= len(c.values) {
		return "", false
	}
	return fmt.Sprint(c.values[i]), true
}

// Rows converts literal rows into cells. Values that are already Cells are kept,
// anything else becomes a scalar.
func Rows(rows ...[]any) [][]Cell {
	out := make([][]Cell, len(rows))
	for i, row := range rows {
		out[i] = make([]Cell, len(row))
		for j, v := range row {
			if c, ok := v.(Cell); ok {
				out[i][j] = c
				continue
			}
			out[i][j] = Scalar(v)
		}
	}
	return out
}
