// Package gridfile parses YAML grid documents into renderable tables.
//
// A document looks like:
//
//	title: Moves
//	rows:
//	  - [1, 2, [up, down]]
//	  - [3, 4, 5]
//	colors:
//	  - [red, default, blue]
//	  - [default, default, default]
//	paint:
//	  - {row: 1, col: 2, color: magenta}
//
// Scalar nodes become scalar cells and sequence nodes become multi-line cells.
package gridfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridtable/internal/core"
)

// YAMLDocument represents the YAML structure of a grid file.
type YAMLDocument struct {
	Title  string        `yaml:"title,omitempty"`
	Rows   [][]yaml.Node `yaml:"rows"`
	Colors [][]string    `yaml:"colors,omitempty"`
	Paint  []YAMLPaint   `yaml:"paint,omitempty"`
}

// YAMLPaint represents a single color override.
type YAMLPaint struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// Document represents a parsed grid file ready for rendering.
type Document struct {
	Title  string
	Cells  [][]core.Cell
	Colors [][]core.Color // nil when the file declares no colors
	Paint  []Paint
	Path   string
}

// Paint is a parsed color override.
type Paint struct {
	At    core.Coord
	Color core.Color
}

// Parse parses a YAML grid document.
func Parse(data []byte) (Document, error) {
	var yd YAMLDocument
	if err := yaml.Unmarshal(data, &yd); err != nil {
		return Document{}, fmt.Errorf("gridfile: yaml unmarshal: %w", err)
	}

	doc := Document{
		Title: yd.Title,
		Cells: make([][]core.Cell, len(yd.Rows)),
	}

	for i, row := range yd.Rows {
		doc.Cells[i] = make([]core.Cell, len(row))
		for j := range row {
			cell, err := parseCell(&row[j])
			if err != nil {
				return Document{}, fmt.Errorf("gridfile: cell %s: %w", core.C(i, j), err)
			}
			doc.Cells[i][j] = cell
		}
	}

	if yd.Colors != nil {
		doc.Colors = make([][]core.Color, len(yd.Colors))
		for i, row := range yd.Colors {
			doc.Colors[i] = make([]core.Color, len(row))
			for j, name := range row {
				c, ok := core.ParseColor(name)
				if !ok {
					return Document{}, fmt.Errorf("gridfile: color %s: unknown color %q", core.C(i, j), name)
				}
				doc.Colors[i][j] = c
			}
		}
	}

	for k, p := range yd.Paint {
		c, ok := core.ParseColor(p.Color)
		if !ok {
			return Document{}, fmt.Errorf("gridfile: paint %d: unknown color %q", k, p.Color)
		}
		doc.Paint = append(doc.Paint, Paint{At: core.C(p.Row, p.Col), Color: c})
	}

	return doc, nil
}

// parseCell converts one YAML node into a cell.
func parseCell(n *yaml.Node) (core.Cell, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return core.Scalar(scalarText(n)), nil
	case yaml.SequenceNode:
		lines := make([]string, len(n.Content))
		for k, elem := range n.Content {
			if elem.Kind != yaml.ScalarNode {
				return core.Cell{}, fmt.Errorf("element %d of a multi-line cell must be a scalar", k)
			}
			lines[k] = scalarText(elem)
		}
		return core.Lines(lines...), nil
	case yaml.AliasNode:
		if n.Alias == nil {
			return core.Cell{}, fmt.Errorf("dangling alias")
		}
		return parseCell(n.Alias)
	default:
		return core.Cell{}, fmt.Errorf("unsupported node at line %d: cells are scalars or sequences", n.Line)
	}
}

// scalarText returns the text of a scalar node as written; null renders empty.
func scalarText(n *yaml.Node) string {
	if n.ShortTag() == "!!null" {
		return ""
	}
	return n.Value
}

// Table builds a table from the document and applies its paint overrides.
func (d Document) Table() (*core.Table, error) {
	t, err := core.New(d.Cells, d.Colors)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %w", err)
	}
	for _, p := range d.Paint {
		if err := t.SetColor(p.At.Row, p.At.Col, p.Color); err != nil {
			return nil, fmt.Errorf("gridfile: paint: %w", err)
		}
	}
	return t, nil
}

// LoadFile reads and parses a grid file.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("gridfile: failed to read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}
