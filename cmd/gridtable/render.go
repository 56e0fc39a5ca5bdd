package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridtable/internal/core"
	"github.com/vovakirdan/gridtable/internal/gridfile"
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a YAML grid document",
	Long: `Reads a grid document and prints it as a table.

Document format:
  title: Moves                 # optional
  rows:                        # scalars, or lists for multi-line cells
    - [1, 2, [up, down]]
    - [3, 4, 5]
  colors:                      # optional, same shape as rows
    - [red, default, blue]
    - [default, default, default]
  paint:                       # optional single-cell overrides
    - {row: 1, col: 2, color: magenta}

Examples:
  gridtable render grid.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func runRender(cmd *cobra.Command, args []string) {
	path := args[0]

	doc, err := gridfile.LoadFile(path)
	if err != nil {
		fail("cannot load grid: %v", err)
	}
	logger.Debug("loaded grid document", "path", doc.Path, "title", doc.Title)

	t, err := doc.Table()
	if err != nil {
		var shapeErr *core.ShapeError
		var mismatch *core.ShapeMismatchError
		switch {
		case errors.As(err, &shapeErr):
			logger.Error("rows must all have the same length", "row", shapeErr.Row, "len", shapeErr.Len, "want", shapeErr.Want)
		case errors.As(err, &mismatch):
			logger.Error("colors must match the rows", "rows", mismatch.Data, "colors", mismatch.Colors)
		case errors.Is(err, core.ErrEmptyGrid):
			logger.Error("document has no rows", "path", path)
		}
		fail("cannot build table: %v", err)
	}

	if err := writeTable(cmd.OutOrStdout(), doc.Title, t); err != nil {
		fail("cannot write table: %v", err)
	}
}
